package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"alcocalc/internal/app"
	"alcocalc/internal/config"
	"alcocalc/internal/domain"
	"alcocalc/internal/output"
)

var (
	cfgFile     string
	verbose     bool
	temperature float64

	cfg    config.Config
	appCtx *app.Wire
)

// Execute runs the CLI with os.Args.
func Execute() error {
	return newRootCmd(os.Stdout, os.Stderr).Execute()
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	v := viper.New()
	root := &cobra.Command{
		Use:   "alcocalc",
		Short: "Alcoholometry calculator for ethanol-water mixtures (OIML R 22)",
		Long: `alcocalc converts between mass, volume, strength and temperature of
ethanol-water mixtures using the OIML R 22 density polynomial: densities,
gravimetric dilution, ethanol content and hydrometer temperature correction.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(v, cfgFile)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("temperature") {
				temperature = cfg.Temperature
			}

			logger := setupLogging(stderr)
			appCtx, err = app.NewWire(app.Config{ServerURL: cfg.Server, Logger: logger})
			return err
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default $HOME/"+config.DefaultFileName+")")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	flags.StringP("output", "o", "table", "output format: table, json or yaml")
	flags.String("server", "", "alcocalcd base URL (e.g. http://127.0.0.1:8080); empty computes locally")
	flags.Float64VarP(&temperature, "temperature", "t", 20, "sample temperature in °C")
	_ = v.BindPFlag("output", flags.Lookup("output"))
	_ = v.BindPFlag("server", flags.Lookup("server"))

	root.AddCommand(
		densityCmd(),
		convertCmd(),
		volumeCmd(),
		massCmd(),
		ethanolCmd(),
		diluteCmd(),
		hydrometerCmd(),
		checkTempCmd(),
		tablesCmd(),
		initCmd(),
		versionCmd(),
	)
	return root
}

func setupLogging(w io.Writer) *slog.Logger {
	logCfg := cfg
	if verbose {
		logCfg.Log.Level = "debug"
	}
	logger := logCfg.NewLogger(w)
	slog.SetDefault(logger)
	return logger
}

// render writes v in the configured output format.
func render(cmd *cobra.Command, v any) error {
	f, err := output.New(cfg.Output, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	return f.Format(v)
}

// calculator returns the wired calculator.
func calculator() domain.Calculator { return appCtx.Calculator }
