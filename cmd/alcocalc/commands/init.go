package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"alcocalc/internal/config"
)

// init: write the effective configuration to a file.
func initCmd() *cobra.Command {
	var (
		path  string
		force bool
	)
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the current settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if path == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				path = filepath.Join(dir, config.DefaultFileName)
			}
			out := cfg
			out.Temperature = temperature
			if err := config.WriteFile(path, out, force); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "wrote", path)
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "path", "", "file to write (default $HOME/"+config.DefaultFileName+")")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}
