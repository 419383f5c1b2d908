package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. ALCOCALC_TEMPERATURE.
const EnvPrefix = "ALCOCALC"

// DefaultFileName is looked up in the home directory when no file is given.
const DefaultFileName = ".alcocalc.yaml"

// Config holds runtime options for the CLI and the daemon.
type Config struct {
	Temperature   float64   `mapstructure:"temperature" yaml:"temperature"`
	Output        string    `mapstructure:"output" yaml:"output"`
	Server        string    `mapstructure:"server" yaml:"server"`
	Listen        string    `mapstructure:"listen" yaml:"listen"`
	MetricsListen string    `mapstructure:"metrics_listen" yaml:"metrics_listen"`
	Rate          RateLimit `mapstructure:"rate" yaml:"rate"`
	Log           Log       `mapstructure:"log" yaml:"log"`
}

// RateLimit bounds the daemon's request rate per client and globally.
type RateLimit struct {
	RPS   float64 `mapstructure:"rps" yaml:"rps"`
	Burst int     `mapstructure:"burst" yaml:"burst"`
}

// Log selects the slog handler.
type Log struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Temperature:   20,
		Output:        "table",
		Listen:        ":8080",
		MetricsListen: ":9090",
		Rate:          RateLimit{RPS: 50, Burst: 100},
		Log:           Log{Level: "info", Format: "text"},
	}
}

// SetDefaults registers Default() on v so env and file values layer on top.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("temperature", d.Temperature)
	v.SetDefault("output", d.Output)
	v.SetDefault("server", d.Server)
	v.SetDefault("listen", d.Listen)
	v.SetDefault("metrics_listen", d.MetricsListen)
	v.SetDefault("rate.rps", d.Rate.RPS)
	v.SetDefault("rate.burst", d.Rate.Burst)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
}

// Load reads file (or ~/.alcocalc.yaml when empty) and the environment into
// v and decodes the result. A missing default file is not an error; a
// missing explicit file is.
func Load(v *viper.Viper, file string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
		v.SetConfigType("yaml")
		v.SetConfigName(strings.TrimSuffix(DefaultFileName, filepath.Ext(DefaultFileName)))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	} else {
		slog.Debug("using config file", "file", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values a typo could make meaningless.
func (c Config) Validate() error {
	switch c.Output {
	case "table", "json", "yaml":
	default:
		return fmt.Errorf("output must be table, json or yaml, got %q", c.Output)
	}
	if math.IsNaN(c.Temperature) || c.Temperature < -10 || c.Temperature > 50 {
		return fmt.Errorf("temperature must be between -10 and 50 °C, got %v", c.Temperature)
	}
	if c.Rate.RPS <= 0 {
		return fmt.Errorf("rate.rps must be positive")
	}
	if c.Rate.Burst <= 0 {
		return fmt.Errorf("rate.burst must be positive")
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	return nil
}

// ParseLevel maps a level name to its slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return l, nil
}

// NewLogger builds the slog logger described by c.Log.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	level, err := ParseLevel(c.Log.Level)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
