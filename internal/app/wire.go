package app

import (
	"log/slog"
	"net/http"
	"time"

	"alcocalc/internal/domain"
	"alcocalc/internal/httpapi"
	"alcocalc/internal/services/calc"
)

const defaultTimeout = 10 * time.Second

// Wire bundles the calculator and its collaborators for the CLI.
type Wire struct {
	Calculator domain.Calculator
	Remote     bool
	HTTP       *http.Client
	Logger     *slog.Logger
}

// NewWire constructs the dependency graph from cfg. With a ServerURL the
// calculator is an HTTP client of that daemon, otherwise the local engine.
func NewWire(cfg Config) (*Wire, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if cfg.ServerURL == "" {
		return &Wire{Calculator: calc.New(logger), Logger: logger}, nil
	}

	// Ensure an HTTP client is available for outbound calls
	httpClient := cfg.HTTP
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	logger.Debug("using remote calculator", "server", cfg.ServerURL)
	return &Wire{
		Calculator: httpapi.NewClient(cfg.ServerURL, httpClient),
		Remote:     true,
		HTTP:       httpClient,
		Logger:     logger,
	}, nil
}
