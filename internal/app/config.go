package app

import (
	"log/slog"
	"net/http"
	"time"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	ServerURL string        // alcocalcd base URL; empty computes locally
	HTTP      *http.Client  // optional; defaults to a client with Timeout
	Timeout   time.Duration // request timeout for the default client
	Logger    *slog.Logger  // optional; defaults to slog.Default()
}
