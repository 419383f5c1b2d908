// Package httpapi exposes a domain.Calculator as JSON over HTTP and provides
// the matching client.
//
// Server routes every engine operation under /v1 (see cmd/alcocalcd for the
// full list). Invalid input answers 400 with {"error": "..."}. The handler
// chain adds, from the outside in:
//   - a request id (X-Request-Id, generated with google/uuid when absent),
//   - a slog access log line,
//   - Prometheus request counters and latency histograms,
//   - a global plus per-client token bucket from golang.org/x/time/rate.
//
// Client implements domain.Calculator against a running daemon, so the CLI
// can compute locally or remotely with the same code. Non-2xx answers are
// returned as *StatusError carrying the method, URL, status and server
// message. All requests honour the caller's context.
package httpapi
