// Package calc exposes the density engine as a domain.Calculator.
//
// It validates input ranges the engine leaves to its callers, wraps
// violations in the domain sentinel errors, and logs each calculation at
// debug level via log/slog.
package calc
