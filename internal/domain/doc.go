// Package domain defines the result types, input errors and the Calculator
// contract shared by the engine wrapper, the HTTP API and the CLI.
// It contains plain types and interfaces only.
package domain
