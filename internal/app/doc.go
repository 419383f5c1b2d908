// Package app wires application dependencies for the CLI.
//
// It builds either the local calculation service or an HTTP client of a
// running alcocalcd from Config, exposing the result via the Wire struct for
// commands to use.
package app
