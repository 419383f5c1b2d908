// Package output renders calculation results for the CLI as a table, JSON or
// YAML.
package output
