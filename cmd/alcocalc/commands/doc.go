// Package commands defines the alcocalc CLI and wires dependencies for subcommands.
//
// Commands
//
//   - density        Density and contraction of a mixture at temperature
//   - convert        Convert between ABV and mass fraction
//   - volume         Volume of a weighed mass of spirit
//   - mass           Mass of a measured volume of spirit
//   - ethanol        Pure ethanol contained in a volume of spirit
//   - dilute         Water to add to reach a target strength by weight
//   - hydrometer     Correct a hydrometer reading to 20 °C
//   - check-temp     Classify a temperature against the reference
//   - tables         Print the compiled-in coefficient tables
//   - init           Write a default config file
//   - version        Print the version and table fingerprint
//
// # Implementation
//
// The root command loads configuration (flags, ALCOCALC_* environment, then
// ~/.alcocalc.yaml) and builds either the local calculator or a client of a
// running alcocalcd before any subcommand runs. Temperature is taken from
// --temperature, falling back to the configured default.
package commands
