// Package config loads alcocalc settings with spf13/viper.
//
// Values come, lowest precedence first, from Default(), a YAML file
// (~/.alcocalc.yaml or an explicit path) and ALCOCALC_* environment variables
// (nested keys use underscores, e.g. ALCOCALC_RATE_RPS). WriteFile emits a
// config file atomically for `alcocalc init`.
package config
