package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"alcocalc/internal/density"
	"alcocalc/internal/domain"
)

// parseArgs parses args as numbers, naming the offending argument on error.
func parseArgs(args []string, names ...string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(strings.TrimSuffix(a, "%"), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %q", names[i], a)
		}
		out[i] = v
	}
	return out, nil
}

// warnTemperature prints the advisory band of t to stderr, if any.
func warnTemperature(cmd *cobra.Command, t float64) {
	check := density.ValidateTemperature(t)
	if check.Level != domain.WarningNone && check.Valid {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning (%s): %s\n", check.Level, check.Message)
	}
}
