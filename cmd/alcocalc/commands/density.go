package commands

import (
	"github.com/spf13/cobra"
)

// density <abv>: density of the mixture at --temperature.
func densityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "density <abv>",
		Short: "Density and contraction factor of a mixture",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseArgs(args, "abv")
			if err != nil {
				return err
			}
			warnTemperature(cmd, temperature)

			res, err := calculator().Density(cmd.Context(), v[0], temperature)
			if err != nil {
				return err
			}
			return render(cmd, res)
		},
	}
}
