package commands

import (
	"github.com/spf13/cobra"

	"alcocalc/internal/domain"
)

func convertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert between ABV and mass fraction at 20 °C",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "abv <abv>",
			Short: "ABV (%vol at 20 °C) to mass fraction",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				v, err := parseArgs(args, "abv")
				if err != nil {
					return err
				}
				res, err := calculator().AbvToMassFraction(cmd.Context(), v[0])
				if err != nil {
					return err
				}
				return render(cmd, res)
			},
		},
		&cobra.Command{
			Use:   "mass-fraction <p>",
			Short: "Mass fraction (0-1) to ABV at 20 °C",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				v, err := parseArgs(args, "mass fraction")
				if err != nil {
					return err
				}
				res, err := calculator().MassFractionToAbv(cmd.Context(), domain.MassFraction(v[0]))
				if err != nil {
					return err
				}
				return render(cmd, res)
			},
		},
	)
	return cmd
}
