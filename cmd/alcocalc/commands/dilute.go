package commands

import (
	"github.com/spf13/cobra"

	"alcocalc/internal/domain"
)

// dilute <mass-g> <source-abv> <target-abv>: water to add by weight.
func diluteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dilute <mass-g> <source-abv> <target-abv>",
		Short: "Water to add to bring spirit down to a target strength",
		Long: `Dilution by weight. Mass fractions are resolved at 20 °C, so the result
does not depend on the temperature at which the spirit is weighed.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseArgs(args, "mass", "source abv", "target abv")
			if err != nil {
				return err
			}
			res, err := calculator().Dilute(cmd.Context(), domain.DilutionRequest{
				SourceMassG: v[0],
				SourceABV:   v[1],
				TargetABV:   v[2],
			})
			if err != nil {
				return err
			}
			return render(cmd, res)
		},
	}
}
