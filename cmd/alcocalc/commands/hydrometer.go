package commands

import (
	"github.com/spf13/cobra"
)

// hydrometer <reading>: true strength of a reading taken at --temperature.
func hydrometerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hydrometer <reading>",
		Short: "Correct a hydrometer reading to 20 °C",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseArgs(args, "reading")
			if err != nil {
				return err
			}
			res, err := calculator().CorrectHydrometer(cmd.Context(), v[0], temperature)
			if err != nil {
				return err
			}
			return render(cmd, res)
		},
	}
}
