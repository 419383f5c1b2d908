package commands

import (
	"github.com/spf13/cobra"
)

// check-temp [t]: classify t, or --temperature when omitted. Negative values
// need a "--" separator, e.g. check-temp -- -5.
func checkTempCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check-temp [temperature]",
		Short: "Classify a temperature against the 20 °C reference",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t := temperature
			if len(args) == 1 {
				v, err := parseArgs(args, "temperature")
				if err != nil {
					return err
				}
				t = v[0]
			}
			res, err := calculator().CheckTemperature(cmd.Context(), t)
			if err != nil {
				return err
			}
			return render(cmd, res)
		},
	}
}
