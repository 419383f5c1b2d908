package commands

import (
	"github.com/spf13/cobra"
)

// volume <mass-g> <abv>: volume a weighed spirit occupies at --temperature.
func volumeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "volume <mass-g> <abv>",
		Short: "Volume of a weighed mass of spirit",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseArgs(args, "mass", "abv")
			if err != nil {
				return err
			}
			warnTemperature(cmd, temperature)

			res, err := calculator().VolumeFromMass(cmd.Context(), v[0], v[1], temperature)
			if err != nil {
				return err
			}
			return render(cmd, res)
		},
	}
}

// mass <volume-ml> <abv>: mass of a measured volume at --temperature.
func massCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mass <volume-ml> <abv>",
		Short: "Mass of a measured volume of spirit",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseArgs(args, "volume", "abv")
			if err != nil {
				return err
			}
			warnTemperature(cmd, temperature)

			res, err := calculator().MassFromVolume(cmd.Context(), v[0], v[1], temperature)
			if err != nil {
				return err
			}
			return render(cmd, res)
		},
	}
}

// ethanol <volume-ml> <abv>: pure ethanol in a volume of spirit.
func ethanolCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ethanol <volume-ml> <abv>",
		Short: "Pure ethanol mass in a volume of spirit",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseArgs(args, "volume", "abv")
			if err != nil {
				return err
			}
			warnTemperature(cmd, temperature)

			res, err := calculator().EthanolMass(cmd.Context(), v[0], v[1], temperature)
			if err != nil {
				return err
			}
			return render(cmd, res)
		},
	}
}
