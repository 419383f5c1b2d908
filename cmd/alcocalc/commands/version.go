package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"alcocalc/internal/density"
)

// Version is set at build time with -ldflags "-X ...commands.Version=...".
var Version = "dev"

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version and density table fingerprint",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "alcocalc %s\n%s %s\n", Version, density.TableName, density.TableFingerprint())
		},
	}
}
