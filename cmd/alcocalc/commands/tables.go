package commands

import (
	"github.com/spf13/cobra"
)

func tablesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "Print the density coefficient tables and their fingerprint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := calculator().Tables(cmd.Context())
			if err != nil {
				return err
			}
			return render(cmd, res)
		},
	}
}
