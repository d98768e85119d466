package cli

import (
	"fmt"

	"github.com/ralt/rpmq/internal/rpmdb"
	"github.com/spf13/cobra"
)

// NewOSArchCmd creates the osarch command
func NewOSArchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "osarch",
		Short: "Print the host CPU architecture as rpm evaluates it",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := rpmdb.NewClient(nil)
			fmt.Fprintln(cmd.OutOrStdout(), client.OSArch(cmd.Context()))
			return nil
		},
	}
}
