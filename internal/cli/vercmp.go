package cli

import (
	"fmt"

	"github.com/ralt/rpmq/internal/rpmdb"
	"github.com/spf13/cobra"
)

// NewVercmpCmd creates the vercmp command
func NewVercmpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vercmp <evr1> <evr2>",
		Short: "Compare two RPM version strings",
		Long: `Compares two [epoch:]version[-release] strings using rpm ordering
rules and prints -1, 0 or 1.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), rpmdb.CompareEVR(args[0], args[1]))
			return nil
		},
	}
}
