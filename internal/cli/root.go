package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rpmq",
		Short: "Query the RPM package database",
		Long: `Rpmq interrogates the host RPM database and local .rpm files and
normalizes the results into structured records.

Available operations:
  - list installed packages with their versions and attributes
  - print the host CPU architecture as rpm evaluates it
  - inspect local .rpm files without touching the database
  - compare two RPM version strings`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging
			verbose, _ := cmd.Flags().GetBool("verbose")
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			} else {
				logrus.SetLevel(logrus.InfoLevel)
			}
		},
	}

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	rootCmd.AddCommand(NewListCmd())
	rootCmd.AddCommand(NewOSArchCmd())
	rootCmd.AddCommand(NewInspectCmd())
	rootCmd.AddCommand(NewVercmpCmd())

	return rootCmd
}
