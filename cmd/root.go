// Package cmd provides the command-line interface for ercheck.
package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// CLI output formatters
var (
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow)
	headerColor  = color.New(color.FgBlue, color.Bold)
)

// Global flags
var (
	noColor  bool
	logLevel string
)

// NewRootCmd creates the ercheck root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ercheck",
		Short: "Run electrical rule checks on a schematic design",
		Long: `ercheck loads a design description and one or more rule-set files,
runs every registered rule check against every design object, and reports
violations classified by severity.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor {
				color.NoColor = true
			}
		},
	}

	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "minimum log level (debug, info, warn, error)")

	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newLintCmd())

	return rootCmd
}
