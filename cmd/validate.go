// =============================================================================
// musiccharts - Validate Command
// =============================================================================
//
// This file defines the 'validate' command: the full processing pipeline
// with output writing disabled. Every requested key pass runs, every chord
// error is reported with its line number, and no files are touched.
//
// COMMAND USAGE:
//   musiccharts validate <chart.txt> [--keys NNS,C,G]
//
// =============================================================================

package cmd

import (
	"github.com/spf13/cobra"
)

// validateCmd represents the 'validate' command.
var validateCmd = &cobra.Command{
	Use:   "validate <chart.txt>",
	Short: "Check a chart for chord syntax errors without writing output",
	Long: `The validate command runs every requested key pass over the chart and
reports all invalid chord syntax (malformed inversions such as "1/34" or
"1sus/3/5") with 1-based line numbers, without generating any documents.

Useful as a pre-flight check while authoring a chart.`,

	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runProcess(args[0], true)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)

	// validate shares the --keys flag with process via runProcess.
	validateCmd.Flags().StringVarP(
		&keyList,
		"keys",
		"k",
		"",
		"Comma-separated keys to validate (default: all 13)",
	)
}
