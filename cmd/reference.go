// =============================================================================
// musiccharts - Reference Command
// =============================================================================
//
// This file defines the 'reference' command, which exports the complete
// transposition table as an XLSX workbook: one sheet per lettered key, one
// row per scale-degree token.
//
// COMMAND USAGE:
//   musiccharts reference [--out transposition_reference.xlsx]
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jwcorell/musiccharts/internal/reference"
)

// referenceOut is the destination path for the workbook.
var referenceOut string

// referenceCmd represents the 'reference' command.
var referenceCmd = &cobra.Command{
	Use:   "reference",
	Short: "Export the transposition tables as an XLSX workbook",
	Long: `The reference command writes every key's scale-degree-to-chord mapping
into an XLSX workbook, one sheet per lettered key. The workbook is a
printable cheat sheet for reading a numbered chart against a lettered one.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		if err := reference.Export(referenceOut); err != nil {
			return err
		}
		fmt.Printf("Reference workbook written to %s\n", referenceOut)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(referenceCmd)

	referenceCmd.Flags().StringVar(
		&referenceOut,
		"out",
		"transposition_reference.xlsx",
		"Destination path for the workbook",
	)
}
