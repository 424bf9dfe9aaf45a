// =============================================================================
// musiccharts - Main Entry Point
// =============================================================================
//
// musiccharts typesets plain-text Nashville Number System chord charts into
// LaTeX documents, transposed into any of 12 lettered keys or kept in NNS
// with superscripted notation.
//
// USAGE:
//   musiccharts process <chart>    - Typeset a chart in one or more keys
//   musiccharts validate <chart>   - Check chord syntax without output
//   musiccharts keys               - List valid key identifiers
//   musiccharts reference          - Export transposition tables as XLSX
//   musiccharts version            - Display the application version
//
// ARCHITECTURE:
//   cmd/        : CLI command definitions (Cobra)
//   internal/   : Core engine (key table, tokenizer, transposer, formatter,
//                 converter, writers)
//   pkg/        : Shared utilities
//
// =============================================================================

package main

import (
	"github.com/jwcorell/musiccharts/cmd"
)

func main() {
	cmd.Execute()
}
