// =============================================================================
// musiccharts - Keys Command
// =============================================================================
//
// This file defines the 'keys' command, which lists the key identifiers the
// tool accepts for --keys and the configuration's default_keys.
//
// =============================================================================

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jwcorell/musiccharts/internal/keytable"
)

// keysCmd represents the 'keys' command.
var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List the valid key identifiers",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(strings.Join(keytable.ListValidKeys(), ","))
	},
}

func init() {
	rootCmd.AddCommand(keysCmd)
}
