// =============================================================================
// musiccharts - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command all other commands attach to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (musiccharts)
//   ├── processCmd   (musiccharts process)
//   ├── validateCmd  (musiccharts validate)
//   ├── keysCmd      (musiccharts keys)
//   ├── referenceCmd (musiccharts reference)
//   └── versionCmd   (musiccharts version)
//
// The root command owns the global flags (--config, --verbose) and the
// configuration/logging bootstrap shared by the subcommands.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jwcorell/musiccharts/internal/config"
	"github.com/jwcorell/musiccharts/internal/logging"
)

// cfgFile holds the path to the configuration file; override with --config.
var cfgFile string

// verbose enables debug logging when set.
var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "musiccharts",
	Short: "musiccharts - Typeset NNS chord charts in any key",
	Long: `musiccharts turns a plain-text chord chart authored in the Nashville
Number System into typeset LaTeX documents, one per requested key: the NNS
original with superscripted accidentals and extensions, and transposed
versions in any of the 12 lettered keys. Chord/lyric column alignment is
preserved through every transposition.

Example Usage:
  musiccharts process song.txt                 # All 13 keys
  musiccharts process song.txt --keys NNS,C,G  # A subset
  musiccharts validate song.txt                # Check chord syntax only
  musiccharts reference                        # Export transposition tables`,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"musiccharts.yaml",
		"Path to the configuration file",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}

// loadConfig loads the configuration file and installs the logger. Every
// subcommand that touches the pipeline starts here.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	logging.Setup(cfg.LogLevel, cfg.LogFormat, verbose)
	return cfg, nil
}
