// =============================================================================
// musiccharts - Process Command
// =============================================================================
//
// This file defines the 'process' command, the main command for turning a
// chart into typeset documents. It orchestrates the full pipeline.
//
// COMMAND USAGE:
//   musiccharts process <chart.txt> [flags]
//
// FLAGS:
//   --keys        : Comma-separated key list (default: configured, all 13)
//   --name        : Destination document name (default: chart base name)
//   --size        : Body font size (must be in the allowed set)
//   --output-dir  : Override the configured output directory
//
// PROCESSING PIPELINE:
//   1. Load configuration
//   2. Validate the requested keys (fail fast, before any line processing)
//   3. Parse the chart file
//   4. Run one key pass per requested key, concurrently
//   5. Report chord errors per key; write documents for clean keys
//   6. Archive the chart when configured and every pass succeeded
//
// =============================================================================

package cmd

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/jwcorell/musiccharts/internal/chartparser"
	"github.com/jwcorell/musiccharts/internal/converter"
	"github.com/jwcorell/musiccharts/internal/validation"
	"github.com/jwcorell/musiccharts/pkg/utils"
)

// keyList is the comma-separated key list from --keys.
var keyList string

// destName overrides the output document name.
var destName string

// fontSize overrides the configured body font size.
var fontSize float64

// outputDir overrides the configured output directory.
var outputDir string

// processCmd represents the 'process' command.
var processCmd = &cobra.Command{
	Use:   "process <chart.txt>",
	Short: "Typeset a chord chart in one or more keys",
	Long: `The process command reads a plain-text NNS chord chart and produces one
LaTeX document per requested key. Key passes run concurrently; each pass is
independent, and chord syntax errors in one key never affect the others.

On success, one xelatex-ready .tex file per key is placed in the output
directory. A key pass that finds invalid chord syntax produces no output for
that key; instead, every offending chord is listed with its line number.`,

	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runProcess(args[0], false)
	},
}

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().StringVarP(
		&keyList,
		"keys",
		"k",
		"",
		"Comma-separated keys to produce (default: all 13)",
	)
	processCmd.Flags().StringVarP(
		&destName,
		"name",
		"n",
		"",
		"Destination document name (default: chart file name)",
	)
	processCmd.Flags().Float64VarP(
		&fontSize,
		"size",
		"s",
		0,
		"Body font size in points",
	)
	processCmd.Flags().StringVar(
		&outputDir,
		"output-dir",
		"",
		"Output directory (overrides configuration)",
	)
}

// runProcess is the shared pipeline behind 'process' and 'validate'.
// dryRun formats and validates every requested key without writing output.
func runProcess(chartPath string, dryRun bool) error {
	startTime := time.Now()

	// =========================================================================
	// STEP 1: CONFIGURATION AND KEY VALIDATION
	// =========================================================================

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}
	if fontSize != 0 {
		if !cfg.IsAllowedFontSize(fontSize) {
			return fmt.Errorf("font size %v not in allowed set %v", fontSize, cfg.FontSizes)
		}
		cfg.FontSize = fontSize
	}

	keys := cfg.Keys()
	if keyList != "" {
		keys = splitKeys(keyList)
	}
	if err := validation.ValidateKeys(keys); err != nil {
		return err
	}

	// =========================================================================
	// STEP 2: PARSE THE CHART
	// =========================================================================

	chart, err := chartparser.Parse(chartPath)
	if err != nil {
		return err
	}
	slog.Debug("chart parsed", "file", chart.SourceFile, "lines", chart.LineCount)

	// =========================================================================
	// STEP 3: KEY PASSES, CONCURRENTLY
	// =========================================================================
	// Each key pass is independent: it owns its intro flag and error list
	// and shares only the read-only translation table.

	var wg sync.WaitGroup
	results := make(chan converter.Result, len(keys))

	for _, key := range keys {
		wg.Add(1)
		go func(key string) {
			defer wg.Done()
			conv := converter.New(chart, key, cfg).
				WithDocName(destName).
				WithDryRun(dryRun)
			results <- conv.Run()
		}(key)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	// =========================================================================
	// STEP 4: COLLECT RESULTS
	// =========================================================================

	collected := make([]converter.Result, 0, len(keys))
	for result := range results {
		collected = append(collected, result)
	}
	sort.Slice(collected, func(i, j int) bool {
		return keyIndex(keys, collected[i].Key) < keyIndex(keys, collected[j].Key)
	})

	var successCount, errorCount int
	for _, result := range collected {
		switch {
		case result.Success && result.OutputFile != "":
			successCount++
			fmt.Printf("  ✓ %-3s -> %s\n", result.Key, result.OutputFile)
		case result.Success:
			successCount++
			fmt.Printf("  ✓ %-3s (no output written)\n", result.Key)
		default:
			errorCount++
			fmt.Printf("  ✗ %-3s: %v\n", result.Key, result.Error)
			if report := validation.FormatChordErrors(result.ChordErrors); report != "" {
				fmt.Print(report)
			}
		}
	}

	// =========================================================================
	// STEP 5: ARCHIVE AND SUMMARY
	// =========================================================================

	if !dryRun && cfg.ArchiveCharts && errorCount == 0 {
		fm := utils.NewFileManager(cfg.OutputDir, cfg.ArchiveDir)
		archived, err := fm.ArchiveChart(chart.SourceFile)
		if err != nil {
			return err
		}
		slog.Info("chart archived", "path", archived)
	}

	fmt.Printf("\nKeys processed:  %d\n", len(keys))
	fmt.Printf("Successful:      %d\n", successCount)
	fmt.Printf("Errors:          %d\n", errorCount)
	fmt.Printf("Time elapsed:    %s\n", time.Since(startTime).Round(time.Millisecond))

	if errorCount > 0 {
		return fmt.Errorf("%d key pass(es) failed", errorCount)
	}
	return nil
}

// splitKeys splits a comma-separated key list, trimming whitespace.
func splitKeys(list string) []string {
	parts := strings.Split(list, ",")
	keys := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			keys = append(keys, p)
		}
	}
	return keys
}

// keyIndex returns the position of key in the requested order.
func keyIndex(keys []string, key string) int {
	for i, k := range keys {
		if k == key {
			return i
		}
	}
	return len(keys)
}
