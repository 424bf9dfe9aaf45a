// =============================================================================
// musiccharts - Converter Module
// =============================================================================
//
// This module orchestrates one key pass: a full run over the chart for a
// single target key. A pass formats every line in order (threading the
// intro-continuation flag from each line into the next), aggregates chord
// syntax errors, and only when the whole pass is clean generates the LaTeX
// document and writes it out.
//
// CONCURRENCY:
//   Each key pass owns its Converter, its context flag, and its error list;
//   passes share only the read-only translation table. The process command
//   runs one goroutine per requested key.
//
// ERROR POLICY:
//   Chord syntax errors are fatal to this key's output (no partial document
//   is produced) but never affect other keys. Internal faults from the
//   formatter propagate as the Result error.
//
// =============================================================================

package converter

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jwcorell/musiccharts/internal/chartparser"
	"github.com/jwcorell/musiccharts/internal/chord"
	"github.com/jwcorell/musiccharts/internal/config"
	"github.com/jwcorell/musiccharts/internal/formatter"
	"github.com/jwcorell/musiccharts/internal/texwriter"
	"github.com/jwcorell/musiccharts/pkg/utils"
)

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of one key pass.
type Result struct {
	// Key is the target key of this pass.
	Key string

	// OutputFile is the path of the generated document; empty when the pass
	// failed or ran dry.
	OutputFile string

	// Success indicates whether the pass completed without errors.
	Success bool

	// Error is set on configuration or internal failure.
	Error error

	// ChordErrors holds the aggregated chord syntax errors of the pass.
	ChordErrors []*chord.ChordError

	// Stats contains processing statistics.
	Stats ProcessingStats
}

// ProcessingStats contains statistics about one key pass.
type ProcessingStats struct {
	// LinesFormatted is the number of chart lines processed.
	LinesFormatted int

	// ProcessingTime is the wall time of the pass.
	ProcessingTime time.Duration
}

// =============================================================================
// CONVERTER STRUCTURE
// =============================================================================

// Converter runs one key pass over a chart.
type Converter struct {
	chart  *chartparser.ChartData
	key    string
	cfg    *config.Config
	fmtter *formatter.Formatter

	// docName overrides the chart base name in the output file name.
	docName string

	// dryRun formats and validates without writing any output file.
	dryRun bool
}

// New creates a Converter for one (chart, key) pair.
func New(chart *chartparser.ChartData, key string, cfg *config.Config) *Converter {
	return &Converter{
		chart:  chart,
		key:    key,
		cfg:    cfg,
		fmtter: formatter.New(cfg.SectionLabels),
	}
}

// WithDocName overrides the output document name (the {name} placeholder).
func (c *Converter) WithDocName(name string) *Converter {
	c.docName = name
	return c
}

// WithDryRun disables output writing; the pass still formats every line and
// collects every chord error.
func (c *Converter) WithDryRun(dry bool) *Converter {
	c.dryRun = dry
	return c
}

// =============================================================================
// PASS EXECUTION
// =============================================================================

// Run executes the key pass.
func (c *Converter) Run() Result {
	start := time.Now()
	result := Result{Key: c.key}

	lines := make([]string, 0, len(c.chart.Lines))
	ctx := formatter.Context{}

	for i, raw := range c.chart.Lines {
		res, err := c.fmtter.FormatLine(raw, i+1, c.key, ctx)
		if err != nil {
			result.Error = fmt.Errorf("key %s, line %d: %w", c.key, i+1, err)
			return result
		}
		ctx = formatter.Context{NextLineAfterIntro: res.NextLineAfterIntro}
		lines = append(lines, res.Line)
		result.ChordErrors = append(result.ChordErrors, res.Errors...)
	}

	result.Stats.LinesFormatted = len(lines)
	result.Stats.ProcessingTime = time.Since(start)

	if len(result.ChordErrors) > 0 {
		result.Error = fmt.Errorf("key %s: %d invalid chord(s)", c.key, len(result.ChordErrors))
		return result
	}

	if c.dryRun {
		result.Success = true
		return result
	}

	doc, err := texwriter.Generate(lines, texwriter.GenerateOptions{
		FontSize:     c.cfg.FontSize,
		TitleSize:    c.cfg.TitleSize,
		TitleFont:    c.cfg.TitleFont,
		MarginInches: c.cfg.MarginInches,
	})
	if err != nil {
		result.Error = fmt.Errorf("key %s: %w", c.key, err)
		return result
	}

	outputPath, err := c.writeOutput(doc)
	if err != nil {
		result.Error = fmt.Errorf("key %s: %w", c.key, err)
		return result
	}

	result.OutputFile = outputPath
	result.Success = true
	result.Stats.ProcessingTime = time.Since(start)
	return result
}

// writeOutput writes the document under the configured output directory
// using the output name template.
func (c *Converter) writeOutput(doc []byte) (string, error) {
	if err := os.MkdirAll(c.cfg.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	name := c.docName
	if name == "" {
		name = c.chart.Name()
	}
	fileName := utils.GenerateOutputFileName(c.cfg.OutputNameFormat, map[string]string{
		"name": name,
		"key":  c.key,
	})

	outputPath := filepath.Join(c.cfg.OutputDir, fileName)
	if err := os.WriteFile(outputPath, doc, 0644); err != nil {
		return "", fmt.Errorf("failed to write output file: %w", err)
	}
	return outputPath, nil
}
