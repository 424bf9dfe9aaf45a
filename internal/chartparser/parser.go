// =============================================================================
// musiccharts - Chart Parser Module
// =============================================================================
//
// This module reads a plain-text chord chart into memory. Charts are small
// lyric sheets (a page or two), so the whole file is read at once; there is
// no streaming path.
//
// INPUT FORMAT:
//   - Plain UTF-8 text, one chart line per file line.
//   - Chords are authored in NNS notation above the lyrics they belong to.
//   - The two notation glyphs △ and ø are expected to arrive as valid UTF-8;
//     no encoding negotiation happens here.
//
// Trailing whitespace is stripped from every line so alignment math in the
// transposer only ever deals with meaningful columns. Leading whitespace is
// preserved; it IS the alignment.
//
// =============================================================================

package chartparser

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ChartData represents a parsed chart file.
type ChartData struct {
	// Lines contains the chart lines, trailing whitespace stripped.
	Lines []string

	// SourceFile is the resolved path of the chart file.
	SourceFile string

	// LineCount is the number of lines in the chart.
	LineCount int
}

// Name returns the chart's base name without extension, used as the default
// output document name.
func (c *ChartData) Name() string {
	base := filepath.Base(c.SourceFile)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Parse reads a chart file and returns its lines.
//
// A relative path is resolved against the current working directory. An
// empty file is valid: it produces an empty (but typesettable) chart.
func Parse(filePath string) (*ChartData, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open chart file: %w", err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), " \t\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read chart file: %w", err)
	}

	return &ChartData{
		Lines:      lines,
		SourceFile: filePath,
		LineCount:  len(lines),
	}, nil
}
