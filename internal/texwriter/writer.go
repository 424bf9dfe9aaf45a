// =============================================================================
// musiccharts - LaTeX Writer Module
// =============================================================================
//
// This module assembles the complete XeLaTeX document for one key pass. The
// formatted lines arrive as opaque markup strings; the writer contributes
// the document skeleton:
//
//   - extarticle class with the base font size
//   - Courier New monospace via fontspec (chords must align with lyrics)
//   - a Verbatim body (fancyvrb) with commandchars, so formatting commands
//     work inside otherwise-verbatim chart text
//   - \ts (superscript) with a scaled, raised monospace font
//   - \thin, a scaled font family used as horizontal filler behind
//     superscripts to keep the baseline monospace-aligned
//   - \bigtitle for the enlarged title line
//   - unicode mappings for the two notation glyphs △ and ø
//
// The output is an xelatex-ready .tex byte stream; compiling it to PDF is
// the caller's concern.
//
// =============================================================================

package texwriter

import (
	"bytes"
	"fmt"
	"math"
)

// =============================================================================
// DOCUMENT CONSTANTS
// =============================================================================

const (
	// BaseFontSize is the document class font size; user-selected sizes are
	// expressed as a scale ratio against it.
	BaseFontSize = 10.0

	// superscriptRaise is the \raisebox offset for superscripts, in ex.
	superscriptRaise = 0.5

	// superscriptScaler scales the superscript font against the body font.
	superscriptScaler = 0.65

	// fillerScaler scales the \thin filler family so its spaces occupy the
	// width the superscripted text visually removed from the baseline.
	fillerScaler = 0.65
)

// =============================================================================
// GENERATE OPTIONS
// =============================================================================

// GenerateOptions controls document-level typesetting parameters.
type GenerateOptions struct {
	// FontSize is the body font size in points.
	FontSize float64

	// TitleSize is the \bigtitle font size in points.
	TitleSize float64

	// TitleFont is the font family used for the title line.
	TitleFont string

	// MarginInches is the uniform page margin.
	MarginInches float64
}

// DefaultGenerateOptions returns the options the CLI uses unless overridden.
func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{
		FontSize:     BaseFontSize,
		TitleSize:    20,
		TitleFont:    "Courier New",
		MarginInches: 0.5,
	}
}

// =============================================================================
// DOCUMENT GENERATION
// =============================================================================

// Generate assembles the full .tex document from formatted chart lines.
func Generate(lines []string, opts GenerateOptions) ([]byte, error) {
	if opts.FontSize <= 0 {
		return nil, fmt.Errorf("invalid font size %v", opts.FontSize)
	}
	scale := math.Round(opts.FontSize/BaseFontSize*100) / 100

	var buf bytes.Buffer
	writePreamble(&buf, opts)

	buf.WriteString("\\begin{document}\n")
	fmt.Fprintf(&buf, "\\begin{Verbatim}[fontsize=\\scalefont{%v},commandchars=\\\\\\{\\}]\n", scale)
	for _, line := range lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	buf.WriteString("\\end{Verbatim}\n")
	buf.WriteString("\\end{document}\n")

	return buf.Bytes(), nil
}

// writePreamble emits the document class and every preamble command the
// chord markup depends on.
func writePreamble(buf *bytes.Buffer, opts GenerateOptions) {
	fmt.Fprintf(buf, "\\documentclass[%vpt]{extarticle}\n", BaseFontSize)

	// fontspec/xfp drive the font scaling math; fancyvrb + fvextra allow a
	// monospace Verbatim body that still honors superscript commands.
	buf.WriteString("\\usepackage{fontspec,xfp}\n")
	buf.WriteString("\\usepackage{parskip}\n")
	buf.WriteString("\\usepackage{courier}\n")
	buf.WriteString("\\usepackage{fancyvrb}\n")
	buf.WriteString("\\usepackage{fvextra}\n")
	fmt.Fprintf(buf, "\\usepackage[margin=%vin]{geometry}\n", opts.MarginInches)
	buf.WriteString("\\usepackage[verbose]{newunicodechar}\n")
	buf.WriteString("\\setmonofont{Courier New}\n")
	buf.WriteString("\\pagestyle{empty}\n")

	// \scalefont{ratio} scales the current font size by a decimal ratio.
	buf.WriteString("\\makeatletter\n")
	buf.WriteString("\\newcommand{\\scalefont}[1]{\n")
	buf.WriteString("    \\edef\\scale@fontsize{\\fpeval{#1*\\f@size}}\n")
	buf.WriteString("    \\edef\\scale@fontbaselineskip{\\fpeval{1.2*\\scale@fontsize}}\n")
	buf.WriteString("    \\fontsize{\\scale@fontsize}{\\scale@fontbaselineskip}\\selectfont}\n")
	buf.WriteString("\\makeatother\n")

	fmt.Fprintf(buf, "\\renewcommand{\\textsuperscript}[1]{\\raisebox{%vex}{\\scalefont{%v}#1}}\n",
		superscriptRaise, superscriptScaler)
	buf.WriteString("\\renewcommand{\\familydefault}{\\ttdefault}\n")
	buf.WriteString("\\newcommand{\\ts}{\\textsuperscript}\n")
	fmt.Fprintf(buf, "\\newfontfamily{\\thin}[Scale=%v]{Courier New}\n", fillerScaler)
	fmt.Fprintf(buf, "\\newfontfamily\\bigtitle[SizeFeatures={Size=%v}]{%s}\n", opts.TitleSize, opts.TitleFont)

	buf.WriteString("\\newunicodechar{△}{$\\bigtriangleup$}\n")
	buf.WriteString("\\newunicodechar{ø}{$\\o$}\n")
}
