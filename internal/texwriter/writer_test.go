package texwriter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_DocumentSkeleton(t *testing.T) {
	out, err := Generate([]string{"C  F", "lyrics"}, DefaultGenerateOptions())
	require.NoError(t, err)

	doc := string(out)
	assert.Contains(t, doc, `\documentclass[10pt]{extarticle}`)
	assert.Contains(t, doc, `\usepackage{fontspec,xfp}`)
	assert.Contains(t, doc, `\usepackage{fancyvrb}`)
	assert.Contains(t, doc, `\setmonofont{Courier New}`)
	assert.Contains(t, doc, `\newcommand{\ts}{\textsuperscript}`)
	assert.Contains(t, doc, `\newunicodechar{△}{$\bigtriangleup$}`)
	assert.Contains(t, doc, `\newunicodechar{ø}{$\o$}`)
	assert.Contains(t, doc, "\\begin{document}\n")
	assert.Contains(t, doc, "C  F\nlyrics\n")
	assert.True(t, strings.HasSuffix(doc, "\\end{document}\n"))
}

func TestGenerate_VerbatimCommandChars(t *testing.T) {
	out, err := Generate(nil, DefaultGenerateOptions())
	require.NoError(t, err)

	// Braces and backslash must be command characters inside the Verbatim
	// body or the chord markup would render literally.
	assert.Contains(t, string(out), `\begin{Verbatim}[fontsize=\scalefont{1},commandchars=\\\{\}]`)
}

func TestGenerate_FontScaleRatio(t *testing.T) {
	tests := []struct {
		size float64
		want string
	}{
		{10, `\scalefont{1}`},
		{12, `\scalefont{1.2}`},
		{10.5, `\scalefont{1.05}`},
		{8, `\scalefont{0.8}`},
	}

	for _, tt := range tests {
		opts := DefaultGenerateOptions()
		opts.FontSize = tt.size
		out, err := Generate(nil, opts)
		require.NoError(t, err)
		assert.Contains(t, string(out), tt.want, "font size %v", tt.size)
	}
}

func TestGenerate_MarginAndTitleOptions(t *testing.T) {
	opts := GenerateOptions{
		FontSize:     10,
		TitleSize:    24,
		TitleFont:    "Arial",
		MarginInches: 0.75,
	}
	out, err := Generate(nil, opts)
	require.NoError(t, err)

	doc := string(out)
	assert.Contains(t, doc, `\usepackage[margin=0.75in]{geometry}`)
	assert.Contains(t, doc, `\newfontfamily\bigtitle[SizeFeatures={Size=24}]{Arial}`)
}

func TestGenerate_InvalidFontSize(t *testing.T) {
	_, err := Generate(nil, GenerateOptions{FontSize: 0})
	assert.Error(t, err)

	_, err = Generate(nil, GenerateOptions{FontSize: -3})
	assert.Error(t, err)
}

func TestGenerate_EmptyChart(t *testing.T) {
	out, err := Generate(nil, DefaultGenerateOptions())
	require.NoError(t, err)

	assert.Contains(t, string(out), "\\begin{Verbatim}")
	assert.Contains(t, string(out), "\\end{Verbatim}\n")
}
