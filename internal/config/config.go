// =============================================================================
// musiccharts - Configuration Module
// =============================================================================
//
// This module loads the application configuration from a YAML file. Every
// option has a default, and a missing config file is not an error: the tool
// is fully usable with no configuration at all, the file only overrides.
//
// CONFIGURATION SURFACE:
//   - output/archive directories
//   - default key list for a processing run
//   - font sizing (body size must come from the allowed set, since the
//     superscript scaling constants are tuned per size)
//   - section-label keyword set for the formatter's label phase
//   - output file name template
//   - logging level/format
//
// =============================================================================

package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jwcorell/musiccharts/internal/validation"
)

// Config holds the application configuration.
type Config struct {
	// =========================================================================
	// DIRECTORY SETTINGS
	// =========================================================================

	// OutputDir is where generated .tex documents are written.
	// Default: "./output"
	OutputDir string `yaml:"output_dir"`

	// ArchiveDir is where processed chart files are moved when archiving is
	// enabled. Default: "./archive"
	ArchiveDir string `yaml:"archive_dir"`

	// ArchiveCharts moves a chart into ArchiveDir after every requested key
	// pass succeeded. Default: false
	ArchiveCharts bool `yaml:"archive_charts"`

	// =========================================================================
	// PROCESSING SETTINGS
	// =========================================================================

	// DefaultKeys is the comma-separated key list used when --keys is not
	// given. Default: all 13 keys, NNS first.
	DefaultKeys string `yaml:"default_keys"`

	// FontSize is the body font size in points. Must be one of FontSizes.
	// Default: 10
	FontSize float64 `yaml:"font_size"`

	// FontSizes is the allowed body font size set.
	FontSizes []float64 `yaml:"font_sizes"`

	// TitleSize is the title line font size in points. Default: 20
	TitleSize float64 `yaml:"title_size"`

	// TitleFont is the title font family. Default: "Courier New"
	TitleFont string `yaml:"title_font"`

	// MarginInches is the uniform page margin. Default: 0.5
	MarginInches float64 `yaml:"margin_inches"`

	// SectionLabels is the keyword set bolded by the formatter's label
	// phase. Matching is whole-word, with an optional trailing number.
	SectionLabels []string `yaml:"section_labels"`

	// OutputNameFormat names generated documents. Placeholders:
	//   {name}      - chart base name
	//   {key}       - target key
	//   {timestamp} - YYYYMMDD_HHMMSS
	//   {uuid}      - random UUID
	// Default: "{name} ({key}).tex"
	OutputNameFormat string `yaml:"output_name_format"`

	// =========================================================================
	// LOGGING SETTINGS
	// =========================================================================

	// LogLevel is one of "debug", "info", "warn", "error". Default: "info"
	LogLevel string `yaml:"log_level"`

	// LogFormat is "text" or "json". Default: "text"
	LogFormat string `yaml:"log_format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		OutputDir:        "./output",
		ArchiveDir:       "./archive",
		DefaultKeys:      "NNS,Ab,A,Bb,B,C,Db,D,Eb,E,F,Gb,G",
		FontSize:         10,
		FontSizes:        []float64{8, 9, 10, 10.5, 11, 12, 14},
		TitleSize:        20,
		TitleFont:        "Courier New",
		MarginInches:     0.5,
		SectionLabels:    []string{"Intro", "Verse", "Chorus", "Pre-Chorus", "Bridge", "Interlude", "Instrumental", "Tag", "Turnaround", "Outro", "Ending"},
		OutputNameFormat: "{name} ({key}).tex",
		LogLevel:         "info",
		LogFormat:        "text",
	}
}

// Load reads the configuration file at path, applies defaults for unset
// options, and validates the result. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// applyDefaults fills options the YAML left unset.
func applyDefaults(cfg *Config) {
	def := Default()
	if cfg.OutputDir == "" {
		cfg.OutputDir = def.OutputDir
	}
	if cfg.ArchiveDir == "" {
		cfg.ArchiveDir = def.ArchiveDir
	}
	if cfg.DefaultKeys == "" {
		cfg.DefaultKeys = def.DefaultKeys
	}
	if cfg.FontSize == 0 {
		cfg.FontSize = def.FontSize
	}
	if len(cfg.FontSizes) == 0 {
		cfg.FontSizes = def.FontSizes
	}
	if cfg.TitleSize == 0 {
		cfg.TitleSize = def.TitleSize
	}
	if cfg.TitleFont == "" {
		cfg.TitleFont = def.TitleFont
	}
	if cfg.MarginInches == 0 {
		cfg.MarginInches = def.MarginInches
	}
	if len(cfg.SectionLabels) == 0 {
		cfg.SectionLabels = def.SectionLabels
	}
	if cfg.OutputNameFormat == "" {
		cfg.OutputNameFormat = def.OutputNameFormat
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = def.LogLevel
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = def.LogFormat
	}
}

// Validate checks the configuration for values that would fail later in the
// pipeline. It is called on load and again after flag overrides.
func (c *Config) Validate() error {
	if err := validation.ValidateKeys(c.Keys()); err != nil {
		return err
	}
	if !c.IsAllowedFontSize(c.FontSize) {
		return fmt.Errorf("font size %v not in allowed set %v", c.FontSize, c.FontSizes)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q", c.LogFormat)
	}
	return nil
}

// Keys returns the default key list split into identifiers.
func (c *Config) Keys() []string {
	parts := strings.Split(c.DefaultKeys, ",")
	keys := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			keys = append(keys, p)
		}
	}
	return keys
}

// IsAllowedFontSize reports whether size is in the configured set.
func (c *Config) IsAllowedFontSize(size float64) bool {
	for _, s := range c.FontSizes {
		if s == size {
			return true
		}
	}
	return false
}
