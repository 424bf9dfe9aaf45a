// Package logging configures structured logging via Go's slog package.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Setup installs the default slog logger according to the configured level
// and format. verbose forces debug level regardless of the configured one.
func Setup(level, format string, verbose bool) {
	SetupWriter(os.Stderr, level, format, verbose)
}

// SetupWriter is Setup with an explicit destination, for tests.
func SetupWriter(w io.Writer, level, format string, verbose bool) {
	slogLevel := slog.LevelInfo
	switch level {
	case "debug":
		slogLevel = slog.LevelDebug
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	}
	if verbose {
		slogLevel = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: slogLevel}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	slog.SetDefault(slog.New(handler))
}
