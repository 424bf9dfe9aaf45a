package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupWriter_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	SetupWriter(&buf, "info", "text", false)

	slog.Info("pass complete", "key", "Eb")
	assert.Contains(t, buf.String(), "pass complete")
	assert.Contains(t, buf.String(), "key=Eb")
}

func TestSetupWriter_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	SetupWriter(&buf, "info", "json", false)

	slog.Info("pass complete", "key", "Eb")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "pass complete", entry["msg"])
	assert.Equal(t, "Eb", entry["key"])
}

func TestSetupWriter_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetupWriter(&buf, "warn", "text", false)

	slog.Info("hidden")
	slog.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestSetupWriter_VerboseForcesDebug(t *testing.T) {
	var buf bytes.Buffer
	SetupWriter(&buf, "error", "text", true)

	slog.Debug("details")
	assert.Contains(t, buf.String(), "details")
}
