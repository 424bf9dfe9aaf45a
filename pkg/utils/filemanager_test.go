package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDirectories(t *testing.T) {
	base := t.TempDir()
	fm := NewFileManager(filepath.Join(base, "out"), filepath.Join(base, "arch"))

	require.NoError(t, fm.EnsureDirectories())

	assert.DirExists(t, fm.OutputDir)
	assert.DirExists(t, fm.ArchiveDir)

	// Second call is a no-op.
	require.NoError(t, fm.EnsureDirectories())
}

func TestEnsureDirectories_EmptySkipped(t *testing.T) {
	fm := NewFileManager(filepath.Join(t.TempDir(), "out"), "")
	require.NoError(t, fm.EnsureDirectories())
	assert.DirExists(t, fm.OutputDir)
}

func TestDiscoverCharts(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.txt", "b.TXT", "c.tex", "notes.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.txt"), 0755))

	fm := NewFileManager("", "")
	files, err := fm.DiscoverCharts(dir, ".txt")
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "a.txt"),
		filepath.Join(dir, "b.TXT"),
	}, files)
}

func TestDiscoverCharts_MissingDir(t *testing.T) {
	fm := NewFileManager("", "")
	_, err := fm.DiscoverCharts(filepath.Join(t.TempDir(), "nope"), ".txt")
	assert.Error(t, err)
}

func TestArchiveChart(t *testing.T) {
	base := t.TempDir()
	chart := filepath.Join(base, "song.txt")
	require.NoError(t, os.WriteFile(chart, []byte("1  4"), 0644))

	fm := NewFileManager("", filepath.Join(base, "archive"))
	dest, err := fm.ArchiveChart(chart)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(fm.ArchiveDir, "song.txt"), dest)
	assert.FileExists(t, dest)
	assert.NoFileExists(t, chart)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "1  4", string(data))
}

func TestArchiveChart_CollisionGetsSuffix(t *testing.T) {
	base := t.TempDir()
	fm := NewFileManager("", filepath.Join(base, "archive"))

	chart := filepath.Join(base, "song.txt")
	require.NoError(t, os.WriteFile(chart, []byte("first"), 0644))
	first, err := fm.ArchiveChart(chart)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(chart, []byte("second"), 0644))
	second, err := fm.ArchiveChart(chart)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.FileExists(t, first)
	assert.FileExists(t, second)
	assert.True(t,
		filepath.Base(second) != "song.txt" &&
			filepath.Ext(second) == ".txt")
}

func TestGenerateOutputFileName(t *testing.T) {
	name := GenerateOutputFileName("{name} ({key}).tex", map[string]string{
		"name": "grace",
		"key":  "Eb",
	})

	assert.Equal(t, "grace (Eb).tex", name)
}

func TestGenerateOutputFileName_TimestampAndUUID(t *testing.T) {
	name := GenerateOutputFileName("{name}-{timestamp}-{uuid}.tex", map[string]string{
		"name": "grace",
	})

	assert.True(t, len(name) > len("grace--.tex"))
	assert.NotContains(t, name, "{timestamp}")
	assert.NotContains(t, name, "{uuid}")

	other := GenerateOutputFileName("{uuid}", nil)
	assert.NotEqual(t, other, GenerateOutputFileName("{uuid}", nil))
}

func TestGenerateOutputFileName_UnknownPlaceholderKept(t *testing.T) {
	name := GenerateOutputFileName("{name}.{weird}.tex", map[string]string{"name": "x"})
	assert.Equal(t, "x.{weird}.tex", name)
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	assert.True(t, FileExists(file))
	assert.False(t, FileExists(filepath.Join(dir, "nope")))
	assert.False(t, FileExists(dir))
}
