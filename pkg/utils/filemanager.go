// =============================================================================
// musiccharts - File Manager Utilities
// =============================================================================
//
// This package handles the filesystem housekeeping around a processing run:
//   - Creating the output and archive directories
//   - Discovering chart files in a directory
//   - Archiving processed chart files with collision-safe names
//   - Building output file names from the configured template
//
// =============================================================================

package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// FileManager owns the directories of one processing run.
type FileManager struct {
	OutputDir  string
	ArchiveDir string
}

// NewFileManager creates a FileManager for the given directories.
func NewFileManager(outputDir, archiveDir string) *FileManager {
	return &FileManager{
		OutputDir:  outputDir,
		ArchiveDir: archiveDir,
	}
}

// EnsureDirectories creates the output and archive directories if needed.
func (fm *FileManager) EnsureDirectories() error {
	for _, dir := range []string{fm.OutputDir, fm.ArchiveDir} {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// DiscoverCharts returns the chart files (by extension, e.g. ".txt") in dir,
// non-recursively, in directory order.
func (fm *FileManager) DiscoverCharts(dir, extension string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), extension) {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	return files, nil
}

// ArchiveChart moves a processed chart file into the archive directory and
// returns its new path. An existing archive entry with the same name gets a
// timestamp suffix rather than being overwritten.
func (fm *FileManager) ArchiveChart(chartPath string) (string, error) {
	if err := os.MkdirAll(fm.ArchiveDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	dest := filepath.Join(fm.ArchiveDir, filepath.Base(chartPath))
	if FileExists(dest) {
		ext := filepath.Ext(dest)
		stamp := time.Now().Format("20060102_150405")
		dest = strings.TrimSuffix(dest, ext) + "_" + stamp + ext
	}

	// Rename first; fall back to copy+remove across filesystems.
	if err := os.Rename(chartPath, dest); err != nil {
		if err := copyFile(chartPath, dest); err != nil {
			return "", fmt.Errorf("failed to archive %s: %w", chartPath, err)
		}
		if err := os.Remove(chartPath); err != nil {
			return "", fmt.Errorf("failed to remove archived source %s: %w", chartPath, err)
		}
	}
	return dest, nil
}

// GenerateOutputFileName expands an output name template. Recognized
// placeholders: {name}, {key}, {timestamp}, {uuid}.
func GenerateOutputFileName(format string, params map[string]string) string {
	result := format

	for key, value := range params {
		result = strings.ReplaceAll(result, "{"+key+"}", value)
	}
	if strings.Contains(result, "{timestamp}") {
		result = strings.ReplaceAll(result, "{timestamp}", time.Now().Format("20060102_150405"))
	}
	if strings.Contains(result, "{uuid}") {
		result = strings.ReplaceAll(result, "{uuid}", uuid.New().String())
	}
	return result
}

// FileExists reports whether path exists and is not a directory.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}
