//go:build windows

package driven

import (
	"fmt"
	"os"
	"path/filepath"
)

// replaceFile replaces path with data using a temp file and rename.
// Windows has no fsync-then-rename guarantee, so this is best effort.
func replaceFile(path string, data []byte) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".sources-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}
