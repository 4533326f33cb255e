//go:build !windows

package driven

import (
	"fmt"

	"github.com/google/renameio/v2"
)

// replaceFile atomically replaces path with data.
// renameio writes a temp file in the same directory, fsyncs it and renames it
// over path, so readers never observe a partially written file.
func replaceFile(path string, data []byte) (err error) {
	pendingFile, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o644))
	if err != nil {
		return fmt.Errorf("create pending file: %w", err)
	}
	defer func() {
		// No-op once the file was committed
		if cleanupErr := pendingFile.Cleanup(); cleanupErr != nil && err == nil {
			err = fmt.Errorf("cleanup pending file: %w", cleanupErr)
		}
	}()

	if _, err := pendingFile.Write(data); err != nil {
		return fmt.Errorf("write pending file: %w", err)
	}

	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace file: %w", err)
	}

	return nil
}
