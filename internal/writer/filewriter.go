package writer

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileWriter writes image bytes to a filesystem path atomically. The
// destination may be the same file the bytes were read from; on any error the
// original file is left untouched.
type FileWriter struct {
	Path string
}

// WriteImage writes buf to the configured path atomically via temp file + rename.
func (w *FileWriter) WriteImage(buf []byte) error {
	// Create temp file in same directory to ensure atomic rename
	dir := filepath.Dir(w.Path)
	tmpFile, err := os.CreateTemp(dir, ".cardprint-tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, writeErr := tmpFile.Write(buf); writeErr != nil {
		return fmt.Errorf("write temp file: %w", writeErr)
	}

	// Durability barrier before the rename publishes the file
	if syncErr := datasync(tmpFile); syncErr != nil {
		return fmt.Errorf("sync temp file: %w", syncErr)
	}

	if closeErr := tmpFile.Close(); closeErr != nil {
		return fmt.Errorf("close temp file: %w", closeErr)
	}
	tmpFile = nil // Don't clean up in defer

	// Atomic rename
	if renameErr := os.Rename(tmpPath, w.Path); renameErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", renameErr)
	}

	return nil
}
