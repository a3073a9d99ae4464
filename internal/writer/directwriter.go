package writer

import (
	"fmt"
	"os"
)

// DirectWriter truncates and rewrites the destination path in place. A crash
// or error mid-write can leave a partial file, so it is only suitable for
// offline tooling whose outputs can be regenerated.
type DirectWriter struct {
	Path string
}

// WriteImage overwrites the configured path with buf.
func (w *DirectWriter) WriteImage(buf []byte) error {
	f, err := os.OpenFile(w.Path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("open destination: %w", err)
	}
	if _, err := f.Write(buf); err != nil {
		_ = f.Close()
		return fmt.Errorf("write destination: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close destination: %w", err)
	}
	return nil
}
