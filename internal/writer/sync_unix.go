//go:build linux || freebsd

package writer

import (
	"os"

	"golang.org/x/sys/unix"
)

// datasync flushes file contents without forcing a metadata update.
// fdatasync provides sufficient guarantees ahead of a rename.
func datasync(f *os.File) error {
	return unix.Fdatasync(int(f.Fd()))
}
