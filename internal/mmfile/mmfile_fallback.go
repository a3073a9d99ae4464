//go:build !unix

// Package mmfile provides platform-specific helpers for reading image files
// into memory. Patching rewrites whole files, so the mapping is always
// read-only; mutation happens on a separate output buffer.
package mmfile

import "os"

// Map reads the entire file when mmap is not available.
func Map(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, func() error { return nil }, err
	}
	return data, func() error { return nil }, nil
}
