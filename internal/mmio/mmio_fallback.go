//go:build !unix && !windows

package mmio

import "os"

// Map reads the entire file when mmap is not available on the platform.
func Map(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, func() error { return nil }, err
	}
	return data, func() error { return nil }, nil
}
