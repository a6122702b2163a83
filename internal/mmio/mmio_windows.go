//go:build windows

package mmio

import "os"

// Map reads the entire file. A real CreateFileMapping/MapViewOfFile-backed
// implementation is straightforward to add but not yet wired here.
func Map(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, func() error { return nil }, err
	}
	return data, func() error { return nil }, nil
}
