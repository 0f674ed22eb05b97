package sidecar

import (
	"fmt"
	"os"
	"path/filepath"
)

// Discover lists the sidecar files directly inside dir, identified by the
// given extension (including the leading dot). Subdirectories are not
// descended into and entries with any other extension are silently excluded.
// The order follows the underlying directory listing; callers must not rely
// on it.
func Discover(dir, extension string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if filepath.Ext(entry.Name()) != extension {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	return paths, nil
}
