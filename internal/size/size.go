// Package size computes on-disk footprints for removal previews.
package size

import (
	"io/fs"
	"path/filepath"
)

// Of returns the size of a single path in bytes. Directories are summed
// recursively. Unreadable or vanished entries contribute zero.
func Of(path string) int64 {
	var total int64
	_ = filepath.WalkDir(path, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			// Permission denied or entry vanished mid-walk; skip, don't fail.
			return nil
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		total += info.Size()
		return nil
	})
	return total
}

// TotalKB returns the cumulative size of all paths in whole kilobytes,
// rounding down. Missing paths contribute zero; an empty input returns 0.
func TotalKB(paths []string) int64 {
	var bytes int64
	for _, p := range paths {
		bytes += Of(p)
	}
	return bytes / 1024
}
