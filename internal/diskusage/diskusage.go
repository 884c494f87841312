// Package diskusage sums on-disk file sizes under a directory tree.
//
// Traversal is best-effort: unreadable entries are skipped and contribute
// zero rather than failing the aggregation. This degraded-result contract is
// deliberate and part of the package's API.
package diskusage

import (
	"math"
	"os"
	"path/filepath"
)

// DirSize recursively sums the byte length of every regular file under dir.
// A direct child of dir whose name equals skipName is excluded; the exclusion
// does not apply below the top level. Symlinks are measured by their own link
// size and never followed. A missing or unreadable directory yields 0.
func DirSize(dir, skipName string) uint64 {
	var total uint64

	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0
	}

	for _, entry := range entries {
		if skipName != "" && entry.Name() == skipName {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		switch {
		case info.Mode()&os.ModeSymlink != 0:
			total = SaturatingAdd(total, uint64(info.Size()))
		case info.Mode().IsRegular():
			total = SaturatingAdd(total, uint64(info.Size()))
		case info.IsDir():
			total = SaturatingAdd(total, DirSize(filepath.Join(dir, entry.Name()), ""))
		}
	}

	return total
}

// SaturatingAdd returns a+b, clamped at the maximum uint64 value instead of
// wrapping around.
func SaturatingAdd(a, b uint64) uint64 {
	if sum := a + b; sum >= a {
		return sum
	}
	return math.MaxUint64
}
