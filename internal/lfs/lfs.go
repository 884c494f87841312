// Package lfs heuristically detects whether git large-file storage is active
// for a repository. Detection is advisory: any read failure is treated as
// "not found", never as an error.
package lfs

import (
	"os"
	"path/filepath"
	"strings"
)

// filterMarker is the attribute-file marker configured by `git lfs track`.
const filterMarker = "filter=lfs"

// Repository is the subset of repository state the detector needs.
type Repository interface {
	GitDir() string
	WorktreeRoot() string
	HasLFSFilterConfig() bool
}

// Enabled reports whether LFS is active: either repository configuration
// defines an LFS filter driver, or the working tree's .gitattributes or the
// metadata directory's info/attributes contains the filter marker.
func Enabled(repo Repository) bool {
	if repo.HasLFSFilterConfig() {
		return true
	}
	if root := repo.WorktreeRoot(); root != "" {
		if containsFilterMarker(filepath.Join(root, ".gitattributes")) {
			return true
		}
	}
	return containsFilterMarker(filepath.Join(repo.GitDir(), "info", "attributes"))
}

func containsFilterMarker(path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return strings.Contains(string(data), filterMarker)
}
