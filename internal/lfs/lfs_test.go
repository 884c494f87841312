package lfs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/repolens/repolens/internal/git"
	"github.com/repolens/repolens/internal/lfs"
)

func repoWithDirs(t *testing.T, hasFilterConfig bool) (*git.MockRepository, string, string) {
	t.Helper()
	worktree := t.TempDir()
	gitDir := t.TempDir()
	repo := &git.MockRepository{
		GitDirFunc:             func() string { return gitDir },
		WorktreeRootFunc:       func() string { return worktree },
		HasLFSFilterConfigFunc: func() bool { return hasFilterConfig },
	}
	return repo, worktree, gitDir
}

func TestEnabled_FilterConfig(t *testing.T) {
	repo, _, _ := repoWithDirs(t, true)
	require.True(t, lfs.Enabled(repo))
}

func TestEnabled_WorktreeAttributes(t *testing.T) {
	repo, worktree, _ := repoWithDirs(t, false)
	content := "*.bin filter=lfs diff=lfs merge=lfs -text\n"
	require.NoError(t, os.WriteFile(filepath.Join(worktree, ".gitattributes"), []byte(content), 0o644))

	require.True(t, lfs.Enabled(repo))
}

func TestEnabled_GitDirInfoAttributes(t *testing.T) {
	repo, _, gitDir := repoWithDirs(t, false)
	require.NoError(t, os.MkdirAll(filepath.Join(gitDir, "info"), 0o755))
	content := "*.iso filter=lfs\n"
	require.NoError(t, os.WriteFile(filepath.Join(gitDir, "info", "attributes"), []byte(content), 0o644))

	require.True(t, lfs.Enabled(repo))
}

func TestEnabled_AttributesWithoutMarker(t *testing.T) {
	repo, worktree, _ := repoWithDirs(t, false)
	require.NoError(t, os.WriteFile(filepath.Join(worktree, ".gitattributes"), []byte("*.txt text\n"), 0o644))

	require.False(t, lfs.Enabled(repo))
}

func TestEnabled_NothingConfigured(t *testing.T) {
	repo, _, _ := repoWithDirs(t, false)
	require.False(t, lfs.Enabled(repo))
}

func TestEnabled_BareRepositorySkipsWorktreeScan(t *testing.T) {
	gitDir := t.TempDir()
	repo := &git.MockRepository{
		GitDirFunc:       func() string { return gitDir },
		WorktreeRootFunc: func() string { return "" },
	}
	require.False(t, lfs.Enabled(repo))
}
