// Package inspect aggregates the structural summary of a repository: paths,
// bareness, on-disk storage footprint, and LFS state.
package inspect

import (
	"path/filepath"

	"github.com/repolens/repolens/internal/diskusage"
	"github.com/repolens/repolens/internal/git"
	"github.com/repolens/repolens/internal/lfs"
)

// Info is the structural summary of one repository. All size fields are
// byte counts; TotalSizeBytes is the saturating sum of worktree and metadata
// sizes.
type Info struct {
	RepoPath          string
	GitDirPath        string
	WorktreePath      string
	IsBare            bool
	TotalSizeBytes    uint64
	WorktreeSizeBytes uint64
	MetadataSizeBytes uint64
	ObjectsSizeBytes  uint64
	PackfileSizeBytes uint64
	RefsSizeBytes     uint64
	LFSEnabled        bool
	LFSObjectsBytes   uint64
}

// Describe computes the structural summary for an open repository.
// requestedPath is echoed back verbatim as RepoPath.
func Describe(repo git.Repository, requestedPath string) Info {
	gitDir := repo.GitDir()
	worktree := repo.WorktreeRoot()
	bare := repo.IsBare()

	worktreePath := worktree
	if bare {
		worktreePath = gitDir
	}

	var worktreeSize uint64
	if !bare {
		worktreeSize = diskusage.DirSize(worktree, ".git")
	}
	metadataSize := diskusage.DirSize(gitDir, "")

	return Info{
		RepoPath:          requestedPath,
		GitDirPath:        gitDir,
		WorktreePath:      worktreePath,
		IsBare:            bare,
		TotalSizeBytes:    diskusage.SaturatingAdd(worktreeSize, metadataSize),
		WorktreeSizeBytes: worktreeSize,
		MetadataSizeBytes: metadataSize,
		ObjectsSizeBytes:  diskusage.DirSize(filepath.Join(gitDir, "objects"), ""),
		PackfileSizeBytes: diskusage.DirSize(filepath.Join(gitDir, "objects", "pack"), ""),
		RefsSizeBytes:     diskusage.DirSize(filepath.Join(gitDir, "refs"), ""),
		LFSEnabled:        lfs.Enabled(repo),
		LFSObjectsBytes:   diskusage.DirSize(filepath.Join(gitDir, "lfs", "objects"), ""),
	}
}
