package git

import (
	"os"
	"path/filepath"
	"strings"
)

func (r *GoGitRepository) Worktrees() ([]Worktree, error) {
	primary := Worktree{Path: r.workDir}
	if r.bare {
		primary.Path = r.gitDir
	}
	if ref, err := r.repo.Head(); err == nil {
		primary.Branch = ref.Name().Short()
	}

	result := []Worktree{primary}
	result = append(result, r.linkedWorktrees()...)
	return result, nil
}

// linkedWorktrees enumerates $GIT_DIR/worktrees/<name>/gitdir entries. Each
// gitdir file points at the worktree's .git gitfile; the worktree root is its
// parent directory. The current branch of a linked worktree is not resolved
// and is reported as an empty string. Unreadable entries are skipped.
func (r *GoGitRepository) linkedWorktrees() []Worktree {
	dir := filepath.Join(r.gitDir, "worktrees")
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var worktrees []Worktree
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name(), "gitdir"))
		if err != nil {
			continue
		}
		gitFile := strings.TrimSpace(string(data))
		if gitFile == "" {
			continue
		}
		worktrees = append(worktrees, Worktree{Path: filepath.Dir(gitFile)})
	}

	return worktrees
}
