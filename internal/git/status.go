package git

import (
	"fmt"
	"sort"

	gogit "github.com/go-git/go-git/v5"
)

func (r *GoGitRepository) Status() ([]FileStatus, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("getting worktree: %w", err)
	}

	status, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("getting worktree status: %w", err)
	}

	result := make([]FileStatus, 0, len(status))
	for path, s := range status {
		if s.Staging == gogit.Unmodified && s.Worktree == gogit.Unmodified {
			continue
		}
		result = append(result, FileStatus{Path: path, Status: classify(s)})
	}

	// go-git returns a map; sort for stable output.
	sort.Slice(result, func(i, j int) bool {
		return result[i].Path < result[j].Path
	})

	return result, nil
}

// classify maps index and working-tree flags to the status vocabulary.
// Precedence is significant: an entry matching several flags resolves to the
// earliest category in new > modified > deleted order.
func classify(s *gogit.FileStatus) WorkStatus {
	switch {
	case isNew(s.Staging) || isNew(s.Worktree):
		return StatusNew
	case s.Staging == gogit.Modified || s.Worktree == gogit.Modified:
		return StatusModified
	case s.Staging == gogit.Deleted || s.Worktree == gogit.Deleted:
		return StatusDeleted
	default:
		return StatusUnknown
	}
}

func isNew(c gogit.StatusCode) bool {
	return c == gogit.Added || c == gogit.Untracked
}
