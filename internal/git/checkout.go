package git

import (
	"errors"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// Checkout updates the working tree to the named local branch's commit and
// repoints HEAD at it. The tree is not pre-checked for local modifications;
// conflict behavior is whatever the underlying checkout does by default.
func (r *GoGitRepository) Checkout(branch string) error {
	refName := plumbing.NewBranchReferenceName(branch)
	if _, err := r.repo.Reference(refName, false); err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return fmt.Errorf("branch %q: %w", branch, ErrNotFound)
		}
		return fmt.Errorf("resolving branch %q: %w", branch, err)
	}

	wt, err := r.repo.Worktree()
	if err != nil {
		return fmt.Errorf("getting worktree: %w", err)
	}

	if err := wt.Checkout(&gogit.CheckoutOptions{Branch: refName}); err != nil {
		return fmt.Errorf("checking out %q: %w", branch, err)
	}

	return nil
}
