package git_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/repolens/repolens/internal/git"
	"github.com/repolens/repolens/internal/testutil"
)

func TestCheckout_SwitchesBranchAndTree(t *testing.T) {
	repo := testutil.NewTestRepo(t)
	base := repo.CommitFile("a.txt", "hello", "initial")
	repo.CreateBranch("feature", base)
	repo.Checkout("feature")
	repo.CommitFile("feature.txt", "extra", "on feature")
	repo.Checkout("master")

	r, err := git.Open(repo.Path())
	require.NoError(t, err)

	require.NoError(t, r.Checkout("feature"))

	worktrees, err := r.Worktrees()
	require.NoError(t, err)
	require.Equal(t, "feature", worktrees[0].Branch)

	data, err := os.ReadFile(filepath.Join(repo.Path(), "feature.txt"))
	require.NoError(t, err)
	require.Equal(t, "extra", string(data))
}

func TestCheckout_UnknownBranchLeavesHeadUnchanged(t *testing.T) {
	repo := testutil.NewTestRepo(t)
	repo.CommitFile("a.txt", "hello", "initial")

	r, err := git.Open(repo.Path())
	require.NoError(t, err)

	err = r.Checkout("does-not-exist")
	require.ErrorIs(t, err, git.ErrNotFound)

	worktrees, err := r.Worktrees()
	require.NoError(t, err)
	require.Equal(t, "master", worktrees[0].Branch)
}

func TestCheckout_RemoteTrackingNameIsNotLocal(t *testing.T) {
	repo := testutil.NewTestRepo(t)
	sha := repo.CommitFile("a.txt", "hello", "initial")
	repo.CreateRemoteTrackingRef("origin", "main", sha)

	r, err := git.Open(repo.Path())
	require.NoError(t, err)

	err = r.Checkout("origin/main")
	require.ErrorIs(t, err, git.ErrNotFound)
}
