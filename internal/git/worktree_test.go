package git_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/repolens/repolens/internal/git"
	"github.com/repolens/repolens/internal/testutil"
)

func TestWorktrees_PrimaryOnly(t *testing.T) {
	repo := testutil.NewTestRepo(t)
	repo.CommitFile("a.txt", "hello", "initial")

	r, err := git.Open(repo.Path())
	require.NoError(t, err)

	worktrees, err := r.Worktrees()
	require.NoError(t, err)
	require.Equal(t, []git.Worktree{{Path: repo.Path(), Branch: "master"}}, worktrees)
}

func TestWorktrees_UnbornHeadHasEmptyBranch(t *testing.T) {
	repo := testutil.NewTestRepo(t)

	r, err := git.Open(repo.Path())
	require.NoError(t, err)

	worktrees, err := r.Worktrees()
	require.NoError(t, err)
	require.Len(t, worktrees, 1)
	require.Empty(t, worktrees[0].Branch)
}

func TestWorktrees_BarePrimaryIsGitDir(t *testing.T) {
	repo := testutil.NewBareTestRepo(t)

	r, err := git.Open(repo.Path())
	require.NoError(t, err)

	worktrees, err := r.Worktrees()
	require.NoError(t, err)
	require.Len(t, worktrees, 1)
	require.Equal(t, repo.Path(), worktrees[0].Path)
}

func TestWorktrees_IncludesLinked(t *testing.T) {
	repo := testutil.NewTestRepo(t)
	repo.CommitFile("a.txt", "hello", "initial")
	linked := repo.AddLinkedWorktree("wt1")

	r, err := git.Open(repo.Path())
	require.NoError(t, err)

	worktrees, err := r.Worktrees()
	require.NoError(t, err)
	require.Len(t, worktrees, 2)

	// Primary first, linked after with an empty branch name.
	require.Equal(t, repo.Path(), worktrees[0].Path)
	require.Equal(t, "master", worktrees[0].Branch)
	require.Equal(t, linked, worktrees[1].Path)
	require.Empty(t, worktrees[1].Branch)
}
