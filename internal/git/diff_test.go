package git_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/repolens/repolens/internal/git"
	"github.com/repolens/repolens/internal/testutil"
)

func TestChangesInCommit_RootCommitAllAdded(t *testing.T) {
	repo := testutil.NewTestRepo(t)
	repo.WriteFile("a.txt", "hello")
	repo.WriteFile("b.txt", "world")
	repo.Stage("a.txt")
	repo.Stage("b.txt")
	sha := repo.Commit("initial")

	r, err := git.Open(repo.Path())
	require.NoError(t, err)

	changes, err := r.ChangesInCommit(sha)
	require.NoError(t, err)
	require.Len(t, changes, 2)
	for _, ch := range changes {
		require.Equal(t, git.ChangeAdded, ch.Status)
	}
}

func TestChangesInCommit_Modified(t *testing.T) {
	repo := testutil.NewTestRepo(t)
	repo.CommitFile("a.txt", "hello", "first")
	sha := repo.CommitFile("a.txt", "world", "second")

	r, err := git.Open(repo.Path())
	require.NoError(t, err)

	changes, err := r.ChangesInCommit(sha)
	require.NoError(t, err)
	require.Equal(t, []git.CommitChange{{Path: "a.txt", Status: git.ChangeModified}}, changes)
}

func TestChangesInCommit_DeletedUsesOldPath(t *testing.T) {
	repo := testutil.NewTestRepo(t)
	repo.CommitFile("a.txt", "hello", "first")
	sha := repo.CommitRemoval("a.txt", "remove a")

	r, err := git.Open(repo.Path())
	require.NoError(t, err)

	changes, err := r.ChangesInCommit(sha)
	require.NoError(t, err)
	require.Equal(t, []git.CommitChange{{Path: "a.txt", Status: git.ChangeDeleted}}, changes)
}

func TestChangesInCommit_Renamed(t *testing.T) {
	repo := testutil.NewTestRepo(t)
	content := strings.Repeat("some stable content\n", 20)
	repo.CommitFile("old.txt", content, "first")

	repo.RemoveFile("old.txt")
	repo.WriteFile("new.txt", content)
	repo.Stage("old.txt")
	repo.Stage("new.txt")
	sha := repo.Commit("rename")

	r, err := git.Open(repo.Path())
	require.NoError(t, err)

	changes, err := r.ChangesInCommit(sha)
	require.NoError(t, err)
	require.Equal(t, []git.CommitChange{{Path: "new.txt", Status: git.ChangeRenamed}}, changes)
}

func TestChangesInCommit_MalformedHash(t *testing.T) {
	repo := testutil.NewTestRepo(t)
	repo.CommitFile("a.txt", "hello", "first")

	r, err := git.Open(repo.Path())
	require.NoError(t, err)

	_, err = r.ChangesInCommit("not-a-hash")
	require.ErrorIs(t, err, git.ErrMalformedHash)
}

func TestChangesInCommit_UnknownHash(t *testing.T) {
	repo := testutil.NewTestRepo(t)
	repo.CommitFile("a.txt", "hello", "first")

	r, err := git.Open(repo.Path())
	require.NoError(t, err)

	_, err = r.ChangesInCommit("0123456789abcdef0123456789abcdef01234567")
	require.ErrorIs(t, err, git.ErrNotFound)
}

func TestFileDiff_ModifiedRoundTrip(t *testing.T) {
	repo := testutil.NewTestRepo(t)
	repo.CommitFile("a.txt", "hello", "first")
	sha := repo.CommitFile("a.txt", "world", "second")

	r, err := git.Open(repo.Path())
	require.NoError(t, err)

	diff, err := r.FileDiff(sha, "a.txt")
	require.NoError(t, err)
	require.Equal(t, "hello", diff.Original)
	require.Equal(t, "world", diff.Modified)
}

func TestFileDiff_AddedHasEmptyOriginal(t *testing.T) {
	repo := testutil.NewTestRepo(t)
	repo.CommitFile("a.txt", "hello", "first")
	sha := repo.CommitFile("b.txt", "fresh", "add b")

	r, err := git.Open(repo.Path())
	require.NoError(t, err)

	diff, err := r.FileDiff(sha, "b.txt")
	require.NoError(t, err)
	require.Empty(t, diff.Original)
	require.Equal(t, "fresh", diff.Modified)
}

func TestFileDiff_RootCommitHasEmptyOriginal(t *testing.T) {
	repo := testutil.NewTestRepo(t)
	sha := repo.CommitFile("a.txt", "hello", "initial")

	r, err := git.Open(repo.Path())
	require.NoError(t, err)

	diff, err := r.FileDiff(sha, "a.txt")
	require.NoError(t, err)
	require.Empty(t, diff.Original)
	require.Equal(t, "hello", diff.Modified)
}

func TestFileDiff_DeletedHasEmptyModified(t *testing.T) {
	repo := testutil.NewTestRepo(t)
	repo.CommitFile("a.txt", "hello", "first")
	sha := repo.CommitRemoval("a.txt", "remove a")

	r, err := git.Open(repo.Path())
	require.NoError(t, err)

	diff, err := r.FileDiff(sha, "a.txt")
	require.NoError(t, err)
	require.Equal(t, "hello", diff.Original)
	require.Empty(t, diff.Modified)
}

func TestFileDiff_UntouchedPathIsEmptyNotError(t *testing.T) {
	repo := testutil.NewTestRepo(t)
	repo.CommitFile("a.txt", "hello", "first")
	sha := repo.CommitFile("b.txt", "other", "add b")

	r, err := git.Open(repo.Path())
	require.NoError(t, err)

	diff, err := r.FileDiff(sha, "a.txt")
	require.NoError(t, err)
	require.Empty(t, diff.Original)
	require.Empty(t, diff.Modified)
}

func TestFileDiff_InvalidHashStillFails(t *testing.T) {
	repo := testutil.NewTestRepo(t)
	repo.CommitFile("a.txt", "hello", "first")

	r, err := git.Open(repo.Path())
	require.NoError(t, err)

	_, err = r.FileDiff("zzzz", "a.txt")
	require.ErrorIs(t, err, git.ErrMalformedHash)

	_, err = r.FileDiff("0123456789abcdef0123456789abcdef01234567", "a.txt")
	require.ErrorIs(t, err, git.ErrNotFound)
}
