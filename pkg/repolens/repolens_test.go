package repolens_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/repolens/repolens/internal/logging"
	"github.com/repolens/repolens/internal/testutil"
	"github.com/repolens/repolens/pkg/repolens"
)

func TestBranches(t *testing.T) {
	repo := testutil.NewTestRepo(t)
	sha := repo.CommitFile("a.txt", "hello", "initial")
	repo.CreateBranch("feature", sha)

	branches, err := repolens.Branches(repo.Path())
	require.NoError(t, err)
	require.Len(t, branches, 2)

	byName := map[string]repolens.Branch{}
	for _, b := range branches {
		byName[b.Name] = b
	}
	require.True(t, byName["master"].IsCurrent)
	require.False(t, byName["feature"].IsCurrent)
}

func TestRemotes(t *testing.T) {
	repo := testutil.NewTestRepo(t)
	repo.CommitFile("a.txt", "hello", "initial")
	repo.CreateRemote("origin", "https://example.com/r.git")

	remotes, err := repolens.Remotes(repo.Path())
	require.NoError(t, err)
	require.Equal(t, []repolens.Remote{{Name: "origin", URL: "https://example.com/r.git"}}, remotes)
}

func TestCommitsAndChangesAndDiff_Scenario(t *testing.T) {
	// Root commit adds a.txt = "hello"; second commit modifies it to "world".
	repo := testutil.NewTestRepo(t)
	repo.CommitFile("a.txt", "hello", "first")
	second := repo.CommitFile("a.txt", "world", "second")

	commits, err := repolens.Commits(repo.Path(), 0)
	require.NoError(t, err)
	require.Len(t, commits, 2)

	changes, err := repolens.CommitChanges(repo.Path(), second)
	require.NoError(t, err)
	require.Equal(t, []repolens.CommitChange{{Path: "a.txt", Status: "modified"}}, changes)

	diff, err := repolens.CommitFileDiff(repo.Path(), second, "a.txt")
	require.NoError(t, err)
	require.Equal(t, repolens.FileDiff{Original: "hello", Modified: "world"}, diff)
}

func TestStatus(t *testing.T) {
	repo := testutil.NewTestRepo(t)
	repo.CommitFile("a.txt", "hello", "initial")
	repo.WriteFile("fresh.txt", "untracked")

	statuses, err := repolens.Status(repo.Path())
	require.NoError(t, err)
	require.Equal(t, []repolens.FileStatus{{FilePath: "fresh.txt", Status: "new"}}, statuses)
}

func TestWorktrees(t *testing.T) {
	repo := testutil.NewTestRepo(t)
	repo.CommitFile("a.txt", "hello", "initial")

	worktrees, err := repolens.Worktrees(repo.Path())
	require.NoError(t, err)
	require.Equal(t, []repolens.Worktree{{Path: repo.Path(), Branch: "master"}}, worktrees)
}

func TestCheckoutBranch_UnknownFails(t *testing.T) {
	repo := testutil.NewTestRepo(t)
	repo.CommitFile("a.txt", "hello", "initial")

	err := repolens.CheckoutBranch(repo.Path(), "does-not-exist")
	require.Error(t, err)

	// HEAD unchanged.
	worktrees, err := repolens.Worktrees(repo.Path())
	require.NoError(t, err)
	require.Equal(t, "master", worktrees[0].Branch)
}

func TestRepoInfo_BareTotalsEqualMetadata(t *testing.T) {
	repo := testutil.NewBareTestRepo(t)

	info, err := repolens.RepoInfo(repo.Path())
	require.NoError(t, err)
	require.True(t, info.IsBare)
	require.Equal(t, uint64(0), info.WorktreeSizeBytes)
	require.Equal(t, info.GitMetadataSizeBytes, info.TotalSizeBytes)
	require.Equal(t, repo.Path(), info.RepoPath)
}

func TestRepoInfo_JSONFieldNames(t *testing.T) {
	repo := testutil.NewTestRepo(t)
	repo.CommitFile("a.txt", "hello", "initial")

	info, err := repolens.RepoInfo(repo.Path())
	require.NoError(t, err)

	data, err := json.Marshal(info)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	for _, key := range []string{
		"repoPath", "gitDirPath", "worktreePath", "isBare",
		"totalSizeBytes", "worktreeSizeBytes", "gitMetadataSizeBytes",
		"gitObjectsSizeBytes", "gitPackfilesSizeBytes", "gitRefsSizeBytes",
		"lfsEnabled", "lfsObjectsSizeBytes",
	} {
		require.Contains(t, decoded, key)
	}
}

func TestEngine_LoggerReceivesDiagnostics(t *testing.T) {
	repo := testutil.NewTestRepo(t)
	repo.CommitFile("a.txt", "hello", "initial")

	var buf bytes.Buffer
	engine := repolens.New(repolens.Options{Logger: logging.NewText(&buf, slog.LevelDebug)})

	_, err := engine.Branches(repo.Path())
	require.NoError(t, err)
	require.Contains(t, buf.String(), "listing branches")
}

func TestOperations_NotARepository(t *testing.T) {
	dir := t.TempDir()

	_, err := repolens.Branches(dir)
	require.Error(t, err)
	_, err = repolens.RepoInfo(dir)
	require.Error(t, err)
	_, err = repolens.Status(dir)
	require.Error(t, err)
}
