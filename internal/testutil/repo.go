// Package testutil provides helpers for creating temporary git repositories
// with controlled history for testing.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	gogitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// TestRepo is a builder for creating temporary git repositories with
// controlled commit history, branches, remotes, and worktree fixtures.
type TestRepo struct {
	t    testing.TB
	path string
	repo *gogit.Repository
	time time.Time
}

// NewTestRepo creates and initializes a new git repository in a temporary directory.
func NewTestRepo(t testing.TB) *TestRepo {
	t.Helper()
	dir := t.TempDir()

	repo, err := gogit.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("failed to init repo: %v", err)
	}

	return &TestRepo{
		t:    t,
		path: dir,
		repo: repo,
		time: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

// NewBareTestRepo creates a bare repository in a temporary directory.
func NewBareTestRepo(t testing.TB) *TestRepo {
	t.Helper()
	dir := t.TempDir()

	repo, err := gogit.PlainInit(dir, true)
	if err != nil {
		t.Fatalf("failed to init bare repo: %v", err)
	}

	return &TestRepo{
		t:    t,
		path: dir,
		repo: repo,
		time: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

// Path returns the repository root directory.
func (r *TestRepo) Path() string {
	return r.path
}

// WriteFile writes a file under the repository root without staging it.
func (r *TestRepo) WriteFile(name, content string) {
	r.t.Helper()
	path := filepath.Join(r.path, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		r.t.Fatalf("creating directories for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		r.t.Fatalf("writing %s: %v", name, err)
	}
}

// RemoveFile deletes a file under the repository root.
func (r *TestRepo) RemoveFile(name string) {
	r.t.Helper()
	if err := os.Remove(filepath.Join(r.path, name)); err != nil {
		r.t.Fatalf("removing %s: %v", name, err)
	}
}

// Symlink creates a symbolic link under the repository root.
func (r *TestRepo) Symlink(target, name string) {
	r.t.Helper()
	if err := os.Symlink(target, filepath.Join(r.path, name)); err != nil {
		r.t.Fatalf("creating symlink %s: %v", name, err)
	}
}

// Stage adds a path to the index.
func (r *TestRepo) Stage(name string) {
	r.t.Helper()
	wt, err := r.repo.Worktree()
	if err != nil {
		r.t.Fatalf("getting worktree: %v", err)
	}
	if _, err := wt.Add(name); err != nil {
		r.t.Fatalf("staging %s: %v", name, err)
	}
}

// Commit commits whatever is currently staged. Returns the commit SHA.
func (r *TestRepo) Commit(message string) string {
	r.t.Helper()
	r.time = r.time.Add(time.Minute)

	wt, err := r.repo.Worktree()
	if err != nil {
		r.t.Fatalf("getting worktree: %v", err)
	}

	hash, err := wt.Commit(message, &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  "Test",
			Email: "test@example.com",
			When:  r.time,
		},
	})
	if err != nil {
		r.t.Fatalf("committing: %v", err)
	}

	return hash.String()
}

// CommitFile writes a file with the given content, stages it, and commits.
// Returns the commit SHA.
func (r *TestRepo) CommitFile(name, content, message string) string {
	r.t.Helper()
	r.WriteFile(name, content)
	r.Stage(name)
	return r.Commit(message)
}

// CommitRemoval stages a deletion and commits it. Returns the commit SHA.
func (r *TestRepo) CommitRemoval(name, message string) string {
	r.t.Helper()
	r.RemoveFile(name)
	r.Stage(name)
	return r.Commit(message)
}

// CreateBranch creates a new branch pointing at the given SHA.
func (r *TestRepo) CreateBranch(name, sha string) {
	r.t.Helper()

	ref := plumbing.NewReferenceFromStrings("refs/heads/"+name, sha)
	if err := r.repo.Storer.SetReference(ref); err != nil {
		r.t.Fatalf("creating branch %s: %v", name, err)
	}

	// Store branch config so go-git tracks it.
	cfg, err := r.repo.Config()
	if err != nil {
		r.t.Fatalf("reading config: %v", err)
	}
	cfg.Branches[name] = &gogitconfig.Branch{
		Name:   name,
		Remote: "",
		Merge:  plumbing.ReferenceName("refs/heads/" + name),
	}
	if err := r.repo.SetConfig(cfg); err != nil {
		r.t.Fatalf("saving config: %v", err)
	}
}

// Checkout switches HEAD to the given branch.
func (r *TestRepo) Checkout(branch string) {
	r.t.Helper()
	wt, err := r.repo.Worktree()
	if err != nil {
		r.t.Fatalf("getting worktree: %v", err)
	}

	err = wt.Checkout(&gogit.CheckoutOptions{
		Branch: plumbing.NewBranchReferenceName(branch),
	})
	if err != nil {
		r.t.Fatalf("checking out %s: %v", branch, err)
	}
}

// CreateRemote configures a remote with the given URL.
func (r *TestRepo) CreateRemote(name, url string) {
	r.t.Helper()
	_, err := r.repo.CreateRemote(&gogitconfig.RemoteConfig{
		Name: name,
		URLs: []string{url},
	})
	if err != nil {
		r.t.Fatalf("creating remote %s: %v", name, err)
	}
}

// CreateRemoteTrackingRef creates a remote-tracking ref pointing at the given SHA.
func (r *TestRepo) CreateRemoteTrackingRef(remote, branch, sha string) {
	r.t.Helper()
	ref := plumbing.NewReferenceFromStrings("refs/remotes/"+remote+"/"+branch, sha)
	if err := r.repo.Storer.SetReference(ref); err != nil {
		r.t.Fatalf("creating remote-tracking ref %s/%s: %v", remote, branch, err)
	}
}

// SetConfigOption sets a raw option in the repository's local config,
// e.g. SetConfigOption("filter", "lfs", "clean", "git-lfs clean -- %f").
func (r *TestRepo) SetConfigOption(section, subsection, key, value string) {
	r.t.Helper()
	cfg, err := r.repo.Config()
	if err != nil {
		r.t.Fatalf("reading config: %v", err)
	}
	if subsection == "" {
		cfg.Raw.Section(section).SetOption(key, value)
	} else {
		cfg.Raw.Section(section).Subsection(subsection).SetOption(key, value)
	}
	if err := r.repo.SetConfig(cfg); err != nil {
		r.t.Fatalf("saving config: %v", err)
	}
}

// GitDir returns the path to the repository's metadata directory.
func (r *TestRepo) GitDir() string {
	if r.isBare() {
		return r.path
	}
	return filepath.Join(r.path, ".git")
}

// WriteGitDirFile writes a file under the metadata directory, creating parent
// directories as needed. Used for info/attributes and worktree fixtures.
func (r *TestRepo) WriteGitDirFile(name, content string) {
	r.t.Helper()
	path := filepath.Join(r.GitDir(), name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		r.t.Fatalf("creating directories for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		r.t.Fatalf("writing %s: %v", name, err)
	}
}

// AddLinkedWorktree fabricates the on-disk layout of a linked worktree: a
// checkout directory with a .git gitfile and the matching
// worktrees/<name>/gitdir entry in the metadata directory. Returns the
// worktree path.
func (r *TestRepo) AddLinkedWorktree(name string) string {
	r.t.Helper()

	wtPath := filepath.Join(r.t.TempDir(), name)
	if err := os.MkdirAll(wtPath, 0o755); err != nil {
		r.t.Fatalf("creating worktree dir: %v", err)
	}

	adminDir := filepath.Join(r.GitDir(), "worktrees", name)
	gitFile := filepath.Join(wtPath, ".git")

	if err := os.WriteFile(gitFile, []byte("gitdir: "+adminDir+"\n"), 0o644); err != nil {
		r.t.Fatalf("writing worktree gitfile: %v", err)
	}
	r.WriteGitDirFile(filepath.Join("worktrees", name, "gitdir"), gitFile+"\n")

	return wtPath
}

// HeadSha returns the current HEAD commit SHA.
func (r *TestRepo) HeadSha() string {
	r.t.Helper()
	head, err := r.repo.Head()
	if err != nil {
		r.t.Fatalf("getting HEAD: %v", err)
	}
	return head.Hash().String()
}

func (r *TestRepo) isBare() bool {
	_, err := r.repo.Worktree()
	return err == gogit.ErrIsBareRepository
}
