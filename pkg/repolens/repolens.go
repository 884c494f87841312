// Package repolens provides the public API for inspecting a local git
// repository: branches, remotes, commit history, per-commit changes, file
// diffs, working-tree status, worktrees, and storage footprint.
//
// Every operation opens its own repository handle from the supplied path,
// performs one query, and releases the handle; no state is held between
// calls. Operations are safe to invoke concurrently against the same path.
//
// Basic usage:
//
//	branches, err := repolens.Branches("/path/to/repo")
//	info, err := repolens.RepoInfo("/path/to/repo")
package repolens

import (
	"github.com/repolens/repolens/internal/git"
	"github.com/repolens/repolens/internal/inspect"
	"github.com/repolens/repolens/internal/logging"
)

// Branch is one local or remote-tracking branch.
type Branch struct {
	Name      string `json:"name"`
	IsCurrent bool   `json:"isCurrent"`
	IsRemote  bool   `json:"isRemote"`
}

// Remote is one configured remote with a resolvable URL.
type Remote struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Commit is one commit reachable from HEAD. Date is the author timestamp in
// seconds since the epoch, as a decimal string.
type Commit struct {
	Hash    string   `json:"hash"`
	Author  string   `json:"author"`
	Date    string   `json:"date"`
	Message string   `json:"message"`
	Parents []string `json:"parents"`
}

// CommitChange is one path touched by a commit relative to its first parent.
type CommitChange struct {
	Path   string `json:"path"`
	Status string `json:"status"`
}

// FileDiff is the full content of one path before and after a commit.
type FileDiff struct {
	Original string `json:"original"`
	Modified string `json:"modified"`
}

// FileStatus is the working-tree classification of one path.
type FileStatus struct {
	FilePath string `json:"filePath"`
	Status   string `json:"status"`
}

// Worktree is one checkout associated with the repository. Branch is empty
// for linked worktrees.
type Worktree struct {
	Path   string `json:"path"`
	Branch string `json:"branch"`
}

// RepositoryInfo is the structural summary of a repository.
type RepositoryInfo struct {
	RepoPath              string `json:"repoPath"`
	GitDirPath            string `json:"gitDirPath"`
	WorktreePath          string `json:"worktreePath"`
	IsBare                bool   `json:"isBare"`
	TotalSizeBytes        uint64 `json:"totalSizeBytes"`
	WorktreeSizeBytes     uint64 `json:"worktreeSizeBytes"`
	GitMetadataSizeBytes  uint64 `json:"gitMetadataSizeBytes"`
	GitObjectsSizeBytes   uint64 `json:"gitObjectsSizeBytes"`
	GitPackfilesSizeBytes uint64 `json:"gitPackfilesSizeBytes"`
	GitRefsSizeBytes      uint64 `json:"gitRefsSizeBytes"`
	LFSEnabled            bool   `json:"lfsEnabled"`
	LFSObjectsSizeBytes   uint64 `json:"lfsObjectsSizeBytes"`
}

// Engine performs repository introspection. The zero value is usable and
// silent; use New with Options to attach a diagnostic logger.
type Engine struct {
	log logging.Logger
}

// Options configure an Engine.
type Options struct {
	// Logger receives per-operation diagnostics. Nil means no logging.
	Logger logging.Logger
}

// New creates an Engine with the given options.
func New(opts Options) *Engine {
	log := opts.Logger
	if log == nil {
		log = logging.Nop()
	}
	return &Engine{log: log}
}

// defaultEngine backs the package-level convenience functions.
var defaultEngine = New(Options{})

func (e *Engine) logger() logging.Logger {
	if e.log == nil {
		return logging.Nop()
	}
	return e.log
}

// Branches lists local branches (the checked-out one flagged current)
// followed by remote-tracking branches.
func (e *Engine) Branches(path string) ([]Branch, error) {
	e.logger().Debug("listing branches", "path", path)
	repo, err := git.Open(path)
	if err != nil {
		return nil, err
	}

	branches, err := repo.Branches()
	if err != nil {
		return nil, err
	}

	result := make([]Branch, 0, len(branches))
	for _, b := range branches {
		result = append(result, Branch{
			Name:      b.FriendlyName(),
			IsCurrent: b.IsCurrent,
			IsRemote:  b.IsRemote,
		})
	}
	return result, nil
}

// Remotes lists configured remotes that have a URL.
func (e *Engine) Remotes(path string) ([]Remote, error) {
	e.logger().Debug("listing remotes", "path", path)
	repo, err := git.Open(path)
	if err != nil {
		return nil, err
	}

	remotes, err := repo.Remotes()
	if err != nil {
		return nil, err
	}

	result := make([]Remote, 0, len(remotes))
	for _, r := range remotes {
		result = append(result, Remote{Name: r.Name, URL: r.URL})
	}
	return result, nil
}

// Commits walks ancestry from HEAD, most recent first, returning at most
// limit commits. A limit <= 0 means the default of 50.
func (e *Engine) Commits(path string, limit int) ([]Commit, error) {
	e.logger().Debug("listing commits", "path", path, "limit", limit)
	repo, err := git.Open(path)
	if err != nil {
		return nil, err
	}

	commits, err := repo.Commits(limit)
	if err != nil {
		return nil, err
	}

	result := make([]Commit, 0, len(commits))
	for _, c := range commits {
		result = append(result, Commit{
			Hash:    c.Hash,
			Author:  c.Author,
			Date:    c.Date,
			Message: c.Message,
			Parents: c.Parents,
		})
	}
	return result, nil
}

// CommitChanges lists every path touched by a commit relative to its first
// parent, or relative to an empty tree for a root commit.
func (e *Engine) CommitChanges(path, hash string) ([]CommitChange, error) {
	e.logger().Debug("listing commit changes", "path", path, "hash", hash)
	repo, err := git.Open(path)
	if err != nil {
		return nil, err
	}

	changes, err := repo.ChangesInCommit(hash)
	if err != nil {
		return nil, err
	}

	result := make([]CommitChange, 0, len(changes))
	for _, ch := range changes {
		result = append(result, CommitChange{Path: ch.Path, Status: string(ch.Status)})
	}
	return result, nil
}

// CommitFileDiff returns the content of one path on both sides of a commit's
// first-parent diff. A side on which the path does not exist is an empty
// string, not an error.
func (e *Engine) CommitFileDiff(path, hash, filePath string) (FileDiff, error) {
	e.logger().Debug("computing file diff", "path", path, "hash", hash, "file", filePath)
	repo, err := git.Open(path)
	if err != nil {
		return FileDiff{}, err
	}

	diff, err := repo.FileDiff(hash, filePath)
	if err != nil {
		return FileDiff{}, err
	}
	return FileDiff{Original: diff.Original, Modified: diff.Modified}, nil
}

// Status classifies every working-tree path against the index and HEAD.
func (e *Engine) Status(path string) ([]FileStatus, error) {
	e.logger().Debug("computing status", "path", path)
	repo, err := git.Open(path)
	if err != nil {
		return nil, err
	}

	statuses, err := repo.Status()
	if err != nil {
		return nil, err
	}

	result := make([]FileStatus, 0, len(statuses))
	for _, s := range statuses {
		result = append(result, FileStatus{FilePath: s.Path, Status: string(s.Status)})
	}
	return result, nil
}

// Worktrees lists the primary working tree followed by linked worktrees.
func (e *Engine) Worktrees(path string) ([]Worktree, error) {
	e.logger().Debug("listing worktrees", "path", path)
	repo, err := git.Open(path)
	if err != nil {
		return nil, err
	}

	worktrees, err := repo.Worktrees()
	if err != nil {
		return nil, err
	}

	result := make([]Worktree, 0, len(worktrees))
	for _, wt := range worktrees {
		result = append(result, Worktree{Path: wt.Path, Branch: wt.Branch})
	}
	return result, nil
}

// CheckoutBranch switches HEAD and the working tree to a named local branch.
func (e *Engine) CheckoutBranch(path, branch string) error {
	e.logger().Debug("checking out branch", "path", path, "branch", branch)
	repo, err := git.Open(path)
	if err != nil {
		return err
	}
	return repo.Checkout(branch)
}

// RepoInfo computes the structural summary of a repository, including its
// on-disk storage footprint and LFS state.
func (e *Engine) RepoInfo(path string) (RepositoryInfo, error) {
	e.logger().Debug("describing repository", "path", path)
	repo, err := git.Open(path)
	if err != nil {
		return RepositoryInfo{}, err
	}

	info := inspect.Describe(repo, path)
	return RepositoryInfo{
		RepoPath:              info.RepoPath,
		GitDirPath:            info.GitDirPath,
		WorktreePath:          info.WorktreePath,
		IsBare:                info.IsBare,
		TotalSizeBytes:        info.TotalSizeBytes,
		WorktreeSizeBytes:     info.WorktreeSizeBytes,
		GitMetadataSizeBytes:  info.MetadataSizeBytes,
		GitObjectsSizeBytes:   info.ObjectsSizeBytes,
		GitPackfilesSizeBytes: info.PackfileSizeBytes,
		GitRefsSizeBytes:      info.RefsSizeBytes,
		LFSEnabled:            info.LFSEnabled,
		LFSObjectsSizeBytes:   info.LFSObjectsBytes,
	}, nil
}

// Package-level convenience functions over a silent default Engine.

func Branches(path string) ([]Branch, error)  { return defaultEngine.Branches(path) }
func Remotes(path string) ([]Remote, error)   { return defaultEngine.Remotes(path) }
func Commits(path string, limit int) ([]Commit, error) {
	return defaultEngine.Commits(path, limit)
}
func CommitChanges(path, hash string) ([]CommitChange, error) {
	return defaultEngine.CommitChanges(path, hash)
}
func CommitFileDiff(path, hash, filePath string) (FileDiff, error) {
	return defaultEngine.CommitFileDiff(path, hash, filePath)
}
func Status(path string) ([]FileStatus, error) { return defaultEngine.Status(path) }
func Worktrees(path string) ([]Worktree, error) {
	return defaultEngine.Worktrees(path)
}
func CheckoutBranch(path, branch string) error {
	return defaultEngine.CheckoutBranch(path, branch)
}
func RepoInfo(path string) (RepositoryInfo, error) { return defaultEngine.RepoInfo(path) }
