package git

// Repository provides read-only introspection of a single on-disk git
// repository, plus branch checkout. This is the key abstraction point for
// testing and backend swapping. Implementations are owned by exactly one
// operation: open, query, release.
type Repository interface {
	// GitDir returns the path to the repository metadata (.git) directory.
	GitDir() string

	// WorktreeRoot returns the working tree root, or "" for a bare repository.
	WorktreeRoot() string

	// IsBare returns true if the repository has no working tree.
	IsBare() bool

	// Branches returns local branches (the checked-out one flagged current)
	// followed by remote-tracking branches, in enumeration order.
	Branches() ([]Branch, error)

	// Remotes returns one entry per configured remote with a non-empty URL.
	Remotes() ([]Remote, error)

	// Commits walks ancestry from HEAD, most recent first, returning at most
	// limit commits. A limit <= 0 means DefaultCommitLimit.
	Commits(limit int) ([]Commit, error)

	// ChangesInCommit diffs a commit against its first parent (or an empty
	// tree for a root commit) and reports every changed path once.
	ChangesInCommit(hash string) ([]CommitChange, error)

	// FileDiff returns the full content of one path on both sides of the
	// commit's first-parent diff. A side on which the path does not exist
	// yields an empty string, not an error.
	FileDiff(hash, path string) (FileDiff, error)

	// Status classifies every working-tree path against the index and HEAD.
	Status() ([]FileStatus, error)

	// Worktrees lists the primary working tree followed by linked worktrees.
	Worktrees() ([]Worktree, error)

	// Checkout switches HEAD and the working tree to a named local branch.
	Checkout(branch string) error

	// HasLFSFilterConfig reports whether repository configuration defines an
	// LFS content filter driver.
	HasLFSFilterConfig() bool
}
