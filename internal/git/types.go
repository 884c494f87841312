// Package git provides read-only structural introspection of a local git
// repository. It defines concrete entity types (Branch, Remote, Commit and
// friends), a Repository interface, and a go-git backed implementation.
package git

import "strings"

const (
	localBranchPrefix          = "refs/heads/"
	remoteTrackingBranchPrefix = "refs/remotes/"
)

// DefaultCommitLimit caps the commit graph walk when no explicit limit is given.
const DefaultCommitLimit = 50

// ReferenceName represents a git reference with canonical and friendly forms.
type ReferenceName struct {
	Canonical string // e.g., "refs/heads/main"
	Friendly  string // e.g., "main" or "origin/main"
}

// NewReferenceName creates a ReferenceName from a canonical ref path.
func NewReferenceName(canonical string) ReferenceName {
	friendly := canonical
	switch {
	case strings.HasPrefix(canonical, localBranchPrefix):
		friendly = canonical[len(localBranchPrefix):]
	case strings.HasPrefix(canonical, remoteTrackingBranchPrefix):
		friendly = canonical[len(remoteTrackingBranchPrefix):]
	}
	return ReferenceName{Canonical: canonical, Friendly: friendly}
}

// IsBranch returns true if this reference is a local branch.
func (r ReferenceName) IsBranch() bool {
	return strings.HasPrefix(r.Canonical, localBranchPrefix)
}

// IsRemoteBranch returns true if this reference is a remote tracking branch.
func (r ReferenceName) IsRemoteBranch() bool {
	return strings.HasPrefix(r.Canonical, remoteTrackingBranchPrefix)
}

// Branch represents a local or remote-tracking branch. Local and remote
// branches share this shape; (Name, IsRemote) is unique within one listing.
type Branch struct {
	Name      ReferenceName
	IsCurrent bool
	IsRemote  bool
}

// FriendlyName returns the friendly name of the branch.
func (b Branch) FriendlyName() string {
	return b.Name.Friendly
}

// Remote represents a configured remote with a resolvable URL.
type Remote struct {
	Name string
	URL  string
}

// Commit represents a git commit. Date is the author timestamp in seconds
// since the epoch, as a decimal string; Parents preserves recorded parent
// order, first parent first.
type Commit struct {
	Hash    string
	Author  string
	Date    string
	Message string
	Parents []string
}

// IsMerge returns true if the commit has more than one parent.
func (c Commit) IsMerge() bool {
	return len(c.Parents) > 1
}

// ShortHash returns the first 7 characters of the hash.
func (c Commit) ShortHash() string {
	if len(c.Hash) >= 7 {
		return c.Hash[:7]
	}
	return c.Hash
}

// ChangeStatus classifies one changed path in a commit-to-parent diff.
type ChangeStatus string

const (
	ChangeAdded      ChangeStatus = "added"
	ChangeDeleted    ChangeStatus = "deleted"
	ChangeModified   ChangeStatus = "modified"
	ChangeRenamed    ChangeStatus = "renamed"
	ChangeCopied     ChangeStatus = "copied"
	ChangeTypechange ChangeStatus = "typechange"
	ChangeUnknown    ChangeStatus = "unknown"
)

// CommitChange is one path touched by a commit relative to its first parent.
type CommitChange struct {
	Path   string
	Status ChangeStatus
}

// FileDiff holds the full content of one path before and after a commit.
// Either side is empty if the path did not exist on that side.
type FileDiff struct {
	Original string
	Modified string
}

// WorkStatus classifies a working-tree path against the index and HEAD.
type WorkStatus string

const (
	StatusNew      WorkStatus = "new"
	StatusModified WorkStatus = "modified"
	StatusDeleted  WorkStatus = "deleted"
	StatusUnknown  WorkStatus = "unknown"
)

// FileStatus is the working-tree classification of a single path.
type FileStatus struct {
	Path   string
	Status WorkStatus
}

// Worktree is one filesystem checkout associated with the repository.
// Branch is empty when it cannot be determined; linked worktrees always
// report an empty branch.
type Worktree struct {
	Path   string
	Branch string
}
