package git

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/filemode"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/utils/merkletrie"
)

func (r *GoGitRepository) ChangesInCommit(hash string) ([]CommitChange, error) {
	changes, err := r.firstParentDiff(hash)
	if err != nil {
		return nil, err
	}

	result := make([]CommitChange, 0, len(changes))
	for _, ch := range changes {
		status, err := changeStatus(ch)
		if err != nil {
			return nil, fmt.Errorf("classifying change: %w", err)
		}

		path := ch.To.Name
		if path == "" {
			path = ch.From.Name
		}

		result = append(result, CommitChange{Path: path, Status: status})
	}

	return result, nil
}

func (r *GoGitRepository) FileDiff(hash, path string) (FileDiff, error) {
	changes, err := r.firstParentDiff(hash)
	if err != nil {
		return FileDiff{}, err
	}

	// Restrict to the single given path. Old and new side are resolved
	// independently; they differ on rename.
	for _, ch := range changes {
		if ch.From.Name != path && ch.To.Name != path {
			continue
		}

		from, to, err := ch.Files()
		if err != nil {
			return FileDiff{}, fmt.Errorf("resolving diff sides for %s: %w", path, err)
		}

		var diff FileDiff
		if from != nil {
			content, err := from.Contents()
			if err != nil {
				return FileDiff{}, fmt.Errorf("reading original content of %s: %w", ch.From.Name, err)
			}
			diff.Original = strings.ToValidUTF8(content, "�")
		}
		if to != nil {
			content, err := to.Contents()
			if err != nil {
				return FileDiff{}, fmt.Errorf("reading modified content of %s: %w", ch.To.Name, err)
			}
			diff.Modified = strings.ToValidUTF8(content, "�")
		}

		return diff, nil
	}

	// Path untouched by this commit: both sides empty, not an error.
	return FileDiff{}, nil
}

// firstParentDiff diffs a commit's tree against its first parent's tree, or
// against an empty tree for a root commit.
func (r *GoGitRepository) firstParentDiff(hash string) (object.Changes, error) {
	if !plumbing.IsHash(hash) {
		return nil, fmt.Errorf("commit id %q: %w", hash, ErrMalformedHash)
	}

	commit, err := r.repo.CommitObject(plumbing.NewHash(hash))
	if err != nil {
		if errors.Is(err, plumbing.ErrObjectNotFound) {
			return nil, fmt.Errorf("commit %s: %w", hash, ErrNotFound)
		}
		return nil, fmt.Errorf("loading commit %s: %w", hash, err)
	}

	currentTree, err := commit.Tree()
	if err != nil {
		return nil, fmt.Errorf("loading tree of %s: %w", hash, err)
	}

	var parentTree *object.Tree
	if commit.NumParents() > 0 {
		parent, err := commit.Parent(0)
		if err != nil {
			return nil, fmt.Errorf("loading first parent of %s: %w", hash, err)
		}
		parentTree, err = parent.Tree()
		if err != nil {
			return nil, fmt.Errorf("loading parent tree of %s: %w", hash, err)
		}
	}

	changes, err := object.DiffTreeWithOptions(context.Background(), parentTree, currentTree, object.DefaultDiffTreeOptions)
	if err != nil {
		return nil, fmt.Errorf("diffing trees of %s: %w", hash, err)
	}

	return changes, nil
}

// changeStatus maps a go-git tree change to the change status vocabulary.
// go-git performs no copy detection, so ChangeCopied is never produced here.
func changeStatus(ch *object.Change) (ChangeStatus, error) {
	action, err := ch.Action()
	if err != nil {
		return ChangeUnknown, err
	}

	switch action {
	case merkletrie.Insert:
		return ChangeAdded, nil
	case merkletrie.Delete:
		return ChangeDeleted, nil
	case merkletrie.Modify:
		if ch.From.Name != ch.To.Name {
			return ChangeRenamed, nil
		}
		if isSymlink(ch.From.TreeEntry.Mode) != isSymlink(ch.To.TreeEntry.Mode) {
			return ChangeTypechange, nil
		}
		return ChangeModified, nil
	default:
		return ChangeUnknown, nil
	}
}

func isSymlink(mode filemode.FileMode) bool {
	return mode == filemode.Symlink
}
