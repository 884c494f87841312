package git

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	gogit "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/storage/filesystem"
)

// Compile-time check that GoGitRepository implements Repository.
var _ Repository = (*GoGitRepository)(nil)

// GoGitRepository implements Repository using go-git.
type GoGitRepository struct {
	repo    *gogit.Repository
	gitDir  string
	workDir string
	bare    bool
}

// Open discovers and opens the repository containing path. If path names a
// regular file, discovery starts from its parent directory; discovery then
// walks upward until a metadata directory is found.
func Open(path string) (*GoGitRepository, error) {
	start := path
	if fi, err := os.Stat(path); err == nil && !fi.IsDir() {
		start = filepath.Dir(path)
	}

	r, err := gogit.PlainOpenWithOptions(start, &gogit.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("no git repository discovered from %s: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("opening git repository at %s: %w", path, err)
	}

	gitDir := ""
	if st, ok := r.Storer.(*filesystem.Storage); ok {
		gitDir = st.Filesystem().Root()
	}

	workDir := ""
	bare := false
	wt, err := r.Worktree()
	switch {
	case err == nil:
		workDir = wt.Filesystem.Root()
	case errors.Is(err, gogit.ErrIsBareRepository):
		bare = true
	default:
		return nil, fmt.Errorf("getting worktree: %w", err)
	}

	return &GoGitRepository{
		repo:    r,
		gitDir:  gitDir,
		workDir: workDir,
		bare:    bare,
	}, nil
}

func (r *GoGitRepository) GitDir() string {
	return r.gitDir
}

func (r *GoGitRepository) WorktreeRoot() string {
	return r.workDir
}

func (r *GoGitRepository) IsBare() bool {
	return r.bare
}

// headBranchName returns the canonical name of the checked-out branch, or ""
// when HEAD is detached or unborn.
func (r *GoGitRepository) headBranchName() string {
	ref, err := r.repo.Head()
	if err != nil {
		return ""
	}
	if !ref.Name().IsBranch() {
		return ""
	}
	return string(ref.Name())
}

func (r *GoGitRepository) Branches() ([]Branch, error) {
	headName := r.headBranchName()
	var branches []Branch

	// Local branches.
	localIter, err := r.repo.Branches()
	if err != nil {
		return nil, fmt.Errorf("listing local branches: %w", err)
	}
	err = localIter.ForEach(func(ref *plumbing.Reference) error {
		branches = append(branches, Branch{
			Name:      NewReferenceName(string(ref.Name())),
			IsCurrent: string(ref.Name()) == headName,
			IsRemote:  false,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("iterating local branches: %w", err)
	}

	// Remote-tracking branches. Symbolic refs (e.g. origin/HEAD) are skipped.
	refIter, err := r.repo.References()
	if err != nil {
		return nil, fmt.Errorf("listing references: %w", err)
	}
	err = refIter.ForEach(func(ref *plumbing.Reference) error {
		if !ref.Name().IsRemote() || ref.Type() != plumbing.HashReference {
			return nil
		}
		branches = append(branches, Branch{
			Name:     NewReferenceName(string(ref.Name())),
			IsRemote: true,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("iterating remote branches: %w", err)
	}

	return branches, nil
}

func (r *GoGitRepository) Remotes() ([]Remote, error) {
	rems, err := r.repo.Remotes()
	if err != nil {
		return nil, fmt.Errorf("listing remotes: %w", err)
	}

	var remotes []Remote
	for _, rem := range rems {
		cfg := rem.Config()
		if len(cfg.URLs) == 0 || cfg.URLs[0] == "" {
			continue
		}
		remotes = append(remotes, Remote{Name: cfg.Name, URL: cfg.URLs[0]})
	}

	sort.Slice(remotes, func(i, j int) bool {
		return remotes[i].Name < remotes[j].Name
	})

	return remotes, nil
}

func (r *GoGitRepository) HasLFSFilterConfig() bool {
	// Merged across local, global, and system scopes: a machine-wide
	// `git lfs install` writes the filter driver into ~/.gitconfig.
	cfg, err := r.repo.ConfigScoped(gitconfig.SystemScope)
	if err != nil {
		return false
	}
	sec := cfg.Raw.Section("filter")
	if !sec.HasSubsection("lfs") {
		return false
	}
	sub := sec.Subsection("lfs")
	return sub.Option("clean") != "" || sub.Option("smudge") != ""
}
