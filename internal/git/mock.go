package git

// Compile-time check that MockRepository implements Repository.
var _ Repository = (*MockRepository)(nil)

// MockRepository is a configurable mock implementation of Repository for
// testing. Each method is backed by a function field; a nil field returns
// sensible zero values.
type MockRepository struct {
	GitDirFunc             func() string
	WorktreeRootFunc       func() string
	IsBareFunc             func() bool
	BranchesFunc           func() ([]Branch, error)
	RemotesFunc            func() ([]Remote, error)
	CommitsFunc            func(int) ([]Commit, error)
	ChangesInCommitFunc    func(string) ([]CommitChange, error)
	FileDiffFunc           func(string, string) (FileDiff, error)
	StatusFunc             func() ([]FileStatus, error)
	WorktreesFunc          func() ([]Worktree, error)
	CheckoutFunc           func(string) error
	HasLFSFilterConfigFunc func() bool
}

func (m *MockRepository) GitDir() string {
	if m.GitDirFunc != nil {
		return m.GitDirFunc()
	}
	return ""
}

func (m *MockRepository) WorktreeRoot() string {
	if m.WorktreeRootFunc != nil {
		return m.WorktreeRootFunc()
	}
	return ""
}

func (m *MockRepository) IsBare() bool {
	if m.IsBareFunc != nil {
		return m.IsBareFunc()
	}
	return false
}

func (m *MockRepository) Branches() ([]Branch, error) {
	if m.BranchesFunc != nil {
		return m.BranchesFunc()
	}
	return nil, nil
}

func (m *MockRepository) Remotes() ([]Remote, error) {
	if m.RemotesFunc != nil {
		return m.RemotesFunc()
	}
	return nil, nil
}

func (m *MockRepository) Commits(limit int) ([]Commit, error) {
	if m.CommitsFunc != nil {
		return m.CommitsFunc(limit)
	}
	return nil, nil
}

func (m *MockRepository) ChangesInCommit(hash string) ([]CommitChange, error) {
	if m.ChangesInCommitFunc != nil {
		return m.ChangesInCommitFunc(hash)
	}
	return nil, nil
}

func (m *MockRepository) FileDiff(hash, path string) (FileDiff, error) {
	if m.FileDiffFunc != nil {
		return m.FileDiffFunc(hash, path)
	}
	return FileDiff{}, nil
}

func (m *MockRepository) Status() ([]FileStatus, error) {
	if m.StatusFunc != nil {
		return m.StatusFunc()
	}
	return nil, nil
}

func (m *MockRepository) Worktrees() ([]Worktree, error) {
	if m.WorktreesFunc != nil {
		return m.WorktreesFunc()
	}
	return nil, nil
}

func (m *MockRepository) Checkout(branch string) error {
	if m.CheckoutFunc != nil {
		return m.CheckoutFunc(branch)
	}
	return nil
}

func (m *MockRepository) HasLFSFilterConfig() bool {
	if m.HasLFSFilterConfigFunc != nil {
		return m.HasLFSFilterConfigFunc()
	}
	return false
}
