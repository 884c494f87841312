package git

import "errors"

// Sentinel errors classifying introspection failures. Callers match with
// errors.Is; every public operation wraps these with a descriptive message.
var (
	// ErrNotFound indicates a repository could not be discovered from the
	// given path, or a referenced branch or commit does not exist.
	ErrNotFound = errors.New("not found")

	// ErrNoHead indicates HEAD cannot be resolved to a commit, e.g. an
	// unborn branch in a freshly initialized repository.
	ErrNoHead = errors.New("HEAD is not resolvable")

	// ErrMalformedHash indicates a string is not a valid object id.
	ErrMalformedHash = errors.New("malformed object id")
)
