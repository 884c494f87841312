// Package output renders introspection results as JSON or human-readable
// text for the CLI host.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"github.com/repolens/repolens/pkg/repolens"
)

// WriteJSON writes v as pretty-printed JSON to the writer.
func WriteJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling to JSON: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing JSON output: %w", err)
	}
	_, err = w.Write([]byte("\n"))
	return err
}

// WriteBranches writes one branch per line, marking the current branch with
// an asterisk and remote-tracking branches with a prefix.
func WriteBranches(w io.Writer, branches []repolens.Branch) error {
	for _, b := range branches {
		marker := "  "
		if b.IsCurrent {
			marker = "* "
		}
		name := b.Name
		if b.IsRemote {
			name = "remotes/" + name
		}
		if _, err := fmt.Fprintf(w, "%s%s\n", marker, name); err != nil {
			return err
		}
	}
	return nil
}

// WriteRemotes writes one remote per line as "name\turl".
func WriteRemotes(w io.Writer, remotes []repolens.Remote) error {
	for _, r := range remotes {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", r.Name, r.URL); err != nil {
			return err
		}
	}
	return nil
}

// WriteCommits writes one commit per line: short hash, author, and the first
// line of the message.
func WriteCommits(w io.Writer, commits []repolens.Commit) error {
	for _, c := range commits {
		hash := c.Hash
		if len(hash) > 7 {
			hash = hash[:7]
		}
		subject := c.Message
		for i := 0; i < len(subject); i++ {
			if subject[i] == '\n' {
				subject = subject[:i]
				break
			}
		}
		if _, err := fmt.Fprintf(w, "%s %s %s\n", hash, c.Author, subject); err != nil {
			return err
		}
	}
	return nil
}

// WriteChanges writes one changed path per line as "status\tpath".
func WriteChanges(w io.Writer, changes []repolens.CommitChange) error {
	for _, ch := range changes {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", ch.Status, ch.Path); err != nil {
			return err
		}
	}
	return nil
}

// WriteStatus writes one working-tree entry per line as "status\tpath".
func WriteStatus(w io.Writer, statuses []repolens.FileStatus) error {
	for _, s := range statuses {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", s.Status, s.FilePath); err != nil {
			return err
		}
	}
	return nil
}

// WriteWorktrees writes one worktree per line as "path\tbranch".
func WriteWorktrees(w io.Writer, worktrees []repolens.Worktree) error {
	for _, wt := range worktrees {
		branch := wt.Branch
		if branch == "" {
			branch = "-"
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\n", wt.Path, branch); err != nil {
			return err
		}
	}
	return nil
}

// WriteRepoInfo writes the repository summary with humanized sizes.
func WriteRepoInfo(w io.Writer, info repolens.RepositoryInfo) error {
	rows := []struct {
		label string
		value string
	}{
		{"Repository", info.RepoPath},
		{"Git dir", info.GitDirPath},
		{"Worktree", info.WorktreePath},
		{"Bare", fmt.Sprintf("%t", info.IsBare)},
		{"Total size", humanize.IBytes(info.TotalSizeBytes)},
		{"Worktree size", humanize.IBytes(info.WorktreeSizeBytes)},
		{"Metadata size", humanize.IBytes(info.GitMetadataSizeBytes)},
		{"Objects size", humanize.IBytes(info.GitObjectsSizeBytes)},
		{"Packfiles size", humanize.IBytes(info.GitPackfilesSizeBytes)},
		{"Refs size", humanize.IBytes(info.GitRefsSizeBytes)},
		{"LFS enabled", fmt.Sprintf("%t", info.LFSEnabled)},
		{"LFS objects size", humanize.IBytes(info.LFSObjectsSizeBytes)},
	}

	for _, row := range rows {
		if _, err := fmt.Fprintf(w, "%-18s %s\n", row.label+":", row.value); err != nil {
			return err
		}
	}
	return nil
}
