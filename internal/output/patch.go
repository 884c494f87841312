package output

import (
	"fmt"
	"io"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/repolens/repolens/pkg/repolens"
)

// WritePatch renders a readable line-based patch between the two sides of a
// file diff. Unchanged runs are collapsed; inserted lines are prefixed with
// "+" and deleted lines with "-".
func WritePatch(w io.Writer, path string, diff repolens.FileDiff) error {
	if _, err := fmt.Fprintf(w, "--- a/%s\n+++ b/%s\n", path, path); err != nil {
		return err
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(diff.Original, diff.Modified)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		}
		if err := writePrefixedLines(w, prefix, d.Text); err != nil {
			return err
		}
	}
	return nil
}

func writePrefixedLines(w io.Writer, prefix, text string) error {
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			if _, err := fmt.Fprintf(w, "%s%s\n", prefix, text[start:i]); err != nil {
				return err
			}
			start = i + 1
		}
	}
	if start < len(text) {
		if _, err := fmt.Fprintf(w, "%s%s\n", prefix, text[start:]); err != nil {
			return err
		}
	}
	return nil
}
