// Package treediff renders human-readable deltas between node trees.
// It exists for failure messages and trace output: the diff is a text
// artifact, not a patch format anything applies.
package treediff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/interlayer-space/elementary-go/debug"
	"github.com/interlayer-space/elementary-go/node"
)

// Render returns the canonical line-oriented text of a tree, the form
// Diff compares.
func Render(n node.Node) string {
	return node.Dump(n) + "\n"
}

// Diff returns a line-level delta between two trees, empty when they
// are equal. Unchanged lines are indented, removed lines carry "- ",
// added lines "+ ".
func Diff(a, b node.Node) string {
	if node.Equal(a, b) {
		return ""
	}
	if debug.Diff() {
		debug.Logf("diff %s against %s\n", a, b)
	}
	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(Render(a), Render(b))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)

	var sb strings.Builder
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix = "- "
		case diffpatch.DiffInsert:
			prefix = "+ "
		}
		for _, line := range splitLines(d.Text) {
			sb.WriteString(prefix)
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
