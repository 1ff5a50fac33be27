// Package diff renders unified patches of the manifest before/after a
// registration run, for --diff and --dry-run previews. It uses
// github.com/pmezard/go-difflib/difflib to produce classic unified output
// (---/+++ headers, @@ hunks, lines prefixed with ' ', '-', '+').
package diff

import (
	"strings"

	difflib "github.com/pmezard/go-difflib/difflib"
)

// Options controls patch generation.
type Options struct {
	// Context is the number of context lines per hunk. If 0, default to 4.
	Context int
}

// Unified produces a unified patch for a -> b. An empty string means the two
// inputs are identical.
func Unified(aName, bName string, a, b []byte, opt Options) (string, error) {
	ctx := opt.Context
	if ctx <= 0 {
		ctx = 4
	}
	u := difflib.UnifiedDiff{
		A:        splitLinesKeepNL(string(a)),
		B:        splitLinesKeepNL(string(b)),
		FromFile: aName,
		ToFile:   bName,
		Context:  ctx,
	}
	return difflib.GetUnifiedDiffString(u)
}

// splitLinesKeepNL splits into lines keeping the newline characters, which
// produces better unified hunks. A file that does not end with a newline
// keeps its last chunk bare.
func splitLinesKeepNL(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.SplitAfter(s, "\n")
}
