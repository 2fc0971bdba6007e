// Package diff renders unified patches for previewing header edits.
package diff

import (
	"fmt"
	"strings"

	difflib "github.com/pmezard/go-difflib/difflib"
)

// Options controls patch generation.
type Options struct {
	// Context is the number of context lines per hunk. 0 means 3.
	Context int
	// MaxBytes skips the diff when old+new is larger. 0 means no limit.
	MaxBytes int
}

// Unified produces a unified patch from a to b under a/ and b/ prefixes.
// It returns "" when the inputs are equal.
func Unified(name string, a, b string, opt Options) string {
	if a == b {
		return ""
	}
	if opt.MaxBytes > 0 && len(a)+len(b) > opt.MaxBytes {
		return omitted(name)
	}
	ctx := opt.Context
	if ctx <= 0 {
		ctx = 3
	}

	u := difflib.UnifiedDiff{
		A:        splitLinesKeepNL(a),
		B:        splitLinesKeepNL(b),
		FromFile: "a/" + name,
		ToFile:   "b/" + name,
		Context:  ctx,
	}
	s, err := difflib.GetUnifiedDiffString(u)
	if err != nil || s == "" {
		return omitted(name)
	}
	return s
}

// splitLinesKeepNL keeps the "\n" on each element so hunks print cleanly.
// A final line without a newline gets one, the way `diff` would show it.
func splitLinesKeepNL(s string) []string {
	if s == "" {
		return []string{}
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	} else {
		lines[len(lines)-1] += "\n"
	}
	return lines
}

func omitted(name string) string {
	return fmt.Sprintf("--- a/%s\n+++ b/%s\n@@\n# diff omitted (oversize)\n", name, name)
}
