// Package filecomment decides whether a document needs a filename comment on
// its first line and computes the single edit that puts it there.
//
// Everything in this package is pure: callers hand in a settings Snapshot and a
// Document snapshot and get back a Result. Reading files, talking to an editor
// and applying the edit belong to the host (see internal/editor).
package filecomment

import (
	"path/filepath"
	"strings"
)

// Template is a parsed delimiter template such as "//", "#" or "/* */".
type Template struct {
	Raw   string
	Open  string
	Close string
}

// ParseTemplate splits a delimiter template on a single space.
// A non-empty second token makes it a block comment.
func ParseTemplate(s string) Template {
	parts := strings.Split(s, " ")
	t := Template{Raw: s, Open: parts[0]}
	if len(parts) > 1 && parts[1] != "" {
		t.Close = parts[1]
	}
	return t
}

// IsBlock reports whether the template renders a block comment.
func (t Template) IsBlock() bool {
	return t.Close != ""
}

// Render returns the comment line for display.
// Line comments keep the raw template as the prefix.
func (t Template) Render(display string) string {
	if t.IsBlock() {
		return t.Open + " " + display + " " + t.Close
	}
	return t.Raw + " " + display
}

// Extension returns the extension of the final path segment including the
// dot, or "" when there is none. A leading dot alone (".bashrc") does not
// count as an extension.
func Extension(p string) string {
	base := BaseName(p)
	idx := strings.LastIndex(base, ".")
	if idx <= 0 {
		return ""
	}
	return base[idx:]
}

// BaseName returns the final segment of a slash or OS separated path.
func BaseName(p string) string {
	p = filepath.ToSlash(p)
	if i := strings.LastIndex(p, "/"); i >= 0 {
		return p[i+1:]
	}
	return p
}
