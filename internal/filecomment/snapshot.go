package filecomment

import (
	"slices"
	"sort"
)

// Snapshot is the settings read at the moment of one save.
type Snapshot struct {
	FileExtensions  []string          `json:"fileExtensions" yaml:"fileExtensions"`
	CommentStyleMap map[string]string `json:"commentStyleMap" yaml:"commentStyleMap"`
	// CommentStyle is the legacy single delimiter; empty means unset.
	CommentStyle string `json:"commentStyle,omitempty" yaml:"commentStyle,omitempty"`
	UsePath      bool   `json:"usePath" yaml:"usePath"`
}

// Applies reports whether ext is one of the configured extensions.
func (s Snapshot) Applies(ext string) bool {
	return slices.Contains(s.FileExtensions, ext)
}

// ResolveTemplate looks ext up in the style map, then falls back to the
// legacy CommentStyle. The bool is false when neither is configured.
func (s Snapshot) ResolveTemplate(ext string) (Template, bool) {
	if d, ok := s.CommentStyleMap[ext]; ok && d != "" {
		return ParseTemplate(d), true
	}
	if s.CommentStyle != "" {
		return ParseTemplate(s.CommentStyle), true
	}
	return Template{}, false
}

// OpeningTokens returns the first token of every delimiter in use, sorted and
// without duplicates. Empty tokens are dropped since they would prefix-match
// every line.
func (s Snapshot) OpeningTokens() []string {
	seen := make(map[string]bool)
	var tokens []string
	add := func(d string) {
		open := ParseTemplate(d).Open
		if open == "" || seen[open] {
			return
		}
		seen[open] = true
		tokens = append(tokens, open)
	}
	for _, d := range s.CommentStyleMap {
		add(d)
	}
	if s.CommentStyle != "" {
		add(s.CommentStyle)
	}
	sort.Strings(tokens)
	return tokens
}

// DisplayPath returns the string written into the comment for doc.
func (s Snapshot) DisplayPath(doc Document) string {
	if s.UsePath && doc.RelativePath != "" {
		return doc.RelativePath
	}
	return BaseName(doc.Path)
}
