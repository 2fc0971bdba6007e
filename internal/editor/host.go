// Package editor holds the narrow host interfaces the synchronizer is driven
// through, an in-memory text buffer, and the pre-save hook itself.
package editor

import (
	"context"

	"github.com/getlawrence/insert-filename/internal/filecomment"
)

// Document is an open document as exposed by the host.
type Document interface {
	// FileName is the document's path on disk.
	FileName() string
	// LineCount is 0 for an empty document.
	LineCount() int
	// LineAt returns line i without its line ending.
	LineAt(i int) string
	Text() string
	// EOL is the document's line ending ("\n" or "\r\n").
	EOL() string
}

// Editor exposes focus and the edit-apply operation.
type Editor interface {
	// ActiveDocument returns the focused document, or nil.
	ActiveDocument() Document
	// Apply commits edit to doc before the save proceeds.
	Apply(ctx context.Context, doc Document, edit filecomment.Edit) error
}

// Workspace converts absolute paths to workspace-relative, slash separated paths.
type Workspace interface {
	AsRelativePath(path string) string
}

// Configuration is a get-with-default view over the insertFilename settings.
type Configuration interface {
	Bool(key string, def bool) bool
	String(key string, def string) string
	StringSlice(key string, def []string) []string
	StringMap(key string) map[string]string
}

// ConfigProvider hands out a fresh Configuration on every call.
type ConfigProvider interface {
	Configuration() (Configuration, error)
}

// Setting keys.
const (
	KeyUsePath         = "usePath"
	KeyCommentStyle    = "commentStyle"
	KeyFileExtensions  = "fileExtensions"
	KeyCommentStyleMap = "commentStyleMap"
)

// ReadSnapshot reads the settings the synchronizer needs, applying defaults.
func ReadSnapshot(cfg Configuration) filecomment.Snapshot {
	return filecomment.Snapshot{
		UsePath:         cfg.Bool(KeyUsePath, false),
		CommentStyle:    cfg.String(KeyCommentStyle, ""),
		FileExtensions:  cfg.StringSlice(KeyFileExtensions, nil),
		CommentStyleMap: cfg.StringMap(KeyCommentStyleMap),
	}
}

// StaticConfig is a fixed Configuration backed by a snapshot. Handy for
// tests and for callers that already hold decoded settings.
type StaticConfig filecomment.Snapshot

func (c StaticConfig) Bool(key string, def bool) bool {
	if key == KeyUsePath {
		return c.UsePath
	}
	return def
}

func (c StaticConfig) String(key string, def string) string {
	if key == KeyCommentStyle && c.CommentStyle != "" {
		return c.CommentStyle
	}
	return def
}

func (c StaticConfig) StringSlice(key string, def []string) []string {
	if key == KeyFileExtensions && c.FileExtensions != nil {
		return c.FileExtensions
	}
	return def
}

func (c StaticConfig) StringMap(key string) map[string]string {
	if key == KeyCommentStyleMap && c.CommentStyleMap != nil {
		return c.CommentStyleMap
	}
	return map[string]string{}
}

// Configuration lets a StaticConfig act as its own provider.
func (c StaticConfig) Configuration() (Configuration, error) {
	return c, nil
}
