package filecomment

import (
	"strings"
)

// Document is the part of an about-to-be-saved document the synchronizer reads.
type Document struct {
	// Path is the document's file path.
	Path string
	// RelativePath is Path relative to the workspace root, slash separated.
	RelativePath string
	// FirstLine is the text of line 0, or "" for an empty document.
	FirstLine string
}

// EditKind selects how an Edit is applied.
type EditKind int

const (
	// EditReplaceLine replaces the full text of Edit.Line.
	EditReplaceLine EditKind = iota
	// EditInsert inserts Edit.Text at the very start of the document.
	EditInsert
)

func (k EditKind) String() string {
	switch k {
	case EditReplaceLine:
		return "replace"
	case EditInsert:
		return "insert"
	default:
		return "unknown"
	}
}

// Edit is the single text change the synchronizer asks the host for.
// For EditInsert, Text holds only the comment line; the host appends two of
// the document's line endings so the comment is followed by a blank line.
type Edit struct {
	Kind EditKind
	Line int
	Text string
}

// Action is the outcome of one synchronization.
type Action string

const (
	ActionSkipped   Action = "skipped"
	ActionUnchanged Action = "unchanged"
	ActionReplaced  Action = "replaced"
	ActionInserted  Action = "inserted"
)

// Reasons attached to skipped results.
const (
	ReasonExtensionNotEnabled = "extension not in fileExtensions"
	ReasonNoCommentStyle      = "no comment style configured"
)

// Result describes what Synchronize decided.
type Result struct {
	Action  Action `json:"action" yaml:"action"`
	Reason  string `json:"reason,omitempty" yaml:"reason,omitempty"`
	Comment string `json:"comment,omitempty" yaml:"comment,omitempty"`
	Edit    *Edit  `json:"-" yaml:"-"`
}

// Changed reports whether the result carries an edit.
func (r Result) Changed() bool {
	return r.Edit != nil
}

// Skip builds a skipped result with a reason.
func Skip(reason string) Result {
	return Result{Action: ActionSkipped, Reason: reason}
}

// IsFilenameComment reports whether line looks like a filename comment we
// wrote earlier: it starts with one of the opening tokens and mentions either
// the bare filename or the relative path anywhere in the line.
//
// NOTE: this is a substring heuristic. A first line such as "// see util.js"
// in util.js is treated as a filename comment and will be rewritten.
func IsFilenameComment(line string, openers []string, filename, relPath string) bool {
	starts := false
	for _, o := range openers {
		if strings.HasPrefix(line, o) {
			starts = true
			break
		}
	}
	if !starts {
		return false
	}
	if filename != "" && strings.Contains(line, filename) {
		return true
	}
	return relPath != "" && strings.Contains(line, relPath)
}

// Synchronize computes the edit, if any, that makes doc's first line the
// filename comment configured by s.
func Synchronize(s Snapshot, doc Document) Result {
	ext := Extension(doc.Path)
	if !s.Applies(ext) {
		return Skip(ReasonExtensionNotEnabled)
	}

	tmpl, ok := s.ResolveTemplate(ext)
	if !ok {
		return Skip(ReasonNoCommentStyle)
	}

	comment := strings.TrimSpace(tmpl.Render(s.DisplayPath(doc)))
	filename := BaseName(doc.Path)

	if IsFilenameComment(doc.FirstLine, s.OpeningTokens(), filename, doc.RelativePath) {
		if doc.FirstLine == comment {
			return Result{Action: ActionUnchanged, Comment: comment}
		}
		return Result{
			Action:  ActionReplaced,
			Comment: comment,
			Edit:    &Edit{Kind: EditReplaceLine, Line: 0, Text: comment},
		}
	}

	return Result{
		Action:  ActionInserted,
		Comment: comment,
		Edit:    &Edit{Kind: EditInsert, Line: 0, Text: comment},
	}
}
