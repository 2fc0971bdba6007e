package editor

import (
	"fmt"
	"strings"

	"github.com/getlawrence/insert-filename/internal/filecomment"
)

const byteOrderMark = "\ufeff"

// TextBuffer is an in-memory Document. Lines are stored without line endings;
// the buffer remembers its EOL, whether the text ended with one and whether it
// started with a byte-order mark. The mark is not part of line 0.
type TextBuffer struct {
	path        string
	lines       []string
	eol         string
	trailingEOL bool
	bom         bool
	version     int
}

// NewTextBuffer splits text into lines. CRLF is kept as the buffer's EOL when
// the first line ending in text is CRLF.
func NewTextBuffer(path, text string) *TextBuffer {
	b := &TextBuffer{path: path, eol: "\n"}
	if strings.HasPrefix(text, byteOrderMark) {
		b.bom = true
		text = text[len(byteOrderMark):]
	}
	if i := strings.Index(text, "\n"); i > 0 && text[i-1] == '\r' {
		b.eol = "\r\n"
	}
	if text == "" {
		return b
	}
	b.trailingEOL = strings.HasSuffix(text, "\n")
	body := strings.TrimSuffix(strings.TrimSuffix(text, "\n"), "\r")
	for _, line := range strings.Split(body, "\n") {
		b.lines = append(b.lines, strings.TrimSuffix(line, "\r"))
	}
	return b
}

func (b *TextBuffer) FileName() string { return b.path }
func (b *TextBuffer) LineCount() int   { return len(b.lines) }
func (b *TextBuffer) EOL() string      { return b.eol }

// Version increments once per applied edit.
func (b *TextBuffer) Version() int { return b.version }

func (b *TextBuffer) LineAt(i int) string {
	if i < 0 || i >= len(b.lines) {
		return ""
	}
	return b.lines[i]
}

func (b *TextBuffer) Text() string {
	var text string
	if len(b.lines) > 0 {
		text = strings.Join(b.lines, b.eol)
		if b.trailingEOL {
			text += b.eol
		}
	}
	if b.bom {
		text = byteOrderMark + text
	}
	return text
}

// ApplyEdit applies one synchronizer edit.
func (b *TextBuffer) ApplyEdit(edit filecomment.Edit) error {
	switch edit.Kind {
	case filecomment.EditReplaceLine:
		if edit.Line < 0 || edit.Line >= len(b.lines) {
			return fmt.Errorf("line %d out of range (document has %d lines)", edit.Line, len(b.lines))
		}
		b.lines[edit.Line] = edit.Text
	case filecomment.EditInsert:
		if len(b.lines) == 0 {
			// "comment" EOL EOL: the second line is blank and the text ends
			// with a line ending.
			b.lines = []string{edit.Text, ""}
			b.trailingEOL = true
		} else {
			b.lines = append([]string{edit.Text, ""}, b.lines...)
		}
	default:
		return fmt.Errorf("unsupported edit kind %v", edit.Kind)
	}
	b.version++
	return nil
}

// Snapshot returns what the synchronizer reads from a document.
func Snapshot(doc Document, ws Workspace) filecomment.Document {
	snap := filecomment.Document{Path: doc.FileName()}
	if ws != nil {
		snap.RelativePath = ws.AsRelativePath(doc.FileName())
	}
	if doc.LineCount() > 0 {
		snap.FirstLine = doc.LineAt(0)
	}
	return snap
}
