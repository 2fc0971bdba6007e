package workspace

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/getlawrence/insert-filename/internal/editor"
	"github.com/getlawrence/insert-filename/internal/filecomment"
)

// FileEditor is an editor.Editor over files on disk. A file is loaded into a
// TextBuffer by Open, edited in memory, and written back by Save.
type FileEditor struct {
	mem   editor.MemoryEditor
	modes map[string]fs.FileMode
}

// NewFileEditor returns an editor with no open document.
func NewFileEditor() *FileEditor {
	return &FileEditor{modes: make(map[string]fs.FileMode)}
}

// Open reads path into a buffer and makes it the active document.
func (e *FileEditor) Open(path string) (*editor.TextBuffer, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	buf := editor.NewTextBuffer(path, string(data))
	e.modes[path] = info.Mode().Perm()
	e.mem.Focus(buf)
	return buf, nil
}

// Close forgets buf and clears focus when it was active.
func (e *FileEditor) Close(buf *editor.TextBuffer) {
	delete(e.modes, buf.FileName())
	if e.mem.ActiveDocument() == editor.Document(buf) {
		e.mem.Focus(nil)
	}
}

func (e *FileEditor) ActiveDocument() editor.Document {
	return e.mem.ActiveDocument()
}

func (e *FileEditor) Apply(ctx context.Context, doc editor.Document, edit filecomment.Edit) error {
	return e.mem.Apply(ctx, doc, edit)
}

// Save writes buf back to its path keeping the original permissions.
func (e *FileEditor) Save(buf *editor.TextBuffer) error {
	mode, ok := e.modes[buf.FileName()]
	if !ok {
		mode = 0644
	}
	if err := os.WriteFile(buf.FileName(), []byte(buf.Text()), mode); err != nil {
		return fmt.Errorf("failed to write %s: %w", buf.FileName(), err)
	}
	return nil
}

var _ editor.Editor = (*FileEditor)(nil)
