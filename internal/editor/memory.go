package editor

import (
	"context"
	"fmt"

	"github.com/getlawrence/insert-filename/internal/filecomment"
)

// MemoryEditor is an Editor over TextBuffers held in memory.
type MemoryEditor struct {
	active *TextBuffer
}

// Focus makes buf the active document. Passing nil clears focus.
func (e *MemoryEditor) Focus(buf *TextBuffer) {
	e.active = buf
}

func (e *MemoryEditor) ActiveDocument() Document {
	if e.active == nil {
		return nil
	}
	return e.active
}

func (e *MemoryEditor) Apply(ctx context.Context, doc Document, edit filecomment.Edit) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	buf, ok := doc.(*TextBuffer)
	if !ok {
		return fmt.Errorf("cannot edit document of type %T", doc)
	}
	return buf.ApplyEdit(edit)
}
