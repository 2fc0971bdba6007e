package editor

import (
	"context"

	"github.com/getlawrence/insert-filename/internal/filecomment"
	"github.com/getlawrence/insert-filename/internal/logger"
)

// Reasons the hook itself skips a document.
const (
	ReasonNoActiveEditor   = "no active editor"
	ReasonNotActive        = "document is not the active editor"
	ReasonConfigUnreadable = "configuration could not be read"
)

// SaveHook runs the synchronizer for a document that is about to be saved.
type SaveHook struct {
	Editor    Editor
	Workspace Workspace
	Config    ConfigProvider
	Logger    logger.Logger
}

// NewSaveHook wires a hook. A nil logger discards messages.
func NewSaveHook(ed Editor, ws Workspace, cfg ConfigProvider, log logger.Logger) *SaveHook {
	if log == nil {
		log = logger.Discard{}
	}
	return &SaveHook{Editor: ed, Workspace: ws, Config: cfg, Logger: log}
}

// WillSave is invoked once per document right before it is written.
// It applies at most one edit through the Editor. Unresolvable situations
// come back as a skipped Result; only errors from Editor.Apply are returned.
func (h *SaveHook) WillSave(ctx context.Context, doc Document) (filecomment.Result, error) {
	active := h.Editor.ActiveDocument()
	if active == nil {
		return filecomment.Skip(ReasonNoActiveEditor), nil
	}
	if active != doc {
		return filecomment.Skip(ReasonNotActive), nil
	}

	cfg, err := h.Config.Configuration()
	if err != nil {
		h.Logger.Logf("insert-filename: %s: %v\n", doc.FileName(), err)
		return filecomment.Skip(ReasonConfigUnreadable), nil
	}

	result := filecomment.Synchronize(ReadSnapshot(cfg), Snapshot(doc, h.Workspace))
	if result.Edit == nil {
		return result, nil
	}

	if err := h.Editor.Apply(ctx, doc, *result.Edit); err != nil {
		return result, err
	}
	return result, nil
}
