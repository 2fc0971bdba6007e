package workspace

import (
	"context"
	"fmt"

	"github.com/getlawrence/insert-filename/internal/diff"
	"github.com/getlawrence/insert-filename/internal/editor"
	"github.com/getlawrence/insert-filename/internal/filecomment"
	"github.com/getlawrence/insert-filename/internal/logger"
)

// RunOptions controls what Run does with changed files.
type RunOptions struct {
	// DryRun computes edits without writing files.
	DryRun bool
	// Diff attaches a unified patch to every changed file.
	Diff bool
	// OnFile, when set, is called before each file is processed.
	OnFile func(index, total int, f File)
}

// FileResult is the outcome for one file.
type FileResult struct {
	Path    string             `json:"path" yaml:"path"`
	Action  filecomment.Action `json:"action" yaml:"action"`
	Reason  string             `json:"reason,omitempty" yaml:"reason,omitempty"`
	Comment string             `json:"comment,omitempty" yaml:"comment,omitempty"`
	Diff    string             `json:"diff,omitempty" yaml:"diff,omitempty"`
	Error   string             `json:"error,omitempty" yaml:"error,omitempty"`
}

// Changed reports whether the file got (or would get) an edit.
func (r FileResult) Changed() bool {
	return r.Action == filecomment.ActionInserted || r.Action == filecomment.ActionReplaced
}

// Report summarizes one run.
type Report struct {
	Root   string       `json:"root" yaml:"root"`
	DryRun bool         `json:"dryRun" yaml:"dryRun"`
	Files  []FileResult `json:"files" yaml:"files"`
}

// Count returns how many files ended with action.
func (r *Report) Count(action filecomment.Action) int {
	n := 0
	for _, f := range r.Files {
		if f.Action == action {
			n++
		}
	}
	return n
}

// Changed returns the files that were (or would be) edited.
func (r *Report) Changed() []FileResult {
	var out []FileResult
	for _, f := range r.Files {
		if f.Changed() {
			out = append(out, f)
		}
	}
	return out
}

// Failed returns the files that could not be processed.
func (r *Report) Failed() []FileResult {
	var out []FileResult
	for _, f := range r.Files {
		if f.Error != "" {
			out = append(out, f)
		}
	}
	return out
}

// Runner drives the save hook over a set of files, one save per file.
type Runner struct {
	Workspace *Workspace
	Config    editor.ConfigProvider
	Logger    logger.Logger
}

// NewRunner wires a runner. A nil logger discards messages.
func NewRunner(ws *Workspace, cfg editor.ConfigProvider, log logger.Logger) *Runner {
	if log == nil {
		log = logger.Discard{}
	}
	return &Runner{Workspace: ws, Config: cfg, Logger: log}
}

// Run simulates a save of every file. Per-file failures are recorded in the
// report and do not stop the run; a cancelled context does.
func (r *Runner) Run(ctx context.Context, files []File, opts RunOptions) (*Report, error) {
	report := &Report{Root: r.Workspace.Root, DryRun: opts.DryRun}
	ed := NewFileEditor()
	hook := editor.NewSaveHook(ed, r.Workspace, r.Config, r.Logger)

	for i, f := range files {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		if opts.OnFile != nil {
			opts.OnFile(i, len(files), f)
		}
		report.Files = append(report.Files, r.runFile(ctx, ed, hook, f, opts))
	}
	return report, nil
}

func (r *Runner) runFile(ctx context.Context, ed *FileEditor, hook *editor.SaveHook, f File, opts RunOptions) FileResult {
	res := FileResult{Path: f.RelPath}

	buf, err := ed.Open(f.AbsPath)
	if err != nil {
		res.Action = filecomment.ActionSkipped
		res.Error = err.Error()
		return res
	}
	defer ed.Close(buf)
	before := buf.Text()

	result, err := hook.WillSave(ctx, buf)
	res.Action, res.Reason, res.Comment = result.Action, result.Reason, result.Comment
	if err != nil {
		res.Action = filecomment.ActionSkipped
		res.Error = fmt.Sprintf("failed to apply edit: %v", err)
		return res
	}
	if !result.Changed() {
		return res
	}

	if opts.Diff {
		res.Diff = diff.Unified(f.RelPath, before, buf.Text(), diff.Options{})
	}
	if opts.DryRun {
		r.Logger.Logf("would %s header in %s\n", verb(result.Action), f.RelPath)
		return res
	}
	if err := ed.Save(buf); err != nil {
		res.Error = err.Error()
		return res
	}
	r.Logger.Logf("%s header in %s\n", result.Action, f.RelPath)
	return res
}

func verb(a filecomment.Action) string {
	switch a {
	case filecomment.ActionInserted:
		return "insert"
	case filecomment.ActionReplaced:
		return "replace"
	default:
		return string(a)
	}
}
