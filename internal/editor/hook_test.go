package editor

import (
	"context"
	"errors"
	"path"
	"strings"
	"testing"

	"github.com/getlawrence/insert-filename/internal/filecomment"
)

type rootWorkspace string

func (r rootWorkspace) AsRelativePath(p string) string {
	return strings.TrimPrefix(p, string(r)+"/")
}

type failingProvider struct{}

func (failingProvider) Configuration() (Configuration, error) {
	return nil, errors.New("boom")
}

type failingEditor struct{ MemoryEditor }

func (f *failingEditor) Apply(ctx context.Context, doc Document, edit filecomment.Edit) error {
	return errors.New("document changed on disk")
}

// save mimics the host: focus the buffer, run the hook, return the text.
func save(t *testing.T, cfg StaticConfig, buf *TextBuffer) (filecomment.Result, string) {
	t.Helper()
	ed := &MemoryEditor{}
	ed.Focus(buf)
	hook := NewSaveHook(ed, rootWorkspace("/ws"), cfg, nil)
	res, err := hook.WillSave(context.Background(), buf)
	if err != nil {
		t.Fatalf("WillSave() error = %v", err)
	}
	return res, buf.Text()
}

func lines(s string) []string {
	return strings.Split(s, "\n")
}

func TestSaveHook_Scenarios(t *testing.T) {
	tests := []struct {
		name      string
		cfg       StaticConfig
		file      string
		content   string
		wantLines map[int]string
	}{
		{
			name: "insert filename for new js file",
			cfg: StaticConfig{
				FileExtensions:  []string{".js"},
				CommentStyleMap: map[string]string{".js": "//"},
			},
			file:      "test.js",
			content:   `console.log("hello");`,
			wantLines: map[int]string{0: "// test.js", 1: "", 2: `console.log("hello");`},
		},
		{
			name: "relative path when usePath is set",
			cfg: StaticConfig{
				FileExtensions:  []string{".ts"},
				CommentStyleMap: map[string]string{".ts": "//"},
				UsePath:         true,
			},
			file:      "src/test.ts",
			content:   "const x = 1;",
			wantLines: map[int]string{0: "// src/test.ts"},
		},
		{
			name: "python style from map",
			cfg: StaticConfig{
				FileExtensions:  []string{".py"},
				CommentStyleMap: map[string]string{".py": "#"},
			},
			file:      "test.py",
			content:   `print("hello")`,
			wantLines: map[int]string{0: "# test.py"},
		},
		{
			name: "block comment",
			cfg: StaticConfig{
				FileExtensions:  []string{".css"},
				CommentStyleMap: map[string]string{".css": "/* */"},
			},
			file:      "style.css",
			content:   ".foo {}",
			wantLines: map[int]string{0: "/* style.css */"},
		},
		{
			name: "manual comment is normalised",
			cfg: StaticConfig{
				FileExtensions:  []string{".js"},
				CommentStyleMap: map[string]string{".js": "//"},
			},
			file:      "manual-comment.js",
			content:   "//manual-comment.js\n\nconsole.log(\"manual\");",
			wantLines: map[int]string{0: "// manual-comment.js", 2: `console.log("manual");`},
		},
		{
			name: "other first-line comment is pushed down",
			cfg: StaticConfig{
				FileExtensions:  []string{".js"},
				CommentStyleMap: map[string]string{".js": "//"},
			},
			file:    "another-comment.js",
			content: "// some other comment\n\nconsole.log(\"another\");",
			wantLines: map[int]string{
				0: "// another-comment.js",
				1: "",
				2: "// some other comment",
				4: `console.log("another");`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := NewTextBuffer(path.Join("/ws", tt.file), tt.content)
			_, text := save(t, tt.cfg, buf)
			got := lines(text)
			for i, want := range tt.wantLines {
				if i >= len(got) {
					t.Fatalf("line %d missing; text = %q", i, text)
				}
				if got[i] != want {
					t.Errorf("line %d = %q, want %q", i, got[i], want)
				}
			}
		})
	}
}

func TestSaveHook_ExtensionNotEnabledLeavesText(t *testing.T) {
	cfg := StaticConfig{
		FileExtensions:  []string{".js"},
		CommentStyleMap: map[string]string{".txt": "#"},
	}
	buf := NewTextBuffer("/ws/test.txt", "hello world")
	res, text := save(t, cfg, buf)
	if text != "hello world" {
		t.Errorf("text = %q, want unchanged", text)
	}
	if res.Action != filecomment.ActionSkipped {
		t.Errorf("Action = %q, want skipped", res.Action)
	}
}

func TestSaveHook_SecondSaveIsNoOp(t *testing.T) {
	cfg := StaticConfig{
		FileExtensions:  []string{".js"},
		CommentStyleMap: map[string]string{".js": "//"},
	}
	buf := NewTextBuffer("/ws/no-change.js", "// no-change.js\n\nconsole.log(\"no change\");")
	before := buf.Text()

	res, text := save(t, cfg, buf)
	if res.Action != filecomment.ActionUnchanged {
		t.Errorf("Action = %q, want unchanged", res.Action)
	}
	if text != before || buf.Version() != 0 {
		t.Errorf("document was modified: version %d, text %q", buf.Version(), text)
	}
}

func TestSaveHook_ByteOrderMarkHeaderIsRecognized(t *testing.T) {
	cfg := StaticConfig{
		FileExtensions:  []string{".js"},
		CommentStyleMap: map[string]string{".js": "//"},
	}
	const content = "\ufeff// a.js\n\ncode();\n"
	buf := NewTextBuffer("/ws/a.js", content)

	res, text := save(t, cfg, buf)
	if res.Action != filecomment.ActionUnchanged {
		t.Errorf("Action = %q, want unchanged", res.Action)
	}
	if text != content {
		t.Errorf("text = %q, want %q", text, content)
	}
}

func TestSaveHook_UsePathChangeReplacesOnlyFirstLine(t *testing.T) {
	cfg := StaticConfig{
		FileExtensions:  []string{".js"},
		CommentStyleMap: map[string]string{".js": "//"},
	}
	buf := NewTextBuffer("/ws/lib/update-test.js", "console.log(\"hello\");\nmore();\n")

	_, first := save(t, cfg, buf)
	if lines(first)[0] != "// update-test.js" {
		t.Fatalf("first save line 0 = %q", lines(first)[0])
	}

	cfg.UsePath = true
	res, second := save(t, cfg, buf)
	if res.Action != filecomment.ActionReplaced {
		t.Fatalf("Action = %q, want replaced", res.Action)
	}
	want := "// lib/update-test.js\n\nconsole.log(\"hello\");\nmore();\n"
	if second != want {
		t.Errorf("text = %q, want %q", second, want)
	}
}

func TestSaveHook_InactiveDocument(t *testing.T) {
	cfg := StaticConfig{
		FileExtensions:  []string{".js"},
		CommentStyleMap: map[string]string{".js": "//"},
	}
	focused := NewTextBuffer("/ws/a.js", "a();")
	background := NewTextBuffer("/ws/b.js", "b();")

	ed := &MemoryEditor{}
	hook := NewSaveHook(ed, rootWorkspace("/ws"), cfg, nil)

	res, err := hook.WillSave(context.Background(), background)
	if err != nil || res.Reason != ReasonNoActiveEditor {
		t.Errorf("no focus: got (%+v, %v)", res, err)
	}

	ed.Focus(focused)
	res, err = hook.WillSave(context.Background(), background)
	if err != nil || res.Reason != ReasonNotActive {
		t.Errorf("background save: got (%+v, %v)", res, err)
	}
	if background.Text() != "b();" {
		t.Errorf("background document modified: %q", background.Text())
	}
}

func TestSaveHook_ConfigErrorDegradesToSkip(t *testing.T) {
	buf := NewTextBuffer("/ws/a.js", "a();")
	ed := &MemoryEditor{}
	ed.Focus(buf)
	hook := NewSaveHook(ed, rootWorkspace("/ws"), failingProvider{}, nil)

	res, err := hook.WillSave(context.Background(), buf)
	if err != nil {
		t.Fatalf("WillSave() error = %v", err)
	}
	if res.Reason != ReasonConfigUnreadable || buf.Text() != "a();" {
		t.Errorf("got %+v, text %q", res, buf.Text())
	}
}

func TestSaveHook_ApplyErrorPropagates(t *testing.T) {
	cfg := StaticConfig{
		FileExtensions:  []string{".js"},
		CommentStyleMap: map[string]string{".js": "//"},
	}
	buf := NewTextBuffer("/ws/a.js", "a();")
	ed := &failingEditor{}
	ed.Focus(buf)
	hook := NewSaveHook(ed, rootWorkspace("/ws"), cfg, nil)

	if _, err := hook.WillSave(context.Background(), buf); err == nil {
		t.Fatal("expected Apply error to propagate")
	}
}
