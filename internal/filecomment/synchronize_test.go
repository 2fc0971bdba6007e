package filecomment

import (
	"reflect"
	"testing"
)

func TestExtension(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"test.js", ".js"},
		{"/a/b/style.min.css", ".css"},
		{"src/app.test.ts", ".ts"},
		{"Makefile", ""},
		{".bashrc", ""},
		{"dir.d/README", ""},
		{"archive.", "."},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := Extension(tt.path); got != tt.want {
				t.Errorf("Extension(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestTemplateRender(t *testing.T) {
	tests := []struct {
		name    string
		tmpl    string
		display string
		want    string
		block   bool
	}{
		{"line slash", "//", "test.js", "// test.js", false},
		{"line hash", "#", "test.py", "# test.py", false},
		{"block css", "/* */", "style.css", "/* style.css */", true},
		{"block html", "<!-- -->", "index.html", "<!-- index.html -->", true},
		{"empty second token is line", "-- ", "q.sql", "--  q.sql", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl := ParseTemplate(tt.tmpl)
			if tmpl.IsBlock() != tt.block {
				t.Errorf("IsBlock() = %v, want %v", tmpl.IsBlock(), tt.block)
			}
			if got := tmpl.Render(tt.display); got != tt.want {
				t.Errorf("Render(%q) = %q, want %q", tt.display, got, tt.want)
			}
		})
	}
}

func TestSnapshotOpeningTokens(t *testing.T) {
	s := Snapshot{
		CommentStyleMap: map[string]string{
			".js":  "//",
			".ts":  "//",
			".css": "/* */",
			".bad": "",
		},
		CommentStyle: "#",
	}
	want := []string{"#", "/*", "//"}
	if got := s.OpeningTokens(); !reflect.DeepEqual(got, want) {
		t.Errorf("OpeningTokens() = %v, want %v", got, want)
	}
}

func TestIsFilenameComment(t *testing.T) {
	openers := []string{"//", "#"}
	tests := []struct {
		name string
		line string
		want bool
	}{
		{"exact", "// main.js", true},
		{"no space", "//main.js", true},
		{"relative path", "// src/main.js", true},
		{"other comment", "// some other comment", false},
		{"not a comment", "main.js", false},
		{"coincidental mention", "# see main.js for details", true},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsFilenameComment(tt.line, openers, "main.js", "src/main.js"); got != tt.want {
				t.Errorf("IsFilenameComment(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestSynchronize(t *testing.T) {
	jsOnly := Snapshot{
		FileExtensions:  []string{".js"},
		CommentStyleMap: map[string]string{".js": "//"},
	}

	tests := []struct {
		name       string
		snapshot   Snapshot
		doc        Document
		wantAction Action
		wantReason string
		wantEdit   *Edit
	}{
		{
			name:       "insert into new js file",
			snapshot:   jsOnly,
			doc:        Document{Path: "/ws/test.js", RelativePath: "test.js", FirstLine: `console.log("hello");`},
			wantAction: ActionInserted,
			wantEdit:   &Edit{Kind: EditInsert, Text: "// test.js"},
		},
		{
			name: "block comment for css",
			snapshot: Snapshot{
				FileExtensions:  []string{".css"},
				CommentStyleMap: map[string]string{".css": "/* */"},
			},
			doc:        Document{Path: "/ws/style.css", RelativePath: "style.css", FirstLine: ".foo {}"},
			wantAction: ActionInserted,
			wantEdit:   &Edit{Kind: EditInsert, Text: "/* style.css */"},
		},
		{
			name: "legacy fallback style",
			snapshot: Snapshot{
				FileExtensions:  []string{".rb"},
				CommentStyleMap: map[string]string{".js": "//"},
				CommentStyle:    "#",
			},
			doc:        Document{Path: "/ws/test.rb", RelativePath: "test.rb", FirstLine: `puts "hello"`},
			wantAction: ActionInserted,
			wantEdit:   &Edit{Kind: EditInsert, Text: "# test.rb"},
		},
		{
			name: "extension not enabled",
			snapshot: Snapshot{
				FileExtensions:  []string{".js"},
				CommentStyleMap: map[string]string{".txt": "#"},
			},
			doc:        Document{Path: "/ws/test.txt", RelativePath: "test.txt", FirstLine: "hello world"},
			wantAction: ActionSkipped,
			wantReason: ReasonExtensionNotEnabled,
		},
		{
			name:       "no style configured",
			snapshot:   Snapshot{FileExtensions: []string{".go"}},
			doc:        Document{Path: "/ws/main.go", RelativePath: "main.go", FirstLine: "package main"},
			wantAction: ActionSkipped,
			wantReason: ReasonNoCommentStyle,
		},
		{
			name:       "already correct",
			snapshot:   jsOnly,
			doc:        Document{Path: "/ws/no-change.js", RelativePath: "no-change.js", FirstLine: "// no-change.js"},
			wantAction: ActionUnchanged,
		},
		{
			name:       "manual comment without space is replaced",
			snapshot:   jsOnly,
			doc:        Document{Path: "/ws/manual-comment.js", RelativePath: "manual-comment.js", FirstLine: "//manual-comment.js"},
			wantAction: ActionReplaced,
			wantEdit:   &Edit{Kind: EditReplaceLine, Line: 0, Text: "// manual-comment.js"},
		},
		{
			name:       "unrelated comment keeps its place",
			snapshot:   jsOnly,
			doc:        Document{Path: "/ws/another-comment.js", RelativePath: "another-comment.js", FirstLine: "// some other comment"},
			wantAction: ActionInserted,
			wantEdit:   &Edit{Kind: EditInsert, Text: "// another-comment.js"},
		},
		{
			name: "use path switches display form",
			snapshot: Snapshot{
				FileExtensions:  []string{".ts"},
				CommentStyleMap: map[string]string{".ts": "//"},
				UsePath:         true,
			},
			doc:        Document{Path: "/ws/src/test.ts", RelativePath: "src/test.ts", FirstLine: "// test.ts"},
			wantAction: ActionReplaced,
			wantEdit:   &Edit{Kind: EditReplaceLine, Line: 0, Text: "// src/test.ts"},
		},
		{
			name:       "empty document",
			snapshot:   jsOnly,
			doc:        Document{Path: "/ws/empty.js", RelativePath: "empty.js"},
			wantAction: ActionInserted,
			wantEdit:   &Edit{Kind: EditInsert, Text: "// empty.js"},
		},
		{
			name: "comment written by another delimiter is recognised",
			snapshot: Snapshot{
				FileExtensions:  []string{".js"},
				CommentStyleMap: map[string]string{".js": "/* */", ".py": "#"},
			},
			doc:        Document{Path: "/ws/a.js", RelativePath: "a.js", FirstLine: "# a.js"},
			wantAction: ActionReplaced,
			wantEdit:   &Edit{Kind: EditReplaceLine, Line: 0, Text: "/* a.js */"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Synchronize(tt.snapshot, tt.doc)
			if got.Action != tt.wantAction {
				t.Fatalf("Action = %q, want %q", got.Action, tt.wantAction)
			}
			if got.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", got.Reason, tt.wantReason)
			}
			if !reflect.DeepEqual(got.Edit, tt.wantEdit) {
				t.Errorf("Edit = %+v, want %+v", got.Edit, tt.wantEdit)
			}
		})
	}
}

func TestSynchronize_Idempotent(t *testing.T) {
	s := Snapshot{
		FileExtensions:  []string{".py"},
		CommentStyleMap: map[string]string{".py": "#"},
	}
	first := Synchronize(s, Document{Path: "/ws/test.py", RelativePath: "test.py", FirstLine: `print("hello")`})
	if first.Edit == nil {
		t.Fatal("expected an edit on first run")
	}

	second := Synchronize(s, Document{Path: "/ws/test.py", RelativePath: "test.py", FirstLine: first.Edit.Text})
	if second.Action != ActionUnchanged || second.Changed() {
		t.Errorf("second run = %+v, want unchanged without edit", second)
	}
}
