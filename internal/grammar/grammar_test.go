package grammar

import (
	"context"
	"testing"

	"github.com/getlawrence/insert-filename/internal/filecomment"
)

func TestCheck(t *testing.T) {
	c := NewChecker()

	tests := []struct {
		ext   string
		style string
		want  Verdict
	}{
		{".go", "//", VerdictOK},
		{".go", "/* */", VerdictOK},
		{".go", "#", VerdictInvalid},
		{".py", "#", VerdictOK},
		{".py", "//", VerdictInvalid},
		{".js", "//", VerdictOK},
		{".js", "/* */", VerdictOK},
		{".ts", "//", VerdictOK},
		{".rs", "//", VerdictOK},
		{".rb", "#", VerdictOK},
		{".sh", "#", VerdictOK},
		{".css", "/* */", VerdictOK},
		{".go", "", VerdictInvalid},
		{".lua", "--", VerdictUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.ext+" "+tt.style, func(t *testing.T) {
			got, err := c.Check(context.Background(), tt.ext, tt.style)
			if err != nil {
				t.Fatalf("Check() error = %v", err)
			}
			if got.Verdict != tt.want {
				t.Errorf("Check(%q, %q) = %s (%s), want %s", tt.ext, tt.style, got.Verdict, got.Detail, tt.want)
			}
		})
	}
}

func TestCheckSnapshot(t *testing.T) {
	snap := filecomment.Snapshot{
		FileExtensions:  []string{".go", ".py", ".txt"},
		CommentStyleMap: map[string]string{".go": "//", ".py": "//"},
	}
	results, err := NewChecker().CheckSnapshot(context.Background(), snap)
	if err != nil {
		t.Fatalf("CheckSnapshot() error = %v", err)
	}
	want := []Verdict{VerdictOK, VerdictInvalid, VerdictInvalid}
	if len(results) != len(want) {
		t.Fatalf("got %d results, want %d", len(results), len(want))
	}
	for i, r := range results {
		if r.Verdict != want[i] {
			t.Errorf("%s: verdict = %s, want %s", r.Extension, r.Verdict, want[i])
		}
	}
	if results[0].Sample != "// sample.go" {
		t.Errorf("sample = %q, want %q", results[0].Sample, "// sample.go")
	}
}
