package diff

import (
	"strings"
	"testing"
)

func TestUnified(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		opt      Options
		contains []string
		empty    bool
	}{
		{
			name:  "equal inputs",
			a:     "x\n",
			b:     "x\n",
			empty: true,
		},
		{
			name: "inserted header",
			a:    "package main\n",
			b:    "// main.go\n\npackage main\n",
			contains: []string{
				"--- a/main.go",
				"+++ b/main.go",
				"+// main.go\n",
				"+\n",
				" package main\n",
			},
		},
		{
			name: "replaced header",
			a:    "// old.go\npackage main\n",
			b:    "// main.go\npackage main\n",
			contains: []string{
				"-// old.go\n",
				"+// main.go\n",
			},
		},
		{
			name: "no trailing newline",
			a:    "package main",
			b:    "// main.go\n\npackage main",
			contains: []string{
				"+// main.go\n",
				" package main\n",
			},
		},
		{
			name:     "oversize",
			a:        strings.Repeat("a", 100),
			b:        strings.Repeat("b", 100),
			opt:      Options{MaxBytes: 50},
			contains: []string{"diff omitted"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Unified("main.go", tt.a, tt.b, tt.opt)
			if tt.empty {
				if got != "" {
					t.Fatalf("Unified() = %q, want empty", got)
				}
				return
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("Unified() missing %q in:\n%s", want, got)
				}
			}
		})
	}
}
