// Package grammar checks comment delimiters against real language grammars.
// A configured style is rendered into a one-line sample and parsed with the
// tree-sitter grammar registered for the extension; the style is good when
// the whole sample parses as a single comment node.
package grammar

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/getlawrence/insert-filename/internal/filecomment"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/bash"
	"github.com/smacker/go-tree-sitter/csharp"
	"github.com/smacker/go-tree-sitter/css"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/java"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/smacker/go-tree-sitter/ruby"
	"github.com/smacker/go-tree-sitter/rust"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// Verdict is the outcome of a Check.
type Verdict string

const (
	VerdictOK      Verdict = "ok"
	VerdictInvalid Verdict = "invalid"
	VerdictUnknown Verdict = "unknown"
)

// Result describes one checked style.
type Result struct {
	Extension string  `json:"extension" yaml:"extension"`
	Style     string  `json:"style" yaml:"style"`
	Sample    string  `json:"sample" yaml:"sample"`
	Verdict   Verdict `json:"verdict" yaml:"verdict"`
	Detail    string  `json:"detail,omitempty" yaml:"detail,omitempty"`
}

type Checker struct {
	languages map[string]*sitter.Language
}

// NewChecker registers the bundled grammars by extension.
func NewChecker() *Checker {
	c := &Checker{languages: make(map[string]*sitter.Language)}
	c.Register(golang.GetLanguage(), ".go")
	c.Register(python.GetLanguage(), ".py", ".pyi")
	c.Register(javascript.GetLanguage(), ".js", ".mjs", ".cjs", ".jsx")
	c.Register(typescript.GetLanguage(), ".ts", ".mts", ".cts")
	c.Register(java.GetLanguage(), ".java")
	c.Register(ruby.GetLanguage(), ".rb", ".rake")
	c.Register(csharp.GetLanguage(), ".cs")
	c.Register(rust.GetLanguage(), ".rs")
	c.Register(bash.GetLanguage(), ".sh", ".bash")
	c.Register(css.GetLanguage(), ".css")
	return c
}

func (c *Checker) Register(lang *sitter.Language, exts ...string) {
	for _, ext := range exts {
		c.languages[ext] = lang
	}
}

// Extensions lists the extensions with a grammar.
func (c *Checker) Extensions() []string {
	out := make([]string, 0, len(c.languages))
	for ext := range c.languages {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}

// Check renders style for a file named "sample<ext>" and parses it.
func (c *Checker) Check(ctx context.Context, ext, style string) (Result, error) {
	tpl := filecomment.ParseTemplate(style)
	sample := strings.TrimSpace(tpl.Render("sample" + ext))
	res := Result{Extension: ext, Style: style, Sample: sample}

	lang, ok := c.languages[ext]
	if !ok {
		res.Verdict = VerdictUnknown
		res.Detail = "no grammar for extension"
		return res, nil
	}
	if tpl.Open == "" {
		res.Verdict = VerdictInvalid
		res.Detail = "empty comment style"
		return res, nil
	}

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(lang)

	content := []byte(sample + "\n")
	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return res, fmt.Errorf("failed to parse sample for %s: %w", ext, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		res.Verdict = VerdictInvalid
		res.Detail = "sample does not parse"
		return res, nil
	}
	if root.NamedChildCount() == 0 {
		res.Verdict = VerdictInvalid
		res.Detail = "sample produced no nodes"
		return res, nil
	}

	first := root.NamedChild(0)
	if !strings.Contains(first.Type(), "comment") {
		res.Verdict = VerdictInvalid
		res.Detail = fmt.Sprintf("first node is %s, not a comment", first.Type())
		return res, nil
	}
	if int(first.EndByte()) < len(sample) {
		res.Verdict = VerdictInvalid
		res.Detail = fmt.Sprintf("comment ends early: %q", first.Content(content))
		return res, nil
	}

	res.Verdict = VerdictOK
	return res, nil
}

// CheckSnapshot checks every extension in fileExtensions against the style it
// resolves to. Extensions without a style are reported as invalid.
func (c *Checker) CheckSnapshot(ctx context.Context, snap filecomment.Snapshot) ([]Result, error) {
	var out []Result
	for _, ext := range snap.FileExtensions {
		tpl, ok := snap.ResolveTemplate(ext)
		if !ok {
			out = append(out, Result{Extension: ext, Verdict: VerdictInvalid, Detail: "no comment style configured"})
			continue
		}
		res, err := c.Check(ctx, ext, tpl.Raw)
		if err != nil {
			return out, err
		}
		out = append(out, res)
	}
	return out, nil
}
