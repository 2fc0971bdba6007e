package languages

import (
	"context"
	"os"
	"path/filepath"
	"sort"

	"github.com/getlawrence/insert-filename/internal/filecomment"
	"github.com/go-enry/go-enry/v2"
)

// Detect returns the enry language for a file. The extension is trusted when
// it is unambiguous; otherwise content is used. content may be nil, in which
// case it is read from disk on demand.
func Detect(path string, content []byte) string {
	lang, safe := enry.GetLanguageByExtension(path)
	if safe && lang != "" {
		return lang
	}
	if content == nil {
		data, err := os.ReadFile(path)
		if err != nil {
			return lang
		}
		content = data
	}
	return enry.GetLanguage(filepath.Base(path), content)
}

// Suggestion is a commentStyleMap entry proposed for a workspace.
type Suggestion struct {
	Extension string `json:"extension" yaml:"extension"`
	Language  string `json:"language" yaml:"language"`
	Style     string `json:"style" yaml:"style"`
	Files     int    `json:"files" yaml:"files"`
}

// Suggest detects the language of every file and proposes one style per
// extension, most common extensions first. relPaths are slash separated and
// relative to root. Vendored files and languages without a preset are ignored.
func (r *Registry) Suggest(ctx context.Context, root string, relPaths []string) ([]Suggestion, error) {
	counts := make(map[string]map[string]int) // ext -> language -> files

	for _, rel := range relPaths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ext := filecomment.Extension(rel)
		if ext == "" || ext == "." || enry.IsVendor(rel) {
			continue
		}
		lang := Detect(filepath.Join(root, filepath.FromSlash(rel)), nil)
		if lang == "" {
			continue
		}
		if _, ok := r.Get(lang); !ok {
			continue
		}
		if counts[ext] == nil {
			counts[ext] = make(map[string]int)
		}
		counts[ext][lang]++
	}

	out := make([]Suggestion, 0, len(counts))
	for ext, langs := range counts {
		lang, total := findMostCommonLanguage(langs)
		preset, ok := r.Get(lang)
		if !ok {
			continue
		}
		out = append(out, Suggestion{Extension: ext, Language: preset.Name, Style: preset.Style, Files: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Files != out[j].Files {
			return out[i].Files > out[j].Files
		}
		return out[i].Extension < out[j].Extension
	})
	return out, nil
}

// findMostCommonLanguage returns the winning language and the file count over
// all languages. Ties go to the alphabetically first name.
func findMostCommonLanguage(langCounts map[string]int) (string, int) {
	primary, best, total := "", 0, 0
	for lang, count := range langCounts {
		total += count
		if count > best || (count == best && lang < primary) {
			primary, best = lang, count
		}
	}
	return primary, total
}
