// Package languages maps source languages to the comment delimiter used for
// their filename header, and detects languages with go-enry.
package languages

import (
	"sort"
	"strings"
)

// Language is one preset: an enry language name, the delimiter template
// written into commentStyleMap, and the extensions it is usually stored under.
type Language struct {
	Name       string   `json:"name" yaml:"name"`
	Style      string   `json:"style" yaml:"style"`
	Extensions []string `json:"extensions" yaml:"extensions"`
}

type Registry struct {
	byName map[string]Language
	byExt  map[string]string
}

// DefaultRegistry holds the built-in presets.
var DefaultRegistry = NewRegistry(Presets...)

func NewRegistry(langs ...Language) *Registry {
	r := &Registry{
		byName: make(map[string]Language),
		byExt:  make(map[string]string),
	}
	for _, l := range langs {
		r.Register(l)
	}
	return r
}

// Register adds or replaces a language. The first language registered for an
// extension keeps it.
func (r *Registry) Register(l Language) {
	r.byName[strings.ToLower(l.Name)] = l
	for _, ext := range l.Extensions {
		if _, taken := r.byExt[ext]; !taken {
			r.byExt[ext] = l.Name
		}
	}
}

// Get looks a language up by name, case-insensitively.
func (r *Registry) Get(name string) (Language, bool) {
	l, ok := r.byName[strings.ToLower(name)]
	return l, ok
}

// ByExtension returns the preset that owns ext (".go").
func (r *Registry) ByExtension(ext string) (Language, bool) {
	name, ok := r.byExt[ext]
	if !ok {
		return Language{}, false
	}
	return r.Get(name)
}

// All returns every language sorted by name.
func (r *Registry) All() []Language {
	out := make([]Language, 0, len(r.byName))
	for _, l := range r.byName {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
