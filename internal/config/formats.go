package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/iancoleman/orderedmap"
	"github.com/tailscale/hujson"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"
)

// Format is a configuration file syntax.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatINI  Format = "ini"
	FormatHCL  Format = "hcl"
)

// Formats lists every supported syntax.
var Formats = []Format{FormatYAML, FormatJSON, FormatTOML, FormatINI, FormatHCL}

// FormatFor picks a format from a file name.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".ini":
		return FormatINI, nil
	case ".hcl":
		return FormatHCL, nil
	default:
		return "", fmt.Errorf("unsupported config file type %q", filepath.Ext(path))
	}
}

// decode turns raw file bytes into an ordered tree. Nested sections are
// *orderedmap.OrderedMap (or orderedmap.OrderedMap, as produced by the JSON
// decoder for nested objects), lists are []any.
func decode(format Format, data []byte) (*orderedmap.OrderedMap, error) {
	switch format {
	case FormatJSON:
		return decodeJSON(data)
	case FormatYAML:
		return decodeYAML(data)
	case FormatTOML:
		return decodeTOML(data)
	case FormatINI:
		return decodeINI(data)
	case FormatHCL:
		return decodeHCL(data)
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

// decodeJSON accepts JSON with comments and trailing commas, the way editor
// settings files are usually written.
func decodeJSON(data []byte) (*orderedmap.OrderedMap, error) {
	std, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	tree := orderedmap.New()
	if err := json.Unmarshal(std, tree); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return tree, nil
}

func decodeYAML(data []byte) (*orderedmap.OrderedMap, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if len(doc.Content) == 0 {
		return orderedmap.New(), nil
	}
	v, err := yamlValue(doc.Content[0])
	if err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	tree, ok := v.(*orderedmap.OrderedMap)
	if !ok {
		return nil, fmt.Errorf("failed to parse YAML: top level must be a mapping")
	}
	return tree, nil
}

func yamlValue(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.MappingNode:
		om := orderedmap.New()
		for i := 0; i+1 < len(n.Content); i += 2 {
			v, err := yamlValue(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			om.Set(n.Content[i].Value, v)
		}
		return om, nil
	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := yamlValue(c)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case yaml.AliasNode:
		return yamlValue(n.Alias)
	default:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	}
}

func decodeTOML(data []byte) (*orderedmap.OrderedMap, error) {
	var raw map[string]any
	meta, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	return tomlTree(raw, meta, nil), nil
}

// tomlTree rebuilds the decoded map in document order using the key
// metadata BurntSushi/toml records while decoding.
func tomlTree(m map[string]any, meta toml.MetaData, prefix []string) *orderedmap.OrderedMap {
	om := orderedmap.New()
	for _, k := range tomlKeysInOrder(meta, prefix, m) {
		v := m[k]
		if child, ok := v.(map[string]any); ok {
			om.Set(k, tomlTree(child, meta, append(append([]string{}, prefix...), k)))
			continue
		}
		om.Set(k, v)
	}
	return om
}

func tomlKeysInOrder(meta toml.MetaData, prefix []string, m map[string]any) []string {
	seen := make(map[string]bool)
	var keys []string
	for _, key := range meta.Keys() {
		if len(key) != len(prefix)+1 {
			continue
		}
		match := true
		for i := range prefix {
			if key[i] != prefix[i] {
				match = false
				break
			}
		}
		name := key[len(key)-1]
		if !match || seen[name] {
			continue
		}
		if _, ok := m[name]; ok {
			seen[name] = true
			keys = append(keys, name)
		}
	}
	// Anything the metadata did not cover keeps a stable order.
	var rest []string
	for k := range m {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(keys, rest...)
}

// decodeINI maps "[a.b]" sections onto nested trees. Inline comments are
// disabled so "#" and ";" can be used as delimiter values.
func decodeINI(data []byte) (*orderedmap.OrderedMap, error) {
	file, err := ini.LoadSources(ini.LoadOptions{IgnoreInlineComment: true}, data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse INI: %w", err)
	}
	tree := orderedmap.New()
	for _, section := range file.Sections() {
		if len(section.Keys()) == 0 {
			continue
		}
		target := tree
		if name := section.Name(); name != ini.DefaultSection {
			for _, part := range strings.Split(name, ".") {
				target = childMap(target, part)
			}
		}
		for _, key := range section.Keys() {
			target.Set(key.Name(), key.Value())
		}
	}
	return tree, nil
}

func childMap(parent *orderedmap.OrderedMap, key string) *orderedmap.OrderedMap {
	if v, ok := parent.Get(key); ok {
		if om := toOrderedMapPtr(v); om != nil {
			return om
		}
	}
	child := orderedmap.New()
	parent.Set(key, child)
	return child
}

type hclFile struct {
	InsertFilename *hclSection   `hcl:"insertFilename,block"`
	Workspace      *hclWorkspace `hcl:"workspace,block"`
}

type hclSection struct {
	UsePath         *bool             `hcl:"usePath,optional"`
	CommentStyle    *string           `hcl:"commentStyle,optional"`
	FileExtensions  []string          `hcl:"fileExtensions,optional"`
	CommentStyleMap map[string]string `hcl:"commentStyleMap,optional"`
}

type hclWorkspace struct {
	Exclude      []string `hcl:"exclude,optional"`
	MaxFileBytes *int64   `hcl:"maxFileBytes,optional"`
}

// hclEvalContext exposes the process environment as env.NAME.
func hclEvalContext() *hcl.EvalContext {
	vars := make(map[string]cty.Value)
	for _, kv := range os.Environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !hclsyntax.ValidIdentifier(name) {
			continue
		}
		vars[name] = cty.StringVal(value)
	}
	env := cty.EmptyObjectVal
	if len(vars) > 0 {
		env = cty.ObjectVal(vars)
	}
	return &hcl.EvalContext{Variables: map[string]cty.Value{"env": env}}
}

func decodeHCL(data []byte) (*orderedmap.OrderedMap, error) {
	var f hclFile
	if err := hclsimple.Decode("config.hcl", data, hclEvalContext(), &f); err != nil {
		return nil, fmt.Errorf("failed to parse HCL: %w", err)
	}
	tree := orderedmap.New()
	if s := f.InsertFilename; s != nil {
		section := orderedmap.New()
		if s.UsePath != nil {
			section.Set(keyUsePath, *s.UsePath)
		}
		if s.CommentStyle != nil {
			section.Set(keyCommentStyle, *s.CommentStyle)
		}
		if s.FileExtensions != nil {
			section.Set(keyFileExtensions, toAnySlice(s.FileExtensions))
		}
		if s.CommentStyleMap != nil {
			styles := orderedmap.New()
			keys := make([]string, 0, len(s.CommentStyleMap))
			for k := range s.CommentStyleMap {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				styles.Set(k, s.CommentStyleMap[k])
			}
			section.Set(keyCommentStyleMap, styles)
		}
		tree.Set(SectionName, section)
	}
	if w := f.Workspace; w != nil {
		ws := orderedmap.New()
		if w.Exclude != nil {
			ws.Set(keyExclude, toAnySlice(w.Exclude))
		}
		if w.MaxFileBytes != nil {
			ws.Set(keyMaxFileBytes, *w.MaxFileBytes)
		}
		tree.Set(workspaceSection, ws)
	}
	return tree, nil
}

func toAnySlice(in []string) []any {
	out := make([]any, len(in))
	for i, s := range in {
		out[i] = s
	}
	return out
}
