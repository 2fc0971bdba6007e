package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/getlawrence/insert-filename/internal/filecomment"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/iancoleman/orderedmap"
	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"
)

// fileLayout is the on-disk shape written by Save.
type fileLayout struct {
	InsertFilename sectionLayout   `json:"insertFilename" yaml:"insertFilename" toml:"insertFilename"`
	Workspace      WorkspaceConfig `json:"workspace" yaml:"workspace" toml:"workspace"`
}

type sectionLayout struct {
	UsePath         bool              `json:"usePath" yaml:"usePath" toml:"usePath"`
	CommentStyle    string            `json:"commentStyle,omitempty" yaml:"commentStyle,omitempty" toml:"commentStyle,omitempty"`
	FileExtensions  []string          `json:"fileExtensions" yaml:"fileExtensions" toml:"fileExtensions"`
	CommentStyleMap map[string]string `json:"commentStyleMap" yaml:"commentStyleMap" toml:"commentStyleMap"`
}

// Save writes settings to path in the format implied by its extension.
// The parent directory is created when missing.
func Save(path string, snap filecomment.Snapshot, ws WorkspaceConfig) error {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}
	data, err := Encode(format, snap, ws)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Encode renders settings in format.
func Encode(format Format, snap filecomment.Snapshot, ws WorkspaceConfig) ([]byte, error) {
	layout := fileLayout{
		InsertFilename: sectionLayout{
			UsePath:         snap.UsePath,
			CommentStyle:    snap.CommentStyle,
			FileExtensions:  snap.FileExtensions,
			CommentStyleMap: snap.CommentStyleMap,
		},
		Workspace: ws,
	}
	if layout.InsertFilename.FileExtensions == nil {
		layout.InsertFilename.FileExtensions = []string{}
	}
	if layout.InsertFilename.CommentStyleMap == nil {
		layout.InsertFilename.CommentStyleMap = map[string]string{}
	}

	switch format {
	case FormatJSON:
		return encodeJSON(layout)
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(layout); err != nil {
			return nil, fmt.Errorf("failed to marshal config: %w", err)
		}
		return buf.Bytes(), nil
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(layout); err != nil {
			return nil, fmt.Errorf("failed to marshal config: %w", err)
		}
		return buf.Bytes(), nil
	case FormatINI:
		return encodeINI(layout)
	case FormatHCL:
		return encodeHCL(layout), nil
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

// encodeJSON keeps the field order of the layout and sorts map keys.
func encodeJSON(layout fileLayout) ([]byte, error) {
	section := orderedmap.New()
	section.Set(keyUsePath, layout.InsertFilename.UsePath)
	if layout.InsertFilename.CommentStyle != "" {
		section.Set(keyCommentStyle, layout.InsertFilename.CommentStyle)
	}
	section.Set(keyFileExtensions, layout.InsertFilename.FileExtensions)
	styles := orderedmap.New()
	for _, k := range sortedKeys(layout.InsertFilename.CommentStyleMap) {
		styles.Set(k, layout.InsertFilename.CommentStyleMap[k])
	}
	section.Set(keyCommentStyleMap, styles)

	root := orderedmap.New()
	root.Set(SectionName, section)
	root.Set(workspaceSection, layout.Workspace)

	data, err := json.MarshalIndent(root, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return append(data, '\n'), nil
}

func encodeINI(layout fileLayout) ([]byte, error) {
	file := ini.Empty(ini.LoadOptions{IgnoreInlineComment: true})
	section, err := file.NewSection(SectionName)
	if err != nil {
		return nil, err
	}
	s := layout.InsertFilename
	if _, err := section.NewKey(keyUsePath, strconv.FormatBool(s.UsePath)); err != nil {
		return nil, err
	}
	if s.CommentStyle != "" {
		if _, err := section.NewKey(keyCommentStyle, s.CommentStyle); err != nil {
			return nil, err
		}
	}
	if _, err := section.NewKey(keyFileExtensions, strings.Join(s.FileExtensions, ",")); err != nil {
		return nil, err
	}

	styles, err := file.NewSection(SectionName + "." + keyCommentStyleMap)
	if err != nil {
		return nil, err
	}
	for _, k := range sortedKeys(s.CommentStyleMap) {
		if _, err := styles.NewKey(k, s.CommentStyleMap[k]); err != nil {
			return nil, err
		}
	}

	ws, err := file.NewSection(workspaceSection)
	if err != nil {
		return nil, err
	}
	if _, err := ws.NewKey(keyExclude, strings.Join(layout.Workspace.Exclude, ",")); err != nil {
		return nil, err
	}
	if _, err := ws.NewKey(keyMaxFileBytes, strconv.FormatInt(layout.Workspace.MaxFileBytes, 10)); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if _, err := file.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return buf.Bytes(), nil
}

func encodeHCL(layout fileLayout) []byte {
	s := layout.InsertFilename
	section := &hclSection{
		UsePath:         &s.UsePath,
		FileExtensions:  s.FileExtensions,
		CommentStyleMap: s.CommentStyleMap,
	}
	if s.CommentStyle != "" {
		section.CommentStyle = &s.CommentStyle
	}
	maxBytes := layout.Workspace.MaxFileBytes
	doc := hclFile{
		InsertFilename: section,
		Workspace:      &hclWorkspace{Exclude: layout.Workspace.Exclude, MaxFileBytes: &maxBytes},
	}

	f := hclwrite.NewEmptyFile()
	gohcl.EncodeIntoBody(&doc, f.Body())
	return f.Bytes()
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
