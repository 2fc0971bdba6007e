// Package config loads insert-filename settings from a workspace.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/getlawrence/insert-filename/internal/editor"
	"github.com/getlawrence/insert-filename/internal/filecomment"
	"github.com/iancoleman/orderedmap"
)

// SectionName is the settings namespace, shared with the VS Code extension
// settings ("insertFilename.usePath" and friends).
const SectionName = "insertFilename"

const (
	keyUsePath         = editor.KeyUsePath
	keyCommentStyle    = editor.KeyCommentStyle
	keyFileExtensions  = editor.KeyFileExtensions
	keyCommentStyleMap = editor.KeyCommentStyleMap

	workspaceSection = "workspace"
	keyExclude       = "exclude"
	keyMaxFileBytes  = "maxFileBytes"
)

// Config is the effective configuration for one workspace.
type Config struct {
	// Path is the file the configuration came from, "" for defaults only.
	Path string

	// Settings is the insertFilename section.
	Settings *Settings

	// Workspace controls which files apply/check visit.
	Workspace WorkspaceConfig
}

// WorkspaceConfig contains walker settings.
type WorkspaceConfig struct {
	// Paths to exclude when walking the workspace
	Exclude []string `json:"exclude" yaml:"exclude" toml:"exclude"`

	// Files larger than this are skipped; 0 means no limit
	MaxFileBytes int64 `json:"maxFileBytes" yaml:"maxFileBytes" toml:"maxFileBytes"`
}

// DefaultConfig returns the default configuration. The synchronizer settings
// start empty: nothing is touched until extensions and styles are configured.
func DefaultConfig() *Config {
	return &Config{
		Settings: newSettings(),
		Workspace: WorkspaceConfig{
			Exclude: []string{
				".git",
				".hg",
				".svn",
				"node_modules",
				"vendor",
				"__pycache__",
				".venv",
				"venv",
				"build",
				"dist",
				"target",
			},
			MaxFileBytes: 4 << 20,
		},
	}
}

// Snapshot reads the synchronizer settings with their defaults applied.
func (c *Config) Snapshot() filecomment.Snapshot {
	return editor.ReadSnapshot(c.Settings)
}

// Defaulted lists the synchronizer keys that no file or environment variable
// set, in schema order.
func (c *Config) Defaulted() []string {
	var keys []string
	for _, key := range []string{keyUsePath, keyCommentStyle, keyFileExtensions, keyCommentStyleMap} {
		if !c.Settings.Has(key) {
			keys = append(keys, key)
		}
	}
	return keys
}

// LoadConfig loads configuration from a file. An empty path returns defaults.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()
	if configPath == "" {
		return config, nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	format, err := FormatFor(configPath)
	if err != nil {
		return nil, err
	}

	tree, err := decode(format, data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	if err := config.apply(tree); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}
	config.Path = configPath
	return config, nil
}

// apply copies recognised values from a decoded tree. Both a nested
// "insertFilename" section and flat "insertFilename.key" entries are read;
// flat entries win when both are present.
func (c *Config) apply(tree *orderedmap.OrderedMap) error {
	if v, ok := tree.Get(SectionName); ok {
		section := toOrderedMapPtr(v)
		if section == nil {
			return fmt.Errorf("%q must be a mapping", SectionName)
		}
		for _, k := range section.Keys() {
			val, _ := section.Get(k)
			c.Settings.Set(k, val)
		}
	}
	prefix := SectionName + "."
	for _, k := range tree.Keys() {
		if strings.HasPrefix(k, prefix) {
			val, _ := tree.Get(k)
			c.Settings.Set(strings.TrimPrefix(k, prefix), val)
		}
	}

	v, ok := tree.Get(workspaceSection)
	if !ok {
		return nil
	}
	ws := toOrderedMapPtr(v)
	if ws == nil {
		return fmt.Errorf("%q must be a mapping", workspaceSection)
	}
	if _, ok := ws.Get(keyExclude); ok {
		c.Workspace.Exclude = (&Settings{values: ws}).StringSlice(keyExclude, c.Workspace.Exclude)
	}
	if raw, ok := ws.Get(keyMaxFileBytes); ok {
		n, err := toInt64(raw)
		if err != nil {
			return fmt.Errorf("%s.%s: %w", workspaceSection, keyMaxFileBytes, err)
		}
		c.Workspace.MaxFileBytes = n
	}
	return nil
}

// configCandidates are searched in order; the first existing file wins.
var configCandidates = []string{
	".insert-filename.json",
	".insert-filename.yaml",
	".insert-filename.yml",
	".insert-filename.toml",
	".insert-filename.ini",
	".insert-filename.hcl",
}

// vscodeSettings is only consulted inside the workspace root.
var vscodeSettings = filepath.Join(".vscode", "settings.json")

// findConfigFile looks for config files in the workspace root, then the
// home directory.
func findConfigFile(root string) string {
	for _, candidate := range append(append([]string{}, configCandidates...), vscodeSettings) {
		p := filepath.Join(root, candidate)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		for _, candidate := range configCandidates {
			p := filepath.Join(homeDir, candidate)
			if _, err := os.Stat(p); err == nil {
				return p
			}
		}
	}

	return ""
}

// GetConfigPath returns the config file path to use for root.
func GetConfigPath(root, explicitPath string) string {
	if explicitPath != "" {
		return explicitPath
	}
	return findConfigFile(root)
}
