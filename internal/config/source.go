package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/getlawrence/insert-filename/internal/editor"
	"github.com/joho/godotenv"
)

// Environment overrides, applied after the config file.
const (
	EnvUsePath        = "INSERT_FILENAME_USE_PATH"
	EnvCommentStyle   = "INSERT_FILENAME_COMMENT_STYLE"
	EnvFileExtensions = "INSERT_FILENAME_FILE_EXTENSIONS"
)

// Source locates and reads configuration for a workspace. It holds no decoded
// state: every Load reads the files again, so edits to the config take effect
// on the next save.
type Source struct {
	// Root is the workspace root used for discovery and .env lookup.
	Root string
	// Path overrides discovery when set.
	Path string
}

// Load reads the config file, then applies .env and process environment
// overrides. Process environment wins over .env.
func (s Source) Load() (*Config, error) {
	cfg, err := LoadConfig(GetConfigPath(s.Root, s.Path))
	if err != nil {
		return nil, err
	}

	dotenv, err := godotenv.Read(filepath.Join(s.Root, ".env"))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}
	getEnv := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}

	if v, ok := getEnv(EnvUsePath); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", EnvUsePath, v, err)
		}
		cfg.Settings.Set(keyUsePath, b)
	}
	if v, ok := getEnv(EnvCommentStyle); ok {
		cfg.Settings.Set(keyCommentStyle, v)
	}
	if v, ok := getEnv(EnvFileExtensions); ok {
		cfg.Settings.Set(keyFileExtensions, splitList(v))
	}
	return cfg, nil
}

// Configuration implements editor.ConfigProvider.
func (s Source) Configuration() (editor.Configuration, error) {
	cfg, err := s.Load()
	if err != nil {
		return nil, err
	}
	return cfg.Settings, nil
}

var _ editor.ConfigProvider = Source{}
