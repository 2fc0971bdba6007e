package cmd

import (
	"fmt"
	"os"

	"github.com/getlawrence/insert-filename/internal/config"
	"github.com/getlawrence/insert-filename/internal/logger"
	"github.com/getlawrence/insert-filename/internal/workspace"
	"github.com/spf13/cobra"
)

// AppConfig holds all the shared configuration and dependencies
type AppConfig struct {
	Logger     logger.Logger
	Verbose    bool
	Output     string
	ConfigPath string
	Root       string
}

// NewAppConfig creates a new configuration instance
func NewAppConfig(log logger.Logger) *AppConfig {
	return &AppConfig{Logger: log, Output: "text"}
}

// appConfig returns the AppConfig from the command context with the global
// flags applied. Commands run outside Execute (tests) get a fresh one.
func appConfig(cmd *cobra.Command) (*AppConfig, error) {
	app, _ := cmd.Context().Value(ConfigKey).(*AppConfig)
	if app == nil {
		app = NewAppConfig(nil)
	}

	app.Verbose, _ = cmd.Flags().GetBool("verbose")
	app.Output, _ = cmd.Flags().GetString("output")
	app.ConfigPath, _ = cmd.Flags().GetString("config")
	root, _ := cmd.Flags().GetString("workspace")

	switch app.Output {
	case "text", "json", "yaml":
	default:
		return nil, fmt.Errorf("invalid output format %q. Valid options: text, json, yaml", app.Output)
	}

	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		root = wd
	}
	ws, err := workspace.New(root)
	if err != nil {
		return nil, err
	}
	if info, err := os.Stat(ws.Root); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("workspace does not exist: %s", ws.Root)
	}
	app.Root = ws.Root

	if app.Logger == nil {
		app.Logger = logger.Verbose{Logger: logger.NewStderrLogger(), Enabled: app.Verbose}
	}
	return app, nil
}

// Source is the configuration provider for the workspace.
func (a *AppConfig) Source() config.Source {
	return config.Source{Root: a.Root, Path: a.ConfigPath}
}

func (a *AppConfig) Workspace() *workspace.Workspace {
	return &workspace.Workspace{Root: a.Root}
}
