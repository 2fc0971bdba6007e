package cmd

import (
	"strings"

	"github.com/getlawrence/insert-filename/internal/config"
	"github.com/getlawrence/insert-filename/internal/filecomment"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings after files and environment are applied",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
}

type effectiveConfig struct {
	Source    string                 `json:"source" yaml:"source"`
	Settings  filecomment.Snapshot   `json:"settings" yaml:"settings"`
	Workspace config.WorkspaceConfig `json:"workspace" yaml:"workspace"`
	Defaulted []string               `json:"defaulted,omitempty" yaml:"defaulted,omitempty"`
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	app, err := appConfig(cmd)
	if err != nil {
		return err
	}
	cfg, err := app.Source().Load()
	if err != nil {
		return err
	}

	source := cfg.Path
	if source == "" {
		source = "(defaults)"
	}
	out := effectiveConfig{
		Source:    source,
		Settings:  cfg.Snapshot(),
		Workspace: cfg.Workspace,
		Defaulted: cfg.Defaulted(),
	}

	data, err := config.Encode(config.FormatYAML, out.Settings, out.Workspace)
	if err != nil {
		return err
	}
	text := "# source: " + source + "\n"
	if len(out.Defaulted) > 0 {
		text += "# defaults: " + strings.Join(out.Defaulted, ", ") + "\n"
	}
	text += string(data)

	return writeOutput(cmd.OutOrStdout(), app.Output, out, func() string { return text })
}
