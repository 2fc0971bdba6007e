package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/getlawrence/insert-filename/internal/config"
	"github.com/getlawrence/insert-filename/internal/filecomment"
	"github.com/getlawrence/insert-filename/internal/languages"
	"github.com/getlawrence/insert-filename/internal/logger"
	"github.com/getlawrence/insert-filename/internal/ui"
	"github.com/getlawrence/insert-filename/internal/workspace"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Detect languages in the workspace and write a starter config",
	Long: `Init scans the workspace, detects the languages in use and writes a config
file enabling every extension that has a known comment style.

The file is written to --config when given, otherwise to
.insert-filename.<format> in the workspace root.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().String("format", "yaml", "Config format (json, yaml, toml, ini, hcl)")
	initCmd.Flags().Bool("force", false, "Overwrite an existing config file")
	initCmd.Flags().Bool("use-path", false, "Write the workspace-relative path instead of the file name")
}

type initResult struct {
	Path        string                 `json:"path" yaml:"path"`
	Suggestions []languages.Suggestion `json:"suggestions" yaml:"suggestions"`
	Settings    filecomment.Snapshot   `json:"settings" yaml:"settings"`
}

func runInit(cmd *cobra.Command, args []string) error {
	app, err := appConfig(cmd)
	if err != nil {
		return err
	}
	format, _ := cmd.Flags().GetString("format")
	force, _ := cmd.Flags().GetBool("force")
	usePath, _ := cmd.Flags().GetBool("use-path")

	target := app.ConfigPath
	if target == "" {
		target = filepath.Join(app.Root, ".insert-filename."+format)
	}
	if _, err := config.FormatFor(target); err != nil {
		return err
	}
	if _, err := os.Stat(target); err == nil && !force {
		return fmt.Errorf("config already exists: %s (use --force to overwrite)", target)
	}

	defaults := config.DefaultConfig()
	ws := app.Workspace()
	ctx := cmd.Context()

	var suggestions []languages.Suggestion
	scan := func(ctx context.Context) error {
		files, err := ws.Walk(ctx, nil, workspace.WalkOptions{
			Exclude:      defaults.Workspace.Exclude,
			MaxFileBytes: defaults.Workspace.MaxFileBytes,
		})
		if err != nil {
			return err
		}
		rels := make([]string, 0, len(files))
		for _, f := range files {
			rels = append(rels, f.RelPath)
		}
		suggestions, err = languages.DefaultRegistry.Suggest(ctx, ws.Root, rels)
		return err
	}
	if app.Output == "text" && logger.IsInteractive() {
		err = ui.RunSpinner(ctx, "Detecting languages...", scan)
	} else {
		err = scan(ctx)
	}
	if err != nil {
		return err
	}

	snap := filecomment.Snapshot{
		UsePath:         usePath,
		FileExtensions:  make([]string, 0, len(suggestions)),
		CommentStyleMap: make(map[string]string, len(suggestions)),
	}
	for _, s := range suggestions {
		snap.FileExtensions = append(snap.FileExtensions, s.Extension)
		snap.CommentStyleMap[s.Extension] = s.Style
	}

	if err := config.Save(target, snap, defaults.Workspace); err != nil {
		return err
	}
	app.Logger.Logf("Wrote %s\n", target)

	result := initResult{Path: target, Suggestions: suggestions, Settings: snap}
	return writeOutput(cmd.OutOrStdout(), app.Output, result, func() string {
		return ui.RenderSuggestions(suggestions) + fmt.Sprintf("\n✅ Wrote %s\n", target)
	})
}
