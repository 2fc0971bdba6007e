package cmd

import (
	"context"
	"fmt"

	"github.com/getlawrence/insert-filename/internal/logger"
	"github.com/getlawrence/insert-filename/internal/ui"
	"github.com/getlawrence/insert-filename/internal/workspace"
	"github.com/spf13/cobra"
)

// applyCmd represents the apply command
var applyCmd = &cobra.Command{
	Use:   "apply [paths...]",
	Short: "Insert or refresh filename comments across a workspace",
	Long: `Apply simulates a save of every matching file: files whose extension is
listed in fileExtensions get their first-line filename comment inserted or
refreshed.

Example usage:
  insert-filename apply                  # Whole workspace
  insert-filename apply src/ main.go     # Specific files and directories
  insert-filename apply --dry-run --diff # Preview the edits`,
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)

	applyCmd.Flags().Bool("dry-run", false, "Show what would change without writing files")
	applyCmd.Flags().Bool("diff", false, "Include a unified diff for every changed file")
}

func runApply(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	showDiff, _ := cmd.Flags().GetBool("diff")

	report, err := runWorkspace(cmd, args, workspace.RunOptions{DryRun: dryRun, Diff: showDiff})
	if err != nil {
		return err
	}
	if failed := report.Failed(); len(failed) > 0 {
		return fmt.Errorf("%d files could not be processed", len(failed))
	}
	return nil
}

// runWorkspace walks the workspace, runs the save hook over every candidate
// and prints the report in the selected output format.
func runWorkspace(cmd *cobra.Command, args []string, opts workspace.RunOptions) (*workspace.Report, error) {
	app, err := appConfig(cmd)
	if err != nil {
		return nil, err
	}
	ctx := cmd.Context()
	src := app.Source()

	// Config errors fail the command rather than skipping each file.
	cfg, err := src.Load()
	if err != nil {
		return nil, err
	}
	snap := cfg.Snapshot()
	if cfg.Path != "" {
		app.Logger.Logf("Using config: %s\n", cfg.Path)
	}

	ws := app.Workspace()
	files, err := ws.Walk(ctx, args, workspace.WalkOptions{
		Exclude:      cfg.Workspace.Exclude,
		Extensions:   snap.FileExtensions,
		MaxFileBytes: cfg.Workspace.MaxFileBytes,
	})
	if err != nil {
		return nil, err
	}
	app.Logger.Logf("Found %d candidate files in %s\n", len(files), ws.Root)

	runner := workspace.NewRunner(ws, src, app.Logger)

	var report *workspace.Report
	if app.Output == "text" && !app.Verbose && logger.IsInteractive() {
		report, err = runWithProgress(ctx, runner, files, opts)
	} else {
		report, err = runner.Run(ctx, files, opts)
	}
	if err != nil {
		return nil, err
	}

	if err := writeOutput(cmd.OutOrStdout(), app.Output, report, func() string {
		return ui.RenderReport(report, app.Verbose)
	}); err != nil {
		return nil, err
	}
	return report, nil
}

func runWithProgress(ctx context.Context, runner *workspace.Runner, files []workspace.File, opts workspace.RunOptions) (*workspace.Report, error) {
	progress := logger.NewUILogger()
	spinner := progress.StartSpinner(fmt.Sprintf("Processing %d files...", len(files)))
	opts.OnFile = func(i, total int, f workspace.File) {
		spinner.Update(fmt.Sprintf("[%d/%d] %s", i+1, total, f.RelPath))
	}

	report, err := runner.Run(ctx, files, opts)
	if err != nil {
		spinner.Fail()
		return nil, err
	}
	spinner.Update(fmt.Sprintf("Processed %d files", len(files)))
	spinner.Stop()
	return report, nil
}
