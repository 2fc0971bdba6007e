package cmd

import (
	"errors"
	"fmt"

	"github.com/getlawrence/insert-filename/internal/workspace"
	"github.com/spf13/cobra"
)

// ErrChangesNeeded is returned by check when at least one file would change.
var ErrChangesNeeded = errors.New("filename comments are missing or stale")

var checkCmd = &cobra.Command{
	Use:   "check [paths...]",
	Short: "Report files whose filename comment is missing or stale",
	Long: `Check runs the same rules as apply without writing anything and exits
non-zero when any file would change. Suitable for pre-commit hooks and CI.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().Bool("diff", false, "Include a unified diff for every file that would change")
}

func runCheck(cmd *cobra.Command, args []string) error {
	showDiff, _ := cmd.Flags().GetBool("diff")

	report, err := runWorkspace(cmd, args, workspace.RunOptions{DryRun: true, Diff: showDiff})
	if err != nil {
		return err
	}
	if failed := report.Failed(); len(failed) > 0 {
		return fmt.Errorf("%d files could not be processed", len(failed))
	}
	if changed := report.Changed(); len(changed) > 0 {
		return fmt.Errorf("%w: %d files", ErrChangesNeeded, len(changed))
	}
	return nil
}
