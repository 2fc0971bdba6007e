package cmd

import (
	"fmt"

	"github.com/getlawrence/insert-filename/internal/grammar"
	"github.com/getlawrence/insert-filename/internal/ui"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check configured comment styles against language grammars",
	Long: `Validate renders a sample filename comment for every extension in
fileExtensions and parses it with the tree-sitter grammar for that language.
A style fails when the sample is not parsed as a single comment.

Extensions without a bundled grammar are reported as unknown and do not fail
the command.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	app, err := appConfig(cmd)
	if err != nil {
		return err
	}
	cfg, err := app.Source().Load()
	if err != nil {
		return err
	}

	results, err := grammar.NewChecker().CheckSnapshot(cmd.Context(), cfg.Snapshot())
	if err != nil {
		return err
	}
	if err := writeOutput(cmd.OutOrStdout(), app.Output, results, func() string {
		return ui.RenderValidation(results)
	}); err != nil {
		return err
	}

	invalid := 0
	for _, r := range results {
		if r.Verdict == grammar.VerdictInvalid {
			invalid++
		}
	}
	if invalid > 0 {
		return fmt.Errorf("%d comment styles failed validation", invalid)
	}
	return nil
}
