package cmd

import (
	"fmt"
	"strings"

	"github.com/getlawrence/insert-filename/internal/config"
	"github.com/getlawrence/insert-filename/internal/grammar"
	"github.com/getlawrence/insert-filename/internal/languages"
	"github.com/getlawrence/insert-filename/internal/ui"
	"github.com/spf13/cobra"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List built-in comment styles, grammars and config formats",
	Long: `List displays the built-in tables insert-filename works from.

Available subcommands:
  styles    Comment style presets used by init
  grammars  Extensions validate can check with a tree-sitter grammar
  formats   Supported config file formats`,
}

var listStylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "List comment style presets",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appConfig(cmd)
		if err != nil {
			return err
		}
		langs := languages.DefaultRegistry.All()
		return writeOutput(cmd.OutOrStdout(), app.Output, langs, func() string {
			return ui.RenderStyles(langs)
		})
	},
}

var listGrammarsCmd = &cobra.Command{
	Use:   "grammars",
	Short: "List extensions with a bundled grammar",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appConfig(cmd)
		if err != nil {
			return err
		}
		exts := grammar.NewChecker().Extensions()
		return writeOutput(cmd.OutOrStdout(), app.Output, exts, func() string {
			return fmt.Sprintf("🌳 Grammars: %s\n", strings.Join(exts, " "))
		})
	},
}

var listFormatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List supported config file formats",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appConfig(cmd)
		if err != nil {
			return err
		}
		return writeOutput(cmd.OutOrStdout(), app.Output, config.Formats, func() string {
			var b strings.Builder
			b.WriteString("⚙️  Config formats:\n")
			for _, f := range config.Formats {
				fmt.Fprintf(&b, "  .insert-filename.%s\n", f)
			}
			b.WriteString("  .vscode/settings.json (insertFilename.* keys)\n")
			return b.String()
		})
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.AddCommand(listStylesCmd)
	listCmd.AddCommand(listGrammarsCmd)
	listCmd.AddCommand(listFormatsCmd)
}
