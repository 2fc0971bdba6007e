package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

type contextKey string

// Context key for configuration
const ConfigKey contextKey = "config"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "insert-filename",
	Short: "Keep a filename comment on the first line of source files",
	Long: `insert-filename keeps a comment naming the file on the first line of
every source file, using the comment delimiter configured per extension.

A file that already starts with a filename comment has it refreshed (for
example after a rename); any other file gets the comment inserted followed by
a blank line. The same rules run from the command line over a workspace and
from an editor's format-on-save pipe.`,
	Version:      Version,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	config := NewAppConfig(nil) // Logger will be created per command
	ctx := context.WithValue(context.Background(), ConfigKey, config)
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.SetVersionTemplate("insert-filename {{.Version}} (commit " + GitCommit + ", built " + BuildDate + ")\n")

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "text", "output format (text, json, yaml)")
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default: discovered in the workspace, then $HOME)")
	rootCmd.PersistentFlags().StringP("workspace", "w", "", "workspace root (default: current directory)")
}
