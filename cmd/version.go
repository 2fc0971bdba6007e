package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version is set during build time
	Version = "dev"
	// GitCommit is set during build time
	GitCommit = "unknown"
	// BuildDate is set during build time
	BuildDate = "unknown"
)

type buildInfo struct {
	Version   string `json:"version" yaml:"version"`
	GitCommit string `json:"gitCommit" yaml:"gitCommit"`
	BuildDate string `json:"buildDate" yaml:"buildDate"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		info := buildInfo{Version: Version, GitCommit: GitCommit, BuildDate: BuildDate}
		return writeOutput(cmd.OutOrStdout(), output, info, func() string {
			return fmt.Sprintf("insert-filename %s\ncommit: %s\nbuilt:  %s\n", Version, GitCommit, BuildDate)
		})
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
