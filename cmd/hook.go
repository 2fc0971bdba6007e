package cmd

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/getlawrence/insert-filename/internal/editor"
	"github.com/getlawrence/insert-filename/internal/logger"
	"github.com/spf13/cobra"
)

var hookCmd = &cobra.Command{
	Use:   "hook <file>",
	Short: "Format-on-save filter: read a buffer on stdin, write it to stdout",
	Long: `Hook is meant to be wired into an editor's format-on-save pipeline. The
buffer being saved is read from stdin and written back to stdout with its
filename comment inserted or refreshed. <file> is the path the buffer will be
saved to.

Failures never block a save: the buffer is passed through unchanged and the
error goes to stderr.

Example usage:
  insert-filename hook src/app.js < src/app.js
  insert-filename hook --active other.js src/app.js  # not the active editor: no-op`,
	Args: cobra.ExactArgs(1),
	RunE: runHook,
}

func init() {
	rootCmd.AddCommand(hookCmd)

	hookCmd.Flags().String("active", "", "Path of the document focused in the editor (default: <file>)")
}

func runHook(cmd *cobra.Command, args []string) error {
	stdout := cmd.OutOrStdout()
	stderr := &logger.StdoutLogger{W: cmd.ErrOrStderr()}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("failed to read buffer: %w", err)
	}
	text := string(data)

	passthrough := func(err error) error {
		stderr.Logf("insert-filename: %v\n", err)
		_, werr := io.WriteString(stdout, text)
		return werr
	}

	app, err := appConfig(cmd)
	if err != nil {
		return passthrough(err)
	}
	// stdout carries the document.
	log := logger.Verbose{Logger: stderr, Enabled: app.Verbose}

	path, err := filepath.Abs(args[0])
	if err != nil {
		return passthrough(err)
	}
	buf := editor.NewTextBuffer(path, text)

	ed := &editor.MemoryEditor{}
	ed.Focus(buf)
	if active, _ := cmd.Flags().GetString("active"); active != "" {
		activePath, err := filepath.Abs(active)
		if err != nil {
			return passthrough(err)
		}
		if activePath != path {
			ed.Focus(editor.NewTextBuffer(activePath, ""))
		}
	}

	hook := editor.NewSaveHook(ed, app.Workspace(), app.Source(), log)
	result, err := hook.WillSave(cmd.Context(), buf)
	if err != nil {
		return passthrough(err)
	}
	if result.Reason != "" {
		log.Logf("%s: %s (%s)\n", args[0], result.Action, result.Reason)
	} else {
		log.Logf("%s: %s\n", args[0], result.Action)
	}

	if !result.Changed() {
		_, err = io.WriteString(stdout, text)
		return err
	}
	_, err = io.WriteString(stdout, buf.Text())
	return err
}
