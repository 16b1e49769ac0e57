package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/harrison/mergecode/internal/display"
	"github.com/harrison/mergecode/internal/logger"
	"github.com/harrison/mergecode/internal/merge"
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for mergecode
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mergecode",
		Short: "Merge a project's source files into one text document",
		Long: `mergecode walks a source directory and concatenates every matching
file into a single text document, each file under a "FILE PATH:" header.

The result is meant to be pasted into tools that need the whole code base
as context. Dependency and build directories are never descended.

Run with no arguments from the project root to merge ./src into
full_project_code.txt.

Examples:
  mergecode
  mergecode --root app --output context.txt
  mergecode --ext .go,.mod --exclude vendor
  mergecode --gitignore --log-level debug
  mergecode list`,
		Args:    cobra.NoArgs,
		Version: Version,
		RunE:    runMerge,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	addConfigFlags(cmd)

	cmd.AddCommand(NewConfigCommand())
	cmd.AddCommand(NewListCommand())

	return cmd
}

// runMerge implements the root command: one full merge run
func runMerge(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	log := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	result, err := merge.Run(cfg, log)
	if err != nil {
		if reportRootProblem(cmd.ErrOrStderr(), cfg.Root, err) {
			return nil
		}
		var outErr *merge.OutputWriteError
		if errors.As(err, &outErr) {
			log.LogError(describeOutputFailure(outErr))
		}
		return err
	}

	display.DisplayComplete(cmd.OutOrStdout(), result.Output, result.FilesWritten, result.FilesSkipped)
	return nil
}

// reportRootProblem shows a warning for an unusable root and reports
// whether err was such a problem. A bad root is not a command failure.
func reportRootProblem(w io.Writer, root string, err error) bool {
	switch {
	case errors.Is(err, merge.ErrRootNotFound):
		display.WarnRootNotFound(root).Display(w)
		return true
	case errors.Is(err, merge.ErrRootNotDirectory):
		display.WarnRootNotDirectory(root).Display(w)
		return true
	default:
		return false
	}
}

// describeOutputFailure says what an aborted run left behind at the output path
func describeOutputFailure(err *merge.OutputWriteError) string {
	switch err.Op {
	case "lock", "open":
		return fmt.Sprintf("Output %s was not written (%s failed)", err.Path, err.Op)
	default:
		return fmt.Sprintf("Output %s may be incomplete (%s failed)", err.Path, err.Op)
	}
}
