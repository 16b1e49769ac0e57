package cmd

import (
	"github.com/harrison/mergecode/internal/display"
	"github.com/harrison/mergecode/internal/logger"
	"github.com/harrison/mergecode/internal/merge"
	"github.com/spf13/cobra"
)

// NewListCommand creates the list subcommand, a dry run of the merge
func NewListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the files a merge would include",
		Long: `Walk the source directory with the same selection rules as a merge
and print each selected path, relative to the root, in document order.
File contents are not read and the output document is not touched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd)
			if err != nil {
				return err
			}

			log := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)
			files, err := merge.List(cfg, log)
			if err != nil {
				if reportRootProblem(cmd.ErrOrStderr(), cfg.Root, err) {
					return nil
				}
				return err
			}

			display.DisplayFileList(cmd.OutOrStdout(), files)
			return nil
		},
		SilenceUsage: true,
	}
}
