package cmd

import (
	"github.com/spf13/cobra"
)

// NewConfigCommand creates the config subcommand
func NewConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Long: `Print the configuration a merge would run with, after applying
flags to the defaults. Nothing is read or written.

Example:
  mergecode config --root app --ext .go`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd)
			if err != nil {
				return err
			}

			data, err := cfg.YAML()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
		SilenceUsage: true,
	}
}
