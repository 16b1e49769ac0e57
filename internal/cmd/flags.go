package cmd

import (
	"fmt"

	"github.com/harrison/mergecode/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// addConfigFlags registers the run parameters as persistent flags so every
// subcommand sees the same configuration.
func addConfigFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.String("root", config.DefaultRoot, "Source directory to merge")
	flags.StringP("output", "o", config.DefaultOutput, "Path of the merged document")
	flags.StringSlice("ext", config.DefaultExtensions(), "File name suffixes to include (repeatable or comma separated)")
	flags.StringSlice("exclude", config.DefaultExcludeDirs(), "Directory names never descended (repeatable or comma separated)")
	flags.String("title", config.DefaultTitle, "Project title written in the document preamble")
	flags.String("description", config.DefaultDescription, "Description written in the document preamble")
	flags.Bool("gitignore", false, "Also skip paths matched by .gitignore files under the root")
	flags.String("log-level", "info", "Diagnostic verbosity: trace, debug, info, warn, error")
}

// buildConfig starts from the defaults, applies only the flags the user set
// and validates the result.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()
	cfg := config.DefaultConfig()

	cfg.MergeWithFlags(
		changedString(flags, "root"),
		changedString(flags, "output"),
		changedStringSlice(flags, "ext"),
		changedStringSlice(flags, "exclude"),
		changedString(flags, "title"),
		changedString(flags, "description"),
		changedBool(flags, "gitignore"),
		changedString(flags, "log-level"),
	)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func changedString(flags *pflag.FlagSet, name string) *string {
	if !flags.Changed(name) {
		return nil
	}
	v, _ := flags.GetString(name)
	return &v
}

func changedStringSlice(flags *pflag.FlagSet, name string) *[]string {
	if !flags.Changed(name) {
		return nil
	}
	v, _ := flags.GetStringSlice(name)
	return &v
}

func changedBool(flags *pflag.FlagSet, name string) *bool {
	if !flags.Changed(name) {
		return nil
	}
	v, _ := flags.GetBool(name)
	return &v
}
