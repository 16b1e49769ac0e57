package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Default run parameters. A bare `mergecode` invocation uses exactly these.
const (
	DefaultRoot        = "src"
	DefaultOutput      = "full_project_code.txt"
	DefaultTitle       = "The Collegiate Grill POS System"
	DefaultDescription = "Full Source Code Context"
)

// DefaultExtensions returns the file name suffixes collected by default.
func DefaultExtensions() []string {
	return []string{".ts", ".tsx", ".js", ".jsx", ".css"}
}

// DefaultExcludeDirs returns the directory names pruned by default.
func DefaultExcludeDirs() []string {
	return []string{"node_modules", ".next", ".git", "dist", "build"}
}

// Config represents the parameters of a single merge run.
// A Config is built once (defaults, then flags) and must not be changed
// after it is handed to the merger.
type Config struct {
	// Root is the directory whose tree is merged
	Root string `yaml:"root"`

	// Output is the path of the merged document (created or truncated)
	Output string `yaml:"output"`

	// Extensions are case-sensitive file name suffixes (e.g. ".ts")
	Extensions []string `yaml:"extensions"`

	// ExcludeDirs are directory base names that are never descended
	ExcludeDirs []string `yaml:"exclude_dirs"`

	// Title is written on the "Project:" preamble line
	Title string `yaml:"title"`

	// Description is written on the "Description:" preamble line
	Description string `yaml:"description"`

	// GitIgnore additionally skips paths matched by .gitignore files under Root
	GitIgnore bool `yaml:"gitignore"`

	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns a Config holding the historical merge parameters
func DefaultConfig() *Config {
	return &Config{
		Root:        DefaultRoot,
		Output:      DefaultOutput,
		Extensions:  DefaultExtensions(),
		ExcludeDirs: DefaultExcludeDirs(),
		Title:       DefaultTitle,
		Description: DefaultDescription,
		GitIgnore:   false,
		LogLevel:    "info",
	}
}

// MergeWithFlags merges CLI flags into the configuration.
// Non-nil flag values override configuration values.
func (c *Config) MergeWithFlags(root, output *string, extensions, excludeDirs *[]string, title, description *string, gitIgnore *bool, logLevel *string) {
	if root != nil {
		c.Root = *root
	}
	if output != nil {
		c.Output = *output
	}
	if extensions != nil {
		c.Extensions = append([]string(nil), (*extensions)...)
	}
	if excludeDirs != nil {
		c.ExcludeDirs = append([]string(nil), (*excludeDirs)...)
	}
	if title != nil {
		c.Title = *title
	}
	if description != nil {
		c.Description = *description
	}
	if gitIgnore != nil {
		c.GitIgnore = *gitIgnore
	}
	if logLevel != nil {
		c.LogLevel = strings.ToLower(strings.TrimSpace(*logLevel))
	}
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Root) == "" {
		return fmt.Errorf("root cannot be empty")
	}
	if strings.TrimSpace(c.Output) == "" {
		return fmt.Errorf("output cannot be empty")
	}

	if len(c.Extensions) == 0 {
		return fmt.Errorf("at least one extension is required")
	}
	for _, ext := range c.Extensions {
		if ext == "" {
			return fmt.Errorf("extensions cannot contain an empty suffix")
		}
	}

	for _, dir := range c.ExcludeDirs {
		if dir == "" {
			return fmt.Errorf("exclude_dirs cannot contain an empty name")
		}
		if strings.ContainsAny(dir, `/\`) {
			return fmt.Errorf("exclude_dirs entry %q must be a directory name, not a path", dir)
		}
	}

	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	return nil
}

// YAML renders the configuration in the same field names used by the struct tags
func (c *Config) YAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to render config: %w", err)
	}
	return data, nil
}
