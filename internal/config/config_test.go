package config

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

// TestDefaultConfig verifies default configuration values
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Root != "src" {
		t.Errorf("Root = %q, want %q", cfg.Root, "src")
	}
	if cfg.Output != "full_project_code.txt" {
		t.Errorf("Output = %q, want %q", cfg.Output, "full_project_code.txt")
	}
	wantExt := []string{".ts", ".tsx", ".js", ".jsx", ".css"}
	if strings.Join(cfg.Extensions, ",") != strings.Join(wantExt, ",") {
		t.Errorf("Extensions = %v, want %v", cfg.Extensions, wantExt)
	}
	wantExclude := []string{"node_modules", ".next", ".git", "dist", "build"}
	if strings.Join(cfg.ExcludeDirs, ",") != strings.Join(wantExclude, ",") {
		t.Errorf("ExcludeDirs = %v, want %v", cfg.ExcludeDirs, wantExclude)
	}
	if cfg.Title != "The Collegiate Grill POS System" {
		t.Errorf("Title = %q", cfg.Title)
	}
	if cfg.Description != "Full Source Code Context" {
		t.Errorf("Description = %q", cfg.Description)
	}
	if cfg.GitIgnore {
		t.Error("GitIgnore should be disabled by default")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid, got: %v", err)
	}
}

// TestDefaultConfigIndependentSlices ensures callers cannot corrupt the defaults
func TestDefaultConfigIndependentSlices(t *testing.T) {
	a := DefaultConfig()
	a.Extensions[0] = ".go"
	a.ExcludeDirs[0] = "vendor"

	b := DefaultConfig()
	if b.Extensions[0] != ".ts" {
		t.Errorf("Extensions[0] = %q, want .ts", b.Extensions[0])
	}
	if b.ExcludeDirs[0] != "node_modules" {
		t.Errorf("ExcludeDirs[0] = %q, want node_modules", b.ExcludeDirs[0])
	}
}

func TestMergeWithFlags(t *testing.T) {
	t.Run("nil flags keep defaults", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.MergeWithFlags(nil, nil, nil, nil, nil, nil, nil, nil)

		if cfg.Root != DefaultRoot || cfg.Output != DefaultOutput {
			t.Errorf("unexpected root/output: %q %q", cfg.Root, cfg.Output)
		}
		if len(cfg.Extensions) != 5 {
			t.Errorf("Extensions = %v, want defaults", cfg.Extensions)
		}
	})

	t.Run("set flags override", func(t *testing.T) {
		cfg := DefaultConfig()
		root := "app"
		output := "out.txt"
		exts := []string{".go"}
		excludes := []string{"vendor"}
		title := "Title"
		desc := "Desc"
		gitIgnore := true
		level := " DEBUG "

		cfg.MergeWithFlags(&root, &output, &exts, &excludes, &title, &desc, &gitIgnore, &level)

		if cfg.Root != "app" {
			t.Errorf("Root = %q, want app", cfg.Root)
		}
		if cfg.Output != "out.txt" {
			t.Errorf("Output = %q, want out.txt", cfg.Output)
		}
		if len(cfg.Extensions) != 1 || cfg.Extensions[0] != ".go" {
			t.Errorf("Extensions = %v, want [.go]", cfg.Extensions)
		}
		if len(cfg.ExcludeDirs) != 1 || cfg.ExcludeDirs[0] != "vendor" {
			t.Errorf("ExcludeDirs = %v, want [vendor]", cfg.ExcludeDirs)
		}
		if cfg.Title != "Title" || cfg.Description != "Desc" {
			t.Errorf("Title/Description = %q/%q", cfg.Title, cfg.Description)
		}
		if !cfg.GitIgnore {
			t.Error("GitIgnore should be true")
		}
		if cfg.LogLevel != "debug" {
			t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
		}

		// Mutating the flag slice afterwards must not leak into the config
		exts[0] = ".rs"
		if cfg.Extensions[0] != ".go" {
			t.Errorf("Extensions shares storage with flag slice")
		}
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(c *Config) {}},
		{name: "empty root", mutate: func(c *Config) { c.Root = " " }, wantErr: "root cannot be empty"},
		{name: "empty output", mutate: func(c *Config) { c.Output = "" }, wantErr: "output cannot be empty"},
		{name: "no extensions", mutate: func(c *Config) { c.Extensions = nil }, wantErr: "at least one extension"},
		{name: "empty extension", mutate: func(c *Config) { c.Extensions = []string{".ts", ""} }, wantErr: "empty suffix"},
		{name: "extension without dot", mutate: func(c *Config) { c.Extensions = []string{"Makefile"} }},
		{name: "no excludes", mutate: func(c *Config) { c.ExcludeDirs = nil }},
		{name: "empty exclude", mutate: func(c *Config) { c.ExcludeDirs = []string{""} }, wantErr: "empty name"},
		{name: "exclude path", mutate: func(c *Config) { c.ExcludeDirs = []string{"a/b"} }, wantErr: "not a path"},
		{name: "bad level", mutate: func(c *Config) { c.LogLevel = "loud" }, wantErr: "invalid log_level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()

			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %q, want substring %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestYAML(t *testing.T) {
	cfg := DefaultConfig()
	data, err := cfg.YAML()
	if err != nil {
		t.Fatalf("YAML() error = %v", err)
	}

	out := string(data)
	for _, want := range []string{"root: src", "output: full_project_code.txt", "exclude_dirs:", "- node_modules", "log_level: info", "gitignore: false"} {
		if !strings.Contains(out, want) {
			t.Errorf("YAML output missing %q:\n%s", want, out)
		}
	}

	var decoded Config
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("rendered YAML does not parse: %v", err)
	}
	if decoded.Title != cfg.Title {
		t.Errorf("Title = %q, want %q", decoded.Title, cfg.Title)
	}
}
