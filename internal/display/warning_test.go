package display

import (
	"bytes"
	"strings"
	"testing"
)

func TestDisplayWarning_TitleOnly(t *testing.T) {
	var buf bytes.Buffer
	w := Warning{
		Title: "Configuration Missing",
	}

	w.Display(&buf)

	output := buf.String()

	// Should contain warning emoji
	if !strings.Contains(output, "⚠️") {
		t.Error("Expected warning emoji ⚠️ in output")
	}

	if !strings.Contains(output, "Warning: Configuration Missing") {
		t.Error("Expected title in output")
	}

	// A buffer is not a terminal
	if strings.Contains(output, "\x1b[") {
		t.Errorf("Expected no ANSI codes for non-terminal writer, got %q", output)
	}
}

func TestDisplayWarning_WithMessage(t *testing.T) {
	var buf bytes.Buffer
	w := Warning{
		Title:   "Source directory not found",
		Message: "Could not find 'src' directory.",
	}

	w.Display(&buf)

	if !strings.Contains(buf.String(), "    Could not find 'src' directory.\n") {
		t.Errorf("Expected indented message in output, got %q", buf.String())
	}
}

func TestDisplayWarning_WithPaths(t *testing.T) {
	tests := []struct {
		name     string
		paths    []string
		wantText string
	}{
		{
			name:     "single path",
			paths:    []string{"src"},
			wantText: "Affected path:",
		},
		{
			name:     "multiple paths",
			paths:    []string{"src", "lib", "app"},
			wantText: "Affected paths:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := Warning{
				Title: "Test Warning",
				Paths: tt.paths,
			}

			w.Display(&buf)

			output := buf.String()
			if !strings.Contains(output, tt.wantText) {
				t.Errorf("Expected %q in output, got %q", tt.wantText, output)
			}
			for i, path := range tt.paths {
				want := "      " + string(rune('1'+i)) + ". " + path + "\n"
				if !strings.Contains(output, want) {
					t.Errorf("Expected numbered path %q in output", want)
				}
			}
		})
	}
}

func TestDisplayWarning_Complete(t *testing.T) {
	var buf bytes.Buffer
	w := Warning{
		Title:      "Title",
		Message:    "Message",
		Paths:      []string{"a"},
		Suggestion: "Suggestion text",
	}

	w.Display(&buf)

	want := "⚠️  Warning: Title\n" +
		"    Message\n" +
		"    Affected path:\n" +
		"      1. a\n" +
		"    Suggestion:\n" +
		"    Suggestion text\n"
	if buf.String() != want {
		t.Errorf("Display() =\n%q\nwant\n%q", buf.String(), want)
	}
}

func TestDisplayWarning_YellowColor(t *testing.T) {
	w := Warning{Title: "Colored"}

	colored := w.render(true)
	if !strings.HasPrefix(colored, "\x1b[33m") {
		t.Errorf("Expected yellow ANSI prefix, got %q", colored)
	}
	if !strings.HasSuffix(colored, "\x1b[0m") {
		t.Errorf("Expected ANSI reset suffix, got %q", colored)
	}

	plain := w.render(false)
	if strings.Contains(plain, "\x1b[") {
		t.Errorf("Expected plain text, got %q", plain)
	}
}

func TestColorEnabled_NonTerminal(t *testing.T) {
	var buf bytes.Buffer
	if ColorEnabled(&buf) {
		t.Error("bytes.Buffer should never be colored")
	}
}

func TestColorEnabled_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if ColorEnabled(fakeTerminal{}) {
		t.Error("NO_COLOR should disable colors")
	}
}

// fakeTerminal has an Fd but is never a TTY
type fakeTerminal struct{}

func (fakeTerminal) Write(p []byte) (int, error) { return len(p), nil }
func (fakeTerminal) Fd() uintptr                 { return ^uintptr(0) }

func TestWarnRootNotFound(t *testing.T) {
	w := WarnRootNotFound("src")

	if w.Title != "Source directory not found" {
		t.Errorf("Title = %q", w.Title)
	}
	if !strings.Contains(w.Message, "'src'") {
		t.Errorf("Message should name the root, got %q", w.Message)
	}
	if !strings.Contains(w.Suggestion, "project root") {
		t.Errorf("Suggestion should mention the project root, got %q", w.Suggestion)
	}
}

func TestWarnRootNotDirectory(t *testing.T) {
	w := WarnRootNotDirectory("src")

	if len(w.Paths) != 1 || w.Paths[0] != "src" {
		t.Errorf("Paths = %v, want [src]", w.Paths)
	}
	if !strings.Contains(w.Suggestion, "--root") {
		t.Errorf("Suggestion should mention --root, got %q", w.Suggestion)
	}
}
