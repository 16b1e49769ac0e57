package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Warning represents a user-facing warning message
type Warning struct {
	Title      string   // Main warning title
	Message    string   // Detailed explanation (optional)
	Paths      []string // Related paths (optional)
	Suggestion string   // Action to take (optional)
}

// Display shows a formatted warning, in yellow when out is a terminal
func (w Warning) Display(out io.Writer) {
	fmt.Fprint(out, w.render(ColorEnabled(out)))
}

func (w Warning) render(colored bool) string {
	var b strings.Builder

	b.WriteString("⚠️  Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	if len(w.Paths) > 0 {
		b.WriteString("    ")
		if len(w.Paths) == 1 {
			b.WriteString("Affected path:\n")
		} else {
			b.WriteString("Affected paths:\n")
		}

		for i, path := range w.Paths {
			b.WriteString(fmt.Sprintf("      %d. %s\n", i+1, path))
		}
	}

	if w.Suggestion != "" {
		b.WriteString("    Suggestion:\n")
		b.WriteString("    ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	return paint(colored, color.FgYellow).Sprint(b.String())
}

// WarnRootNotFound creates the warning shown when the source root is missing
func WarnRootNotFound(root string) Warning {
	return Warning{
		Title:      "Source directory not found",
		Message:    fmt.Sprintf("Could not find '%s' directory.", root),
		Suggestion: "Make sure you run this command from the project root, or pass --root.",
	}
}

// WarnRootNotDirectory creates the warning shown when the root is a file
func WarnRootNotDirectory(root string) Warning {
	return Warning{
		Title:      "Source root is not a directory",
		Paths:      []string{root},
		Suggestion: "Pass a directory with --root.",
	}
}
