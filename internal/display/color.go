package display

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// fdWriter is implemented by *os.File
type fdWriter interface {
	Fd() uintptr
}

// ColorEnabled reports whether ANSI colors should be written to w.
// Only terminals get colors, and NO_COLOR disables them everywhere.
func ColorEnabled(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// paint returns a color that is forced on or off regardless of the
// process-wide color.NoColor setting.
func paint(enabled bool, attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}
