package display

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// DisplayComplete shows the success line naming the output file
func DisplayComplete(w io.Writer, output string, files, skipped int) {
	check := paint(ColorEnabled(w), color.FgGreen).Sprint("✓")
	if skipped > 0 {
		fmt.Fprintf(w, "%s Success! All code merged into %s (%s, %d skipped)\n", check, output, plural(files, "file"), skipped)
		return
	}
	fmt.Fprintf(w, "%s Success! All code merged into %s (%s)\n", check, output, plural(files, "file"))
}

// DisplayFileList prints one path per line followed by a count
func DisplayFileList(w io.Writer, paths []string) {
	for _, path := range paths {
		fmt.Fprintln(w, path)
	}
	check := paint(ColorEnabled(w), color.FgGreen).Sprint("✓")
	fmt.Fprintf(w, "%s %s selected\n", check, plural(len(paths), "file"))
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
