package merge

import (
	"bufio"
	"io"
	"strings"
)

const (
	// SeparatorWidth is the length of the delimiter line around each header
	SeparatorWidth = 50
	// FilePathPrefix starts the header line naming each merged file
	FilePathPrefix = "FILE PATH: "
)

// Separator is the delimiter line written before and after every header.
var Separator = strings.Repeat("=", SeparatorWidth)

// DocumentWriter writes the merged document format:
//
//	Project: <title>
//	Description: <description>
//	<blank>
//	<separator>
//	FILE PATH: <relative path>
//	<separator>
//	<content>
//	<newline>
//
// Each block is flushed as soon as it is complete.
type DocumentWriter struct {
	w    *bufio.Writer
	name string
}

// NewDocumentWriter wraps out. name is only used in error messages.
func NewDocumentWriter(out io.Writer, name string) *DocumentWriter {
	return &DocumentWriter{
		w:    bufio.NewWriter(out),
		name: name,
	}
}

// WritePreamble writes the two fixed header lines followed by a blank line.
func (d *DocumentWriter) WritePreamble(title, description string) error {
	d.w.WriteString("Project: ")
	d.w.WriteString(title)
	d.w.WriteString("\n")
	d.w.WriteString("Description: ")
	d.w.WriteString(description)
	d.w.WriteString("\n\n")
	return d.flush()
}

// WriteFile appends one file block. The content is written verbatim.
func (d *DocumentWriter) WriteFile(relPath string, content []byte) error {
	d.w.WriteString(Separator)
	d.w.WriteString("\n")
	d.w.WriteString(FilePathPrefix)
	d.w.WriteString(relPath)
	d.w.WriteString("\n")
	d.w.WriteString(Separator)
	d.w.WriteString("\n")
	d.w.Write(content)
	d.w.WriteString("\n")
	return d.flush()
}

// bufio.Writer keeps the first error, so checking once at flush is enough
func (d *DocumentWriter) flush() error {
	if err := d.w.Flush(); err != nil {
		return &OutputWriteError{Path: d.name, Op: "write", Cause: err}
	}
	return nil
}
