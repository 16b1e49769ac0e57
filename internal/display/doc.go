// Package display provides the user-facing terminal messages of mergecode.
//
// Diagnostics go through the logger package; this package owns the few
// messages a user is meant to read: the success line, warnings such as a
// missing source root, and the file list printed by "mergecode list".
//
// # Warning Messages
//
//	warning := display.WarnRootNotFound("src")
//	warning.Display(os.Stderr)
//
// # Completion
//
//	display.DisplayComplete(os.Stdout, "full_project_code.txt", 42, 1)
//
// # Colors
//
// Colors come from fatih/color and are only written when the destination is
// a terminal (checked with go-isatty) and NO_COLOR is unset. Writers that are
// not *os.File, such as a bytes.Buffer in tests, always get plain text.
package display
