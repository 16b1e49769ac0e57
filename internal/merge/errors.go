package merge

import (
	"errors"
	"fmt"
)

// Precondition failures. A run that returns one of these has not touched the output.
var (
	ErrRootNotFound     = errors.New("root directory not found")
	ErrRootNotDirectory = errors.New("root is not a directory")
)

// FailureKind enumerates why a single source file could not be merged.
type FailureKind string

const (
	// ReadError covers open and read failures (permissions, vanished files, dangling links)
	ReadError FailureKind = "read error"
	// DecodeError means the content is not valid UTF-8 text
	DecodeError FailureKind = "invalid encoding"
)

// FileError is a per-file failure. It is recovered by skipping the file.
type FileError struct {
	Path  string
	Kind  FailureKind
	Cause error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Cause)
}

func (e *FileError) Unwrap() error { return e.Cause }

// OutputWriteError is a failure to lock, open, write, flush or close the output.
// It aborts the run; content already written is left in place.
type OutputWriteError struct {
	Path  string
	Op    string
	Cause error
}

func (e *OutputWriteError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("failed to %s output: %v", e.Op, e.Cause)
	}
	return fmt.Sprintf("failed to %s output %s: %v", e.Op, e.Path, e.Cause)
}

func (e *OutputWriteError) Unwrap() error { return e.Cause }
