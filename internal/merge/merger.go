// Package merge flattens a source tree into a single text document.
//
// A run walks the root top-down, prunes excluded directory names, selects
// files by name suffix and appends each readable file to the output under a
// "FILE PATH:" header. Unreadable files are skipped and logged; only a
// missing root or a failing output aborts the run.
package merge

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/google/uuid"
	"github.com/harrison/mergecode/internal/config"
	"github.com/harrison/mergecode/internal/filelock"
	"github.com/harrison/mergecode/internal/fileutil"
	"github.com/harrison/mergecode/internal/logger"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// Logger receives run progress and per-file diagnostics.
type Logger interface {
	LogWarn(message string)
	LogMergeStart(runID, root, output string)
	LogPathOmitted(path string, isDir bool, reason string)
	LogFileMerged(path string, size int)
	LogFileSkipped(path string, err error)
	LogDirSkipped(path string, err error)
	LogMergeComplete(files, skipped int, duration time.Duration)
}

// Result summarizes a completed run.
type Result struct {
	// RunID identifies the run in log output
	RunID string
	// Output is the path of the written document (empty for MergeFS)
	Output string
	// FilesWritten counts the file blocks in the document
	FilesWritten int
	// FilesSkipped counts selected files that could not be read or decoded
	FilesSkipped int
	// BytesWritten is the total size of merged file contents, headers excluded
	BytesWritten int64
	Duration     time.Duration
}

// FileResult is the outcome of reading one selected file: either Content or Err.
type FileResult struct {
	Path    string
	Content []byte
	Err     *FileError
}

// omitOutputFile is the omit reason logged when the walk meets the output itself
const omitOutputFile = "output file"

// Merger holds the parameters of a run. It is safe to reuse for several runs.
type Merger struct {
	title       string
	description string
	extensions  []string
	excludeDirs []string
	gitIgnore   bool
	logger      Logger

	// skip drops selected root-relative paths (the output file itself)
	skip func(path string) bool
}

// NewMerger creates a Merger from cfg. A nil logger discards all messages.
func NewMerger(cfg *config.Config, log Logger) *Merger {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Merger{
		title:       cfg.Title,
		description: cfg.Description,
		extensions:  append([]string(nil), cfg.Extensions...),
		excludeDirs: append([]string(nil), cfg.ExcludeDirs...),
		gitIgnore:   cfg.GitIgnore,
		logger:      log,
	}
}

// Run merges cfg.Root into cfg.Output.
//
// The root is checked before anything else: when it is missing the returned
// error wraps ErrRootNotFound and the output is neither created nor
// truncated. Output failures are returned as *OutputWriteError.
func Run(cfg *config.Config, log Logger) (result *Result, err error) {
	if err := checkRoot(cfg.Root); err != nil {
		return nil, err
	}

	lock, err := filelock.AcquireFor(cfg.Output)
	if err != nil {
		return nil, &OutputWriteError{Path: cfg.Output, Op: "lock", Cause: err}
	}
	defer func() {
		if unlockErr := lock.Unlock(); unlockErr != nil && err == nil {
			err = &OutputWriteError{Path: cfg.Output, Op: "unlock", Cause: unlockErr}
		}
	}()

	out, err := os.Create(cfg.Output)
	if err != nil {
		return nil, &OutputWriteError{Path: cfg.Output, Op: "open", Cause: err}
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = &OutputWriteError{Path: cfg.Output, Op: "close", Cause: closeErr}
		}
	}()

	m := NewMerger(cfg, log)
	m.skip = selfPathFilter(cfg.Root, cfg.Output)

	result, err = m.MergeFS(osfs.New(cfg.Root), out)
	if result != nil {
		result.Output = cfg.Output
	}
	return result, err
}

// checkRoot verifies the precondition on the root directory.
func checkRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrRootNotFound, root)
		}
		return fmt.Errorf("failed to access root %s: %w", root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrRootNotDirectory, root)
	}
	return nil
}

// selfPathFilter returns a filter matching the output's path relative to
// root, or nil when the output lies outside root.
func selfPathFilter(root, output string) func(string) bool {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil
	}
	absOutput, err := filepath.Abs(output)
	if err != nil {
		return nil
	}
	rel, err := filepath.Rel(absRoot, absOutput)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return nil
	}
	return func(path string) bool {
		return path == rel
	}
}

// MergeFS writes the document for the tree rooted at src to out.
// The returned Result is non-nil even when an output error aborts the run.
func (m *Merger) MergeFS(src billy.Filesystem, out io.Writer) (*Result, error) {
	start := time.Now()
	result := &Result{RunID: uuid.NewString()}

	name := ""
	if named, ok := out.(interface{ Name() string }); ok {
		name = named.Name()
	}
	m.logger.LogMergeStart(result.RunID, src.Root(), name)

	opts := m.walkOptions(src)

	doc := NewDocumentWriter(out, name)
	if err := doc.WritePreamble(m.title, m.description); err != nil {
		result.Duration = time.Since(start)
		return result, err
	}

	err := fileutil.Walk(src, opts, func(entry fileutil.Entry) error {
		if m.skip != nil && m.skip(entry.Path) {
			m.logger.LogPathOmitted(entry.Path, false, omitOutputFile)
			return nil
		}

		file := ReadFile(src, entry.Path)
		if file.Err != nil {
			result.FilesSkipped++
			m.logger.LogFileSkipped(entry.Path, file.Err)
			return nil
		}

		if err := doc.WriteFile(entry.Path, file.Content); err != nil {
			return err
		}
		result.FilesWritten++
		result.BytesWritten += int64(len(file.Content))
		m.logger.LogFileMerged(entry.Path, len(file.Content))
		return nil
	})

	result.Duration = time.Since(start)
	if err != nil {
		return result, err
	}

	m.logger.LogMergeComplete(result.FilesWritten, result.FilesSkipped, result.Duration)
	return result, nil
}

// List returns the root-relative paths a run with cfg would merge, in
// document order. No file content is read and the output is not touched.
func List(cfg *config.Config, log Logger) ([]string, error) {
	if err := checkRoot(cfg.Root); err != nil {
		return nil, err
	}

	m := NewMerger(cfg, log)
	m.skip = selfPathFilter(cfg.Root, cfg.Output)

	src := osfs.New(cfg.Root)
	scan := fileutil.ScanDirectory(src, m.walkOptions(src))

	files := make([]string, 0, len(scan.Files))
	for _, path := range scan.Files {
		if m.skip != nil && m.skip(path) {
			m.logger.LogPathOmitted(path, false, omitOutputFile)
			continue
		}
		files = append(files, path)
	}
	return files, nil
}

func (m *Merger) walkOptions(src billy.Filesystem) fileutil.WalkOptions {
	opts := fileutil.WalkOptions{
		Extensions:  m.extensions,
		ExcludeDirs: m.excludeDirs,
		OnError:     m.logger.LogDirSkipped,
		OnOmit: func(path string, isDir bool, reason fileutil.OmitReason) {
			m.logger.LogPathOmitted(path, isDir, string(reason))
		},
	}
	if m.gitIgnore {
		filter := newGitIgnoreFilter(src, func(path string, err error) {
			m.logger.LogWarn(fmt.Sprintf("Ignoring patterns of %s: %v", path, err))
		})
		opts.EnterDir = filter.LoadDir
		opts.Ignore = filter.ShouldIgnore
	}
	return opts
}

// ReadFile reads path from src and validates it as UTF-8 text.
// Failures are reported in the result, never returned.
func ReadFile(src billy.Filesystem, path string) FileResult {
	f, err := src.Open(path)
	if err != nil {
		return FileResult{Path: path, Err: &FileError{Path: path, Kind: ReadError, Cause: err}}
	}
	defer f.Close()

	content, err := io.ReadAll(transform.NewReader(f, encoding.UTF8Validator))
	if err != nil {
		kind := ReadError
		if errors.Is(err, encoding.ErrInvalidUTF8) {
			kind = DecodeError
		}
		return FileResult{Path: path, Err: &FileError{Path: path, Kind: kind, Cause: err}}
	}

	return FileResult{Path: path, Content: content}
}
