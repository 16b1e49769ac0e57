package fileutil

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-git/go-billy/v5"
)

// WalkOptions configures the tree walk
type WalkOptions struct {
	// Extensions is a list of case-sensitive file name suffixes to include (e.g., ".ts", ".css")
	Extensions []string
	// ExcludeDirs is a list of directory names that are never descended (e.g., ".git", "node_modules")
	ExcludeDirs []string
	// Ignore optionally rejects additional paths (relative to the filesystem root)
	Ignore func(path string, isDir bool) bool
	// EnterDir is called with every directory the walk descends into, the
	// root ("") included, before that directory is listed
	EnterDir func(dir string)
	// OnError receives non-fatal errors (unlistable directories, unresolvable links)
	OnError func(path string, err error)
	// OnOmit receives every listed entry that is not selected
	OnOmit func(path string, isDir bool, reason OmitReason)
}

// OmitReason says why Walk left an entry out
type OmitReason string

const (
	OmitExcluded   OmitReason = "excluded"
	OmitIgnored    OmitReason = "ignored"
	OmitExtension  OmitReason = "extension not selected"
	OmitNotRegular OmitReason = "not a regular file"
)

// Entry is a file selected by Walk
type Entry struct {
	// Path is relative to the walked filesystem's root, using platform separators
	Path string
	// Info is the entry as listed by its parent directory (not link-resolved)
	Info os.FileInfo
}

// WalkFunc is called for every selected file in listing order.
// A non-nil error stops the walk and is returned from Walk.
type WalkFunc func(entry Entry) error

// ScanResult contains the results of a directory scan
type ScanResult struct {
	// Files contains the root-relative paths of all matched files, in walk order
	Files []string
	// Errors contains any errors encountered during scanning
	Errors []error
}

// Walk traverses fsys top-down starting at its root. At every directory the
// excluded children are dropped first and only the remaining subdirectories
// are recursed into, so nothing below an excluded name is ever listed.
// Sibling order is the order returned by fsys.ReadDir; no sorting is applied.
func Walk(fsys billy.Filesystem, opts WalkOptions, fn WalkFunc) error {
	w := &walker{
		fsys:    fsys,
		exclude: make(map[string]bool, len(opts.ExcludeDirs)),
		opts:    opts,
		fn:      fn,
	}
	for _, dir := range opts.ExcludeDirs {
		w.exclude[dir] = true
	}

	return w.walkDir("")
}

type walker struct {
	fsys    billy.Filesystem
	exclude map[string]bool
	opts    WalkOptions
	fn      WalkFunc
}

func (w *walker) walkDir(dir string) error {
	if w.opts.EnterDir != nil {
		w.opts.EnterDir(dir)
	}

	infos, err := w.fsys.ReadDir(dir)
	if err != nil {
		w.reportError(dir, fmt.Errorf("failed to list directory: %w", err))
		return nil
	}

	var subdirs []string
	for _, info := range infos {
		path := w.fsys.Join(dir, info.Name())

		if info.IsDir() {
			switch {
			case w.exclude[info.Name()]:
				w.omit(path, true, OmitExcluded)
			case w.ignored(path, true):
				w.omit(path, true, OmitIgnored)
			default:
				subdirs = append(subdirs, path)
			}
			continue
		}

		if !MatchesExtension(info.Name(), w.opts.Extensions) {
			w.omit(path, false, OmitExtension)
			continue
		}
		if !w.isFileEntry(path, info) {
			w.omit(path, false, OmitNotRegular)
			continue
		}
		if w.ignored(path, false) {
			w.omit(path, false, OmitIgnored)
			continue
		}

		if err := w.fn(Entry{Path: path, Info: info}); err != nil {
			return err
		}
	}

	for _, sub := range subdirs {
		if err := w.walkDir(sub); err != nil {
			return err
		}
	}

	return nil
}

// isFileEntry accepts regular files and links that resolve to regular files.
// Links to directories are never followed. Dangling links are accepted so
// the reader reports them like any other unreadable file.
func (w *walker) isFileEntry(path string, info os.FileInfo) bool {
	mode := info.Mode()
	if mode.IsRegular() {
		return true
	}
	if mode&os.ModeSymlink == 0 {
		return false
	}

	target, err := w.fsys.Stat(path)
	if err != nil {
		return true
	}
	return target.Mode().IsRegular()
}

func (w *walker) ignored(path string, isDir bool) bool {
	return w.opts.Ignore != nil && w.opts.Ignore(path, isDir)
}

func (w *walker) omit(path string, isDir bool, reason OmitReason) {
	if w.opts.OnOmit != nil {
		w.opts.OnOmit(path, isDir, reason)
	}
}

func (w *walker) reportError(path string, err error) {
	if w.opts.OnError != nil {
		w.opts.OnError(path, err)
	}
}

// ScanDirectory collects the paths Walk would select without reading any file
func ScanDirectory(fsys billy.Filesystem, opts WalkOptions) *ScanResult {
	result := &ScanResult{
		Files:  make([]string, 0),
		Errors: make([]error, 0),
	}

	onError := opts.OnError
	opts.OnError = func(path string, err error) {
		result.Errors = append(result.Errors, fmt.Errorf("error accessing %s: %w", path, err))
		if onError != nil {
			onError(path, err)
		}
	}

	// The callback never fails, so neither does the walk
	_ = Walk(fsys, opts, func(entry Entry) error {
		result.Files = append(result.Files, entry.Path)
		return nil
	})

	return result
}

// MatchesExtension reports whether name ends with one of the suffixes.
// Matching is a plain case-sensitive suffix test, so ".css" matches a file named ".css".
func MatchesExtension(name string, extensions []string) bool {
	for _, ext := range extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
