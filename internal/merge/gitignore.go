package merge

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

const gitIgnoreFile = ".gitignore"

// gitIgnoreFilter matches root-relative paths against the .gitignore files of
// the directories the walk has entered so far. Patterns are loaded lazily by
// LoadDir, so excluded or ignored directories are never read.
type gitIgnoreFilter struct {
	src      billy.Filesystem
	patterns []gitignore.Pattern
	matcher  gitignore.Matcher
	onError  func(path string, err error)
}

// newGitIgnoreFilter creates an empty filter over src. onError receives
// .gitignore files that exist but cannot be read; the walk goes on without them.
func newGitIgnoreFilter(src billy.Filesystem, onError func(path string, err error)) *gitIgnoreFilter {
	return &gitIgnoreFilter{src: src, onError: onError}
}

// LoadDir adds the patterns of dir/.gitignore, scoped to dir.
// Deeper files are appended last and so take precedence, as in git.
func (f *gitIgnoreFilter) LoadDir(dir string) {
	path := f.src.Join(dir, gitIgnoreFile)

	patterns, err := readIgnoreFile(f.src, path, splitPath(dir))
	if err != nil && f.onError != nil {
		f.onError(path, err)
	}
	if len(patterns) == 0 {
		return
	}

	f.patterns = append(f.patterns, patterns...)
	f.matcher = gitignore.NewMatcher(f.patterns)
}

// ShouldIgnore reports whether path is matched by a loaded pattern.
func (f *gitIgnoreFilter) ShouldIgnore(path string, isDir bool) bool {
	if f.matcher == nil {
		return false
	}
	segments := splitPath(path)
	if len(segments) == 0 {
		return false
	}
	return f.matcher.Match(segments, isDir)
}

// readIgnoreFile parses one .gitignore. A missing file yields no patterns and
// no error. On a read error the patterns parsed so far are still returned.
func readIgnoreFile(fs billy.Filesystem, path string, domain []string) ([]gitignore.Pattern, error) {
	file, err := fs.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open: %w", err)
	}
	defer file.Close()

	var patterns []gitignore.Pattern
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}
		patterns = append(patterns, gitignore.ParsePattern(line, domain))
	}
	if err := scanner.Err(); err != nil {
		return patterns, fmt.Errorf("failed to read: %w", err)
	}
	return patterns, nil
}

// splitPath splits a path into segments for gitignore matching,
// dropping empty and "." segments.
func splitPath(path string) []string {
	if path == "" {
		return nil
	}

	var segments []string
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part != "" && part != "." {
			segments = append(segments, part)
		}
	}
	return segments
}
