// Package fileutil provides the directory walk used to select files for merging.
//
// Walk operates on a billy.Filesystem so the same traversal serves the real
// source tree (osfs) and in-memory trees in tests (memfs).
//
// # Selection rules
//
//   - Directories whose base name is listed in ExcludeDirs are pruned before
//     recursion, at any depth. Exclusion is never applied to file names.
//   - Files are selected when their name ends with one of Extensions. The
//     test is a case-sensitive suffix match, not an extension parse.
//   - Only regular files, and links that resolve to regular files, are
//     selected. Links to directories are not followed.
//   - An optional Ignore hook (used for .gitignore support) can reject more
//     paths after the rules above.
//   - EnterDir sees each directory just before it is listed, so callers can
//     load per-directory state (such as a .gitignore) without walking the
//     tree a second time. Pruned directories are never entered.
//   - OnOmit sees every listed entry that was left out, with the reason.
//
// # Ordering
//
// Siblings are visited in the order returned by ReadDir. Files of a directory
// are reported before any of its subdirectories are entered. Both osfs and
// memfs list entries by name, so a walk is deterministic for a given tree.
//
// # Errors
//
// A directory that cannot be listed is reported through OnError and its
// subtree is skipped; the walk continues. Walk itself only fails when the
// callback returns an error.
//
// Usage:
//
//	err := fileutil.Walk(osfs.New("src"), fileutil.WalkOptions{
//	    Extensions:  []string{".ts", ".tsx"},
//	    ExcludeDirs: []string{"node_modules", ".git"},
//	}, func(entry fileutil.Entry) error {
//	    fmt.Println(entry.Path)
//	    return nil
//	})
package fileutil
