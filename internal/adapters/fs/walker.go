// Package fs provides the storage adapters the session reads sources from and writes outputs to.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
)

// skipDirs are never descended into.
var skipDirs = map[string]bool{
	".git": true,
	".jj":  true,
}

// walkFiles yields every regular file below root of fsys, skipping VCS
// directories and any directory whose name matches one of ignores.
// Yielded paths are relative to the fsys root.
func walkFiles(fsys fs.FS, root string, ignores []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = fs.WalkDir(fsys, root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				// Unreadable entries are skipped, not fatal.
				return nil //nolint:nilerr // keep walking past permission errors
			}
			if d.IsDir() {
				if path != root && shouldSkipDir(d.Name(), ignores) {
					return fs.SkipDir
				}
				return nil
			}
			if !d.Type().IsRegular() {
				return nil
			}
			if !yield(path) {
				return fs.SkipAll
			}
			return nil
		})
	}
}

func shouldSkipDir(name string, ignores []string) bool {
	if skipDirs[name] {
		return true
	}
	for _, ignore := range ignores {
		if matched, _ := filepath.Match(ignore, name); matched {
			return true
		}
	}
	return false
}
