package fs

import (
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"
	"testing/fstest"

	"go.trai.ch/tsload/internal/core/domain"
	"go.trai.ch/tsload/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.FileSystem = (*OSFS)(nil)
	_ ports.FileSystem = (*MapFSAdapter)(nil)
)

// OSFS implements ports.FileSystem on the local disk.
type OSFS struct{}

// NewOSFS creates a new OSFS instance.
func NewOSFS() *OSFS {
	return &OSFS{}
}

// Stat returns file info for the given path.
func (o *OSFS) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// ReadFile reads the entire file at path.
func (o *OSFS) ReadFile(path string) ([]byte, error) {
	// #nosec G304 -- paths come from the project configuration
	return os.ReadFile(path)
}

// IsDir checks if the path is a directory.
func (o *OSFS) IsDir(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

// WalkFiles yields the absolute path of every regular file under root.
func (o *OSFS) WalkFiles(root string, ignores []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		base := filepath.Clean(root)
		for rel := range walkFiles(os.DirFS(base), ".", ignores) {
			if !yield(filepath.Join(base, filepath.FromSlash(rel))) {
				return
			}
		}
	}
}

// WriteFile writes data to path, creating parent directories as needed.
func (o *OSFS) WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", path)
	}
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil { //nolint:gosec // outputs are world-readable like tsc output
		return zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", path)
	}
	return nil
}

// MapFSAdapter adapts fstest.MapFS to ports.FileSystem for tests.
// Absolute paths under Root map onto keys of the MapFS.
type MapFSAdapter struct {
	FS   fstest.MapFS
	Root string
}

// NewMapFSAdapter creates a new MapFSAdapter with the given root path and filesystem.
func NewMapFSAdapter(root string, fsys fstest.MapFS) *MapFSAdapter {
	if fsys == nil {
		fsys = fstest.MapFS{}
	}
	return &MapFSAdapter{
		FS:   fsys,
		Root: filepath.Clean(root),
	}
}

// Stat returns file info for the given path.
func (m *MapFSAdapter) Stat(path string) (fs.FileInfo, error) {
	return fs.Stat(m.FS, m.toRelPath(path))
}

// ReadFile reads the entire file at path.
func (m *MapFSAdapter) ReadFile(path string) ([]byte, error) {
	return fs.ReadFile(m.FS, m.toRelPath(path))
}

// IsDir checks if the path is a directory.
func (m *MapFSAdapter) IsDir(path string) (bool, error) {
	info, err := m.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

// WalkFiles yields the absolute path of every file under root.
func (m *MapFSAdapter) WalkFiles(root string, ignores []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for rel := range walkFiles(m.FS, m.toRelPath(root), ignores) {
			if !yield(filepath.Join(m.Root, filepath.FromSlash(rel))) {
				return
			}
		}
	}
}

// WriteFile stores data under path.
func (m *MapFSAdapter) WriteFile(path string, data []byte) error {
	m.FS[m.toRelPath(path)] = &fstest.MapFile{Data: data, Mode: domain.FilePerm}
	return nil
}

// toRelPath converts an absolute path to a key of the MapFS.
// Paths outside Root are returned unchanged so lookups fail with fs.ErrNotExist.
func (m *MapFSAdapter) toRelPath(absPath string) string {
	if !filepath.IsAbs(absPath) {
		return filepath.ToSlash(filepath.Clean(absPath))
	}
	absPath = filepath.Clean(absPath)
	if absPath == m.Root {
		return "."
	}
	if m.Root != "/" && !strings.HasPrefix(absPath, m.Root+string(filepath.Separator)) {
		return absPath
	}
	rel := strings.TrimPrefix(absPath, m.Root)
	rel = strings.TrimPrefix(rel, string(filepath.Separator))
	return filepath.ToSlash(rel)
}
