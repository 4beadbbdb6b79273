package ports

import (
	"io/fs"
	"iter"
)

// FileSystem abstracts the storage the session reads source files from and writes outputs to.
//
//go:generate mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type FileSystem interface {
	// Stat returns file info for the given path.
	Stat(path string) (fs.FileInfo, error)
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)
	// IsDir checks if the path is a directory.
	IsDir(path string) (bool, error)
	// WalkFiles yields the absolute path of every regular file under root,
	// skipping VCS metadata and directories whose name matches one of ignores.
	WalkFiles(root string, ignores []string) iter.Seq[string]
	// WriteFile writes data to path, creating parent directories as needed.
	WriteFile(path string, data []byte) error
}
