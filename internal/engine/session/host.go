package session

import (
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/tsload/internal/core/domain"
	"go.trai.ch/tsload/internal/core/ports"
)

// directoryIgnores are never listed by ReadDirectory.
var directoryIgnores = []string{domain.NodeModulesDirName}

// storageHost answers configuration queries straight from storage.
type storageHost struct {
	fs ports.FileSystem
}

var _ ports.ConfigHost = (*storageHost)(nil)

func (h *storageHost) ReadFile(path string) (string, bool) {
	data, err := h.fs.ReadFile(path)
	if err != nil {
		return "", false
	}
	return string(data), true
}

func (h *storageHost) FileExists(path string) bool {
	info, err := h.fs.Stat(path)
	return err == nil && !info.IsDir()
}

func (h *storageHost) DirectoryExists(path string) bool {
	isDir, err := h.fs.IsDir(path)
	return err == nil && isDir
}

// ReadDirectory lists files under root by extension, include and exclude patterns.
// Patterns are doublestar globs relative to root; a pattern naming a directory matches everything below it.
func (h *storageHost) ReadDirectory(root string, extensions, excludes, includes []string) []string {
	root = domain.NormalizePath(root)
	var files []string
	for path := range h.fs.WalkFiles(root, directoryIgnores) {
		if !hasExtension(path, extensions) {
			continue
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			continue
		}
		rel = filepath.ToSlash(rel)
		if len(includes) > 0 && !matchesAny(rel, includes) {
			continue
		}
		if matchesAny(rel, excludes) {
			continue
		}
		files = append(files, path)
	}
	slices.Sort(files)
	return files
}

func hasExtension(path string, extensions []string) bool {
	if len(extensions) == 0 {
		return true
	}
	for _, ext := range extensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

func matchesAny(rel string, patterns []string) bool {
	for _, pattern := range patterns {
		pattern = strings.TrimPrefix(filepath.ToSlash(pattern), "./")
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
		if ok, _ := doublestar.Match(strings.TrimSuffix(pattern, "/")+"/**", rel); ok {
			return true
		}
	}
	return false
}

// sessionHost is the capability surface a session hands to the toolchain.
// The toolchain only calls it from inside Session methods, which already hold s.mu.
type sessionHost struct {
	storageHost
	s *Session
}

var _ ports.ScriptHost = (*sessionHost)(nil)

func newSessionHost(s *Session) *sessionHost {
	return &sessionHost{storageHost: storageHost{fs: s.fs}, s: s}
}

// ReadFile serves known files from the store and caches everything else as a non-program file.
func (h *sessionHost) ReadFile(path string) (string, bool) {
	return h.ScriptSnapshot(path)
}

func (h *sessionHost) FileExists(path string) bool {
	name := domain.NormalizePath(path)
	if rec, ok := h.s.files.Lookup(name); ok {
		return !rec.Removed
	}
	return h.storageHost.FileExists(h.s.diskPath(name))
}

func (h *sessionHost) CurrentDirectory() string {
	return h.s.basePath
}

func (h *sessionHost) CompilerOptions() domain.CompilerOptions {
	return h.s.options
}

func (h *sessionHost) ScriptSnapshot(path string) (string, bool) {
	name := domain.NormalizePath(path)
	if rec, ok := h.s.files.Lookup(name); ok {
		return rec.Text, !rec.Removed
	}
	text, ok := h.storageHost.ReadFile(h.s.diskPath(name))
	if !ok {
		return "", false
	}
	h.s.files.SeedOther(name, text)
	return text, true
}

// RecordDependencies tracks the imports of program files. Non-program files are not tracked.
func (h *sessionHost) RecordDependencies(path string, deps []string) {
	if _, ok := h.s.strategy.(*transpileOnly); ok {
		return
	}
	name := domain.NormalizePath(path)
	if !h.s.files.IsProgramFile(name) {
		return
	}
	normalized := make([]string, 0, len(deps))
	for _, dep := range deps {
		normalized = append(normalized, domain.NormalizePath(dep))
	}
	// Imports of removed files no longer resolve; their edges stay until the file returns.
	for _, dep := range h.s.graph.Dependencies(name) {
		if rec, ok := h.s.files.Lookup(dep); ok && rec.Removed && !slices.Contains(normalized, dep) {
			normalized = append(normalized, dep)
		}
	}
	h.s.graph.SetDependencies(name, normalized)
}

// ScriptFileNames lists the live program files the script pattern accepts.
func (h *sessionHost) ScriptFileNames() []string {
	names := h.s.files.ProgramFiles()
	return slices.DeleteFunc(names, func(name string) bool {
		return !h.s.scripts.MatchString(name)
	})
}

func (h *sessionHost) ScriptVersion(path string) string {
	rec, ok := h.s.files.Lookup(domain.NormalizePath(path))
	if !ok {
		return ""
	}
	return strconv.Itoa(rec.Version)
}

func (h *sessionHost) ProjectVersion() string {
	return strconv.FormatInt(h.s.version, 10)
}

func (h *sessionHost) Transformers() []ports.Transformer {
	return h.s.transformers
}
