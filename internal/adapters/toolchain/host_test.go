package toolchain_test

import (
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/tsload/internal/core/domain"
	"go.trai.ch/tsload/internal/core/ports"
)

// memHost is an in-memory ports.ScriptHost.
type memHost struct {
	cwd          string
	files        map[string]string
	options      domain.CompilerOptions
	roots        []string
	version      int
	deps         map[string][]string
	transformers []ports.Transformer
	snapshots    int
}

var _ ports.ScriptHost = (*memHost)(nil)

func newMemHost(cwd string, files map[string]string) *memHost {
	h := &memHost{cwd: cwd, files: make(map[string]string), deps: make(map[string][]string)}
	for name, text := range files {
		h.files[domain.ResolvePath(cwd, name)] = text
	}
	return h
}

func (h *memHost) set(name, text string) {
	h.files[domain.ResolvePath(h.cwd, name)] = text
	h.version++
}

func (h *memHost) ReadFile(path string) (string, bool) {
	text, ok := h.files[path]
	return text, ok
}

func (h *memHost) FileExists(path string) bool {
	_, ok := h.files[path]
	return ok
}

func (h *memHost) ReadDirectory(root string, extensions, excludes, includes []string) []string {
	var out []string
	for path := range h.files {
		rel, err := filepath.Rel(root, path)
		if err != nil || strings.HasPrefix(rel, "..") {
			continue
		}
		if !slices.ContainsFunc(extensions, func(ext string) bool { return strings.HasSuffix(path, ext) }) {
			continue
		}
		if !matchAny(rel, includes) || matchAny(rel, excludes) {
			continue
		}
		out = append(out, path)
	}
	slices.Sort(out)
	return out
}

func matchAny(rel string, patterns []string) bool {
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
		if ok, _ := doublestar.Match(pattern+"/**", rel); ok {
			return true
		}
	}
	return false
}

func (h *memHost) CurrentDirectory() string { return h.cwd }

func (h *memHost) DirectoryExists(path string) bool {
	for name := range h.files {
		if strings.HasPrefix(name, path+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

func (h *memHost) CompilerOptions() domain.CompilerOptions { return h.options }

func (h *memHost) ScriptSnapshot(path string) (string, bool) {
	h.snapshots++
	return h.ReadFile(path)
}

func (h *memHost) RecordDependencies(path string, deps []string) {
	h.deps[path] = deps
}

func (h *memHost) ScriptFileNames() []string { return slices.Clone(h.roots) }

func (h *memHost) ScriptVersion(string) string { return strconv.Itoa(h.version) }

func (h *memHost) ProjectVersion() string { return strconv.Itoa(h.version) }

func (h *memHost) Transformers() []ports.Transformer { return h.transformers }
