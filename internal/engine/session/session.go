// Package session keeps long-lived compilation sessions consistent with the files a build tool reports.
package session

import (
	"regexp"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/tsload/internal/core/domain"
	"go.trai.ch/tsload/internal/core/ports"
)

// strategy is the update strategy chosen at bootstrap. It is one of
// *watchDriven, *pullDriven or *transpileOnly.
type strategy interface {
	kind() domain.Strategy
}

// watchDriven sessions let the toolchain's watch program own recompilation.
type watchDriven struct {
	watch   ports.WatchProgram
	program ports.Program
}

func (*watchDriven) kind() domain.Strategy { return domain.StrategyWatchDriven }

// pullDriven sessions query a language service that derives results from current file versions.
type pullDriven struct {
	service  ports.LanguageService
	registry ports.DocumentRegistry
}

func (*pullDriven) kind() domain.Strategy { return domain.StrategyPullDriven }

// transpileOnly sessions build a fresh single-file program for every emit.
type transpileOnly struct{}

func (*transpileOnly) kind() domain.Strategy { return domain.StrategyTranspileOnly }

// suffixRule presents files matching pattern to the toolchain under name+suffix.
type suffixRule struct {
	pattern *regexp.Regexp
	suffix  string
}

// Session is one long-lived compilation context bound to a key.
// Its exported methods are safe for concurrent use; mutations are serialized by a per-session mutex.
type Session struct {
	key        string
	loader     domain.LoaderOptions
	options    domain.CompilerOptions
	configPath string
	basePath   string
	// configFiles are the files the configuration names, in configuration order.
	configFiles []string

	compiler     ports.Compiler
	fs           ports.FileSystem
	logger       ports.Logger
	reporter     ports.DiagnosticsReporter
	tracer       ports.Tracer
	transformers []ports.Transformer

	scripts  *regexp.Regexp
	suffixes []suffixRule

	mu       sync.Mutex
	files    *domain.FileStore
	graph    *domain.DependencyGraph
	strategy strategy
	// aliases maps suffixed toolchain names back to the file on disk.
	aliases  map[string]string
	version  int64
	dirty    bool
	newRoots bool
	modified map[string]struct{}
	compiled bool
}

// Key returns the registry key of the session.
func (s *Session) Key() string {
	return s.key
}

// Strategy returns the update strategy chosen at bootstrap.
func (s *Session) Strategy() domain.Strategy {
	return s.strategy.kind()
}

// CompilerOptions returns the resolved compiler options.
func (s *Session) CompilerOptions() domain.CompilerOptions {
	return s.options
}

// LoaderOptions returns the options the session was built with.
func (s *Session) LoaderOptions() domain.LoaderOptions {
	return s.loader
}

// ConfigPath returns the configuration file the session was built from, empty when defaults were used.
func (s *Session) ConfigPath() string {
	return s.configPath
}

// BasePath returns the directory configuration-relative names resolve against.
func (s *Session) BasePath() string {
	return s.basePath
}

// Version returns the session's staleness token. It never decreases.
func (s *Session) Version() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

// Dirty reports whether a program refresh is owed before the next emit.
func (s *Session) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// File returns the record for path, program files first.
func (s *Session) File(path string) (domain.FileRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.files.Lookup(s.toolchainName(path))
}

// ConfigFiles returns the files named by the configuration the session was built from.
// Unlike ProgramFiles it is populated for transpile-only sessions too.
func (s *Session) ConfigFiles() []string {
	return slices.Clone(s.configFiles)
}

// ProgramFiles returns the live program files, as the toolchain names them.
func (s *Session) ProgramFiles() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.files.ProgramFiles()
}

// Dependencies returns the files path imports.
func (s *Session) Dependencies(path string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.graph.Dependencies(s.toolchainName(path))
}

// Dependents returns the files importing path. Edges survive the removal of either side.
func (s *Session) Dependents(path string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.graph.Dependents(s.toolchainName(path))
}

// IsScript reports whether path is eligible for compilation.
func (s *Session) IsScript(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scripts.MatchString(s.toolchainName(path))
}

// toolchainName normalizes path and applies the suffix rules. Callers hold s.mu.
func (s *Session) toolchainName(path string) string {
	name := domain.NormalizePath(path)
	if name == "" {
		return ""
	}
	for _, rule := range s.suffixes {
		if strings.HasSuffix(name, rule.suffix) || !rule.pattern.MatchString(name) {
			continue
		}
		suffixed := name + rule.suffix
		s.aliases[suffixed] = name
		return suffixed
	}
	return name
}

// diskPath maps a toolchain name back to the file on disk. Callers hold s.mu.
func (s *Session) diskPath(name string) string {
	if path, ok := s.aliases[name]; ok {
		return path
	}
	return name
}
