package ports

import (
	"context"

	"go.trai.ch/tsload/internal/core/domain"
)

//go:generate mockgen -source=toolchain.go -destination=mocks/mock_toolchain.go -package=mocks

// Compiler is the external compiler toolchain a session drives.
type Compiler interface {
	// Name identifies the toolchain in log output.
	Name() string
	// Version is the toolchain version.
	Version() string

	// ParseConfig reads and resolves the configuration file at configPath.
	// Relative file names resolve against basePath. Problems with individual
	// options are returned in ParsedConfig.Errors; the error result is reserved
	// for configuration files that cannot be read at all.
	ParseConfig(ctx context.Context, configPath, basePath string, host ConfigHost) (*domain.ParsedConfig, error)

	// SupportsWatch reports whether CreateWatchProgram is available.
	SupportsWatch() bool

	// CreateProgram builds a program over rootNames.
	CreateProgram(ctx context.Context, rootNames []string, options domain.CompilerOptions, host CompilerHost) (Program, error)

	// CreateWatchProgram builds a watch program over host.ScriptFileNames and compiles it.
	CreateWatchProgram(ctx context.Context, host ScriptHost) (WatchProgram, error)

	// CreateDocumentRegistry creates a cache of parsed documents shareable between language services.
	CreateDocumentRegistry() DocumentRegistry

	// CreateLanguageService builds a query-only handle that compiles nothing until asked.
	CreateLanguageService(host ScriptHost, registry DocumentRegistry) (LanguageService, error)
}

// SourceFile is one source unit inside a Program.
type SourceFile interface {
	FileName() string
	Text() string
}

// WriteFileFunc receives each file produced by Program.Emit.
type WriteFileFunc func(name, text string, writeByteOrderMark bool)

// Transformer rewrites an emitted file before it reaches the writer.
type Transformer func(sourcePath string, out domain.OutputFile) domain.OutputFile

// Program is the toolchain's view of a complete set of source units.
type Program interface {
	// SourceFile locates the unit for path.
	SourceFile(path string) (SourceFile, bool)
	// Emit emits only file, handing every produced file to write.
	Emit(ctx context.Context, file SourceFile, write WriteFileFunc, emitOnlyDeclarations bool, transformers []Transformer) domain.EmitResult
	// Diagnostics returns the problems found in file.
	Diagnostics(ctx context.Context, file SourceFile) []domain.Diagnostic
	// OptionsDiagnostics returns problems with the compiler options themselves.
	OptionsDiagnostics() []domain.Diagnostic
}

// WatchProgram owns incremental recomputation of a Program.
type WatchProgram interface {
	// Program returns the current program, recompiling units whose script version changed.
	Program(ctx context.Context) (Program, error)
	// UpdateRootFileNames re-reads the root file names from the host on the next Program call.
	UpdateRootFileNames()
}

// LanguageService answers per-file queries from the current host state.
type LanguageService interface {
	// EmitOutput emits path. It returns domain.ErrFileNotInProgram for files the host does not list.
	EmitOutput(ctx context.Context, path string) (domain.EmitOutput, error)
	// Diagnostics returns the problems found in path.
	Diagnostics(ctx context.Context, path string) ([]domain.Diagnostic, error)
	// OptionsDiagnostics returns problems with the compiler options themselves.
	OptionsDiagnostics() []domain.Diagnostic
}

// DocumentRegistry caches parsed source documents by path and version.
type DocumentRegistry interface {
	// Documents returns the number of cached documents.
	Documents() int
}

// ConfigHost is the storage access needed to parse a configuration file.
type ConfigHost interface {
	// ReadFile returns the content of path.
	ReadFile(path string) (string, bool)
	// FileExists reports whether path is a readable file.
	FileExists(path string) bool
	// ReadDirectory lists the files under root that have one of extensions and
	// match includes without matching excludes. Patterns are relative to root.
	ReadDirectory(root string, extensions, excludes, includes []string) []string
}

// CompilerHost is the capability surface a session hands to the toolchain.
// Its methods run inside the session's critical section.
type CompilerHost interface {
	ConfigHost
	// CurrentDirectory is the base path of the session.
	CurrentDirectory() string
	// DirectoryExists reports whether path is a directory.
	DirectoryExists(path string) bool
	// CompilerOptions returns the resolved options of the session.
	CompilerOptions() domain.CompilerOptions
	// ScriptSnapshot returns the current text of a source unit, loading it on first use.
	ScriptSnapshot(path string) (string, bool)
	// RecordDependencies reports the resolved imports of path.
	RecordDependencies(path string, deps []string)
}

// ScriptHost extends CompilerHost with the versioned view used by watch programs and language services.
type ScriptHost interface {
	CompilerHost
	// ScriptFileNames lists the root files of the program.
	ScriptFileNames() []string
	// ScriptVersion returns the version token of path.
	ScriptVersion(path string) string
	// ProjectVersion changes whenever any file changes.
	ProjectVersion() string
	// Transformers returns the custom transformers applied to every emit.
	Transformers() []Transformer
}
