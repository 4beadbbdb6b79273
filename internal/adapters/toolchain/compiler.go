// Package toolchain implements the compiler port on top of esbuild and tree-sitter.
package toolchain

import (
	"context"
	"runtime/debug"
	"strings"

	"go.trai.ch/tsload/internal/core/domain"
	"go.trai.ch/tsload/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	toolchainName   = "esbuild"
	esbuildModule   = "github.com/evanw/esbuild"
	unknownVersion  = "unknown"
	maxSyntaxErrors = 50
)

var (
	validTargets = []string{
		"es3", "es5", "es6", "es2015", "es2016", "es2017", "es2018", "es2019",
		"es2020", "es2021", "es2022", "es2023", "es2024", "esnext",
	}
	validModules = []string{
		"none", "commonjs", "amd", "umd", "system", "es6", "es2015", "es2020",
		"es2022", "esnext", "node16", "node18", "nodenext", "preserve",
	}
	validJSX = []string{"preserve", "react", "react-native", "react-jsx", "react-jsxdev"}
)

// Compiler drives esbuild for emit and tree-sitter for syntax checks and import scanning.
type Compiler struct {
	version string
}

// New creates a Compiler.
func New() *Compiler {
	return &Compiler{version: moduleVersion(esbuildModule)}
}

// Name identifies the toolchain.
func (c *Compiler) Name() string {
	return toolchainName
}

// Version is the esbuild module version linked into the binary.
func (c *Compiler) Version() string {
	return c.version
}

// SupportsWatch reports that watch programs are available.
func (c *Compiler) SupportsWatch() bool {
	return true
}

// CreateProgram builds a program over rootNames.
func (c *Compiler) CreateProgram(
	ctx context.Context,
	rootNames []string,
	options domain.CompilerOptions,
	host ports.CompilerHost,
) (ports.Program, error) {
	return buildProgram(ctx, rootNames, options, host, newDocumentRegistry(), nil)
}

// CreateWatchProgram builds a watch program over the host's script files and compiles it.
func (c *Compiler) CreateWatchProgram(ctx context.Context, host ports.ScriptHost) (ports.WatchProgram, error) {
	w := &watchProgram{
		host:     host,
		registry: newDocumentRegistry(),
		roots:    host.ScriptFileNames(),
	}
	if _, err := w.Program(ctx); err != nil {
		return nil, err
	}
	return w, nil
}

// CreateDocumentRegistry creates an empty document cache.
func (c *Compiler) CreateDocumentRegistry() ports.DocumentRegistry {
	return newDocumentRegistry()
}

// CreateLanguageService builds a language service. Nothing is compiled until it is queried.
func (c *Compiler) CreateLanguageService(
	host ports.ScriptHost,
	registry ports.DocumentRegistry,
) (ports.LanguageService, error) {
	if host == nil {
		return nil, zerr.Wrap(domain.ErrProgramCreateFailed, "language service requires a host")
	}
	docs, ok := registry.(*documentRegistry)
	if !ok || docs == nil {
		docs = newDocumentRegistry()
	}
	return &languageService{host: host, registry: docs}, nil
}

func moduleVersion(path string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return unknownVersion
	}
	for _, dep := range info.Deps {
		if dep.Path == path {
			return strings.TrimPrefix(dep.Version, "v")
		}
	}
	return unknownVersion
}
