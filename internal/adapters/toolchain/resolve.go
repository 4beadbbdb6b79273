package toolchain

import (
	"fmt"
	"path/filepath"
	"strings"

	"go.trai.ch/tsload/internal/core/domain"
	"go.trai.ch/tsload/internal/core/ports"
)

const resolveSource = "resolve"

// resolver maps relative module specifiers to files. Bare specifiers are left to the bundler.
type resolver struct {
	host       ports.CompilerHost
	extensions []string
}

func newResolver(host ports.CompilerHost, options domain.CompilerOptions) *resolver {
	extensions := []string{".ts", ".tsx", ".d.ts"}
	if options.AllowJS {
		extensions = append(extensions, ".js", ".jsx")
	}
	return &resolver{host: host, extensions: extensions}
}

func isRelative(specifier string) bool {
	return specifier == "." || specifier == ".." ||
		strings.HasPrefix(specifier, "./") || strings.HasPrefix(specifier, "../") ||
		filepath.IsAbs(specifier)
}

// resolve returns the file specifier names when imported from the file at from.
// ok is false for bare specifiers, found is false for relative specifiers that match nothing.
func (r *resolver) resolve(from, specifier string) (path string, ok, found bool) {
	if !isRelative(specifier) {
		return "", false, false
	}
	base := domain.ResolvePath(filepath.Dir(from), specifier)

	candidates := []string{base}
	// "./b.js" names the output of b.ts.
	if ext := filepath.Ext(base); ext == ".js" || ext == ".jsx" || ext == ".mjs" || ext == ".cjs" {
		stem := strings.TrimSuffix(base, ext)
		for _, e := range r.extensions {
			candidates = append(candidates, stem+e)
		}
	}
	for _, e := range r.extensions {
		candidates = append(candidates, base+e)
	}
	for _, e := range r.extensions {
		candidates = append(candidates, filepath.Join(base, "index"+e))
	}

	for _, candidate := range candidates {
		if r.host.FileExists(candidate) {
			return candidate, true, true
		}
	}
	return "", true, false
}

func unresolvedImport(file string, ref moduleRef) domain.Diagnostic {
	return domain.Diagnostic{
		Category: domain.CategoryError,
		Code:     2307,
		File:     file,
		Line:     ref.line,
		Column:   ref.column,
		Source:   resolveSource,
		Message:  fmt.Sprintf("Cannot find module '%s' or its corresponding type declarations.", ref.specifier),
	}
}
