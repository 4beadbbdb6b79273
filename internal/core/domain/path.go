package domain

import "path/filepath"

// NormalizePath returns the canonical absolute spelling of p.
// Every key of a FileStore and a DependencyGraph passes through here, so
// "src/../src/a.ts" and "./src/a.ts" address the same record.
func NormalizePath(p string) string {
	if p == "" {
		return ""
	}
	if !filepath.IsAbs(p) {
		if abs, err := filepath.Abs(p); err == nil {
			p = abs
		}
	}
	return filepath.Clean(p)
}

// ResolvePath resolves p against base when p is relative and normalizes the result.
func ResolvePath(base, p string) string {
	if p == "" {
		return ""
	}
	if !filepath.IsAbs(p) && base != "" {
		p = filepath.Join(base, p)
	}
	return NormalizePath(p)
}
