package domain

import "unique"

// PathKey is an interned, normalized file path. Import edges repeat the same
// paths many times over, so the dependency graph keys on handles.
type PathKey struct {
	h unique.Handle[string]
}

// KeyOf normalizes path and interns it.
func KeyOf(path string) PathKey {
	return PathKey{h: unique.Make(NormalizePath(path))}
}

// String returns the normalized path.
func (k PathKey) String() string {
	return k.h.Value()
}
