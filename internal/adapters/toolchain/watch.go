package toolchain

import (
	"context"

	"go.trai.ch/tsload/internal/core/ports"
)

// watchProgram rebuilds its program when the host's project version moves.
type watchProgram struct {
	host     ports.ScriptHost
	registry *documentRegistry
	roots    []string
	program  *program
	version  string
	stale    bool
}

// Program returns the current program, rebuilding it when any file or the root set changed.
func (w *watchProgram) Program(ctx context.Context) (ports.Program, error) {
	rootsChanged := w.stale
	if w.stale {
		w.roots = w.host.ScriptFileNames()
		w.stale = false
	}

	version := w.host.ProjectVersion()
	if w.program != nil && !rootsChanged && version == w.version {
		return w.program, nil
	}

	p, err := buildProgram(ctx, w.roots, w.host.CompilerOptions(), w.host, w.registry, w.program)
	if err != nil {
		return nil, err
	}
	w.program, w.version = p, version
	return p, nil
}

// UpdateRootFileNames re-reads the root files on the next Program call.
func (w *watchProgram) UpdateRootFileNames() {
	w.stale = true
}
