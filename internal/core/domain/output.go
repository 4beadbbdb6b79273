package domain

import "strings"

// OutputFile is a single file produced by emitting a source unit.
type OutputFile struct {
	Name               string
	Text               string
	WriteByteOrderMark bool
}

// EmitOutput collects the files produced for one source unit.
type EmitOutput struct {
	Outputs []OutputFile
	// Skipped is set when the toolchain declined to emit, usually because of syntax errors.
	Skipped bool
	// Diagnostics are problems reported while emitting.
	Diagnostics []Diagnostic
}

// EmitResult is what a program reports after emitting through a writer callback.
type EmitResult struct {
	Skipped     bool
	Diagnostics []Diagnostic
}

// JavaScript returns the primary JavaScript output.
func (e EmitOutput) JavaScript() (OutputFile, bool) {
	for _, out := range e.Outputs {
		switch {
		case strings.HasSuffix(out.Name, ".js"),
			strings.HasSuffix(out.Name, ".jsx"),
			strings.HasSuffix(out.Name, ".mjs"),
			strings.HasSuffix(out.Name, ".cjs"):
			return out, true
		}
	}
	return OutputFile{}, false
}

// SourceMap returns the source map output.
func (e EmitOutput) SourceMap() (OutputFile, bool) {
	for _, out := range e.Outputs {
		if strings.HasSuffix(out.Name, ".map") {
			return out, true
		}
	}
	return OutputFile{}, false
}
