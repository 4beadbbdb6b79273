package domain

import (
	"cmp"
	"slices"
)

// DiagnosticCategory is the severity of a Diagnostic.
type DiagnosticCategory uint8

const (
	// CategoryError marks diagnostics that fail a compilation.
	CategoryError DiagnosticCategory = iota
	// CategoryWarning marks diagnostics that are reported but do not fail a compilation.
	CategoryWarning
	// CategoryMessage marks informational diagnostics.
	CategoryMessage
)

// String returns the lowercase name of the category.
func (c DiagnosticCategory) String() string {
	switch c {
	case CategoryError:
		return "error"
	case CategoryWarning:
		return "warning"
	default:
		return "message"
	}
}

// Diagnostic is a raw problem report from the toolchain. Formatting is left to the reporter.
type Diagnostic struct {
	Category DiagnosticCategory
	// Code is a toolchain-specific identifier, zero when unknown.
	Code int
	// File is empty for global diagnostics such as invalid compiler options.
	File string
	// Line and Column are 1-based; zero when the diagnostic has no position.
	Line   int
	Column int
	// Source names the producer, for example "tsconfig" or "syntax".
	Source  string
	Message string
}

// DiagnosticReport is a batch of diagnostics published to the host at the end of a compilation.
type DiagnosticReport struct {
	Instance    string
	ConfigPath  string
	Colors      bool
	Diagnostics []Diagnostic
}

// HasErrors reports whether any diagnostic is an error.
func HasErrors(diags []Diagnostic) bool {
	return slices.ContainsFunc(diags, func(d Diagnostic) bool {
		return d.Category == CategoryError
	})
}

// CountErrors returns the number of error diagnostics.
func CountErrors(diags []Diagnostic) int {
	n := 0
	for _, d := range diags {
		if d.Category == CategoryError {
			n++
		}
	}
	return n
}

// SortDiagnostics orders diagnostics by file, line and column. Global diagnostics come first.
func SortDiagnostics(diags []Diagnostic) {
	slices.SortStableFunc(diags, func(a, b Diagnostic) int {
		return cmp.Or(
			cmp.Compare(a.File, b.File),
			cmp.Compare(a.Line, b.Line),
			cmp.Compare(a.Column, b.Column),
		)
	})
}
