// Package linear prints diagnostics as plain, line-oriented output suitable for terminals and CI logs.
package linear

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/muesli/termenv"
	"go.trai.ch/tsload/internal/core/domain"
	"go.trai.ch/tsload/internal/core/ports"
	"go.trai.ch/tsload/internal/ui/output"
	"go.trai.ch/tsload/internal/ui/style"
)

var _ ports.DiagnosticsReporter = (*Reporter)(nil)

// Reporter implements ports.DiagnosticsReporter.
// Each report is rendered in full before it is written, so concurrent reports never interleave.
type Reporter struct {
	mu  sync.Mutex
	out io.Writer
}

// NewReporter creates a Reporter writing to out, or to stderr when out is nil.
func NewReporter(out io.Writer) *Reporter {
	if out == nil {
		out = os.Stderr
	}
	return &Reporter{out: out}
}

// Report prints every diagnostic followed by a summary line. Empty reports print nothing.
func (r *Reporter) Report(report domain.DiagnosticReport) {
	if len(report.Diagnostics) == 0 {
		return
	}

	var buf bytes.Buffer
	profile := output.ColorProfileANSI
	if !report.Colors {
		profile = func() termenv.Profile { return termenv.Ascii }
	}
	out := output.NewWithProfile(&buf, profile)
	prefix := out.String(fmt.Sprintf("[%s]", report.Instance)).Faint().String()
	baseDir := ""
	if report.ConfigPath != "" {
		baseDir = filepath.Dir(report.ConfigPath)
	}

	for _, d := range report.Diagnostics {
		mark := style.ForCategory(d.Category)
		symbol := out.String(mark.Icon).Foreground(mark.Terminal()).String()
		location := out.String(r.location(d, report.ConfigPath, baseDir)).Bold().String()

		lines := strings.Split(strings.TrimRight(d.Message, "\n"), "\n")
		_, _ = fmt.Fprintf(&buf, "%s %s %s %s: %s\n", prefix, symbol, location, code(d), lines[0])
		for _, line := range lines[1:] {
			_, _ = fmt.Fprintf(&buf, "%s     %s\n", prefix, line)
		}
	}

	errs := domain.CountErrors(report.Diagnostics)
	warnings := len(report.Diagnostics) - errs
	_, _ = fmt.Fprintf(&buf, "%s Found %s and %s.\n", prefix, plural(errs, "error"), plural(warnings, "warning"))

	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = r.out.Write(buf.Bytes())
}

func (r *Reporter) location(d domain.Diagnostic, configPath, baseDir string) string {
	file := d.File
	if file == "" {
		file = configPath
	}
	if file == "" {
		return "compiler options"
	}
	if baseDir != "" {
		if rel, err := filepath.Rel(baseDir, file); err == nil && !strings.HasPrefix(rel, "..") {
			file = rel
		}
	}
	file = filepath.ToSlash(file)
	if d.Line > 0 {
		return fmt.Sprintf("%s:%d:%d", file, d.Line, d.Column)
	}
	return file
}

func code(d domain.Diagnostic) string {
	if d.Code > 0 {
		return fmt.Sprintf("TS%d", d.Code)
	}
	if d.Source != "" {
		return d.Source
	}
	return d.Category.String()
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
