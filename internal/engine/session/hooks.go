package session

import (
	"context"
	"errors"
	"maps"
	"slices"

	"go.trai.ch/tsload/internal/core/domain"
	"go.trai.ch/tsload/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SessionHooks = (*Session)(nil)

// WatchRun applies the changes reported before a rebuild.
func (s *Session) WatchRun(ctx context.Context, changes []domain.FileChange) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.ApplyDelta(ctx, changes)
	return nil
}

// AfterCompile publishes the diagnostics gathered since the previous compilation.
// It returns domain.ErrCompilationFailed when any of them is an error.
func (s *Session) AfterCompile(ctx context.Context) error {
	diags, err := s.CollectDiagnostics(ctx)
	if err != nil {
		return err
	}

	s.reporter.Report(domain.DiagnosticReport{
		Instance:    s.key,
		ConfigPath:  s.configPath,
		Colors:      s.loader.Colors,
		Diagnostics: diags,
	})

	if n := domain.CountErrors(diags); n > 0 {
		return zerr.With(zerr.Wrap(domain.ErrCompilationFailed, "compilation failed"), "errors", n)
	}
	return nil
}

// CollectDiagnostics returns the problems in files modified since the last call and in
// every file that transitively imports them. The first call covers all program files
// and the compiler options. Transpile-only sessions have no diagnostics.
func (s *Session) CollectDiagnostics(ctx context.Context) ([]domain.Diagnostic, error) {
	ctx, span := s.tracer.Start(ctx, "session.collect_diagnostics")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.strategy.(*transpileOnly); ok {
		s.compiled = true
		clear(s.modified)
		return nil, nil
	}

	targets := s.diagnosticTargets()
	var diags []domain.Diagnostic

	switch st := s.strategy.(type) {
	case *watchDriven:
		program, err := s.refreshProgram(ctx, st)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		if !s.compiled && !s.loader.HappyPackMode {
			diags = append(diags, program.OptionsDiagnostics()...)
		}
		for _, name := range targets {
			if file, ok := program.SourceFile(name); ok {
				diags = append(diags, program.Diagnostics(ctx, file)...)
			}
		}
	case *pullDriven:
		if !s.compiled && !s.loader.HappyPackMode {
			diags = append(diags, st.service.OptionsDiagnostics()...)
		}
		for _, name := range targets {
			found, err := st.service.Diagnostics(ctx, name)
			if errors.Is(err, domain.ErrFileNotInProgram) {
				continue
			}
			if err != nil {
				span.RecordError(err)
				return nil, zerr.With(zerr.Wrap(err, "failed to collect diagnostics"), "path", name)
			}
			diags = append(diags, found...)
		}
	}

	s.compiled = true
	clear(s.modified)
	domain.SortDiagnostics(diags)
	span.SetAttribute("diagnostics", len(diags))
	return diags, nil
}

// diagnosticTargets lists the live program files whose diagnostics may have changed. Callers hold s.mu.
func (s *Session) diagnosticTargets() []string {
	scripts := func(names []string) []string {
		return slices.DeleteFunc(names, func(name string) bool {
			rec, ok := s.files.Get(name)
			return !ok || rec.Removed || !s.scripts.MatchString(name)
		})
	}

	if !s.compiled {
		return scripts(s.files.ProgramFiles())
	}

	modified := slices.Sorted(maps.Keys(s.modified))
	targets := append(modified, s.graph.TransitiveDependents(modified...)...)
	slices.Sort(targets)
	return scripts(slices.Compact(targets))
}
