package toolchain

import (
	"context"

	"go.trai.ch/tsload/internal/core/domain"
	"go.trai.ch/tsload/internal/core/ports"
	"go.trai.ch/zerr"
)

// languageService answers queries from a program it rebuilds lazily when the project version moves.
type languageService struct {
	host     ports.ScriptHost
	registry *documentRegistry
	program  *program
	version  string
}

func (s *languageService) current(ctx context.Context) (*program, error) {
	version := s.host.ProjectVersion()
	if s.program != nil && version == s.version {
		return s.program, nil
	}
	p, err := buildProgram(ctx, s.host.ScriptFileNames(), s.host.CompilerOptions(), s.host, s.registry, s.program)
	if err != nil {
		return nil, err
	}
	s.program, s.version = p, version
	return p, nil
}

func (s *languageService) sourceUnit(ctx context.Context, path string) (*sourceUnit, *program, error) {
	p, err := s.current(ctx)
	if err != nil {
		return nil, nil, err
	}
	name := domain.NormalizePath(path)
	u, ok := p.unit(name)
	if !ok {
		return nil, nil, zerr.With(zerr.Wrap(domain.ErrFileNotInProgram, "not a script file of the host"), "path", name)
	}
	return u, p, nil
}

// EmitOutput emits path through the host's transformers.
func (s *languageService) EmitOutput(ctx context.Context, path string) (domain.EmitOutput, error) {
	u, p, err := s.sourceUnit(ctx, path)
	if err != nil {
		return domain.EmitOutput{}, err
	}

	var out domain.EmitOutput
	result := p.Emit(ctx, u, func(name, text string, bom bool) {
		out.Outputs = append(out.Outputs, domain.OutputFile{Name: name, Text: text, WriteByteOrderMark: bom})
	}, false, s.host.Transformers())
	out.Skipped = result.Skipped
	out.Diagnostics = result.Diagnostics
	return out, nil
}

// Diagnostics returns the problems found in path.
func (s *languageService) Diagnostics(ctx context.Context, path string) ([]domain.Diagnostic, error) {
	u, p, err := s.sourceUnit(ctx, path)
	if err != nil {
		return nil, err
	}
	return p.Diagnostics(ctx, u), nil
}

// OptionsDiagnostics returns problems with the host's compiler options.
func (s *languageService) OptionsDiagnostics() []domain.Diagnostic {
	return optionsDiagnostics(s.host.CompilerOptions())
}
