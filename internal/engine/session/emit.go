package session

import (
	"context"
	"errors"

	"go.trai.ch/tsload/internal/core/domain"
	"go.trai.ch/tsload/internal/core/ports"
	"go.trai.ch/zerr"
)

// Emit returns the compiled output of path.
// It fails with domain.ErrFileNotInProgram when the session does not compile path.
func (s *Session) Emit(ctx context.Context, path string) (domain.EmitOutput, error) {
	ctx, span := s.tracer.Start(ctx, "session.emit", ports.WithAttribute("path", path))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	name := s.toolchainName(path)

	var (
		out domain.EmitOutput
		err error
	)
	switch st := s.strategy.(type) {
	case *watchDriven:
		out, err = s.emitFromWatch(ctx, st, name)
	case *pullDriven:
		out, err = s.emitFromService(ctx, st, name)
	case *transpileOnly:
		out, err = s.emitTranspiled(ctx, name)
	}
	recordEmit(ctx, s.strategy.kind(), err == nil)

	if err != nil {
		span.RecordError(err)
		return domain.EmitOutput{}, err
	}
	span.SetAttribute("outputs", len(out.Outputs))
	return out, nil
}

func (s *Session) emitFromWatch(ctx context.Context, st *watchDriven, name string) (domain.EmitOutput, error) {
	program, err := s.refreshProgram(ctx, st)
	if err != nil {
		return domain.EmitOutput{}, err
	}
	file, ok := program.SourceFile(name)
	if !ok {
		return domain.EmitOutput{}, fileNotInProgram(name)
	}
	return s.emitFile(ctx, program, file), nil
}

func (s *Session) emitFromService(ctx context.Context, st *pullDriven, name string) (domain.EmitOutput, error) {
	out, err := st.service.EmitOutput(ctx, name)
	if errors.Is(err, domain.ErrFileNotInProgram) {
		return domain.EmitOutput{}, fileNotInProgram(name)
	}
	if err != nil {
		return domain.EmitOutput{}, zerr.With(zerr.Wrap(err, domain.ErrEmitFailed.Error()), "path", name)
	}
	return out, nil
}

// emitTranspiled emits name from a fresh program holding only name. No type information is computed.
func (s *Session) emitTranspiled(ctx context.Context, name string) (domain.EmitOutput, error) {
	if rec, ok := s.files.Get(name); !ok || rec.Removed {
		return domain.EmitOutput{}, fileNotInProgram(name)
	}

	program, err := s.compiler.CreateProgram(ctx, []string{name}, s.options, newSessionHost(s))
	if err != nil {
		return domain.EmitOutput{}, zerr.With(zerr.Wrap(err, domain.ErrProgramCreateFailed.Error()), "path", name)
	}
	file, ok := program.SourceFile(name)
	if !ok {
		return domain.EmitOutput{}, fileNotInProgram(name)
	}
	return s.emitFile(ctx, program, file), nil
}

// emitFile emits a single unit, collecting every written file.
func (s *Session) emitFile(ctx context.Context, program ports.Program, file ports.SourceFile) domain.EmitOutput {
	var outputs []domain.OutputFile
	write := func(name, text string, writeByteOrderMark bool) {
		outputs = append(outputs, domain.OutputFile{Name: name, Text: text, WriteByteOrderMark: writeByteOrderMark})
	}
	result := program.Emit(ctx, file, write, false, s.transformers)
	return domain.EmitOutput{
		Outputs:     outputs,
		Skipped:     result.Skipped,
		Diagnostics: result.Diagnostics,
	}
}

// refreshProgram re-derives the watch program if edits arrived since the last refresh. Callers hold s.mu.
func (s *Session) refreshProgram(ctx context.Context, st *watchDriven) (ports.Program, error) {
	if !s.dirty {
		return st.program, nil
	}

	if s.newRoots {
		st.watch.UpdateRootFileNames()
		s.newRoots = false
	}
	program, err := st.watch.Program(ctx)
	recordRefresh(ctx, err == nil)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrWatchProgramFailed.Error())
	}

	st.program = program
	s.dirty = false
	return program, nil
}

func fileNotInProgram(name string) error {
	return zerr.With(zerr.Wrap(domain.ErrFileNotInProgram, "cannot emit"), "path", name)
}
