// Package app implements the application layer for tsload.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"go.trai.ch/tsload/internal/adapters/detector"
	"go.trai.ch/tsload/internal/adapters/lifecycle"
	"go.trai.ch/tsload/internal/adapters/telemetry"
	"go.trai.ch/tsload/internal/core/domain"
	"go.trai.ch/tsload/internal/core/ports"
	"go.trai.ch/tsload/internal/engine/session"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	sessions     *session.Manager
	bus          *lifecycle.Bus
	fs           ports.FileSystem
	logger       ports.Logger
	reporter     ports.DiagnosticsReporter
	watcher      ports.Watcher
	tracer       ports.Tracer

	stdout       io.Writer
	workingDir   string
	detectColors func() bool
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	sessions *session.Manager,
	bus *lifecycle.Bus,
	fsys ports.FileSystem,
	log ports.Logger,
	reporter ports.DiagnosticsReporter,
	watcher ports.Watcher,
	tracer ports.Tracer,
) *App {
	return &App{
		configLoader: loader,
		sessions:     sessions,
		bus:          bus,
		fs:           fsys,
		logger:       log,
		reporter:     reporter,
		watcher:      watcher,
		tracer:       tracer,
		stdout:       os.Stdout,
		detectColors: detector.DetectColors,
	}
}

// WithStdout sets where emitted JavaScript goes when EmitOptions.Stdout is set.
func (a *App) WithStdout(w io.Writer) *App {
	a.stdout = w
	return a
}

// WithWorkingDir sets the directory configuration discovery starts from.
// Defaults to the process working directory.
func (a *App) WithWorkingDir(dir string) *App {
	a.workingDir = dir
	return a
}

// WithColorDetection replaces the terminal color detection used for ColorAuto.
func (a *App) WithColorDetection(detect func() bool) *App {
	a.detectColors = detect
	return a
}

// Options are the loader settings given on the command line. They override tsload.yaml.
type Options struct {
	ConfigFile           string
	Instance             string
	TranspileOnly        bool
	ExperimentalWatchAPI bool
	Color                detector.ColorMode
	JSON                 bool
	Trace                bool
}

// EmitOptions configuration for the Emit method.
type EmitOptions struct {
	Options
	// Stdout prints the JavaScript of each file instead of writing outputs to disk.
	Stdout bool
}

// Emit compiles files, or every program file when files is empty, and writes the outputs.
// It returns domain.ErrCompilationFailed when errors were reported.
func (a *App) Emit(ctx context.Context, files []string, opts EmitOptions) error {
	a.configureLogger(opts.Options)
	if opts.Trace {
		shutdown := telemetry.Setup(telemetry.NewLogBridge(a.logger))
		defer func() { _ = shutdown(context.WithoutCancel(ctx)) }()
	}

	sess, cwd, err := a.open(ctx, opts.Options)
	if err != nil {
		return err
	}

	targets := make([]string, 0, len(files))
	for _, f := range files {
		targets = append(targets, domain.ResolvePath(cwd, f))
	}
	if len(targets) == 0 {
		targets = emittableFiles(sess)
	}
	if len(targets) == 0 {
		return zerr.With(zerr.Wrap(domain.ErrNoInputFiles, "nothing to emit"), "instance", sess.Key())
	}

	emitErr := a.emit(ctx, sess, targets, opts.Stdout)
	if errors.Is(emitErr, domain.ErrFileNotInProgram) {
		return emitErr
	}
	return errors.Join(emitErr, a.bus.AfterCompile(ctx))
}

// Watch emits every program file, then re-emits changed files until ctx is canceled.
func (a *App) Watch(ctx context.Context, opts Options) error {
	a.configureLogger(opts)
	if opts.Trace {
		shutdown := telemetry.Setup(telemetry.NewLogBridge(a.logger))
		defer func() { _ = shutdown(context.WithoutCancel(ctx)) }()
	}

	sess, cwd, err := a.open(ctx, opts)
	if err != nil {
		return err
	}

	if err := a.rebuild(ctx, sess, emittableFiles(sess)); err != nil {
		return err
	}

	root, err := a.configLoader.DiscoverRoot(cwd)
	if err != nil {
		return err
	}
	if err := a.watcher.Start(ctx, root); err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("watching %s for changes", root))

	g, ctx := errgroup.WithContext(ctx)

	// Stop routine
	g.Go(func() error {
		<-ctx.Done()
		return a.watcher.Stop()
	})

	// Rebuild routine
	g.Go(func() error {
		for batch := range a.watcher.Events() {
			changes := toChanges(batch)
			if err := a.bus.WatchRun(ctx, changes); err != nil {
				return err
			}
			if err := a.rebuild(ctx, sess, changedScripts(sess, changes)); err != nil {
				return err
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// rebuild emits files and runs the after-compile hook. Compilation errors are reported, not returned.
func (a *App) rebuild(ctx context.Context, sess *session.Session, files []string) error {
	err := a.emit(ctx, sess, files, false)
	if errors.Is(err, domain.ErrFileNotInProgram) {
		a.logger.Warn(err.Error())
		err = nil
	}
	err = errors.Join(err, a.bus.AfterCompile(ctx))
	if errors.Is(err, domain.ErrCompilationFailed) {
		a.logger.Warn("compilation finished with errors, waiting for changes")
		return nil
	}
	return err
}

// open loads the loader options for the working directory and returns their session.
func (a *App) open(ctx context.Context, opts Options) (*session.Session, string, error) {
	cwd := a.workingDir
	if cwd == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, "", zerr.Wrap(err, domain.ErrFailedToGetRoot.Error())
		}
		cwd = wd
	}

	loaded, err := a.configLoader.Load(cwd)
	if err != nil {
		return nil, "", zerr.Wrap(err, "failed to load configuration")
	}

	sess, err := a.sessions.Session(ctx, a.override(loaded, opts))
	if err != nil {
		return nil, "", err
	}
	return sess, cwd, nil
}

func (a *App) override(loaded domain.LoaderOptions, opts Options) domain.LoaderOptions {
	if opts.ConfigFile != "" {
		loaded.ConfigFile = opts.ConfigFile
	}
	if opts.Instance != "" {
		loaded.Instance = opts.Instance
	}
	loaded.TranspileOnly = loaded.TranspileOnly || opts.TranspileOnly
	loaded.ExperimentalWatchAPI = loaded.ExperimentalWatchAPI || opts.ExperimentalWatchAPI

	detected := loaded.Colors
	if opts.Color == detector.ColorAuto {
		detected = detected && a.detectColors()
	}
	loaded.Colors = detector.ResolveColors(detected, opts.Color)
	return loaded
}

func (a *App) configureLogger(opts Options) {
	if l, ok := a.logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(opts.JSON)
	}
	if l, ok := a.logger.(interface{ SetColors(bool) }); ok {
		l.SetColors(detector.ResolveColors(a.detectColors(), opts.Color))
	}
}

// emit compiles each file and writes its outputs. Transpile-only sessions report
// emit diagnostics here since they have no after-compile diagnostics.
func (a *App) emit(ctx context.Context, sess *session.Session, files []string, toStdout bool) error {
	if len(files) == 0 {
		return nil
	}
	a.tracer.EmitFiles(ctx, files)

	var (
		diags   []domain.Diagnostic
		written int
		missing error
	)
	for _, file := range files {
		sess.ApplyDelta(ctx, []domain.FileChange{domain.TouchChange(file)})

		out, err := sess.Emit(ctx, file)
		if errors.Is(err, domain.ErrFileNotInProgram) {
			missing = errors.Join(missing, err)
			continue
		}
		if err != nil {
			return err
		}
		diags = append(diags, out.Diagnostics...)
		if out.Skipped {
			continue
		}

		if toStdout {
			if js, ok := out.JavaScript(); ok {
				if _, err := io.WriteString(a.stdout, js.Text); err != nil {
					return zerr.Wrap(err, domain.ErrOutputWriteFailed.Error())
				}
			}
			continue
		}

		for _, output := range out.Outputs {
			if err := a.write(output); err != nil {
				return err
			}
			written++
		}
	}

	switch {
	case written == 1:
		a.logger.Info("wrote 1 output file")
	case written > 1:
		a.logger.Info(fmt.Sprintf("wrote %d output files", written))
	}

	if sess.Strategy() != domain.StrategyTranspileOnly || len(diags) == 0 {
		return missing
	}
	domain.SortDiagnostics(diags)
	a.reporter.Report(domain.DiagnosticReport{
		Instance:    sess.Key(),
		ConfigPath:  sess.ConfigPath(),
		Colors:      sess.LoaderOptions().Colors,
		Diagnostics: diags,
	})
	if n := domain.CountErrors(diags); n > 0 {
		return errors.Join(missing, zerr.With(zerr.Wrap(domain.ErrCompilationFailed, "emit failed"), "errors", n))
	}
	return missing
}

func (a *App) write(output domain.OutputFile) error {
	text := output.Text
	if output.WriteByteOrderMark {
		text = "\ufeff" + text
	}
	if err := a.fs.WriteFile(output.Name, []byte(text)); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", output.Name)
	}
	return nil
}

// emittableFiles lists the files that produce JavaScript. Transpile-only sessions track
// no program, so their files come from the configuration.
func emittableFiles(sess *session.Session) []string {
	names := sess.ProgramFiles()
	if sess.Strategy() == domain.StrategyTranspileOnly {
		names = sess.ConfigFiles()
	}
	return slices.DeleteFunc(names, func(name string) bool {
		return domain.IsDeclarationFile(name) || !sess.IsScript(name)
	})
}

// changedScripts lists the written files of changes the session compiles.
func changedScripts(sess *session.Session, changes []domain.FileChange) []string {
	var files []string
	for _, change := range changes {
		if change.Kind != domain.ChangeWrite || domain.IsDeclarationFile(change.Path) || !sess.IsScript(change.Path) {
			continue
		}
		if rec, ok := sess.File(change.Path); !ok || rec.Removed {
			continue
		}
		files = append(files, change.Path)
	}
	return files
}

// toChanges maps a batch of watch events to file changes.
func toChanges(batch []ports.WatchEvent) []domain.FileChange {
	changes := make([]domain.FileChange, 0, len(batch))
	for _, event := range batch {
		switch event.Operation {
		case ports.OpRemove, ports.OpRename:
			changes = append(changes, domain.RemoveChange(event.Path))
		default:
			changes = append(changes, domain.TouchChange(event.Path))
		}
	}
	return changes
}
