package app_test

import (
	"bytes"
	"context"
	"errors"
	"iter"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tsload/internal/adapters/detector"
	"go.trai.ch/tsload/internal/adapters/fs"
	"go.trai.ch/tsload/internal/adapters/lifecycle"
	"go.trai.ch/tsload/internal/adapters/telemetry"
	"go.trai.ch/tsload/internal/adapters/toolchain"
	"go.trai.ch/tsload/internal/app"
	"go.trai.ch/tsload/internal/core/domain"
	"go.trai.ch/tsload/internal/core/ports"
	"go.trai.ch/tsload/internal/core/ports/mocks"
	"go.trai.ch/tsload/internal/engine/session"
	"go.uber.org/mock/gomock"
)

const projectRoot = "/project"

type appTestEnv struct {
	app     *app.App
	fs      *fs.MapFSAdapter
	loader  *mocks.MockConfigLoader
	watcher *mocks.MockWatcher
	reports *[]domain.DiagnosticReport
	warns   *[]string
}

// setupAppTest builds an App over the real toolchain and an in-memory project rooted at /project.
func setupAppTest(t *testing.T, files fstest.MapFS, opts domain.LoaderOptions) appTestEnv {
	t.Helper()
	ctrl := gomock.NewController(t)

	env := appTestEnv{
		fs:      fs.NewMapFSAdapter(projectRoot, files),
		loader:  mocks.NewMockConfigLoader(ctrl),
		watcher: mocks.NewMockWatcher(ctrl),
		reports: &[]domain.DiagnosticReport{},
		warns:   &[]string{},
	}

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).Do(func(msg string) {
		*env.warns = append(*env.warns, msg)
	}).AnyTimes()

	reporter := mocks.NewMockDiagnosticsReporter(ctrl)
	reporter.EXPECT().Report(gomock.Any()).Do(func(report domain.DiagnosticReport) {
		*env.reports = append(*env.reports, report)
	}).AnyTimes()

	env.loader.EXPECT().Load(projectRoot).Return(opts, nil).AnyTimes()

	tracer := telemetry.NewNoOpTracer()
	bus := lifecycle.NewBus()
	bootstrapper := session.NewBootstrapper(
		toolchain.New(), env.fs, log, reporter, tracer, bus,
		session.WithWorkingDir(projectRoot),
	)
	manager := session.NewManager(session.NewRegistry(), bootstrapper)

	env.app = app.New(env.loader, manager, bus, env.fs, log, reporter, env.watcher, tracer).
		WithWorkingDir(projectRoot).
		WithColorDetection(func() bool { return false })
	return env
}

func file(text string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(text)}
}

func (e appTestEnv) read(t *testing.T, path string) string {
	t.Helper()
	data, err := e.fs.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func (e appTestEnv) diagnostics() []domain.Diagnostic {
	var diags []domain.Diagnostic
	for _, report := range *e.reports {
		diags = append(diags, report.Diagnostics...)
	}
	return diags
}

func TestApp_Emit(t *testing.T) {
	t.Parallel()

	env := setupAppTest(t, fstest.MapFS{
		"tsconfig.json":  file(`{"compilerOptions": {"sourceMap": true}}`),
		"src/a.ts":       file("import { b } from './b';\nexport const a: number = b + 1;\n"),
		"src/b.ts":       file("export const b = 1;\n"),
		"src/types.d.ts": file("declare const x: string;\n"),
		"src/notes.md":   file("# notes\n"),
		"node_modules/x": file("ignored"),
		"tsload.yaml":    file("version: \"1\"\n"),
	}, domain.LoaderOptions{Instance: "emit"})

	err := env.app.Emit(t.Context(), nil, app.EmitOptions{})
	require.NoError(t, err)

	js := env.read(t, "/project/src/a.js")
	assert.Contains(t, js, "const a = b + 1")
	assert.NotContains(t, js, ": number")
	assert.Contains(t, js, "//# sourceMappingURL=a.js.map")
	assert.Contains(t, env.read(t, "/project/src/a.js.map"), `"mappings"`)
	assert.Contains(t, env.read(t, "/project/src/b.js"), "const b = 1")

	_, err = env.fs.Stat("/project/src/types.js")
	require.Error(t, err, "declaration files produce no output")

	require.Len(t, *env.reports, 1)
	assert.Empty(t, (*env.reports)[0].Diagnostics)
	assert.Equal(t, "emit", (*env.reports)[0].Instance)
}

func TestApp_Emit_Stdout(t *testing.T) {
	t.Parallel()

	env := setupAppTest(t, fstest.MapFS{
		"tsconfig.json": file(`{}`),
		"src/a.ts":      file("export const a: string = 'x';\n"),
	}, domain.LoaderOptions{Instance: "stdout"})

	var out bytes.Buffer
	env.app.WithStdout(&out)

	err := env.app.Emit(t.Context(), []string{"src/a.ts"}, app.EmitOptions{Stdout: true})
	require.NoError(t, err)

	assert.Contains(t, out.String(), `const a = "x"`)
	_, err = env.fs.Stat("/project/src/a.js")
	require.Error(t, err, "stdout mode writes nothing to disk")
}

func TestApp_Emit_CompilationErrors(t *testing.T) {
	t.Parallel()

	env := setupAppTest(t, fstest.MapFS{
		"tsconfig.json": file(`{}`),
		"src/a.ts":      file("import { missing } from './missing';\nexport const a = missing;\n"),
	}, domain.LoaderOptions{Instance: "errors"})

	err := env.app.Emit(t.Context(), nil, app.EmitOptions{})
	require.ErrorIs(t, err, domain.ErrCompilationFailed)

	// Output is still written; type errors do not block emit.
	assert.Contains(t, env.read(t, "/project/src/a.js"), "missing")

	diags := env.diagnostics()
	require.Len(t, diags, 1)
	assert.Equal(t, 2307, diags[0].Code)
	assert.Equal(t, "/project/src/a.ts", diags[0].File)
}

func TestApp_Emit_TranspileOnlyReportsEmitErrors(t *testing.T) {
	t.Parallel()

	env := setupAppTest(t, fstest.MapFS{
		"tsconfig.json": file(`{}`),
		"src/bad.ts":    file("export const = ;\n"),
	}, domain.LoaderOptions{Instance: "transpile"})

	err := env.app.Emit(t.Context(), nil, app.EmitOptions{Options: app.Options{TranspileOnly: true}})
	require.ErrorIs(t, err, domain.ErrCompilationFailed)

	_, statErr := env.fs.Stat("/project/src/bad.js")
	require.Error(t, statErr, "skipped emits write nothing")

	diags := env.diagnostics()
	require.NotEmpty(t, diags)
	assert.Equal(t, "esbuild", diags[0].Source)
	assert.Equal(t, domain.CategoryError, diags[0].Category)
}

func TestApp_Emit_FileNotInProgram(t *testing.T) {
	t.Parallel()

	env := setupAppTest(t, fstest.MapFS{
		"tsconfig.json": file(`{}`),
		"src/a.ts":      file("export const a = 1;\n"),
		"README.md":     file("# readme\n"),
	}, domain.LoaderOptions{Instance: "missing"})

	err := env.app.Emit(t.Context(), []string{"README.md"}, app.EmitOptions{})
	require.ErrorIs(t, err, domain.ErrFileNotInProgram)
	assert.Empty(t, *env.reports, "after-compile does not run for unknown files")
}

func TestApp_Emit_NoInputFiles(t *testing.T) {
	t.Parallel()

	env := setupAppTest(t, fstest.MapFS{
		"tsconfig.json":  file(`{}`),
		"types/env.d.ts": file("declare const env: string;\n"),
	}, domain.LoaderOptions{Instance: "empty"})

	err := env.app.Emit(t.Context(), nil, app.EmitOptions{})
	require.ErrorIs(t, err, domain.ErrNoInputFiles)
}

func TestApp_Emit_LoadFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load(projectRoot).Return(domain.LoaderOptions{}, domain.ErrLoaderConfigParseFailed)

	a := app.New(loader, nil, nil, nil, mocks.NewMockLogger(ctrl), nil, nil, telemetry.NewNoOpTracer()).
		WithWorkingDir(projectRoot).
		WithColorDetection(func() bool { return false })

	err := a.Emit(t.Context(), nil, app.EmitOptions{})
	require.ErrorIs(t, err, domain.ErrLoaderConfigParseFailed)
}

func TestApp_Emit_FlagsOverrideLoaderOptions(t *testing.T) {
	t.Parallel()

	env := setupAppTest(t, fstest.MapFS{
		"tsconfig.json":       file(`{"compilerOptions": {"sourceMap": true}}`),
		"build/tsconfig.json": file(`{"files": ["../src/a.ts"]}`),
		"src/a.ts":            file("export const a = 1;\n"),
	}, domain.LoaderOptions{Instance: "yaml", Colors: true})

	err := env.app.Emit(t.Context(), nil, app.EmitOptions{Options: app.Options{
		ConfigFile: "/project/build/tsconfig.json",
		Instance:   "flags",
		Color:      detector.ColorNever,
	}})
	require.NoError(t, err)

	require.Len(t, *env.reports, 1)
	report := (*env.reports)[0]
	assert.Equal(t, "flags", report.Instance)
	assert.Equal(t, "/project/build/tsconfig.json", report.ConfigPath)
	assert.False(t, report.Colors)

	js := env.read(t, "/project/src/a.js")
	assert.NotContains(t, js, "sourceMappingURL", "the flag's tsconfig has no source maps")
}

// batches yields each batch, running before it first, then cancels the watch.
func batches(cancel context.CancelFunc, steps ...func() []ports.WatchEvent) iter.Seq[[]ports.WatchEvent] {
	return func(yield func([]ports.WatchEvent) bool) {
		defer cancel()
		for _, step := range steps {
			if !yield(step()) {
				return
			}
		}
	}
}

func TestApp_Watch(t *testing.T) {
	t.Parallel()

	files := fstest.MapFS{
		"tsconfig.json": file(`{}`),
		"src/a.ts":      file("import { b } from './b';\nexport const a = b;\n"),
		"src/b.ts":      file("export const b = 1;\n"),
	}
	env := setupAppTest(t, files, domain.LoaderOptions{Instance: "watch", ExperimentalWatchAPI: true})

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	env.loader.EXPECT().DiscoverRoot(projectRoot).Return(projectRoot, nil)
	env.watcher.EXPECT().Start(gomock.Any(), projectRoot).Return(nil)
	env.watcher.EXPECT().Events().Return(batches(cancel,
		func() []ports.WatchEvent {
			files["src/b.ts"] = file("export const b = 2;\n")
			return []ports.WatchEvent{{Path: "/project/src/b.ts", Operation: ports.OpWrite}}
		},
		func() []ports.WatchEvent {
			delete(files, "src/b.ts")
			return []ports.WatchEvent{{Path: "/project/src/b.ts", Operation: ports.OpRemove}}
		},
	))
	env.watcher.EXPECT().Stop().Return(nil)

	err := env.app.Watch(ctx, app.Options{})
	require.NoError(t, err)

	assert.Contains(t, env.read(t, "/project/src/b.js"), "const b = 2")

	// Initial build, the edit, then the removal that breaks a.ts.
	require.Len(t, *env.reports, 3)
	assert.Empty(t, (*env.reports)[0].Diagnostics)
	assert.Empty(t, (*env.reports)[1].Diagnostics)

	last := (*env.reports)[2].Diagnostics
	require.Len(t, last, 1)
	assert.Equal(t, 2307, last[0].Code)
	assert.Equal(t, "/project/src/a.ts", last[0].File)
	assert.Contains(t, *env.warns, "compilation finished with errors, waiting for changes")
}

func TestApp_Watch_StartFailure(t *testing.T) {
	t.Parallel()

	env := setupAppTest(t, fstest.MapFS{
		"tsconfig.json": file(`{}`),
		"src/a.ts":      file("export const a = 1;\n"),
	}, domain.LoaderOptions{Instance: "start"})

	env.loader.EXPECT().DiscoverRoot(projectRoot).Return(projectRoot, nil)
	env.watcher.EXPECT().Start(gomock.Any(), projectRoot).Return(domain.ErrWatcherStartFailed)

	err := env.app.Watch(t.Context(), app.Options{})
	require.ErrorIs(t, err, domain.ErrWatcherStartFailed)
}

func TestApp_Watch_StopFailure(t *testing.T) {
	t.Parallel()

	env := setupAppTest(t, fstest.MapFS{
		"tsconfig.json": file(`{}`),
		"src/a.ts":      file("export const a = 1;\n"),
	}, domain.LoaderOptions{Instance: "stop"})

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	stopErr := errors.New("close failed")
	env.loader.EXPECT().DiscoverRoot(projectRoot).Return(projectRoot, nil)
	env.watcher.EXPECT().Start(gomock.Any(), projectRoot).Return(nil)
	env.watcher.EXPECT().Events().Return(batches(cancel))
	env.watcher.EXPECT().Stop().Return(stopErr)

	err := env.app.Watch(ctx, app.Options{})
	require.ErrorIs(t, err, stopErr)
}
