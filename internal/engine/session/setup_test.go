package session_test

import (
	"context"
	"testing"
	"testing/fstest"

	"go.trai.ch/tsload/internal/adapters/fs"
	"go.trai.ch/tsload/internal/core/domain"
	"go.trai.ch/tsload/internal/core/ports"
	"go.trai.ch/tsload/internal/core/ports/mocks"
	"go.trai.ch/tsload/internal/engine/session"
	"go.uber.org/mock/gomock"
)

const (
	projectRoot = "/project"
	configPath  = "/project/tsconfig.json"
)

type sessionTestMocks struct {
	ctrl      *gomock.Controller
	compiler  *mocks.MockCompiler
	logger    *mocks.MockLogger
	reporter  *mocks.MockDiagnosticsReporter
	tracer    *mocks.MockTracer
	registrar *mocks.MockHookRegistrar
	fs        *fs.MapFSAdapter
	infos     *[]string
}

// setupSessionTest creates a manager over an in-memory project rooted at /project.
// A tsconfig.json is added to files unless files already holds one.
func setupSessionTest(t *testing.T, files fstest.MapFS) (*session.Manager, sessionTestMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	if files == nil {
		files = fstest.MapFS{}
	}
	if _, ok := files["tsconfig.json"]; !ok {
		files["tsconfig.json"] = &fstest.MapFile{Data: []byte(`{}`)}
	}

	m := sessionTestMocks{
		ctrl:      ctrl,
		compiler:  mocks.NewMockCompiler(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
		reporter:  mocks.NewMockDiagnosticsReporter(ctrl),
		tracer:    mocks.NewMockTracer(ctrl),
		registrar: mocks.NewMockHookRegistrar(ctrl),
		fs:        fs.NewMapFSAdapter(projectRoot, files),
		infos:     &[]string{},
	}

	// Default optimistic mocks to reduce noise in specific tests.
	span := mocks.NewMockSpan(ctrl)
	span.EXPECT().End().AnyTimes()
	span.EXPECT().RecordError(gomock.Any()).AnyTimes()
	span.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()
	m.tracer.EXPECT().Start(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
			return ctx, span
		},
	).AnyTimes()
	m.compiler.EXPECT().Name().Return("esbuild").AnyTimes()
	m.compiler.EXPECT().Version().Return("0.25.5").AnyTimes()
	m.logger.EXPECT().Info(gomock.Any()).Do(func(msg string) {
		*m.infos = append(*m.infos, msg)
	}).AnyTimes()

	bootstrapper := session.NewBootstrapper(
		m.compiler, m.fs, m.logger, m.reporter, m.tracer, m.registrar,
		session.WithWorkingDir(projectRoot),
	)
	return session.NewManager(session.NewRegistry(), bootstrapper), m
}

// expectConfig makes the compiler resolve the project tsconfig to names.
func (m sessionTestMocks) expectConfig(options domain.CompilerOptions, names ...string) {
	m.compiler.EXPECT().ParseConfig(gomock.Any(), configPath, projectRoot, gomock.Any()).
		Return(&domain.ParsedConfig{Path: configPath, Options: options, FileNames: names}, nil)
}

// expectPullDriven makes the compiler hand out service and captures the host the session passes along.
func (m sessionTestMocks) expectPullDriven(service ports.LanguageService, host *ports.ScriptHost) {
	registry := mocks.NewMockDocumentRegistry(m.ctrl)
	m.compiler.EXPECT().CreateDocumentRegistry().Return(registry)
	m.compiler.EXPECT().CreateLanguageService(gomock.Any(), registry).DoAndReturn(
		func(h ports.ScriptHost, _ ports.DocumentRegistry) (ports.LanguageService, error) {
			if host != nil {
				*host = h
			}
			return service, nil
		},
	)
}

// expectWatchDriven makes the compiler hand out watch, whose initial compile yields initial.
func (m sessionTestMocks) expectWatchDriven(watch *mocks.MockWatchProgram, initial ports.Program, host *ports.ScriptHost) {
	m.compiler.EXPECT().SupportsWatch().Return(true)
	m.compiler.EXPECT().CreateWatchProgram(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, h ports.ScriptHost) (ports.WatchProgram, error) {
			if host != nil {
				*host = h
			}
			return watch, nil
		},
	)
	watch.EXPECT().Program(gomock.Any()).Return(initial, nil).Times(1)
}

func file(text string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(text)}
}

func pullOptions() domain.LoaderOptions {
	return domain.LoaderOptions{Instance: "test"}
}

func watchOptions() domain.LoaderOptions {
	return domain.LoaderOptions{Instance: "test", ExperimentalWatchAPI: true}
}

func newBootstrapperWithTransformers(m sessionTestMocks, transformers ...ports.Transformer) *session.Bootstrapper {
	return session.NewBootstrapper(
		m.compiler, m.fs, m.logger, m.reporter, m.tracer, m.registrar,
		session.WithWorkingDir(projectRoot),
		session.WithTransformers(transformers...),
	)
}
