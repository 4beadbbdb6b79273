package session

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"slices"
	"strings"
	"time"

	"go.trai.ch/tsload/internal/core/domain"
	"go.trai.ch/tsload/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Bootstrapper builds fully wired sessions from loader options.
type Bootstrapper struct {
	compiler  ports.Compiler
	fs        ports.FileSystem
	logger    ports.Logger
	reporter  ports.DiagnosticsReporter
	tracer    ports.Tracer
	registrar ports.HookRegistrar

	transformers []ports.Transformer
	workingDir   string
}

// Option configures a Bootstrapper.
type Option func(*Bootstrapper)

// WithTransformers sets the transformers applied to every emitted file.
func WithTransformers(transformers ...ports.Transformer) Option {
	return func(b *Bootstrapper) {
		b.transformers = append(b.transformers, transformers...)
	}
}

// WithWorkingDir sets the directory the configuration search starts from
// when the loader options carry no context. Defaults to the process working directory.
func WithWorkingDir(dir string) Option {
	return func(b *Bootstrapper) {
		b.workingDir = dir
	}
}

// NewBootstrapper creates a new Bootstrapper with the given dependencies.
func NewBootstrapper(
	compiler ports.Compiler,
	fs ports.FileSystem,
	logger ports.Logger,
	reporter ports.DiagnosticsReporter,
	tracer ports.Tracer,
	registrar ports.HookRegistrar,
	opts ...Option,
) *Bootstrapper {
	b := &Bootstrapper{
		compiler:  compiler,
		fs:        fs,
		logger:    logger,
		reporter:  reporter,
		tracer:    tracer,
		registrar: registrar,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build resolves the configuration, seeds the file store, chooses the update strategy
// and registers the session's hooks. A session is returned only when every step succeeded.
func (b *Bootstrapper) Build(ctx context.Context, opts domain.LoaderOptions) (*Session, error) {
	opts = opts.WithDefaults()
	start := time.Now()

	ctx, span := b.tracer.Start(ctx, "session.bootstrap", ports.WithAttribute("instance", opts.Instance))
	defer span.End()

	s, err := b.build(ctx, opts)
	kind := domain.StrategyPullDriven
	if s != nil {
		kind = s.Strategy()
	}
	recordBuild(ctx, time.Since(start), kind, err == nil)

	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttribute("strategy", kind.String())
	return s, nil
}

func (b *Bootstrapper) build(ctx context.Context, opts domain.LoaderOptions) (*Session, error) {
	suffixes, err := compileSuffixRules(opts)
	if err != nil {
		return nil, err
	}

	searchRoot, err := b.searchRoot(opts)
	if err != nil {
		return nil, err
	}

	configPath, err := b.findConfigFile(searchRoot, opts.ConfigFile)
	if err != nil {
		return nil, err
	}

	basePath := searchRoot
	switch {
	case opts.Context != "":
		basePath = domain.NormalizePath(opts.Context)
	case configPath != "":
		basePath = filepath.Dir(configPath)
	}

	parsed, err := b.parseConfig(ctx, opts, configPath, basePath)
	if err != nil {
		return nil, err
	}

	b.logger.Info(fmt.Sprintf("using %s v%s and %s", b.compiler.Name(), b.compiler.Version(), describeConfig(configPath)))

	s := &Session{
		key:          opts.Instance,
		loader:       opts,
		options:      parsed.Options,
		configPath:   configPath,
		basePath:     basePath,
		configFiles:  parsed.FileNames,
		compiler:     b.compiler,
		fs:           b.fs,
		logger:       b.logger,
		reporter:     b.reporter,
		tracer:       b.tracer,
		transformers: b.transformers,
		scripts:      domain.ScriptPattern(parsed.Options.AllowJS, opts.EntryFileCannotBeJS),
		suffixes:     suffixes,
		files:        domain.NewFileStore(),
		graph:        domain.NewDependencyGraph(),
		aliases:      make(map[string]string),
		modified:     make(map[string]struct{}),
	}

	if opts.TranspileOnly {
		if err := b.startTranspileOnly(ctx, s); err != nil {
			return nil, err
		}
		b.registrar.Register(s.key, s)
		return s, nil
	}

	names := parsed.FileNames
	if opts.OnlyCompileBundledFiles {
		names = slices.DeleteFunc(slices.Clone(names), func(name string) bool {
			return !domain.IsDeclarationFile(name)
		})
	}
	if err := b.seed(ctx, s, names); err != nil {
		return nil, err
	}

	host := newSessionHost(s)
	if opts.ExperimentalWatchAPI && b.compiler.SupportsWatch() {
		b.logger.Info("using watch api")
		if err := b.startWatchDriven(ctx, s, host); err != nil {
			return nil, err
		}
	} else if err := b.startPullDriven(s, host); err != nil {
		return nil, err
	}

	b.registrar.Register(s.key, s)
	return s, nil
}

func (b *Bootstrapper) searchRoot(opts domain.LoaderOptions) (string, error) {
	if opts.Context != "" {
		return domain.NormalizePath(opts.Context), nil
	}
	if b.workingDir != "" {
		return domain.NormalizePath(b.workingDir), nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrFailedToGetRoot.Error())
	}
	return cwd, nil
}

// findConfigFile resolves an explicit path against root, or searches for a bare file name
// from root upward. A bare name that is found nowhere yields an empty path and no error.
func (b *Bootstrapper) findConfigFile(root, configFile string) (string, error) {
	storage := &storageHost{fs: b.fs}

	if filepath.IsAbs(configFile) || strings.ContainsAny(configFile, `/\`) {
		path := domain.ResolvePath(root, configFile)
		if !storage.FileExists(path) {
			return "", zerr.With(zerr.Wrap(domain.ErrConfigNotFound, "the specified config file does not exist"), "path", path)
		}
		return path, nil
	}

	for dir := root; ; {
		candidate := filepath.Join(dir, configFile)
		if storage.FileExists(candidate) {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func (b *Bootstrapper) parseConfig(
	ctx context.Context,
	opts domain.LoaderOptions,
	configPath, basePath string,
) (*domain.ParsedConfig, error) {
	if configPath == "" {
		return &domain.ParsedConfig{}, nil
	}

	parsed, err := b.compiler.ParseConfig(ctx, configPath, basePath, &storageHost{fs: b.fs})
	if err != nil {
		return nil, err
	}

	if len(parsed.Errors) > 0 && !opts.HappyPackMode {
		b.report(opts, configPath, parsed.Errors)
		return nil, zerr.With(
			zerr.Wrap(domain.ErrConfigParseFailed, "tsconfig has errors"),
			"path", configPath,
		)
	}
	return parsed, nil
}

// seed reads every configured file at version 0. Any unreadable file fails the bootstrap
// and stops the reads that have not started yet.
func (b *Bootstrapper) seed(ctx context.Context, s *Session, names []string) error {
	texts := make([]string, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, name := range names {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			data, err := b.fs.ReadFile(name)
			if err != nil {
				return zerr.With(
					zerr.Wrap(domain.ErrBootstrapFileMissing, "failed to seed session"),
					"path", name,
				)
			}
			texts[i] = string(data)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, name := range names {
		s.files.Seed(s.toolchainName(name), texts[i])
	}
	return nil
}

func (b *Bootstrapper) startTranspileOnly(ctx context.Context, s *Session) error {
	s.strategy = &transpileOnly{}

	program, err := b.compiler.CreateProgram(ctx, nil, s.options, newSessionHost(s))
	if err != nil {
		return zerr.Wrap(err, domain.ErrProgramCreateFailed.Error())
	}

	if !s.loader.HappyPackMode {
		if diags := program.OptionsDiagnostics(); len(diags) > 0 {
			b.report(s.loader, s.configPath, diags)
		}
	}
	return nil
}

// startWatchDriven constructs the watch program, which compiles the whole program once.
func (b *Bootstrapper) startWatchDriven(ctx context.Context, s *Session, host ports.ScriptHost) error {
	watch, err := b.compiler.CreateWatchProgram(ctx, host)
	if err != nil {
		return zerr.Wrap(err, domain.ErrWatchProgramFailed.Error())
	}
	program, err := watch.Program(ctx)
	if err != nil {
		return zerr.Wrap(err, domain.ErrWatchProgramFailed.Error())
	}
	s.strategy = &watchDriven{watch: watch, program: program}
	return nil
}

// startPullDriven constructs a language service. Nothing is compiled until the first query.
func (b *Bootstrapper) startPullDriven(s *Session, host ports.ScriptHost) error {
	registry := b.compiler.CreateDocumentRegistry()
	service, err := b.compiler.CreateLanguageService(host, registry)
	if err != nil {
		return zerr.Wrap(err, domain.ErrProgramCreateFailed.Error())
	}
	s.strategy = &pullDriven{service: service, registry: registry}
	return nil
}

func (b *Bootstrapper) report(opts domain.LoaderOptions, configPath string, diags []domain.Diagnostic) {
	diags = slices.Clone(diags)
	domain.SortDiagnostics(diags)
	b.reporter.Report(domain.DiagnosticReport{
		Instance:    opts.Instance,
		ConfigPath:  configPath,
		Colors:      opts.Colors,
		Diagnostics: diags,
	})
}

func compileSuffixRules(opts domain.LoaderOptions) ([]suffixRule, error) {
	var rules []suffixRule
	add := func(patterns []string, suffix string) error {
		for _, pattern := range patterns {
			re, err := regexp.Compile(pattern)
			if err != nil {
				return zerr.With(zerr.Wrap(domain.ErrInvalidLoaderOption, "bad suffix pattern"), "pattern", pattern)
			}
			rules = append(rules, suffixRule{pattern: re, suffix: suffix})
		}
		return nil
	}
	if err := add(opts.AppendTsSuffixTo, ".ts"); err != nil {
		return nil, err
	}
	if err := add(opts.AppendTsxSuffixTo, ".tsx"); err != nil {
		return nil, err
	}
	return rules, nil
}

func describeConfig(configPath string) string {
	if configPath == "" {
		return "default compiler options"
	}
	return configPath
}
