package domain

// LoaderOptions are the per-instance settings supplied by the host build tool.
type LoaderOptions struct {
	// Instance is the session key. Sessions are shared by every caller using the same key.
	Instance string
	// ConfigFile is either a path to a tsconfig file or a file name searched for upward from Context.
	ConfigFile string
	// Context is the base directory for configuration-relative file names.
	// Defaults to the directory holding the configuration file.
	Context string

	// TranspileOnly skips type information and the dependency graph entirely.
	TranspileOnly bool
	// HappyPackMode suppresses forwarding of configuration and options diagnostics.
	HappyPackMode bool
	// ExperimentalWatchAPI selects the watch-driven strategy when the toolchain supports it.
	ExperimentalWatchAPI bool
	// OnlyCompileBundledFiles seeds only declaration files; the rest are discovered on demand.
	OnlyCompileBundledFiles bool
	// EntryFileCannotBeJS keeps JavaScript files out of the program even when allowJs is set.
	EntryFileCannotBeJS bool
	// Colors controls colored diagnostics output.
	Colors bool

	// AppendTsSuffixTo holds patterns of files presented to the toolchain with a ".ts" suffix.
	AppendTsSuffixTo []string
	// AppendTsxSuffixTo holds patterns of files presented to the toolchain with a ".tsx" suffix.
	AppendTsxSuffixTo []string
}

// DefaultLoaderOptions returns the options used when nothing is configured.
func DefaultLoaderOptions() LoaderOptions {
	return LoaderOptions{
		Instance:   DefaultInstance,
		ConfigFile: DefaultTSConfigName,
		Colors:     true,
	}
}

// WithDefaults fills unset fields with their default values.
func (o LoaderOptions) WithDefaults() LoaderOptions {
	if o.Instance == "" {
		o.Instance = DefaultInstance
	}
	if o.ConfigFile == "" {
		o.ConfigFile = DefaultTSConfigName
	}
	return o
}

// CompilerOptions is the resolved "compilerOptions" block of a tsconfig file.
type CompilerOptions struct {
	Target             string
	Module             string
	JSX                string
	JSXFactory         string
	JSXFragmentFactory string
	JSXImportSource    string

	OutDir  string
	RootDir string
	BaseURL string

	AllowJS                bool
	SourceMap              bool
	InlineSourceMap        bool
	InlineSources          bool
	Declaration            bool
	NoEmit                 bool
	EmitBOM                bool
	RemoveComments         bool
	Strict                 bool
	ESModuleInterop        bool
	ExperimentalDecorators bool
	VerbatimModuleSyntax   bool

	// UseDefineForClassFields is nil when the option is not set.
	UseDefineForClassFields *bool

	Lib []string
}

// ParsedConfig is the outcome of parsing a tsconfig file.
type ParsedConfig struct {
	// Path is the configuration file, empty when defaults were used.
	Path string
	// Options are the resolved compiler options.
	Options CompilerOptions
	// FileNames is the initial set of files named by files/include/exclude.
	FileNames []string
	// Errors are problems found while parsing. They do not stop parsing.
	Errors []Diagnostic
}
