package toolchain

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	"go.trai.ch/tsload/internal/core/domain"
)

const emitSource = "esbuild"

var esbuildTargets = map[string]api.Target{
	"es5":    api.ES5,
	"es6":    api.ES2015,
	"es2015": api.ES2015,
	"es2016": api.ES2016,
	"es2017": api.ES2017,
	"es2018": api.ES2018,
	"es2019": api.ES2019,
	"es2020": api.ES2020,
	"es2021": api.ES2021,
	"es2022": api.ES2022,
	"es2023": api.ES2023,
	"es2024": api.ES2024,
	"esnext": api.ESNext,
}

// rawTsconfig is the part of a tsconfig esbuild reads from TsconfigRaw.
type rawTsconfig struct {
	CompilerOptions rawCompilerOptions `json:"compilerOptions"`
}

type rawCompilerOptions struct {
	Target                  string `json:"target,omitempty"`
	ExperimentalDecorators  bool   `json:"experimentalDecorators,omitempty"`
	UseDefineForClassFields *bool  `json:"useDefineForClassFields,omitempty"`
	VerbatimModuleSyntax    bool   `json:"verbatimModuleSyntax,omitempty"`
}

// transpile emits one file with esbuild. cwd is the default rootDir when outDir is set.
func transpile(name, text string, options domain.CompilerOptions, cwd string) ([]domain.OutputFile, []domain.Diagnostic) {
	result := api.Transform(text, transformOptions(name, options))

	diags := make([]domain.Diagnostic, 0, len(result.Errors)+len(result.Warnings))
	diags = appendMessages(diags, result.Errors, domain.CategoryError)
	diags = appendMessages(diags, result.Warnings, domain.CategoryWarning)
	if len(result.Errors) > 0 {
		return nil, diags
	}

	jsName := outputName(name, options, cwd)
	code := string(result.Code)
	outputs := make([]domain.OutputFile, 0, 2)

	var sourceMap *domain.OutputFile
	if options.SourceMap && !options.InlineSourceMap && len(result.Map) > 0 {
		code += "//# sourceMappingURL=" + filepath.Base(jsName) + ".map\n"
		sourceMap = &domain.OutputFile{Name: jsName + ".map", Text: string(result.Map)}
	}

	outputs = append(outputs, domain.OutputFile{
		Name:               jsName,
		Text:               code,
		WriteByteOrderMark: options.EmitBOM,
	})
	if sourceMap != nil {
		outputs = append(outputs, *sourceMap)
	}
	return outputs, diags
}

func transformOptions(name string, options domain.CompilerOptions) api.TransformOptions {
	opts := api.TransformOptions{
		Sourcefile:  name,
		Loader:      loaderFor(name),
		Target:      api.ESNext,
		Format:      formatFor(options.Module),
		TsconfigRaw: tsconfigRaw(options),
	}
	if target, ok := esbuildTargets[options.Target]; ok {
		opts.Target = target
	}

	switch {
	case options.InlineSourceMap:
		opts.Sourcemap = api.SourceMapInline
	case options.SourceMap:
		opts.Sourcemap = api.SourceMapExternal
	}
	if !options.InlineSources {
		opts.SourcesContent = api.SourcesContentExclude
	}
	if options.RemoveComments {
		opts.LegalComments = api.LegalCommentsNone
	}

	switch options.JSX {
	case "preserve", "react-native":
		opts.JSX = api.JSXPreserve
	case "react-jsx":
		opts.JSX = api.JSXAutomatic
	case "react-jsxdev":
		opts.JSX = api.JSXAutomatic
		opts.JSXDev = true
	}
	opts.JSXFactory = options.JSXFactory
	opts.JSXFragment = options.JSXFragmentFactory
	opts.JSXImportSource = options.JSXImportSource
	return opts
}

func loaderFor(name string) api.Loader {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".tsx":
		return api.LoaderTSX
	case ".jsx":
		return api.LoaderJSX
	case ".js", ".mjs", ".cjs":
		return api.LoaderJS
	default:
		return api.LoaderTS
	}
}

func formatFor(module string) api.Format {
	switch module {
	case "commonjs", "node16", "node18", "nodenext":
		return api.FormatCommonJS
	case "es6", "es2015", "es2020", "es2022", "esnext":
		return api.FormatESModule
	default:
		return api.FormatDefault
	}
}

func tsconfigRaw(options domain.CompilerOptions) string {
	raw := rawTsconfig{CompilerOptions: rawCompilerOptions{
		Target:                  options.Target,
		ExperimentalDecorators:  options.ExperimentalDecorators,
		UseDefineForClassFields: options.UseDefineForClassFields,
		VerbatimModuleSyntax:    options.VerbatimModuleSyntax,
	}}
	data, err := json.Marshal(raw)
	if err != nil {
		return ""
	}
	return string(data)
}

func appendMessages(diags []domain.Diagnostic, msgs []api.Message, category domain.DiagnosticCategory) []domain.Diagnostic {
	for _, msg := range msgs {
		d := domain.Diagnostic{Category: category, Source: emitSource, Message: msg.Text}
		if loc := msg.Location; loc != nil {
			d.File = loc.File
			d.Line = loc.Line
			d.Column = loc.Column + 1
		}
		diags = append(diags, d)
	}
	return diags
}

// outputName places the emitted file under outDir, mirroring its position under rootDir.
func outputName(name string, options domain.CompilerOptions, cwd string) string {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	if domain.IsDeclarationFile(name) {
		stem = strings.TrimSuffix(stem, ".d")
	}

	outExt := ".js"
	switch strings.ToLower(ext) {
	case ".mts", ".mjs":
		outExt = ".mjs"
	case ".cts", ".cjs":
		outExt = ".cjs"
	case ".tsx", ".jsx":
		if options.JSX == "preserve" {
			outExt = ".jsx"
		}
	}
	out := stem + outExt

	if options.OutDir == "" {
		return out
	}
	rootDir := options.RootDir
	if rootDir == "" {
		rootDir = cwd
	}
	rel, err := filepath.Rel(rootDir, out)
	if err != nil || strings.HasPrefix(rel, "..") {
		rel = filepath.Base(out)
	}
	return filepath.Join(options.OutDir, rel)
}

// optionsDiagnostics reports option combinations the compiler rejects or ignores.
func optionsDiagnostics(options domain.CompilerOptions) []domain.Diagnostic {
	var diags []domain.Diagnostic
	add := func(category domain.DiagnosticCategory, code int, format string, args ...any) {
		diags = append(diags, domain.Diagnostic{
			Category: category,
			Code:     code,
			Source:   configSource,
			Message:  fmt.Sprintf(format, args...),
		})
	}

	if options.SourceMap && options.InlineSourceMap {
		add(domain.CategoryError, 5053, "Option 'sourceMap' cannot be specified with option 'inlineSourceMap'.")
	}
	if options.InlineSources && !options.SourceMap && !options.InlineSourceMap {
		add(domain.CategoryError, 5051,
			"Option 'inlineSources' can only be used when either option '--inlineSourceMap' or option '--sourceMap' is provided.")
	}
	if options.Target == "es3" {
		add(domain.CategoryError, 5108, "Option 'target=ES3' has been removed.")
	}
	if options.Declaration {
		add(domain.CategoryWarning, 0, "Option 'declaration' is ignored; %s does not emit declaration files.", toolchainName)
	}
	switch options.Module {
	case "amd", "umd", "system":
		add(domain.CategoryWarning, 0, "Option 'module=%s' is not supported; modules are emitted unchanged.", options.Module)
	}
	return diags
}
