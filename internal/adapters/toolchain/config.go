package toolchain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/tailscale/hujson"
	"go.trai.ch/tsload/internal/core/domain"
	"go.trai.ch/tsload/internal/core/ports"
	"go.trai.ch/zerr"
)

const configSource = "tsconfig"

var (
	defaultIncludes = []string{"**/*"}
	defaultExcludes = []string{"node_modules", "bower_components", "jspm_packages"}
)

// tsconfigFile is the subset of a tsconfig.json file the compiler understands.
type tsconfigFile struct {
	Extends         json.RawMessage            `json:"extends"`
	CompilerOptions map[string]json.RawMessage `json:"compilerOptions"`
	Files           *[]string                  `json:"files"`
	Include         *[]string                  `json:"include"`
	Exclude         *[]string                  `json:"exclude"`
}

// resolvedConfig is a tsconfig with its extends chain applied.
type resolvedConfig struct {
	// options are keyed by lowercase option name; later configs in the chain override earlier ones.
	options map[string]optionValue
	files   *[]string
	include *[]string
	exclude *[]string
	// specDir is the directory files, include and exclude are relative to.
	specDir string
}

type optionValue struct {
	raw json.RawMessage
	// dir is the directory of the config that set the value; relative paths resolve against it.
	dir  string
	name string
}

// configParser carries the state of one ParseConfig call.
type configParser struct {
	host  ports.ConfigHost
	root  string
	diags []domain.Diagnostic
}

// ParseConfig reads configPath, follows its extends chain and expands files, include and exclude.
func (c *Compiler) ParseConfig(
	_ context.Context,
	configPath, basePath string,
	host ports.ConfigHost,
) (*domain.ParsedConfig, error) {
	configPath = domain.NormalizePath(configPath)
	basePath = domain.NormalizePath(basePath)

	if _, ok := host.ReadFile(configPath); !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, "cannot read tsconfig"), "path", configPath)
	}

	p := &configParser{host: host, root: configPath}
	resolved := p.load(configPath, nil)
	if resolved.specDir == filepath.Dir(configPath) {
		resolved.specDir = basePath
	}

	options := p.compilerOptions(resolved.options)
	return &domain.ParsedConfig{
		Path:      configPath,
		Options:   options,
		FileNames: p.fileNames(resolved, options),
		Errors:    p.diags,
	}, nil
}

// load reads path and merges it over the configs it extends. chain holds the configs being loaded.
func (p *configParser) load(path string, chain []string) resolvedConfig {
	dir := filepath.Dir(path)
	resolved := resolvedConfig{options: make(map[string]optionValue), specDir: dir}

	if slices.Contains(chain, path) {
		cycle := strings.Join(append(chain, path), " -> ")
		p.errorf(0, "Circularity detected while resolving configuration: %s", cycle)
		return resolved
	}
	chain = append(chain, path)

	text, ok := p.host.ReadFile(path)
	if !ok {
		p.errorf(6053, "File '%s' not found.", path)
		return resolved
	}

	var file tsconfigFile
	if err := decodeJSONC([]byte(text), &file); err != nil {
		p.diags = append(p.diags, domain.Diagnostic{
			Category: domain.CategoryError,
			File:     path,
			Source:   configSource,
			Message:  err.Error(),
		})
		return resolved
	}

	for _, base := range p.extendsTargets(path, file.Extends) {
		inherited := p.load(base, chain)
		for name, value := range inherited.options {
			resolved.options[name] = value
		}
		if inherited.files != nil || inherited.include != nil || inherited.exclude != nil {
			resolved.files, resolved.include, resolved.exclude = inherited.files, inherited.include, inherited.exclude
			resolved.specDir = inherited.specDir
		}
	}

	for name, raw := range file.CompilerOptions {
		resolved.options[strings.ToLower(name)] = optionValue{raw: raw, dir: dir, name: name}
	}
	if file.Files != nil || file.Include != nil || file.Exclude != nil {
		resolved.files, resolved.include, resolved.exclude = file.Files, file.Include, file.Exclude
		resolved.specDir = dir
	}
	return resolved
}

// extendsTargets resolves the "extends" value, a string or a list of strings, to config paths.
func (p *configParser) extendsTargets(path string, raw json.RawMessage) []string {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	var names []string
	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		names = []string{single}
	} else if err := json.Unmarshal(raw, &names); err != nil {
		p.errorf(5024, "Compiler option 'extends' requires a value of type string.")
		return nil
	}

	targets := make([]string, 0, len(names))
	for _, name := range names {
		target, ok := p.resolveExtends(filepath.Dir(path), name)
		if !ok {
			p.errorf(6053, "File '%s' not found.", name)
			continue
		}
		targets = append(targets, target)
	}
	return targets
}

// resolveExtends finds a relative config, or a config shipped in a node_modules package.
func (p *configParser) resolveExtends(dir, name string) (string, bool) {
	if filepath.IsAbs(name) || strings.HasPrefix(name, ".") {
		return p.firstExisting(domain.ResolvePath(dir, name), domain.ResolvePath(dir, name)+".json")
	}
	for current := dir; ; {
		pkg := filepath.Join(current, domain.NodeModulesDirName, filepath.FromSlash(name))
		if found, ok := p.firstExisting(pkg, pkg+".json", filepath.Join(pkg, domain.DefaultTSConfigName)); ok {
			return found, true
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", false
		}
		current = parent
	}
}

func (p *configParser) firstExisting(candidates ...string) (string, bool) {
	for _, candidate := range candidates {
		if p.host.FileExists(candidate) {
			return candidate, true
		}
	}
	return "", false
}

// fileNames expands files and include, minus exclude.
func (p *configParser) fileNames(resolved resolvedConfig, options domain.CompilerOptions) []string {
	dir := resolved.specDir

	var names []string
	if resolved.files != nil {
		if len(*resolved.files) == 0 && resolved.include == nil {
			p.errorf(18002, "The 'files' list in config file '%s' is empty.", p.root)
		}
		for _, name := range *resolved.files {
			names = append(names, domain.ResolvePath(dir, name))
		}
	}

	includes := defaultIncludes
	switch {
	case resolved.include != nil:
		includes = *resolved.include
	case resolved.files != nil:
		includes = nil
	}
	if len(includes) == 0 {
		return names
	}

	excludes := defaultExcludes
	if resolved.exclude != nil {
		excludes = *resolved.exclude
	} else if options.OutDir != "" {
		if rel, err := filepath.Rel(dir, options.OutDir); err == nil && !strings.HasPrefix(rel, "..") {
			excludes = append(slices.Clone(excludes), filepath.ToSlash(rel))
		}
	}

	extensions := []string{".ts", ".tsx"}
	if options.AllowJS {
		extensions = append(extensions, ".js", ".jsx")
	}

	for _, name := range p.host.ReadDirectory(dir, extensions, excludes, includes) {
		if !slices.Contains(names, name) {
			names = append(names, name)
		}
	}
	return names
}

// compilerOptions converts raw option values, reporting values of the wrong type or outside their allowed set.
func (p *configParser) compilerOptions(raw map[string]optionValue) domain.CompilerOptions {
	var opts domain.CompilerOptions

	p.enumOption(raw, "target", validTargets, &opts.Target)
	p.enumOption(raw, "module", validModules, &opts.Module)
	p.enumOption(raw, "jsx", validJSX, &opts.JSX)
	p.stringOption(raw, "jsxFactory", &opts.JSXFactory)
	p.stringOption(raw, "jsxFragmentFactory", &opts.JSXFragmentFactory)
	p.stringOption(raw, "jsxImportSource", &opts.JSXImportSource)

	p.pathOption(raw, "outDir", &opts.OutDir)
	p.pathOption(raw, "rootDir", &opts.RootDir)
	p.pathOption(raw, "baseUrl", &opts.BaseURL)

	p.boolOption(raw, "allowJs", &opts.AllowJS)
	p.boolOption(raw, "sourceMap", &opts.SourceMap)
	p.boolOption(raw, "inlineSourceMap", &opts.InlineSourceMap)
	p.boolOption(raw, "inlineSources", &opts.InlineSources)
	p.boolOption(raw, "declaration", &opts.Declaration)
	p.boolOption(raw, "noEmit", &opts.NoEmit)
	p.boolOption(raw, "emitBOM", &opts.EmitBOM)
	p.boolOption(raw, "removeComments", &opts.RemoveComments)
	p.boolOption(raw, "strict", &opts.Strict)
	p.boolOption(raw, "esModuleInterop", &opts.ESModuleInterop)
	p.boolOption(raw, "experimentalDecorators", &opts.ExperimentalDecorators)
	p.boolOption(raw, "verbatimModuleSyntax", &opts.VerbatimModuleSyntax)

	if value, ok := raw[strings.ToLower("useDefineForClassFields")]; ok {
		var b bool
		if p.decode(value, &b, "boolean") {
			opts.UseDefineForClassFields = &b
		}
	}

	if value, ok := raw["lib"]; ok {
		var libs []string
		if p.decode(value, &libs, "list") {
			for _, lib := range libs {
				opts.Lib = append(opts.Lib, strings.ToLower(lib))
			}
		}
	}
	return opts
}

func (p *configParser) boolOption(raw map[string]optionValue, name string, dst *bool) {
	if value, ok := raw[strings.ToLower(name)]; ok {
		p.decode(value, dst, "boolean")
	}
}

func (p *configParser) stringOption(raw map[string]optionValue, name string, dst *string) {
	if value, ok := raw[strings.ToLower(name)]; ok {
		p.decode(value, dst, "string")
	}
}

func (p *configParser) pathOption(raw map[string]optionValue, name string, dst *string) {
	value, ok := raw[strings.ToLower(name)]
	if !ok {
		return
	}
	var path string
	if p.decode(value, &path, "string") {
		*dst = domain.ResolvePath(value.dir, path)
	}
}

func (p *configParser) enumOption(raw map[string]optionValue, name string, allowed []string, dst *string) {
	value, ok := raw[strings.ToLower(name)]
	if !ok {
		return
	}
	var s string
	if !p.decode(value, &s, "string") {
		return
	}
	s = strings.ToLower(s)
	if !slices.Contains(allowed, s) {
		p.errorf(6046, "Argument for '--%s' option must be: %s.", name, quoteAll(allowed))
		return
	}
	*dst = s
}

func (p *configParser) decode(value optionValue, dst any, typeName string) bool {
	if err := json.Unmarshal(value.raw, dst); err != nil {
		p.errorf(5024, "Compiler option '%s' requires a value of type %s.", value.name, typeName)
		return false
	}
	return true
}

func (p *configParser) errorf(code int, format string, args ...any) {
	p.diags = append(p.diags, domain.Diagnostic{
		Category: domain.CategoryError,
		Code:     code,
		File:     p.root,
		Source:   configSource,
		Message:  fmt.Sprintf(format, args...),
	})
}

// decodeJSONC decodes JSON with comments and trailing commas.
func decodeJSONC(data []byte, v any) error {
	standard, err := hujson.Standardize(data)
	if err != nil {
		return err
	}
	dec := json.NewDecoder(bytes.NewReader(standard))
	return dec.Decode(v)
}

func quoteAll(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "'" + v + "'"
	}
	return strings.Join(quoted, ", ")
}
