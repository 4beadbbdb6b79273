package toolchain

import (
	"context"
	"fmt"
	"slices"

	"go.trai.ch/tsload/internal/core/domain"
	"go.trai.ch/tsload/internal/core/ports"
)

// sourceUnit is a file inside a program together with its parsed form.
type sourceUnit struct {
	name string
	text string
	doc  *document
	// unresolved are relative imports that matched no file.
	unresolved []moduleRef
}

func (u *sourceUnit) FileName() string { return u.name }

func (u *sourceUnit) Text() string { return u.text }

// program is an immutable snapshot of a set of source units.
type program struct {
	options domain.CompilerOptions
	cwd     string
	units   map[string]*sourceUnit
	missing []string
}

// buildProgram loads every root through host. Units of previous whose text is unchanged are reused
// without reparsing, but their imports are resolved again since other files may have come or gone.
func buildProgram(
	ctx context.Context,
	roots []string,
	options domain.CompilerOptions,
	host ports.CompilerHost,
	registry *documentRegistry,
	previous *program,
) (*program, error) {
	p := &program{
		options: options,
		cwd:     host.CurrentDirectory(),
		units:   make(map[string]*sourceUnit, len(roots)),
	}
	res := newResolver(host, options)

	for _, root := range roots {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		name := domain.NormalizePath(root)
		text, ok := host.ScriptSnapshot(name)
		if !ok {
			p.missing = append(p.missing, name)
			continue
		}

		var doc *document
		if prev, ok := previous.unit(name); ok && prev.text == text {
			doc = prev.doc
		} else {
			var err error
			if doc, err = registry.acquire(ctx, name, text); err != nil {
				return nil, err
			}
		}

		unit := &sourceUnit{name: name, text: text, doc: doc}
		var deps []string
		for _, ref := range doc.imports {
			path, relative, found := res.resolve(name, ref.specifier)
			switch {
			case !relative:
			case found:
				deps = append(deps, path)
			default:
				unit.unresolved = append(unit.unresolved, ref)
			}
		}
		host.RecordDependencies(name, deps)
		p.units[name] = unit
	}
	return p, nil
}

func (p *program) unit(name string) (*sourceUnit, bool) {
	if p == nil {
		return nil, false
	}
	u, ok := p.units[name]
	return u, ok
}

// SourceFile locates the unit for path.
func (p *program) SourceFile(path string) (ports.SourceFile, bool) {
	u, ok := p.units[domain.NormalizePath(path)]
	if !ok {
		return nil, false
	}
	return u, true
}

// Emit transpiles file and hands each output to write after running transformers over it.
func (p *program) Emit(
	_ context.Context,
	file ports.SourceFile,
	write ports.WriteFileFunc,
	emitOnlyDeclarations bool,
	transformers []ports.Transformer,
) domain.EmitResult {
	if p.options.NoEmit || emitOnlyDeclarations {
		return domain.EmitResult{Skipped: true}
	}
	if domain.IsDeclarationFile(file.FileName()) {
		return domain.EmitResult{}
	}

	outputs, diags := transpile(file.FileName(), file.Text(), p.options, p.cwd)
	if outputs == nil {
		return domain.EmitResult{Skipped: true, Diagnostics: diags}
	}
	for _, out := range outputs {
		for _, transform := range transformers {
			out = transform(file.FileName(), out)
		}
		write(out.Name, out.Text, out.WriteByteOrderMark)
	}
	return domain.EmitResult{Diagnostics: diags}
}

// Diagnostics returns the syntax errors and unresolved relative imports of file.
func (p *program) Diagnostics(_ context.Context, file ports.SourceFile) []domain.Diagnostic {
	u, ok := p.units[file.FileName()]
	if !ok {
		return nil
	}
	diags := slices.Clone(u.doc.syntax)
	for _, ref := range u.unresolved {
		diags = append(diags, unresolvedImport(u.name, ref))
	}
	return diags
}

// OptionsDiagnostics returns problems with the options and with roots that could not be read.
func (p *program) OptionsDiagnostics() []domain.Diagnostic {
	diags := optionsDiagnostics(p.options)
	for _, name := range p.missing {
		diags = append(diags, domain.Diagnostic{
			Category: domain.CategoryError,
			Code:     6053,
			Source:   configSource,
			Message:  fmt.Sprintf("File '%s' not found.", name),
		})
	}
	return diags
}
