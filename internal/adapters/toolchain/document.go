package toolchain

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
	"go.trai.ch/tsload/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	syntaxSource  = "syntax"
	maxParseDepth = 1000
)

// moduleRef is a module specifier found in a document, with its 1-based position.
type moduleRef struct {
	specifier string
	line      int
	column    int
}

// document is the parsed form of one source unit.
type document struct {
	path    string
	hash    uint64
	imports []moduleRef
	syntax  []domain.Diagnostic
}

func grammarFor(path string) *sitter.Language {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".tsx") || strings.HasSuffix(lower, ".jsx") {
		return tsx.GetLanguage()
	}
	return typescript.GetLanguage()
}

func parseDocument(ctx context.Context, path, text string) (*document, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(grammarFor(path))

	src := []byte(text)
	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse source"), "path", path)
	}
	defer tree.Close()

	doc := &document{path: path}
	doc.walk(tree.RootNode(), src, 0)
	return doc, nil
}

func (d *document) walk(node *sitter.Node, src []byte, depth int) {
	if node == nil || depth > maxParseDepth {
		return
	}

	switch {
	case node.IsMissing():
		d.syntaxError(node, 1005, fmt.Sprintf("'%s' expected.", node.Type()))
		return
	case node.IsError():
		d.syntaxError(node, 1012, "Unexpected token.")
	}

	switch node.Type() {
	case "import_statement", "export_statement":
		d.addImport(node, src)
	case "call_expression":
		if isModuleCall(node, src) {
			d.addImport(node.ChildByFieldName("arguments"), src)
		}
	}

	for i := range int(node.ChildCount()) {
		d.walk(node.Child(i), src, depth+1)
	}
}

// isModuleCall matches require("x") and import("x").
func isModuleCall(node *sitter.Node, src []byte) bool {
	fn := node.ChildByFieldName("function")
	if fn == nil {
		return false
	}
	switch fn.Type() {
	case "import":
		return true
	case "identifier":
		return fn.Content(src) == "require"
	default:
		return false
	}
}

// addImport records the first string literal directly under node.
func (d *document) addImport(node *sitter.Node, src []byte) {
	if node == nil {
		return
	}
	for i := range int(node.ChildCount()) {
		child := node.Child(i)
		if child.Type() != "string" {
			continue
		}
		specifier := strings.Trim(child.Content(src), "'\"")
		if specifier == "" {
			return
		}
		point := child.StartPoint()
		d.imports = append(d.imports, moduleRef{
			specifier: specifier,
			line:      int(point.Row) + 1,
			column:    int(point.Column) + 1,
		})
		return
	}
}

func (d *document) syntaxError(node *sitter.Node, code int, message string) {
	if len(d.syntax) >= maxSyntaxErrors {
		return
	}
	point := node.StartPoint()
	d.syntax = append(d.syntax, domain.Diagnostic{
		Category: domain.CategoryError,
		Code:     code,
		File:     d.path,
		Line:     int(point.Row) + 1,
		Column:   int(point.Column) + 1,
		Source:   syntaxSource,
		Message:  message,
	})
}
