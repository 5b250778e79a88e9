// Package jingo is a thin package-level facade over parse and eval:
// Parse/ParseFile for compiling a template and Render/RenderPure for
// evaluating one, so simple callers don't need to import the
// subpackages directly.
package jingo

import (
	"github.com/jingolang/jingo/ast"
	"github.com/jingolang/jingo/context"
	"github.com/jingolang/jingo/eval"
	"github.com/jingolang/jingo/parse"
	"github.com/jingolang/jingo/value"
)

// Resolver resolves an include or extends target name to its source
// text; see parse.Resolver.
type Resolver = parse.Resolver

// Parse parses src as a template named sourceName, resolving any
// include/extends targets through resolver.
func Parse(resolver Resolver, sourceName, src string) (*ast.Template, error) {
	return parse.Parse(resolver, sourceName, src)
}

// ParseFile resolves sourceName through resolver and parses the
// result.
func ParseFile(resolver Resolver, sourceName string) (*ast.Template, error) {
	return parse.ParseFile(resolver, sourceName)
}

// Render evaluates tmpl and writes its output through ctx.
func Render(ctx *context.Context, tmpl *ast.Template) error {
	return eval.Render(ctx, tmpl)
}

// RenderPure evaluates tmpl against a pure lookup function and
// returns the fully accumulated HTML output.
func RenderPure(lookup func(name string) value.Value, tmpl *ast.Template) (string, error) {
	return eval.RenderPure(lookup, tmpl)
}
