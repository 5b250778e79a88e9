/*
Package jingo is a Jinja-style template engine: it parses template
source text into an AST (package parse/ast) and evaluates that AST
against a host-supplied data environment to produce HTML output
(package eval). The host controls variable resolution, include
resolution, and output emission via injected callbacks, so the engine
itself is purely a compile-and-interpret component.

Usage example

On startup, compile a directory of templates:

	set, err := loader.NewSet().
		WithResolver("views", ".jingo").
		WatchFiles(mode == "dev").
		Compile()

To render a page:

	ctx, buf := context.NewPure(func(name string) value.Value {
		return value.New(pageData[name])
	})
	err := eval.Render(ctx, set.Template("account/overview.jingo"))
	io.WriteString(w, buf.String())

For a single template parsed directly from a string, skip the loader:

	tmpl, err := jingo.Parse(resolver, "greeting", `Hello, {{ name }}!`)
	out, err := jingo.RenderPure(func(name string) value.Value {
		return value.String("world")
	}, tmpl)

Project status

The parser and evaluator are the core of this module and are fully
implemented, including template inheritance (extends/block), includes,
macros, lambdas, and the full expression grammar. Sandboxing untrusted
templates, streaming output before a template finishes parsing, and
incremental reparsing are explicitly out of scope.
*/
package jingo
