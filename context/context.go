// Package context assembles the two callbacks a host program supplies
// to the evaluator, variable lookup and HTML emission, into a single
// value.
package context

import (
	"bytes"

	"github.com/jingolang/jingo/localize"
	"github.com/jingolang/jingo/value"
)

// Context bundles the host's variable lookup and HTML sink. Lookup is
// consulted whenever a Var expression isn't bound by the current
// evaluator scope; Write receives every fragment of already-safe HTML
// the evaluator emits, in source order.
//
// Catalog is optional: if set, templates may use the "translate"
// builtin filter to look up locale-specific strings through it.
type Context struct {
	Lookup  func(name string) value.Value
	Write   func(value.Html)
	Catalog *localize.Catalog
}

// NewPure builds a Context around a pure lookup function (one with no
// host effect of its own) and a writer-accumulating Write that
// collects every emitted fragment into an in-memory buffer. The
// returned buffer holds the complete rendered output once the
// template has finished evaluating.
func NewPure(lookup func(name string) value.Value) (*Context, *bytes.Buffer) {
	var buf bytes.Buffer
	ctx := &Context{
		Lookup: lookup,
		Write: func(h value.Html) {
			buf.WriteString(string(h))
		},
	}
	return ctx, &buf
}
