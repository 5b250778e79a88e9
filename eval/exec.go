// Package eval walks a parsed Template's AST, evaluating expressions
// against a scope stack and the host context, and drives HTML
// emission: a state struct plus a walk(node) type-switch, a recover
// that distinguishes a runtime.Error (logged with a stack trace) from
// a plain error, and renderBlock-style sub-rendering into a temporary
// buffer for macro bodies.
//
// Every statement and expression form the template grammar produces
// is handled here, including variable assignment, macro/lambda
// definitions, block overrides, scoped blocks, and includes; see
// DESIGN.md's Open Question decisions for the reasoning behind edge
// cases like include cycles and mismatched endblock/endmacro names.
package eval

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"runtime"
	"runtime/debug"

	"github.com/jingolang/jingo/ast"
	"github.com/jingolang/jingo/context"
	"github.com/jingolang/jingo/value"
)

// state is the mutable state of a single render: the scope stack, the
// host context, and the template currently in scope for BlockRef
// resolution (the most-derived template on the extends chain reached
// so far; it changes across an include boundary, per renderTemplate).
type state struct {
	scope scope
	ctx   *context.Context
	tmpl  *ast.Template
}

// Render walks tmpl and writes its output through ctx. A missing
// variable, a missing member, or calling a non-function all soft-fail
// to Null rather than aborting rendering; only a genuine implementation
// bug (a panic that isn't one of those soft paths) is caught at this
// boundary and turned into an error.
func Render(ctx *context.Context, tmpl *ast.Template) (err error) {
	s := &state{scope: newScope(), ctx: ctx}
	for name, fn := range builtins {
		s.scope.set(name, value.Func(fn))
	}
	s.scope.set("translate", value.Func(s.funcTranslate))
	defer s.recover(&err)
	s.renderTemplate(tmpl)
	return nil
}

// RenderPure is the convenience entry point for a pure lookup function
// (no host effect): it renders tmpl and returns the fully accumulated
// HTML string.
func RenderPure(lookup func(name string) value.Value, tmpl *ast.Template) (string, error) {
	ctx, buf := context.NewPure(lookup)
	if err := Render(ctx, tmpl); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// renderTemplate walks tmpl's rendering skeleton: the Body of the
// furthest ancestor on its Parent (extends) chain, since only the
// root of that chain carries real body content; every derived
// template's content lives entirely in its block table (ast.Template's
// invariant). BlockRef lookups, though, start from tmpl itself (the
// most-derived template reached), so an override three levels up an
// extends chain still wins over the base's own block body.
func (s *state) renderTemplate(tmpl *ast.Template) {
	prev := s.tmpl
	s.tmpl = tmpl
	root := tmpl
	for root.Parent != nil {
		root = root.Parent
	}
	s.walk(root.Body)
	s.tmpl = prev
}

// walk evaluates one statement node, writing any output through
// s.ctx.Write.
func (s *state) walk(n ast.Node) {
	switch n := n.(type) {
	case *ast.NullNode:
		// no-op
	case *ast.MultiNode:
		for _, c := range n.Nodes {
			s.walk(c)
		}
	case *ast.LiteralNode:
		s.ctx.Write(n.Html)
	case *ast.InterpolationNode:
		s.ctx.Write(s.eval(n.Expr).ToHtml())
	case *ast.IfNode:
		if s.eval(n.Cond).Truthy() {
			s.walk(n.Then)
		} else if n.Else != nil {
			s.walk(n.Else)
		}
	case *ast.ForNode:
		s.walkFor(n)
	case *ast.SetVarNode:
		s.scope.set(n.Name, s.eval(n.Expr))
	case *ast.MacroNode:
		s.scope.set(n.Name, value.Func(s.makeMacro(n)))
	case *ast.BlockRefNode:
		if block, ok := s.tmpl.Block(n.Name); ok {
			s.walk(block.Body)
		}
	case *ast.ScopedNode:
		s.scope.push()
		s.walk(n.Body)
		s.scope.pop()
	case *ast.IncludeNode:
		s.renderTemplate(n.Template)
	default:
		panic(fmt.Sprintf("eval: unexpected statement node %T", n))
	}
}

// walkFor evaluates the iteree once, then walks body once per paired
// (key, value) in iteration order, under a fresh scope frame that
// binds ValueVar (and IndexVar, if present) for the duration of each
// iteration. The frame is reused across iterations (rebound each time)
// rather than pushed per-element.
func (s *state) walkFor(n *ast.ForNode) {
	iteree := s.eval(n.Iteree)
	keys := iteree.IterKeys()
	values := iteree.ToList()

	s.scope.push()
	for i, v := range values {
		s.scope.set(n.ValueVar, v)
		if n.IndexVar != "" && i < len(keys) {
			s.scope.set(n.IndexVar, keys[i])
		}
		s.walk(n.Body)
	}
	s.scope.pop()
}

// makeMacro closes n's body over the defining scope (so a macro can
// see bindings from its enclosing template even when called later,
// e.g. as a {% call %}'s "caller"), and returns a Function that
// renders that body into a private buffer and hands back the result
// as Html.
func (s *state) makeMacro(n *ast.MacroNode) value.Function {
	captured := s.scope.snapshot()
	tmpl := s.tmpl
	outerCtx := s.ctx
	return func(args []value.Arg) value.Value {
		var buf bytes.Buffer
		inner := &context.Context{
			Lookup:  outerCtx.Lookup,
			Write:   func(h value.Html) { buf.WriteString(string(h)) },
			Catalog: outerCtx.Catalog,
		}
		callScope := captured.snapshot()
		callScope.push()
		bindArgs(callScope, n.Args, args)
		sub := &state{scope: callScope, ctx: inner, tmpl: tmpl}
		sub.walk(n.Body)
		return value.Html(buf.String())
	}
}

// makeLambda is makeMacro's expression-bodied counterpart: its Body is
// an expression, not a statement, and the call result is that
// expression's value rather than a rendered buffer.
func (s *state) makeLambda(n *ast.LambdaNode) value.Function {
	captured := s.scope.snapshot()
	tmpl := s.tmpl
	outerCtx := s.ctx
	return func(args []value.Arg) value.Value {
		callScope := captured.snapshot()
		callScope.push()
		bindArgs(callScope, n.Params, args)
		sub := &state{scope: callScope, ctx: outerCtx, tmpl: tmpl}
		return sub.eval(n.Body)
	}
}

// bindArgs binds params to args in sc: a named argument matching a
// param name wins; remaining params are filled positionally in order;
// any param with neither binds to Null. Every named argument is bound
// in sc even when it doesn't match a declared param, which is how a
// {% call %}'s implicit "caller" argument (see evalCall) reaches a
// macro body that never declared "caller" as one of its own params.
func bindArgs(sc scope, params []string, args []value.Arg) {
	named := make(map[string]value.Value, len(args))
	var positional []value.Value
	for _, a := range args {
		if a.Name != "" {
			named[a.Name] = a.Value
			sc.set(a.Name, a.Value)
		} else {
			positional = append(positional, a.Value)
		}
	}
	pi := 0
	for _, p := range params {
		if _, ok := named[p]; ok {
			continue
		}
		if pi < len(positional) {
			sc.set(p, positional[pi])
			pi++
			continue
		}
		sc.set(p, value.Null{})
	}
}

// eval evaluates an expression node to a Value.
func (s *state) eval(n ast.Node) value.Value {
	switch n := n.(type) {
	case *ast.StringNode:
		return value.String(n.Value)
	case *ast.NumberNode:
		return value.Number(n.Value)
	case *ast.BoolNode:
		return value.Bool(n.Value)
	case *ast.NullValueNode:
		return value.Null{}
	case *ast.VarNode:
		return s.lookupVar(n.Name)
	case *ast.ListNode:
		out := make(value.List, len(n.Items))
		for i, item := range n.Items {
			out[i] = s.eval(item)
		}
		return out
	case *ast.MapNode:
		m := make(value.Map, len(n.Pairs))
		for _, p := range n.Pairs {
			m[s.eval(p.Key).Text()] = s.eval(p.Value)
		}
		return m
	case *ast.MemberLookupNode:
		base := s.eval(n.Base)
		idx := s.eval(n.Index)
		if v, ok := base.Index(idx); ok {
			return v
		}
		return value.Null{}
	case *ast.CallNode:
		return s.evalCall(n)
	case *ast.LambdaNode:
		return value.Func(s.makeLambda(n))
	default:
		panic(fmt.Sprintf("eval: unexpected expression node %T", n))
	}
}

// lookupVar resolves a scope lookup first, then falls back to the host
// context. A host Lookup that's unset is treated the same as one that
// returns Null: there's no such thing as a required variable here.
func (s *state) lookupVar(name string) value.Value {
	if v, ok := s.scope.lookup(name); ok {
		return v
	}
	if s.ctx.Lookup != nil {
		return s.ctx.Lookup(name)
	}
	return value.Null{}
}

// evalCall evaluates the callee and every argument (names preserved),
// then invokes the callee's Function projection. A non-callable
// callee soft-fails to Null rather than aborting the render.
//
// If the calling scope has a "caller" binding (true exactly inside a
// {% call %}'s desugared Scoped block, where the call site defines a
// macro named "caller" before invoking the callee), it's forwarded as
// an implicit named argument, so a macro that never declared "caller"
// as one of its own params can still invoke caller() from its body.
func (s *state) evalCall(n *ast.CallNode) value.Value {
	callee := s.eval(n.Callee)
	fn, ok := callee.Func()
	if !ok {
		return value.Null{}
	}
	args := make([]value.Arg, len(n.Args))
	for i, a := range n.Args {
		args[i] = value.Arg{Name: a.Name, Value: s.eval(a.Value)}
	}
	if caller, ok := s.scope.lookup("caller"); ok {
		args = append(args, value.Arg{Name: "caller", Value: caller})
	}
	return fn(args)
}

// funcTranslate backs the "translate" filter: {{ "greeting" | translate }}
// rewrites (per the postfix grammar's filter production) to
// translate("greeting"), using the scope's "locale" binding (or the
// host lookup for it) unless a second argument overrides the locale
// explicitly. With no Catalog wired into the context, translation is
// a no-op identity: the key renders as itself.
func (s *state) funcTranslate(args []value.Arg) value.Value {
	if len(args) == 0 {
		return value.Null{}
	}
	key := args[0].Value.Text()
	var locale string
	if len(args) > 1 {
		locale = args[1].Value.Text()
	} else {
		locale = s.lookupVar("locale").Text()
	}
	if s.ctx.Catalog == nil {
		return value.String(key)
	}
	return value.String(s.ctx.Catalog.Translate(locale, key))
}

// recover turns a panic into a returned error: a runtime.Error (the Go
// runtime signaling a bug, e.g. nil deref or index out of range) is
// logged with a stack trace before being converted, since it
// represents a defect in this package rather than anything a template
// author did.
func (s *state) recover(errp *error) {
	e := recover()
	if e == nil {
		return
	}
	if re, ok := e.(runtime.Error); ok {
		log.Printf("jingo: panic rendering %s: %v\n%s", s.currentName(), re, debug.Stack())
		*errp = fmt.Errorf("jingo: %v", re)
		return
	}
	switch v := e.(type) {
	case error:
		*errp = v
	case string:
		*errp = errors.New(v)
	default:
		panic(e)
	}
}

func (s *state) currentName() string {
	if s.tmpl != nil {
		return s.tmpl.Name
	}
	return "<unknown>"
}
