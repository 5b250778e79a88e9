// Package ast contains definitions for the in-memory representation of a
// parsed template: statement nodes, expression nodes, and the template
// itself (body + parent + block table).
package ast

import (
	"bytes"
	"fmt"

	"github.com/jingolang/jingo/value"
)

// Node represents any piece of a parsed template, statement or
// expression.
type Node interface {
	String() string // source-ish representation, for debugging/tests
	Position() Pos  // byte offset of the start of the node in the source
}

// Pos is a byte position in the original source text.
type Pos int

// Position implements Node for types that embed a Pos.
func (p Pos) Position() Pos { return p }

// Block is a named section of a template that a derived template may
// override.
type Block struct {
	Name string
	Body Node
}

// Template is a parsed template: a body statement, an optional parent
// (set by `extends`), and the block table accumulated while parsing.
//
// Invariant: if Parent != nil, Body is a NullNode{}; all of a
// derived template's content lives in Blocks.
type Template struct {
	Name   string
	Body   Node
	Parent *Template
	Blocks map[string]*Block
}

// Block looks up a block by name, first on this template, then
// walking the Parent chain outward. Reports ok=false if no template
// in the chain defines that block.
func (t *Template) Block(name string) (*Block, bool) {
	for tmpl := t; tmpl != nil; tmpl = tmpl.Parent {
		if b, ok := tmpl.Blocks[name]; ok {
			return b, true
		}
	}
	return nil, false
}

// --- statements ---

// NullNode is a no-op statement, produced e.g. by comments.
type NullNode struct{ Pos }

func (NullNode) String() string { return "" }

// MultiNode is a sequence of statements, evaluated in order. The
// parser never places a NullNode among Nodes.
type MultiNode struct {
	Pos
	Nodes []Node
}

func (n *MultiNode) String() string {
	var b bytes.Buffer
	for _, c := range n.Nodes {
		fmt.Fprint(&b, c)
	}
	return b.String()
}

func (n *MultiNode) Children() []Node { return n.Nodes }

// LiteralNode is raw HTML text captured verbatim between tags.
type LiteralNode struct {
	Pos
	Html value.Html
}

func (n *LiteralNode) String() string { return string(n.Html) }

// InterpolationNode is `{{ expr }}`.
type InterpolationNode struct {
	Pos
	Expr Node
}

func (n *InterpolationNode) String() string { return "{{ " + n.Expr.String() + " }}" }

// IfNode is a conditional; Else may be nil.
type IfNode struct {
	Pos
	Cond Node
	Then Node
	Else Node
}

func (n *IfNode) String() string {
	if n.Else != nil {
		return fmt.Sprintf("{%% if %s %%}%s{%% else %%}%s{%% endif %%}", n.Cond, n.Then, n.Else)
	}
	return fmt.Sprintf("{%% if %s %%}%s{%% endif %%}", n.Cond, n.Then)
}

// ForNode is an iteration over Iteree. IndexVar is "" when the
// single-identifier for-loop form was used.
type ForNode struct {
	Pos
	ValueVar string
	IndexVar string
	Iteree   Node
	Body     Node
}

func (n *ForNode) String() string {
	if n.IndexVar != "" {
		return fmt.Sprintf("{%% for %s, %s in %s %%}%s{%% endfor %%}", n.IndexVar, n.ValueVar, n.Iteree, n.Body)
	}
	return fmt.Sprintf("{%% for %s in %s %%}%s{%% endfor %%}", n.ValueVar, n.Iteree, n.Body)
}

// SetVarNode binds Name to Expr's value in the current scope frame.
type SetVarNode struct {
	Pos
	Name string
	Expr Node
}

func (n *SetVarNode) String() string { return fmt.Sprintf("{%% set %s = %s %%}", n.Name, n.Expr) }

// MacroNode defines a named, parameterized callable statement body.
type MacroNode struct {
	Pos
	Name string
	Args []string
	Body Node
}

func (n *MacroNode) String() string {
	return fmt.Sprintf("{%% macro %s(%s) %%}%s{%% endmacro %%}", n.Name, joinStrings(n.Args), n.Body)
}

// BlockRefNode references a named block; its body lives in the
// enclosing template's block table.
type BlockRefNode struct {
	Pos
	Name string
}

func (n *BlockRefNode) String() string { return fmt.Sprintf("{%% block %s %%}", n.Name) }

// ScopedNode introduces a fresh scope frame for Body, discarded on exit.
type ScopedNode struct {
	Pos
	Body Node
}

func (n *ScopedNode) String() string { return fmt.Sprintf("{%% scope %%}%s{%% endscope %%}", n.Body) }

// IncludeNode is an include whose target was parsed at parse time and
// is inlined by reference.
type IncludeNode struct {
	Pos
	Template *Template
}

func (n *IncludeNode) String() string {
	name := ""
	if n.Template != nil {
		name = n.Template.Name
	}
	return fmt.Sprintf("{%% include %q %%}", name)
}

// --- expressions ---

// StringNode is a string literal.
type StringNode struct {
	Pos
	Value string
}

func (n *StringNode) String() string { return fmt.Sprintf("%q", n.Value) }

// NumberNode is a number literal.
type NumberNode struct {
	Pos
	Value float64
}

func (n *NumberNode) String() string { return value.Number(n.Value).Text() }

// BoolNode is a boolean literal.
type BoolNode struct {
	Pos
	Value bool
}

func (n *BoolNode) String() string {
	if n.Value {
		return "true"
	}
	return "false"
}

// NullValueNode is the `null` literal.
type NullValueNode struct{ Pos }

func (NullValueNode) String() string { return "null" }

// VarNode is a scope lookup.
type VarNode struct {
	Pos
	Name string
}

func (n *VarNode) String() string { return n.Name }

// ListNode (expression) is a list literal.
type ListNode struct {
	Pos
	Items []Node
}

func (n *ListNode) String() string {
	var b bytes.Buffer
	b.WriteByte('[')
	for i, item := range n.Items {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, item)
	}
	b.WriteByte(']')
	return b.String()
}

// MapPair is one key/value pair of a map literal.
type MapPair struct {
	Key   Node
	Value Node
}

// MapNode is a map (object) literal.
type MapNode struct {
	Pos
	Pairs []MapPair
}

func (n *MapNode) String() string {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, p := range n.Pairs {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %s", p.Key, p.Value)
	}
	b.WriteByte('}')
	return b.String()
}

// MemberLookupNode covers both `a.b` (sugared by the parser to
// `a["b"]`) and `a[x]`.
type MemberLookupNode struct {
	Pos
	Base  Node
	Index Node
}

func (n *MemberLookupNode) String() string { return fmt.Sprintf("%s[%s]", n.Base, n.Index) }

// CallArg is one argument to a call: Name is "" for a positional argument.
type CallArg struct {
	Name  string
	Value Node
}

// CallNode is a function/macro/lambda invocation with positional and
// named arguments, order preserved.
type CallNode struct {
	Pos
	Callee Node
	Args   []CallArg
}

func (n *CallNode) String() string {
	var b bytes.Buffer
	fmt.Fprintf(&b, "%s(", n.Callee)
	for i, a := range n.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		if a.Name != "" {
			fmt.Fprintf(&b, "%s=%s", a.Name, a.Value)
		} else {
			fmt.Fprint(&b, a.Value)
		}
	}
	b.WriteByte(')')
	return b.String()
}

// LambdaNode is an anonymous function: `(params) -> body`.
type LambdaNode struct {
	Pos
	Params []string
	Body   Node
}

func (n *LambdaNode) String() string {
	return fmt.Sprintf("(%s) -> %s", joinStrings(n.Params), n.Body)
}

func joinStrings(ss []string) string {
	var b bytes.Buffer
	for i, s := range ss {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(s)
	}
	return b.String()
}
