package ast

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jingolang/jingo/value"
)

func TestTemplateBlockFallsThroughParentChain(t *testing.T) {
	grandparent := &Template{
		Name:   "grandparent",
		Blocks: map[string]*Block{"title": {Name: "title", Body: &LiteralNode{Html: "GP"}}},
	}
	parent := &Template{
		Name:   "parent",
		Parent: grandparent,
		Blocks: map[string]*Block{"body": {Name: "body", Body: &LiteralNode{Html: "P"}}},
	}
	child := &Template{
		Name:   "child",
		Parent: parent,
		Blocks: map[string]*Block{},
	}

	b, ok := child.Block("title")
	if !ok {
		t.Fatal("expected to find title block via grandparent")
	}
	if got := b.Body.(*LiteralNode).Html; got != "GP" {
		t.Errorf("title block = %q, want GP", got)
	}

	if _, ok := child.Block("missing"); ok {
		t.Error("expected missing block to report not found")
	}
}

func TestTemplateBlockOverride(t *testing.T) {
	parent := &Template{
		Name:   "parent",
		Blocks: map[string]*Block{"greeting": {Name: "greeting", Body: &LiteralNode{Html: "default"}}},
	}
	child := &Template{
		Name:   "child",
		Parent: parent,
		Blocks: map[string]*Block{"greeting": {Name: "greeting", Body: &LiteralNode{Html: "hi"}}},
	}

	b, ok := child.Block("greeting")
	if !ok || b.Body.(*LiteralNode).Html != "hi" {
		t.Errorf("expected child's own block to win, got %+v", b)
	}
}

func TestMultiNodeFiltersNoNulls(t *testing.T) {
	m := &MultiNode{Nodes: []Node{
		&LiteralNode{Html: "a"},
		&LiteralNode{Html: "b"},
	}}
	if diff := cmp.Diff(2, len(m.Children())); diff != "" {
		t.Errorf("Children() length mismatch (-want +got):\n%s", diff)
	}
	if got, want := m.String(), "ab"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestNumberNodeTextCanonical(t *testing.T) {
	n := &NumberNode{Value: 1.50}
	if got, want := n.String(), "1.5"; got != want {
		t.Errorf("NumberNode.String() = %q, want %q", got, want)
	}
}

func TestLiteralNodeUsesValueHtml(t *testing.T) {
	n := &LiteralNode{Html: value.Html("<b>x</b>")}
	if got, want := n.String(), "<b>x</b>"; got != want {
		t.Errorf("LiteralNode.String() = %q, want %q", got, want)
	}
}
