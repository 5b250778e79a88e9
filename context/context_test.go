package context

import (
	"testing"

	"github.com/jingolang/jingo/value"
)

func TestNewPureAccumulatesWrites(t *testing.T) {
	ctx, buf := NewPure(func(name string) value.Value {
		return value.String(name)
	})
	ctx.Write(value.Html("a"))
	ctx.Write(value.Html("b"))
	if got, want := buf.String(), "ab"; got != want {
		t.Errorf("buf = %q, want %q", got, want)
	}
	if got, want := ctx.Lookup("x"), value.Value(value.String("x")); got != want {
		t.Errorf("Lookup(x) = %v, want %v", got, want)
	}
	if ctx.Catalog != nil {
		t.Error("NewPure should leave Catalog nil")
	}
}
