package value

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestTruthy(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want bool
	}{
		{"null", Null{}, false},
		{"false", Bool(false), false},
		{"true", Bool(true), true},
		{"zero", Number(0), false},
		{"nonzero", Number(1), true},
		{"empty string", String(""), false},
		{"nonempty string", String("x"), true},
		{"empty list", List{}, false},
		{"nonempty list", List{Number(1)}, true},
		{"empty map", Map{}, false},
		{"nonempty map", Map{"a": Number(1)}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Truthy(); got != tt.want {
				t.Errorf("Truthy() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestText(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"number no trailing zeros", Number(1.5), "1.5"},
		{"integral number", Number(3), "3"},
		{"string", String("hi"), "hi"},
		{"list joins nothing", List{String("a"), String("b")}, "ab"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Text(); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestToHtmlEscapes(t *testing.T) {
	got := String(`<a href="x">'&'</a>`).ToHtml()
	want := Html(`&lt;a href=&#34;x&#34;&gt;&#39;&amp;&#39;&lt;/a&gt;`)
	if got != want {
		t.Errorf("ToHtml() = %q, want %q", got, want)
	}
}

func TestToHtmlIdentity(t *testing.T) {
	h := Html("<b>raw</b>")
	if h.ToHtml() != h {
		t.Errorf("Html.ToHtml() should be identity, got %q", h.ToHtml())
	}
}

func TestListIndex(t *testing.T) {
	l := List{String("a"), String("b"), String("c")}
	v, ok := l.Index(Number(1))
	if !ok || v != String("b") {
		t.Errorf("Index(1) = %v, %v; want b, true", v, ok)
	}
	if _, ok := l.Index(Number(5)); ok {
		t.Error("Index(5) should miss")
	}
}

func TestMapIndex(t *testing.T) {
	m := Map{"x": Number(1)}
	v, ok := m.Index(String("x"))
	if !ok || v != Number(1) {
		t.Errorf("Index(x) = %v, %v; want 1, true", v, ok)
	}
	if _, ok := m.Index(String("y")); ok {
		t.Error("Index(y) should miss")
	}
}

func TestIterKeys(t *testing.T) {
	l := List{String("a"), String("b")}
	if diff := cmp.Diff([]Value{Number(0), Number(1)}, l.IterKeys()); diff != "" {
		t.Errorf("IterKeys() mismatch (-want +got):\n%s", diff)
	}
}

func TestConvertStruct(t *testing.T) {
	type Account struct {
		Name    string
		Balance int
	}
	got := New(Account{Name: "ann", Balance: 5})
	want := Map{"name": String("ann"), "balance": Number(5)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("New() mismatch (-want +got):\n%s", diff)
	}
}

func TestConvertTime(t *testing.T) {
	tm := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	got := New(tm)
	want := String(tm.Format(time.RFC3339))
	if got != want {
		t.Errorf("New(time) = %v, want %v", got, want)
	}
}

func TestConvertSliceAndMap(t *testing.T) {
	got := New([]int{1, 2, 3})
	want := List{Number(1), Number(2), Number(3)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("New(slice) mismatch (-want +got):\n%s", diff)
	}

	gotMap := New(map[string]int{"a": 1})
	wantMap := Map{"a": Number(1)}
	if diff := cmp.Diff(wantMap, gotMap); diff != "" {
		t.Errorf("New(map) mismatch (-want +got):\n%s", diff)
	}
}

func TestFunc(t *testing.T) {
	var called bool
	f := Func(func(args []Arg) Value {
		called = true
		return Null{}
	})
	fn, ok := f.Func()
	if !ok {
		t.Fatal("Func() should report ok")
	}
	fn(nil)
	if !called {
		t.Error("function was not invoked")
	}
}
