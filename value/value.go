// Package value implements the dynamic value model that templates are
// evaluated against: a closed sum of Null, Bool, Number, String, List,
// Map, Function, and Html.
package value

import (
	"sort"
	"strconv"
	"strings"
)

// Value is a dynamic template value. It is a closed sum: the only
// implementations are the types defined in this file.
type Value interface {
	// Truthy reports whether the value is considered true in a
	// boolean context. Null, false, 0, "", an empty list, an empty
	// map, and an empty Html fragment are all false; everything else
	// is true.
	Truthy() bool

	// Text returns the canonical textual rendering of the value.
	Text() string

	// ToHtml returns the value as safe HTML: identity if the value
	// is already Html, otherwise the escaped text rendering.
	ToHtml() Html

	// ToList coerces the value to a list: a List returns itself, a
	// Map returns its values in iteration order, a String returns
	// its characters, anything else returns an empty list.
	ToList() []Value

	// IterKeys returns the keys to iterate over: for a List, the
	// integer indices 0..n-1 as Numbers; for a Map, the string keys
	// as Strings; for a String, the character indices 0..n-1 as
	// Numbers; for anything else, an empty list.
	IterKeys() []Value

	// Index performs a loose indexed lookup: a numeric index into a
	// List, or a string key into a Map. The second return is false
	// if the value can't be indexed or the key/index is absent.
	Index(key Value) (Value, bool)

	// Func extracts the callable projection of the value, if any.
	Func() (Function, bool)
}

// Arg is one argument to a Function call: an optional name (empty for
// a positional argument) plus the evaluated value.
type Arg struct {
	Name  string
	Value Value
}

// Function is the callable projection a Value may carry.
type Function func(args []Arg) Value

// Null is the absence of a value.
type Null struct{}

func (Null) Truthy() bool                 { return false }
func (Null) Text() string                 { return "" }
func (Null) ToHtml() Html                 { return Html("") }
func (Null) ToList() []Value              { return nil }
func (Null) IterKeys() []Value            { return nil }
func (Null) Index(Value) (Value, bool)    { return Null{}, false }
func (Null) Func() (Function, bool)       { return nil, false }

// Bool is a boolean value.
type Bool bool

func (b Bool) Truthy() bool              { return bool(b) }
func (b Bool) Text() string              { return strconv.FormatBool(bool(b)) }
func (b Bool) ToHtml() Html              { return escapeToHtml(b.Text()) }
func (b Bool) ToList() []Value           { return nil }
func (b Bool) IterKeys() []Value         { return nil }
func (b Bool) Index(Value) (Value, bool) { return Null{}, false }
func (b Bool) Func() (Function, bool)    { return nil, false }

// Number is a numeric value. Backed by float64; see DESIGN.md for
// why this doesn't use an arbitrary-precision decimal type.
type Number float64

func (n Number) Truthy() bool    { return n != 0 }
func (n Number) Text() string    { return strconv.FormatFloat(float64(n), 'g', -1, 64) }
func (n Number) ToHtml() Html    { return escapeToHtml(n.Text()) }
func (n Number) ToList() []Value { return nil }
func (n Number) IterKeys() []Value         { return nil }
func (n Number) Index(Value) (Value, bool) { return Null{}, false }
func (n Number) Func() (Function, bool)    { return nil, false }

// String is a text value.
type String string

func (s String) Truthy() bool { return s != "" }
func (s String) Text() string { return string(s) }
func (s String) ToHtml() Html { return escapeToHtml(string(s)) }

// ToList returns the characters of the string, consistent with IterKeys.
func (s String) ToList() []Value {
	runes := []rune(string(s))
	out := make([]Value, len(runes))
	for i, r := range runes {
		out[i] = String(r)
	}
	return out
}

func (s String) IterKeys() []Value {
	runes := []rune(string(s))
	out := make([]Value, len(runes))
	for i := range runes {
		out[i] = Number(i)
	}
	return out
}

func (s String) Index(Value) (Value, bool) { return Null{}, false }
func (s String) Func() (Function, bool)    { return nil, false }

// List is an ordered sequence of values.
type List []Value

func (l List) Truthy() bool { return len(l) > 0 }

func (l List) Text() string {
	var sb strings.Builder
	for _, v := range l {
		sb.WriteString(v.Text())
	}
	return sb.String()
}

func (l List) ToHtml() Html   { return escapeToHtml(l.Text()) }
func (l List) ToList() []Value { return []Value(l) }

func (l List) IterKeys() []Value {
	out := make([]Value, len(l))
	for i := range l {
		out[i] = Number(i)
	}
	return out
}

func (l List) Index(key Value) (Value, bool) {
	n, ok := key.(Number)
	if !ok {
		return Null{}, false
	}
	i := int(n)
	if i < 0 || i >= len(l) {
		return Null{}, false
	}
	return l[i], true
}

func (l List) Func() (Function, bool) { return nil, false }

// Map is a mapping from string keys to values. Insertion order is not
// preserved.
type Map map[string]Value

func (m Map) Truthy() bool { return len(m) > 0 }

// Text renders the map's values, in deterministic (sorted-key) order,
// joined by nothing.
func (m Map) Text() string {
	var sb strings.Builder
	for _, k := range m.sortedKeys() {
		sb.WriteString(m[k].Text())
	}
	return sb.String()
}

func (m Map) ToHtml() Html { return escapeToHtml(m.Text()) }

func (m Map) ToList() []Value {
	keys := m.sortedKeys()
	out := make([]Value, len(keys))
	for i, k := range keys {
		out[i] = m[k]
	}
	return out
}

func (m Map) IterKeys() []Value {
	keys := m.sortedKeys()
	out := make([]Value, len(keys))
	for i, k := range keys {
		out[i] = String(k)
	}
	return out
}

func (m Map) Index(key Value) (Value, bool) {
	s, ok := key.(String)
	if !ok {
		return Null{}, false
	}
	v, ok := m[string(s)]
	return v, ok
}

func (m Map) Func() (Function, bool) { return nil, false }

func (m Map) sortedKeys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Html is an opaque safe-HTML fragment: text that is known not to
// require escaping.
type Html string

func (h Html) Truthy() bool              { return h != "" }
func (h Html) Text() string              { return string(h) }
func (h Html) ToHtml() Html              { return h }
func (h Html) ToList() []Value           { return nil }
func (h Html) IterKeys() []Value         { return nil }
func (h Html) Index(Value) (Value, bool) { return Null{}, false }
func (h Html) Func() (Function, bool)    { return nil, false }

// Func wraps a callable Go function as a Value.
type Func Function

func (f Func) Truthy() bool              { return true }
func (f Func) Text() string              { return "[function]" }
func (f Func) ToHtml() Html              { return escapeToHtml(f.Text()) }
func (f Func) ToList() []Value           { return nil }
func (f Func) IterKeys() []Value         { return nil }
func (f Func) Index(Value) (Value, bool) { return Null{}, false }
func (f Func) Func() (Function, bool)    { return Function(f), true }

func escapeToHtml(s string) Html {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"':
			sb.WriteString("&#34;")
		case '\'':
			sb.WriteString("&#39;")
		case '&':
			sb.WriteString("&amp;")
		case '<':
			sb.WriteString("&lt;")
		case '>':
			sb.WriteString("&gt;")
		default:
			sb.WriteByte(c)
		}
	}
	return Html(sb.String())
}
