package parse

import "testing"

func TestUnquoteEscapes(t *testing.T) {
	tests := []struct{ input, want string }{
		{`""`, ""},
		{`"a"`, "a"},
		{`"a\nb"`, "a\nb"},
		{`"a\tb"`, "a\tb"},
		{`"a\bb"`, "a\bb"},
		{`"a\vb"`, "a\vb"},
		{`"a\0b"`, "a\x00b"},
		{`"a\qb"`, "aqb"}, // unknown escape yields the char verbatim
		{`'single'`, "single"},
	}
	for _, tt := range tests {
		if got := unquote(tt.input); got != tt.want {
			t.Errorf("unquote(%s) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
