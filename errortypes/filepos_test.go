package errortypes_test

import (
	"errors"
	"testing"

	"github.com/jingolang/jingo/errortypes"
	"github.com/jingolang/jingo/parse"
)

func noResolver(string) (string, bool) { return "", false }

func TestIsErrFilePos(t *testing.T) {
	_, parseErr := parse.Parse(noResolver, "greeting.jingo", "hi {{ ) }}")

	var tests = []struct {
		name string
		in   error
		out  bool
	}{
		{
			name: "nil",
			out:  false,
		},
		{
			name: "errors.New",
			in:   errors.New("an error"),
			out:  false,
		},
		{
			name: "parse error",
			in:   parseErr,
			out:  true,
		},
	}
	for _, test := range tests {
		got := errortypes.IsErrFilePos(test.in)
		if got != test.out {
			t.Errorf("%s: Expected %v, got %v", test.name, test.out, got)
		}
	}
}

func TestToErrFilePos(t *testing.T) {
	_, parseErr := parse.Parse(noResolver, "greeting.jingo", "hi {{ ) }}")
	_, notFoundErr := parse.ParseFile(noResolver, "missing.jingo")

	var tests = []struct {
		name             string
		in               error
		expectNil        bool
		expectedFilename string
	}{
		{
			name:      "nil",
			expectNil: true,
		},
		{
			name:      "errors.New",
			in:        errors.New("an error"),
			expectNil: true,
		},
		{
			name:             "parse error reports the source name",
			in:               parseErr,
			expectNil:        false,
			expectedFilename: "greeting.jingo",
		},
		{
			name:             "unresolved ParseFile source reports the source name",
			in:               notFoundErr,
			expectNil:        false,
			expectedFilename: "missing.jingo",
		},
	}
	for _, test := range tests {
		got := errortypes.ToErrFilePos(test.in)
		if test.expectNil && got != nil {
			t.Errorf("%s: expected ErrFilePos to be nil", test.name)
			continue
		}
		if !test.expectNil {
			if got == nil {
				t.Errorf("%s: expected ErrFilePos to be non-nil", test.name)
				continue
			}
			if got.File() != test.expectedFilename {
				t.Errorf("%s: expected file %q, got %q", test.name, test.expectedFilename, got.File())
			}
		}
	}
}
