package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jingolang/jingo/eval"
	"github.com/jingolang/jingo/value"
)

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		p := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatalf("MkdirAll: %v", err)
		}
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}
}

func TestCompileFindsEveryMatchingFile(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"index.jingo":         "Home",
		"account/show.jingo":  "Account",
		"ignored.txt":         "not a template",
	})

	set, err := NewSet().WithResolver(dir, ".jingo").Compile()
	if err != nil {
		t.Fatalf("Compile: unexpected error: %v", err)
	}
	if set.Template("index.jingo") == nil {
		t.Error("expected index.jingo to be compiled")
	}
	if set.Template("account/show.jingo") == nil {
		t.Error("expected account/show.jingo to be compiled")
	}
	if set.Template("ignored.txt") != nil {
		t.Error("expected ignored.txt to be skipped")
	}
	names := set.Names()
	if len(names) != 2 {
		t.Errorf("Names() = %v, want 2 entries", names)
	}
}

func TestCompileResolvesIncludesAcrossSet(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"layout.jingo": `<body>{% include "partial.jingo" %}</body>`,
		"partial.jingo": "Hello, {{ name }}!",
	})

	set, err := NewSet().WithResolver(dir, ".jingo").Compile()
	if err != nil {
		t.Fatalf("Compile: unexpected error: %v", err)
	}
	tmpl := set.Template("layout.jingo")
	if tmpl == nil {
		t.Fatal("expected layout.jingo to be compiled")
	}
	out, err := eval.RenderPure(func(name string) value.Value {
		if name == "name" {
			return value.String("World")
		}
		return value.Null{}
	}, tmpl)
	if err != nil {
		t.Fatalf("RenderPure: unexpected error: %v", err)
	}
	if want := "<body>Hello, World!</body>"; out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestCompileDefaultExtension(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"page.jingo": "x"})

	set, err := NewSet().WithResolver(dir, "").Compile()
	if err != nil {
		t.Fatalf("Compile: unexpected error: %v", err)
	}
	if set.Template("page.jingo") == nil {
		t.Error("expected default .jingo extension to be used")
	}
}

func TestCompileCustomExtension(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"page.html": "x", "skip.jingo": "y"})

	set, err := NewSet().WithResolver(dir, ".html").Compile()
	if err != nil {
		t.Fatalf("Compile: unexpected error: %v", err)
	}
	if set.Template("page.html") == nil {
		t.Error("expected page.html to be compiled")
	}
	if set.Template("skip.jingo") != nil {
		t.Error("expected skip.jingo to be excluded by the .html filter")
	}
}

func TestCompileWithoutResolverErrors(t *testing.T) {
	if _, err := NewSet().Compile(); err == nil {
		t.Fatal("expected an error when WithResolver was never called")
	}
}

func TestCompileReportsParseErrors(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"bad.jingo": "{{ ) }}"})

	if _, err := NewSet().WithResolver(dir, ".jingo").Compile(); err == nil {
		t.Fatal("expected a parse error to propagate from Compile")
	}
}
