package localize

import (
	"io"
	"strings"
	"testing"

	"golang.org/x/text/language"
)

func mustParseTag(t *testing.T, s string) language.Tag {
	t.Helper()
	tag, err := language.Parse(s)
	if err != nil {
		t.Fatalf("language.Parse(%q): %v", s, err)
	}
	return tag
}

type mapOpener map[string]string

func (m mapOpener) Open(locale string) (io.ReadCloser, error) {
	src, ok := m[locale]
	if !ok {
		return nil, nil
	}
	return io.NopCloser(strings.NewReader(src)), nil
}

func TestTranslateExactLocale(t *testing.T) {
	cat, err := Load(mapOpener{
		"en": "msgid \"greeting\"\nmsgstr \"Hello\"\n",
	}, []string{"en"})
	if err != nil {
		t.Fatalf("Load: unexpected error: %v", err)
	}
	if got, want := cat.Translate("en", "greeting"), "Hello"; got != want {
		t.Errorf("Translate() = %q, want %q", got, want)
	}
}

func TestTranslateFallsBackToBareLanguage(t *testing.T) {
	cat, err := Load(mapOpener{
		"en": "msgid \"greeting\"\nmsgstr \"Hello\"\n",
	}, []string{"en"})
	if err != nil {
		t.Fatalf("Load: unexpected error: %v", err)
	}
	if got, want := cat.Translate("en_US", "greeting"), "Hello"; got != want {
		t.Errorf("Translate(en_US) = %q, want %q (fallback to bare language)", got, want)
	}
}

func TestTranslateMissingKeyReturnsKeyUnchanged(t *testing.T) {
	cat, err := Load(mapOpener{"en": "msgid \"greeting\"\nmsgstr \"Hello\"\n"}, []string{"en"})
	if err != nil {
		t.Fatalf("Load: unexpected error: %v", err)
	}
	if got, want := cat.Translate("en", "missing"), "missing"; got != want {
		t.Errorf("Translate(missing) = %q, want %q", got, want)
	}
}

func TestTranslateUnknownLocaleReturnsKeyUnchanged(t *testing.T) {
	cat, err := Load(mapOpener{"en": "msgid \"greeting\"\nmsgstr \"Hello\"\n"}, []string{"en"})
	if err != nil {
		t.Fatalf("Load: unexpected error: %v", err)
	}
	if got, want := cat.Translate("fr", "greeting"), "greeting"; got != want {
		t.Errorf("Translate(fr) = %q, want %q", got, want)
	}
}

func TestTranslateNilCatalogIsIdentity(t *testing.T) {
	var cat *Catalog
	if got, want := cat.Translate("en", "greeting"), "greeting"; got != want {
		t.Errorf("Translate() on nil catalog = %q, want %q", got, want)
	}
}

func TestLoadSkipsLocaleWithNoFile(t *testing.T) {
	cat, err := Load(mapOpener{"en": "msgid \"greeting\"\nmsgstr \"Hello\"\n"}, []string{"en", "fr"})
	if err != nil {
		t.Fatalf("Load: unexpected error: %v", err)
	}
	if got, want := cat.Translate("fr", "greeting"), "greeting"; got != want {
		t.Errorf("Translate(fr) = %q, want %q (no fr.po loaded)", got, want)
	}
}

func TestFallbacksOrdering(t *testing.T) {
	tag := mustParseTag(t, "pt-BR")
	got := fallbacks(tag)
	if len(got) == 0 {
		t.Fatal("expected at least one fallback")
	}
	if got[len(got)-1].String() != "pt" {
		t.Errorf("least-specific fallback = %q, want pt", got[len(got)-1].String())
	}
}
