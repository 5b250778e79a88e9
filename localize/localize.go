// Package localize loads gettext PO catalogs keyed by locale and
// exposes a simple key -> translated string lookup with a
// most-specific-to-least-specific locale fallback chain. It is
// consumed by the evaluator's "translate" builtin filter (see
// funcTranslate in eval/exec.go), e.g. {{ "greeting" | translate }}.
package localize

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path"
	"strings"

	"github.com/robfig/gettext/po"
	"golang.org/x/text/language"
)

// Catalog holds one loaded PO file per locale.
type Catalog struct {
	messages map[string]map[string]string // locale -> (msgid -> msgstr)
}

// FileOpener abstracts opening the PO file for a locale, so a Catalog
// can be built from the filesystem or any other source. Open returns
// a nil ReadCloser (and a nil error) if no file exists for locale.
type FileOpener interface {
	Open(locale string) (io.ReadCloser, error)
}

type fsOpener struct{ dir string }

func (o fsOpener) Open(locale string) (io.ReadCloser, error) {
	f, err := os.Open(path.Join(o.dir, locale+".po"))
	switch {
	case os.IsNotExist(err):
		return nil, nil
	case err != nil:
		return nil, err
	default:
		return f, nil
	}
}

// Dir loads every "<locale>.po" file found directly within dirname
// into a Catalog, one locale per file (e.g. "en.po", "pt_BR.po").
func Dir(dirname string) (*Catalog, error) {
	entries, err := ioutil.ReadDir(dirname)
	if err != nil {
		return nil, err
	}
	var locales []string
	for _, fi := range entries {
		name := fi.Name()
		if !fi.IsDir() && strings.HasSuffix(name, ".po") {
			locales = append(locales, strings.TrimSuffix(name, ".po"))
		}
	}
	return Load(fsOpener{dirname}, locales)
}

// Load builds a Catalog by opening each of locales through opener.
func Load(opener FileOpener, locales []string) (*Catalog, error) {
	cat := &Catalog{messages: make(map[string]map[string]string, len(locales))}
	for _, locale := range locales {
		r, err := opener.Open(locale)
		if err != nil {
			return nil, err
		}
		if r == nil {
			continue
		}
		file, err := po.Parse(r)
		r.Close()
		if err != nil {
			return nil, fmt.Errorf("localize: parsing %s.po: %w", locale, err)
		}
		msgs := make(map[string]string, len(file.Messages))
		for _, msg := range file.Messages {
			if msg.Id == "" || len(msg.Str) == 0 {
				continue
			}
			msgs[msg.Id] = msg.Str[0]
		}
		cat.messages[locale] = msgs
	}
	return cat, nil
}

// Translate looks up key in locale's catalog, falling back through
// progressively less specific locale tags (see fallbacks) if the
// exact locale has no catalog or no entry for key. If nothing matches
// anywhere in the chain, key itself is returned unchanged; a missing
// translation should never take down a render.
func (c *Catalog) Translate(locale, key string) string {
	if c == nil {
		return key
	}
	if msgs, ok := c.messages[locale]; ok {
		if s, ok := msgs[key]; ok {
			return s
		}
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return key
	}
	for _, fb := range fallbacks(tag) {
		msgs, ok := c.messages[fb.String()]
		if !ok {
			continue
		}
		if s, ok := msgs[key]; ok {
			return s
		}
	}
	return key
}
