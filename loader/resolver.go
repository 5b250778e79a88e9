// Package loader compiles a directory of template files into a named
// Set, resolving each template's include/extends targets against the
// others in the same Set, and optionally keeps that Set fresh across
// edits via fsnotify.
//
// The builder is chainable (NewSet().WithResolver(...).WatchFiles(...).
// Compile()); the recompiler goroutine handles rename/delete events by
// re-adding the watch after a short delay, since fsnotify drops its
// watch on those.
package loader

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/jingolang/jingo/ast"
	"github.com/jingolang/jingo/parse"
)

// Set is a compiled, named collection of templates. Template targets
// in "extends"/"include" tags are resolved against other members of
// the same Set by name (the path relative to the Set's root).
type Set struct {
	mu        sync.RWMutex
	templates map[string]*ast.Template
}

// Template returns the named template, or nil if the Set has none by
// that name.
func (s *Set) Template(name string) *ast.Template {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.templates[name]
}

// Names returns every template name currently in the Set.
func (s *Set) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.templates))
	for name := range s.templates {
		names = append(names, name)
	}
	return names
}

func (s *Set) swap(next *Set) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.templates = next.templates
}

// Builder assembles a Set: a chainable configuration object that does
// its real work in Compile.
type Builder struct {
	root string
	ext  string
	watch bool
	err  error
}

// NewSet begins a Builder with no root configured yet; call
// WithResolver before Compile.
func NewSet() *Builder {
	return &Builder{ext: ".jingo"}
}

// WithResolver points the Set at dir: every file under dir ending in
// ext (default ".jingo") becomes a template, named by its path
// relative to dir.
func (b *Builder) WithResolver(dir, ext string) *Builder {
	b.root = dir
	if ext != "" {
		b.ext = ext
	}
	return b
}

// WatchFiles enables an fsnotify-driven background recompilation of
// the whole Set on any change under the configured root; the same
// *Set value returned by Compile is updated in place.
func (b *Builder) WatchFiles(watch bool) *Builder {
	b.watch = watch
	return b
}

// Compile parses every matching file under the configured root and
// returns the resulting Set. With WatchFiles(true), Compile also
// starts the background recompiler before returning.
func (b *Builder) Compile() (*Set, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.root == "" {
		return nil, fmt.Errorf("loader: WithResolver must be called before Compile")
	}

	set, err := b.compileOnce()
	if err != nil {
		return nil, err
	}

	if b.watch {
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return nil, err
		}
		if err := addRecursive(watcher, b.root); err != nil {
			watcher.Close()
			return nil, err
		}
		go b.recompiler(watcher, set)
	}
	return set, nil
}

func (b *Builder) compileOnce() (*Set, error) {
	files := make(map[string]string)
	err := filepath.Walk(b.root, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !strings.HasSuffix(p, b.ext) {
			return nil
		}
		content, err := ioutil.ReadFile(p)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(b.root, p)
		if err != nil {
			rel = p
		}
		files[filepath.ToSlash(rel)] = string(content)
		return nil
	})
	if err != nil {
		return nil, err
	}

	resolver := func(name string) (string, bool) {
		src, ok := files[name]
		return src, ok
	}

	set := &Set{templates: make(map[string]*ast.Template, len(files))}
	for name, src := range files {
		tmpl, err := parse.Parse(resolver, name, src)
		if err != nil {
			return nil, err
		}
		set.templates[name] = tmpl
	}
	return set, nil
}

// recompiler runs as a background goroutine: on any filesystem event
// under root it recompiles the entire Set and atomically swaps it into
// live. A Remove/Rename event drops fsnotify's watch on that path, so
// it's re-added after a short delay before recompiling.
func (b *Builder) recompiler(watcher *fsnotify.Watcher, live *Set) {
	defer watcher.Close()
	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
				time.Sleep(10 * time.Millisecond)
				if err := watcher.Add(ev.Name); err != nil {
					log.Printf("jingo: re-watch %s: %v", ev.Name, err)
				}
			}
			next, err := b.compileOnce()
			if err != nil {
				log.Printf("jingo: recompile failed: %v", err)
				continue
			}
			live.swap(next)
			log.Printf("jingo: recompiled after %v", ev)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("jingo: watch error: %v", err)
		}
	}
}

func addRecursive(watcher *fsnotify.Watcher, root string) error {
	return filepath.Walk(root, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return watcher.Add(p)
		}
		return nil
	})
}
