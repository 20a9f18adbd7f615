package template

import (
	"fmt"
	html "html/template"
	"io/fs"
	"os"
	"path"
	"strings"
	"sync"
)

// Parser is the interface for parsing HTML templates with the functions provided.
type Parser interface {
	AddFn(name string, fn any)
	Parse(fps ...string) (*html.Template, error)
}

// Parse implements Parser over an fs.FS, optionally caching each parsed set of files.
type Parse struct {
	fs     fs.FS
	fns    html.FuncMap
	cached bool

	mu    sync.RWMutex
	cache map[string]*html.Template
}

// NewParser constructs a Parse with the provided functional options.
// Without WithFS, files are read from the current working directory.
func NewParser(opts ...ParserOptFn) *Parse {
	p := &Parse{fns: make(html.FuncMap), cache: make(map[string]*html.Template)}
	for _, opt := range opts {
		opt(p)
	}

	if p.fs == nil {
		p.fs = os.DirFS(".")
	}

	return p
}

// Parse parses files found in the *Parse.fs with those functions provided previously.
// The first file names the returned template.
func (p *Parse) Parse(fps ...string) (*html.Template, error) {
	files := make([]string, 0, len(fps))
	for _, fp := range fps {
		if fp != "" {
			files = append(files, fp)
		}
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w", ErrNoFiles)
	}

	key := strings.Join(files, "|")
	if p.cached {
		p.mu.RLock()
		tmpl, ok := p.cache[key]
		p.mu.RUnlock()
		if ok {
			return tmpl, nil
		}
	}

	tmpl, err := html.New(path.Base(files[0])).Funcs(p.fns).ParseFS(p.fs, files...)
	if err != nil {
		return nil, err
	}

	if p.cached {
		p.mu.Lock()
		p.cache[key] = tmpl
		p.mu.Unlock()
	}

	return tmpl, nil
}
