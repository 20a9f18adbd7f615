package host

import (
	"bytes"
	"fmt"
	html "html/template"
	"net/http"
	"path"
	"sync"

	"github.com/xy-planning-network/respond/http/template"
	"github.com/xy-planning-network/respond/logger"
)

// Responder maintains reusable pieces for responding to HTTP requests
// through net/http.
//
// Most oftentimes, setting up a single instance of a Responder suffices for an application.
// Each request then gets its own *Writer through Host.
type Responder struct {
	logger logger.Logger

	// Initialized template parser
	parser template.Parser

	// Pool of *bytes.Buffer to prerender responses into
	pool *sync.Pool

	views struct {
		dir string
		ext string
	}
}

// NewResponder constructs a *Responder using the ResponderOptFns passed in.
func NewResponder(opts ...ResponderOptFn) *Responder {
	doer := &Responder{
		pool: &sync.Pool{New: func() any { return new(bytes.Buffer) }},
	}
	for _, opt := range opts {
		opt(doer)
	}

	if doer.logger == nil {
		doer.logger = logger.New()
	}

	return doer
}

// Host wraps w and r in a *Writer sharing the Responder's configuration.
func (doer *Responder) Host(w http.ResponseWriter, r *http.Request) *Writer {
	return &Writer{doer: doer, w: w, r: r}
}

// Logger returns the logger.Logger the Responder reports through.
func (doer *Responder) Logger() logger.Logger { return doer.logger }

// Template resolves view against the directory set with WithViews,
// appending the default extension when view has none, and parses it.
// The returned name is the one to execute.
func (doer *Responder) Template(view string) (*html.Template, string, error) {
	if doer.parser == nil {
		return nil, "", fmt.Errorf("%w: cannot render %s", ErrNoParser, view)
	}

	fp := path.Join(doer.views.dir, view)
	if path.Ext(fp) == "" {
		fp += doer.views.ext
	}

	tmpl, err := doer.parser.Parse(fp)
	if err != nil {
		return nil, "", fmt.Errorf("cannot parse: %w", err)
	}

	return tmpl, path.Base(fp), nil
}

// Buffer takes a reset *bytes.Buffer from the pool.
// Hand it back with Release once its contents are written.
func (doer *Responder) Buffer() *bytes.Buffer {
	b := doer.pool.Get().(*bytes.Buffer)
	b.Reset()
	return b
}

// Release returns b to the pool.
func (doer *Responder) Release(b *bytes.Buffer) { doer.pool.Put(b) }

// A ResponderOptFn mutates the provided *Responder in some way.
type ResponderOptFn func(*Responder)

// WithLogger sets the provided implementation of Logger in order to log all statements through it.
//
// If no Logger is provided through this option, logger.New configures one.
func WithLogger(log logger.Logger) ResponderOptFn {
	return func(doer *Responder) {
		doer.logger = log
	}
}

// WithParser sets the provided implementation of template.Parser to use for parsing HTML templates.
func WithParser(p template.Parser) ResponderOptFn {
	return func(doer *Responder) {
		doer.parser = p
	}
}

// WithViews sets the directory views are found in and the extension
// appended to views named without one, e.g. WithViews("views", ".tmpl").
func WithViews(dir, ext string) ResponderOptFn {
	return func(doer *Responder) {
		doer.views.dir = dir
		doer.views.ext = ext
	}
}
