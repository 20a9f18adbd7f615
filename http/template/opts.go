package template

import "io/fs"

// The ParserOptFn applies functional options to a *Parse when constructing it.
type ParserOptFn func(*Parse)

// WithCache toggles keeping parsed templates around between calls to Parse.
// Leave it off while developing so edits to views show up without a restart.
func WithCache(on bool) ParserOptFn {
	return func(p *Parse) {
		p.cached = on
	}
}

// WithFn encloses a named function so it can be added to a *Parse's function map.
func WithFn(name string, fn any) ParserOptFn {
	return func(p *Parse) {
		p.AddFn(name, fn)
	}
}

func WithFS(filesys fs.FS) ParserOptFn {
	return func(p *Parse) {
		p.fs = filesys
	}
}
