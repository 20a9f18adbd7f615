package template

import (
	html "html/template"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/xy-planning-network/respond"
)

// AddFn includes the named function in the Parse function map.
// Functions added after a set of files was cached do not reach that cached template.
func (p *Parse) AddFn(name string, fn any) {
	if p.fns == nil {
		p.fns = make(html.FuncMap)
	}
	p.fns[name] = fn
}

// Env encloses some string representing an environment.
// It returns "env" as the name of the function for convenient passing to a template.FuncMap
// and returns a function returning the enclosed value when called.
func Env(e respond.Environment) (string, func() string) {
	return "env", func() string { return e.String() }
}

// Nonce returns "nonce" as the name of the function for convenient passing to a template.FuncMap
// and returns a function generating a uuid.
func Nonce() (string, func() string) {
	return "nonce", func() string { return uuid.NewString() }
}

// RootURL encloses the *url.URL representing the base URL of the web app.
// It returns "rootURL" as the name of the function for convenient passing to a template.FuncMap
// and returns a function returning its *url.URL.String().
// If u is nil, that function will always return an empty string.
func RootURL(u *url.URL) (string, func() string) {
	if u == nil {
		return "rootURL", func() string { return "" }
	}

	s := u.String()
	return "rootURL", func() string { return s }
}

// StatusText returns "statusText" as the name of the function for convenient passing to a template.FuncMap
// and returns http.StatusText, so views can print the reason phrase of a status.
func StatusText() (string, func(int) string) {
	return "statusText", http.StatusText
}
