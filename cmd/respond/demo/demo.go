// Package demo mounts routes exercising every helper a *resp.Response offers
// onto a *ranger.Ranger, whichever engine it runs.
//
// Try each route with different Accept headers:
//
//	curl -H 'Accept: application/xml' localhost:3000/profile?name=gopher
package demo

import (
	"embed"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/xy-planning-network/respond/http/host/ginhost"
	"github.com/xy-planning-network/respond/http/middleware"
	"github.com/xy-planning-network/respond/http/resp"
	"github.com/xy-planning-network/respond/http/router"
	"github.com/xy-planning-network/respond/ranger"
)

// Views holds the templates found under views/.
//
//go:embed views/*.tmpl
var Views embed.FS

// A Handler answers r through rw.
// A returned error is sent with (*resp.Response).Fail.
type Handler func(rw *resp.Response, r *http.Request) error

// ServeHTTP fetches the *resp.Response stored by middleware.InjectResponse.
func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rw, err := resp.FromContext(r.Context())
	if err != nil {
		middleware.Fail(w, r, "InternalServerError")
		return
	}

	h.answer(rw, r)
}

// Gin fetches the *resp.Response stored by ginhost.InjectResponse.
func (h Handler) Gin(c *gin.Context) {
	rw, err := ginhost.FromContext(c)
	if err != nil {
		middleware.Fail(c.Writer, c.Request, "InternalServerError")
		return
	}

	h.answer(rw, c.Request)
}

func (h Handler) answer(rw *resp.Response, r *http.Request) {
	if err := h(rw, r); err != nil {
		// Once the host has written, nothing more can be said to the client.
		_ = rw.Fail(err)
	}
}

// An Endpoint pairs a method and path with the Handler answering it.
type Endpoint struct {
	Method  string
	Path    string
	Handler Handler
}

// Demo answers requests with the helpers of a *resp.Response.
type Demo struct {
	// APIMode answers HTML requests for a view with XML instead of rendering it.
	APIMode bool
}

// Mount registers every Endpoint on rng's engine.
func (d Demo) Mount(rng *ranger.Ranger) {
	if e := rng.Gin(); e != nil {
		for _, ep := range d.Endpoints() {
			e.Handle(ep.Method, ep.Path, ep.Handler.Gin)
		}
		return
	}

	routes := make([]router.Route, 0, len(d.Endpoints()))
	for _, ep := range d.Endpoints() {
		routes = append(routes, router.Route{Path: ep.Path, Method: ep.Method, Handler: ep.Handler.ServeHTTP})
	}

	rng.HandleRoutes(routes)
}

// Endpoints lists the routes Mount registers.
func (d Demo) Endpoints() []Endpoint {
	get := func(path string, h Handler) Endpoint { return Endpoint{http.MethodGet, path, h} }
	return []Endpoint{
		get("/", d.index),
		get("/boom", boom),
		get("/empty", empty),
		get("/errors", byName),
		get("/fail", fail),
		get("/hello", hello),
		get("/informational", informational),
		get("/profile", d.profile),
		get("/redirect", redirect),
		get("/stream", stream),
		get("/upgrade", upgrade),
	}
}

// index lists every outcome a *resp.Response offers.
func (d Demo) index(rw *resp.Response, _ *http.Request) error {
	outcomes := make([]any, 0, len(resp.Outcomes()))
	for _, o := range resp.Outcomes() {
		outcomes = append(outcomes, map[string]any{
			"name":   o.Name,
			"status": o.Status,
			"kind":   o.Kind.String(),
		})
	}

	return rw.Ok("index", map[string]any{"outcomes": outcomes}, d.APIMode)
}

// Profile is rendered by the profile view.
type Profile struct {
	Name  string `json:"name" xml:"name"`
	Email string `json:"email,omitempty" xml:"email,omitempty"`
}

// profile greets the name query parameter.
func (d Demo) profile(rw *resp.Response, r *http.Request) error {
	name := r.URL.Query().Get("name")
	if name == "" {
		return rw.BadRequest(resp.Msg("missing name"))
	}

	return rw.Ok("profile", Profile{Name: name, Email: r.URL.Query().Get("email")}, d.APIMode)
}

// hello sends a bare string, whatever the client accepts.
func hello(rw *resp.Response, _ *http.Request) error {
	return rw.Ok("hello, world", nil, false)
}

// byName fails with the status-only outcome named by the name query parameter,
// e.g. /errors?name=ImATeapot&code=4181&msg=short+and+stout
func byName(rw *resp.Response, r *http.Request) error {
	q := r.URL.Query()
	var code int
	if c := q.Get("code"); c != "" {
		var err error
		if code, err = strconv.Atoi(c); err != nil {
			return rw.BadRequest(resp.Msg("code must be an integer"))
		}
	}

	e, err := rw.ErrorByName(q.Get("name"), resp.Args(code, q.Get("msg"), nil))
	if err != nil {
		return rw.BadRequest(resp.Msg(err.Error()))
	}

	return e
}

func upgrade(rw *resp.Response, _ *http.Request) error {
	return rw.UpgradeRequired([]string{"HTTP/2.0"}, resp.Msg("this resource requires HTTP/2"))
}

// redirect sends clients home with the redirect named by the kind query parameter.
func redirect(rw *resp.Response, r *http.Request) error {
	to := r.URL.Query().Get("to")
	if to == "" {
		to = "/"
	}

	switch kind := r.URL.Query().Get("kind"); kind {
	case "", "found":
		return rw.Found(to)
	case "moved":
		return rw.MovedPermanently(to)
	case "permanent":
		return rw.PermanentRedirect(to)
	case "temporary":
		return rw.TemporaryRedirect(to)
	default:
		return rw.BadRequest(resp.Msg("unknown redirect: " + kind))
	}
}

// empty answers without a body.
func empty(rw *resp.Response, r *http.Request) error {
	if r.URL.Query().Get("kind") == "not-modified" {
		return rw.NotModified()
	}

	return rw.NoContent()
}

// informational answers with a 1xx status.
func informational(rw *resp.Response, r *http.Request) error {
	switch kind := r.URL.Query().Get("kind"); kind {
	case "", "continue":
		return rw.Continue()
	case "processing":
		return rw.Processing()
	case "switch":
		return rw.SwitchingProtocols(strings.Split(r.URL.Query().Get("protocols"), ","))
	default:
		return rw.BadRequest(resp.Msg("unknown informational response: " + kind))
	}
}

// stream bypasses negotiation and writes the body itself.
func stream(rw *resp.Response, _ *http.Request) error {
	return rw.Ok("", resp.StreamFunc(func() error {
		rw.SetHeader("Content-Type", "text/csv; charset=utf-8")
		return rw.Send("name,status\nOk,200\n")
	}), false)
}

// fail returns an error a client must not see.
func fail(*resp.Response, *http.Request) error {
	return errors.New("could not reach database")
}

func boom(*resp.Response, *http.Request) error {
	panic("boom")
}
