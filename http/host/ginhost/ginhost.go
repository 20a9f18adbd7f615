// Package ginhost adapts a *gin.Context into a resp.Host.
//
// Handlers registered with gin fetch their *resp.Response with FromContext
// once InjectResponse runs ahead of them:
//
//	r := gin.New()
//	r.Use(ginhost.InjectResponse(host.NewResponder()))
//	r.GET("/", func(c *gin.Context) {
//		rw, _ := ginhost.FromContext(c)
//		_ = rw.Ok("", gin.H{"hello": "world"}, false)
//	})
package ginhost

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	"github.com/xy-planning-network/respond/http/host"
	"github.com/xy-planning-network/respond/http/resp"
	"github.com/xy-planning-network/respond/logger"
)

const charset = "; charset=utf-8"

// Context implements resp.Host over a *gin.Context.
// Templates, buffers and logging come from the shared *host.Responder.
type Context struct {
	c    *gin.Context
	doer *host.Responder
}

var _ resp.Host = (*Context)(nil)

// New wraps c, drawing templates and logging from doer.
func New(c *gin.Context, doer *host.Responder) *Context {
	return &Context{c: c, doer: doer}
}

// Status reports the status the Context emits or emitted.
func (gc *Context) Status() int { return gc.c.Writer.Status() }

func (gc *Context) SetStatus(code int) { gc.c.Status(code) }

// SetHeader replaces the header name with values, one line per value.
func (gc *Context) SetHeader(name string, values ...string) {
	h := gc.c.Writer.Header()
	h.Del(name)
	for _, v := range values {
		h.Add(name, v)
	}
}

// Send follows the same rules as host.Writer.Send.
func (gc *Context) Send(body any) error {
	switch b := body.(type) {
	case nil:
		return gc.render(nil)
	case string:
		return gc.render(render.Data{ContentType: resp.MediaText + charset, Data: []byte(b)})
	case []byte:
		return gc.render(render.Data{ContentType: "application/octet-stream", Data: b})
	default:
		return gc.JSON(body)
	}
}

func (gc *Context) JSON(body any) error { return gc.render(render.JSON{Data: body}) }

func (gc *Context) Render(view string, body any) error {
	tmpl, name, err := gc.doer.Template(view)
	if err != nil {
		return err
	}

	return gc.render(render.HTML{Template: tmpl, Name: name, Data: body})
}

func (gc *Context) Redirect(code int, location string) error {
	if gc.c.Writer.Written() {
		return host.ErrWritten
	}

	gc.c.Redirect(code, location)
	return nil
}

// Format negotiates with gin's NegotiateFormat, which honors the order of the
// Accept header rather than quality values.
// A request without an Accept header gets the first offer.
// Format sets no Content-Type; the chosen strategy's emission labels its own body.
// When nothing on offer is acceptable, Format answers 406 Not Acceptable
// and returns host.ErrNotAcceptable.
func (gc *Context) Format(s resp.Strategies) error {
	gc.c.Writer.Header().Add("Vary", "Accept")

	offers := make([]string, 0, len(resp.MediaTypes))
	for _, mt := range resp.MediaTypes {
		if _, ok := s.For(mt); ok {
			offers = append(offers, mt)
		}
	}

	mt := ""
	if len(offers) > 0 {
		mt = gc.c.NegotiateFormat(offers...)
	}

	fn, ok := s.For(mt)
	if !ok {
		accept := gc.c.GetHeader("Accept")
		gc.doer.Logger().Warn("not acceptable", &logger.LogContext{
			Data:    map[string]any{"accept": accept, "offers": offers},
			Request: gc.c.Request,
		})

		gc.c.Status(http.StatusNotAcceptable)
		if err := gc.Send(http.StatusText(http.StatusNotAcceptable)); err != nil {
			return err
		}

		return fmt.Errorf("%w: %q", host.ErrNotAcceptable, accept)
	}

	return fn()
}

// render writes r with the held status, or only the status for a nil r
// or a status that allows no body.
func (gc *Context) render(r render.Render) error {
	if gc.c.Writer.Written() {
		return host.ErrWritten
	}

	if r == nil || !bodyAllowed(gc.c.Writer.Status()) {
		if r != nil {
			r.WriteContentType(gc.c.Writer)
		}
		gc.c.Writer.WriteHeaderNow()
		return nil
	}

	return r.Render(gc.c.Writer)
}

func bodyAllowed(status int) bool {
	switch {
	case status >= 100 && status <= 199:
		return false
	case status == http.StatusNoContent, status == http.StatusNotModified:
		return false
	}

	return true
}

// InjectResponse installs a *resp.Response over each *gin.Context
// and stores it in the request's context.
// A request already carrying one keeps it.
func InjectResponse(doer *host.Responder, opts ...resp.InstallOptFn) gin.HandlerFunc {
	opts = append([]resp.InstallOptFn{resp.WithLogger(doer.Logger())}, opts...)
	return func(c *gin.Context) {
		if _, err := resp.FromContext(c.Request.Context()); err == nil {
			c.Next()
			return
		}

		rw := resp.Install(New(c, doer), opts...)
		c.Request = c.Request.WithContext(resp.NewContext(c.Request.Context(), rw))
		c.Next()
	}
}

// FromContext retrieves the *resp.Response InjectResponse stored for c.
func FromContext(c *gin.Context) (*resp.Response, error) {
	rw, err := resp.FromContext(c.Request.Context())
	if err != nil && errors.Is(err, resp.ErrNoResponse) {
		return nil, fmt.Errorf("ginhost.InjectResponse not applied: %w", err)
	}

	return rw, err
}
