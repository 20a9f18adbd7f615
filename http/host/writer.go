package host

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/golang/gddo/httputil"
	"github.com/xy-planning-network/respond/http/resp"
	"github.com/xy-planning-network/respond/logger"
)

const (
	contentType = "Content-Type"
	charset     = "; charset=utf-8"
)

// Writer implements resp.Host over an http.ResponseWriter.
//
// The status set with SetStatus is held until the first emission,
// so headers can keep changing until then.
type Writer struct {
	doer *Responder
	w    http.ResponseWriter
	r    *http.Request

	status  int
	written bool
}

var _ resp.Host = (*Writer)(nil)

// Status reports the status the Writer emits or emitted, http.StatusOK if none was set.
func (hw *Writer) Status() int {
	if hw.status == 0 {
		return http.StatusOK
	}

	return hw.status
}

// Written reports whether a response was emitted.
func (hw *Writer) Written() bool { return hw.written }

func (hw *Writer) SetStatus(code int) { hw.status = code }

// SetHeader replaces the header name with values, one line per value.
// No values removes the header.
func (hw *Writer) SetHeader(name string, values ...string) {
	h := hw.w.Header()
	h.Del(name)
	for _, v := range values {
		h.Add(name, v)
	}
}

// Send emits body according to its type:
//
//	nil     no body
//	string  text/plain
//	[]byte  application/octet-stream
//	other   JSON
//
// A Content-Type already set, i.e., by an XML strategy, is kept.
func (hw *Writer) Send(body any) error {
	switch b := body.(type) {
	case nil:
		return hw.write("", nil)
	case string:
		return hw.write(resp.MediaText+charset, []byte(b))
	case []byte:
		return hw.write("application/octet-stream", b)
	default:
		return hw.JSON(body)
	}
}

func (hw *Writer) JSON(body any) error {
	b := hw.doer.Buffer()
	defer hw.doer.Release(b)

	if err := json.NewEncoder(b).Encode(body); err != nil {
		return err
	}

	return hw.write(resp.MediaJSON+charset, b.Bytes())
}

// Render executes the template found at view, resolved with WithViews,
// passing body as its data.
func (hw *Writer) Render(view string, body any) error {
	tmpl, name, err := hw.doer.Template(view)
	if err != nil {
		return err
	}

	b := hw.doer.Buffer()
	defer hw.doer.Release(b)

	if err := tmpl.ExecuteTemplate(b, name, body); err != nil {
		return err
	}

	return hw.write(resp.MediaHTML+charset, b.Bytes())
}

func (hw *Writer) Redirect(code int, location string) error {
	if hw.written {
		return ErrWritten
	}

	hw.written = true
	hw.status = code
	http.Redirect(hw.w, hw.r, location, code)
	return nil
}

// Format negotiates the request's Accept header against the Strategies on offer.
// A request without an Accept header gets the first offer in resp.MediaTypes order.
// Format sets no Content-Type; the chosen strategy's emission labels its own body.
// When nothing on offer is acceptable, Format answers 406 Not Acceptable
// and returns ErrNotAcceptable.
func (hw *Writer) Format(s resp.Strategies) error {
	hw.w.Header().Add("Vary", "Accept")

	offers := make([]string, 0, len(resp.MediaTypes))
	for _, mt := range resp.MediaTypes {
		if _, ok := s.For(mt); ok {
			offers = append(offers, mt)
		}
	}

	if len(offers) == 0 {
		return hw.notAcceptable(offers)
	}

	mt := offers[0]
	if hw.r.Header.Get("Accept") != "" {
		mt = httputil.NegotiateContentType(hw.r, offers, "")
	}

	fn, ok := s.For(mt)
	if !ok {
		return hw.notAcceptable(offers)
	}

	return fn()
}

func (hw *Writer) notAcceptable(offers []string) error {
	accept := hw.r.Header.Get("Accept")
	hw.doer.logger.Warn("not acceptable", &logger.LogContext{
		Data:    map[string]any{"accept": accept, "offers": offers},
		Request: hw.r,
	})

	hw.status = http.StatusNotAcceptable
	hw.SetHeader(contentType)
	if err := hw.Send(http.StatusText(http.StatusNotAcceptable)); err != nil {
		return err
	}

	return fmt.Errorf("%w: %q", ErrNotAcceptable, accept)
}

// write emits the held status, sets the Content-Type when none is set,
// and writes b if the status allows a body.
func (hw *Writer) write(ct string, b []byte) error {
	if hw.written {
		return ErrWritten
	}
	hw.written = true

	if ct != "" && len(b) > 0 && hw.w.Header().Get(contentType) == "" {
		hw.w.Header().Set(contentType, ct)
	}

	status := hw.Status()
	hw.w.WriteHeader(status)
	if len(b) == 0 || !bodyAllowed(status) {
		return nil
	}

	_, err := hw.w.Write(b)
	return err
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
