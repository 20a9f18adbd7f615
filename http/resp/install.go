package resp

import (
	"net/http"

	"github.com/xy-planning-network/respond/logger"
)

const upgradeHeader = "Upgrade"

// These are the shapes an outcome can be overridden with.
// Every shape but ErrorFunc receives the Host it acts on.
type (
	ErrorFunc     func(opts ...ErrFn) *Error
	UpgradeFunc   func(h Host, protocols []string, opts ...ErrFn) *Error
	RedirectFunc  func(h Host, location string) error
	EmptyFunc     func(h Host) error
	ProtocolsFunc func(h Host, protocols []string) error
	OkFunc        func(h Host, view string, body any, apiMode bool) error
)

// An InstallOptFn configures a *Response while Install builds it.
type InstallOptFn func(*Response)

// Install binds every Outcome to h and returns the resulting *Response.
//
// Outcomes registered through an Override option are kept;
// the default for that name is skipped.
// The first registration of a name wins: later ones are ignored, as are
// names not in Outcomes or registered with the wrong shape.
//
// If h already is a *Response, every name is already bound,
// so h returns untouched and opts are ignored.
func Install(h Host, opts ...InstallOptFn) *Response {
	if rw, ok := h.(*Response); ok {
		return rw
	}

	rw := &Response{
		host:      h,
		errs:      make(map[string]ErrorFunc),
		redirects: make(map[string]RedirectFunc),
		empties:   make(map[string]EmptyFunc),
	}
	for _, opt := range opts {
		opt(rw)
	}

	if rw.logger == nil {
		rw.logger = logger.New()
	}

	if rw.xml == nil {
		rw.xml = MXJSerializer{}
	}

	for _, o := range outcomes {
		rw.bind(o)
	}

	return rw
}

// WithLogger sets the logger.Logger a *Response reports through.
//
// If no logger.Logger is provided, logger.New configures one.
func WithLogger(l logger.Logger) InstallOptFn {
	return func(rw *Response) {
		rw.logger = l
	}
}

// WithXMLSerializer replaces MXJSerializer when responding with XML.
func WithXMLSerializer(s XMLSerializer) InstallOptFn {
	return func(rw *Response) {
		if s != nil {
			rw.xml = s
		}
	}
}

// OverrideErr replaces the status-only outcome name with fn.
func OverrideErr(name string, fn ErrorFunc) InstallOptFn {
	return func(rw *Response) {
		if fn == nil || !is(name, KindStatus, actNone) {
			return
		}

		if _, ok := rw.errs[name]; !ok {
			rw.errs[name] = fn
		}
	}
}

// OverrideUpgradeRequired replaces UpgradeRequired with fn.
func OverrideUpgradeRequired(fn UpgradeFunc) InstallOptFn {
	return func(rw *Response) {
		if rw.upgrade == nil {
			rw.upgrade = fn
		}
	}
}

// OverrideRedirect replaces one of MovedPermanently, Found, TemporaryRedirect or PermanentRedirect with fn.
func OverrideRedirect(name string, fn RedirectFunc) InstallOptFn {
	return func(rw *Response) {
		if fn == nil || !is(name, KindBehavior, actRedirect) {
			return
		}

		if _, ok := rw.redirects[name]; !ok {
			rw.redirects[name] = fn
		}
	}
}

// OverrideEmpty replaces one of NotModified, NoContent, Continue or Processing with fn.
func OverrideEmpty(name string, fn EmptyFunc) InstallOptFn {
	return func(rw *Response) {
		if fn == nil || !is(name, KindBehavior, actEmpty) {
			return
		}

		if _, ok := rw.empties[name]; !ok {
			rw.empties[name] = fn
		}
	}
}

// OverrideSwitchingProtocols replaces SwitchingProtocols with fn.
func OverrideSwitchingProtocols(fn ProtocolsFunc) InstallOptFn {
	return func(rw *Response) {
		if rw.switching == nil {
			rw.switching = fn
		}
	}
}

// OverrideOk replaces Ok with fn.
func OverrideOk(fn OkFunc) InstallOptFn {
	return func(rw *Response) {
		if rw.ok == nil {
			rw.ok = fn
		}
	}
}

// bind installs the default for o unless the name is already bound.
func (rw *Response) bind(o Outcome) {
	switch o.Kind {
	case KindStatus:
		if _, ok := rw.errs[o.Name]; !ok {
			rw.errs[o.Name] = func(opts ...ErrFn) *Error { return newError(o, opts) }
		}
	case KindParametric:
		if rw.upgrade == nil {
			rw.upgrade = func(h Host, protocols []string, opts ...ErrFn) *Error {
				h.SetHeader(upgradeHeader, protocols...)
				return newError(o, opts)
			}
		}
	case KindBehavior:
		rw.bindBehavior(o)
	}
}

func (rw *Response) bindBehavior(o Outcome) {
	switch o.act {
	case actRedirect:
		if _, ok := rw.redirects[o.Name]; !ok {
			rw.redirects[o.Name] = func(h Host, location string) error {
				return h.Redirect(o.Status, location)
			}
		}
	case actEmpty:
		if _, ok := rw.empties[o.Name]; !ok {
			rw.empties[o.Name] = func(h Host) error {
				h.SetStatus(o.Status)
				return h.Send(nil)
			}
		}
	case actSwitch:
		if rw.switching == nil {
			rw.switching = func(h Host, protocols []string) error {
				h.SetHeader(upgradeHeader, protocols...)
				h.SetStatus(http.StatusSwitchingProtocols)
				return h.Send(nil)
			}
		}
	case actNegotiate:
		if rw.ok == nil {
			rw.ok = rw.negotiate
		}
	}
}

// is reports whether name is an Outcome of the kind and act given.
func is(name string, k Kind, a act) bool {
	o, ok := Lookup(name)
	return ok && o.Kind == k && o.act == a
}
