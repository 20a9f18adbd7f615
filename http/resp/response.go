package resp

import (
	"fmt"

	"github.com/xy-planning-network/respond/logger"
)

// Helpers is the full set of outcomes installed onto a response.
type Helpers interface {
	// Status-only outcomes build an *Error and emit nothing.
	BadRequest(opts ...ErrFn) *Error
	Unauthorized(opts ...ErrFn) *Error
	PaymentRequired(opts ...ErrFn) *Error
	Forbidden(opts ...ErrFn) *Error
	NotFound(opts ...ErrFn) *Error
	MethodNotAllowed(opts ...ErrFn) *Error
	NotAcceptable(opts ...ErrFn) *Error
	ProxyAuthenticationRequired(opts ...ErrFn) *Error
	RequestTimeout(opts ...ErrFn) *Error
	Conflict(opts ...ErrFn) *Error
	LengthRequired(opts ...ErrFn) *Error
	PreconditionFailed(opts ...ErrFn) *Error
	PayloadTooLarge(opts ...ErrFn) *Error
	URITooLong(opts ...ErrFn) *Error
	UnsupportedMediaType(opts ...ErrFn) *Error
	RangeNotSatisfied(opts ...ErrFn) *Error
	ExpectationFailed(opts ...ErrFn) *Error
	ImATeapot(opts ...ErrFn) *Error
	Locked(opts ...ErrFn) *Error
	PreconditionRequired(opts ...ErrFn) *Error
	TooManyRequests(opts ...ErrFn) *Error
	InternalServerError(opts ...ErrFn) *Error
	NotImplemented(opts ...ErrFn) *Error
	BadGateway(opts ...ErrFn) *Error
	ServiceUnavailable(opts ...ErrFn) *Error
	GatewayTimeout(opts ...ErrFn) *Error
	HTTPVersionNotSupported(opts ...ErrFn) *Error
	InsufficientStorage(opts ...ErrFn) *Error
	LoopDetected(opts ...ErrFn) *Error
	NotExtended(opts ...ErrFn) *Error
	NetworkAuthenticationRequired(opts ...ErrFn) *Error

	// UpgradeRequired sets the Upgrade header to protocols
	// and builds an *Error with http.StatusUpgradeRequired.
	UpgradeRequired(protocols []string, opts ...ErrFn) *Error

	MovedPermanently(location string) error
	Found(location string) error
	TemporaryRedirect(location string) error
	PermanentRedirect(location string) error

	NotModified() error
	NoContent() error
	Continue() error
	SwitchingProtocols(protocols []string) error
	Processing() error

	// Ok responds with http.StatusOK, negotiating how body is written.
	Ok(view string, body any, apiMode bool) error
}

var _ Helpers = (*Response)(nil)

// A Response binds every outcome in Outcomes to a single Host.
//
// Construct one with Install; the zero value is not usable.
// A Response belongs to one request and is not safe for concurrent use.
type Response struct {
	host   Host
	logger logger.Logger
	xml    XMLSerializer

	errs      map[string]ErrorFunc
	upgrade   UpgradeFunc
	redirects map[string]RedirectFunc
	empties   map[string]EmptyFunc
	switching ProtocolsFunc
	ok        OkFunc
}

// Host returns the Host rw acts on.
func (rw *Response) Host() Host { return rw.host }

func (rw *Response) BadRequest(opts ...ErrFn) *Error { return rw.err("BadRequest", opts) }
func (rw *Response) Unauthorized(opts ...ErrFn) *Error { return rw.err("Unauthorized", opts) }
func (rw *Response) PaymentRequired(opts ...ErrFn) *Error { return rw.err("PaymentRequired", opts) }
func (rw *Response) Forbidden(opts ...ErrFn) *Error { return rw.err("Forbidden", opts) }
func (rw *Response) NotFound(opts ...ErrFn) *Error { return rw.err("NotFound", opts) }
func (rw *Response) MethodNotAllowed(opts ...ErrFn) *Error { return rw.err("MethodNotAllowed", opts) }
func (rw *Response) NotAcceptable(opts ...ErrFn) *Error { return rw.err("NotAcceptable", opts) }
func (rw *Response) ProxyAuthenticationRequired(opts ...ErrFn) *Error { return rw.err("ProxyAuthenticationRequired", opts) }
func (rw *Response) RequestTimeout(opts ...ErrFn) *Error { return rw.err("RequestTimeout", opts) }
func (rw *Response) Conflict(opts ...ErrFn) *Error { return rw.err("Conflict", opts) }
func (rw *Response) LengthRequired(opts ...ErrFn) *Error { return rw.err("LengthRequired", opts) }
func (rw *Response) PreconditionFailed(opts ...ErrFn) *Error { return rw.err("PreconditionFailed", opts) }
func (rw *Response) PayloadTooLarge(opts ...ErrFn) *Error { return rw.err("PayloadTooLarge", opts) }
func (rw *Response) URITooLong(opts ...ErrFn) *Error { return rw.err("URITooLong", opts) }
func (rw *Response) UnsupportedMediaType(opts ...ErrFn) *Error { return rw.err("UnsupportedMediaType", opts) }
func (rw *Response) RangeNotSatisfied(opts ...ErrFn) *Error { return rw.err("RangeNotSatisfied", opts) }
func (rw *Response) ExpectationFailed(opts ...ErrFn) *Error { return rw.err("ExpectationFailed", opts) }
func (rw *Response) ImATeapot(opts ...ErrFn) *Error { return rw.err("ImATeapot", opts) }
func (rw *Response) Locked(opts ...ErrFn) *Error { return rw.err("Locked", opts) }
func (rw *Response) PreconditionRequired(opts ...ErrFn) *Error { return rw.err("PreconditionRequired", opts) }
func (rw *Response) TooManyRequests(opts ...ErrFn) *Error { return rw.err("TooManyRequests", opts) }
func (rw *Response) InternalServerError(opts ...ErrFn) *Error { return rw.err("InternalServerError", opts) }
func (rw *Response) NotImplemented(opts ...ErrFn) *Error { return rw.err("NotImplemented", opts) }
func (rw *Response) BadGateway(opts ...ErrFn) *Error { return rw.err("BadGateway", opts) }
func (rw *Response) ServiceUnavailable(opts ...ErrFn) *Error { return rw.err("ServiceUnavailable", opts) }
func (rw *Response) GatewayTimeout(opts ...ErrFn) *Error { return rw.err("GatewayTimeout", opts) }
func (rw *Response) HTTPVersionNotSupported(opts ...ErrFn) *Error { return rw.err("HTTPVersionNotSupported", opts) }
func (rw *Response) InsufficientStorage(opts ...ErrFn) *Error { return rw.err("InsufficientStorage", opts) }
func (rw *Response) LoopDetected(opts ...ErrFn) *Error { return rw.err("LoopDetected", opts) }
func (rw *Response) NotExtended(opts ...ErrFn) *Error { return rw.err("NotExtended", opts) }
func (rw *Response) NetworkAuthenticationRequired(opts ...ErrFn) *Error { return rw.err("NetworkAuthenticationRequired", opts) }

func (rw *Response) UpgradeRequired(protocols []string, opts ...ErrFn) *Error {
	return rw.upgrade(rw.host, protocols, opts...)
}

func (rw *Response) MovedPermanently(location string) error {
	return rw.redirect("MovedPermanently", location)
}

func (rw *Response) Found(location string) error { return rw.redirect("Found", location) }

func (rw *Response) TemporaryRedirect(location string) error {
	return rw.redirect("TemporaryRedirect", location)
}

func (rw *Response) PermanentRedirect(location string) error {
	return rw.redirect("PermanentRedirect", location)
}

func (rw *Response) NotModified() error { return rw.empty("NotModified") }
func (rw *Response) NoContent() error   { return rw.empty("NoContent") }
func (rw *Response) Continue() error    { return rw.empty("Continue") }
func (rw *Response) Processing() error  { return rw.empty("Processing") }

func (rw *Response) SwitchingProtocols(protocols []string) error {
	return rw.switching(rw.host, protocols)
}

// Ok sets http.StatusOK and writes body.
//
// If body is absent (nil or ""), view is treated as the body and no view is used,
// so Ok("hello", nil, false) sends "hello".
//
// If body is a StreamFunc, func() error or func(), it is called and takes over the response.
// No other func type is called: one returning a value, i.e., func() any,
// is negotiated like any body and fails to encode.
// Call it first and pass Ok its result instead.
//
// Otherwise the Host negotiates one of:
//
//	text/plain        body as is
//	application/json  body as JSON
//	application/xml   body as XML rooted at view; as text/plain without a view
//	text/html         view rendered with body; as application/xml when apiMode is set;
//	                  as text/plain without a view
//
// Without a view, the xml and html strategies fall back to sending body as is,
// labeled by its own type rather than the negotiated one.
func (rw *Response) Ok(view string, body any, apiMode bool) error {
	return rw.ok(rw.host, view, body, apiMode)
}

// ErrorByName builds the *Error of the status-only outcome called name,
// through any override installed for it.
// Names that are not status-only outcomes return ErrInvalid.
func (rw *Response) ErrorByName(name string, opts ...ErrFn) (*Error, error) {
	fn, ok := rw.errs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a status-only outcome", ErrInvalid, name)
	}

	return fn(opts...), nil
}

func (rw *Response) err(name string, opts []ErrFn) *Error { return rw.errs[name](opts...) }

func (rw *Response) redirect(name, location string) error {
	return rw.redirects[name](rw.host, location)
}

func (rw *Response) empty(name string) error { return rw.empties[name](rw.host) }

var _ Host = (*Response)(nil)

// SetStatus implements Host by delegating to the bound Host.
func (rw *Response) SetStatus(code int) { rw.host.SetStatus(code) }

// SetHeader implements Host by delegating to the bound Host.
func (rw *Response) SetHeader(name string, values ...string) { rw.host.SetHeader(name, values...) }

// Send implements Host by delegating to the bound Host.
func (rw *Response) Send(body any) error { return rw.host.Send(body) }

// JSON implements Host by delegating to the bound Host.
func (rw *Response) JSON(body any) error { return rw.host.JSON(body) }

// Render implements Host by delegating to the bound Host.
func (rw *Response) Render(view string, body any) error { return rw.host.Render(view, body) }

// Redirect implements Host by delegating to the bound Host.
func (rw *Response) Redirect(code int, location string) error {
	return rw.host.Redirect(code, location)
}

// Format implements Host by delegating to the bound Host.
func (rw *Response) Format(s Strategies) error { return rw.host.Format(s) }
