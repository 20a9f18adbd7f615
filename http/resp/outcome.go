package resp

import "net/http"

// A Kind distinguishes how an Outcome is invoked.
type Kind int

const (
	// KindStatus outcomes build an *Error with a fixed status and emit nothing.
	KindStatus Kind = iota + 1

	// KindParametric outcomes take leading arguments, act on the Host,
	// and then build an *Error with a fixed status.
	KindParametric

	// KindBehavior outcomes emit a response through the Host immediately.
	KindBehavior
)

func (k Kind) String() string {
	switch k {
	case KindStatus:
		return "status"
	case KindParametric:
		return "parametric"
	case KindBehavior:
		return "behavior"
	default:
		return "unknown"
	}
}

// act names what a KindBehavior Outcome does with the Host.
type act int

const (
	actNone act = iota
	actRedirect
	actEmpty
	actSwitch
	actNegotiate
)

// An Outcome describes one named helper installed onto a Response.
type Outcome struct {
	Name   string
	Status int
	Kind   Kind

	act act
}

var outcomes = []Outcome{
	{Name: "BadRequest", Status: http.StatusBadRequest, Kind: KindStatus},
	{Name: "Unauthorized", Status: http.StatusUnauthorized, Kind: KindStatus},
	{Name: "PaymentRequired", Status: http.StatusPaymentRequired, Kind: KindStatus},
	{Name: "Forbidden", Status: http.StatusForbidden, Kind: KindStatus},
	{Name: "NotFound", Status: http.StatusNotFound, Kind: KindStatus},
	{Name: "MethodNotAllowed", Status: http.StatusMethodNotAllowed, Kind: KindStatus},
	{Name: "NotAcceptable", Status: http.StatusNotAcceptable, Kind: KindStatus},
	{Name: "ProxyAuthenticationRequired", Status: http.StatusProxyAuthRequired, Kind: KindStatus},
	{Name: "RequestTimeout", Status: http.StatusRequestTimeout, Kind: KindStatus},
	{Name: "Conflict", Status: http.StatusConflict, Kind: KindStatus},
	{Name: "LengthRequired", Status: http.StatusLengthRequired, Kind: KindStatus},
	{Name: "PreconditionFailed", Status: http.StatusPreconditionFailed, Kind: KindStatus},
	{Name: "PayloadTooLarge", Status: http.StatusRequestEntityTooLarge, Kind: KindStatus},
	{Name: "URITooLong", Status: http.StatusRequestURITooLong, Kind: KindStatus},
	{Name: "UnsupportedMediaType", Status: http.StatusUnsupportedMediaType, Kind: KindStatus},
	{Name: "RangeNotSatisfied", Status: http.StatusRequestedRangeNotSatisfiable, Kind: KindStatus},
	{Name: "ExpectationFailed", Status: http.StatusExpectationFailed, Kind: KindStatus},
	{Name: "ImATeapot", Status: http.StatusTeapot, Kind: KindStatus},
	{Name: "Locked", Status: http.StatusLocked, Kind: KindStatus},
	{Name: "UpgradeRequired", Status: http.StatusUpgradeRequired, Kind: KindParametric},
	{Name: "PreconditionRequired", Status: http.StatusPreconditionRequired, Kind: KindStatus},
	{Name: "TooManyRequests", Status: http.StatusTooManyRequests, Kind: KindStatus},
	{Name: "InternalServerError", Status: http.StatusInternalServerError, Kind: KindStatus},
	{Name: "NotImplemented", Status: http.StatusNotImplemented, Kind: KindStatus},
	{Name: "BadGateway", Status: http.StatusBadGateway, Kind: KindStatus},
	{Name: "ServiceUnavailable", Status: http.StatusServiceUnavailable, Kind: KindStatus},
	{Name: "GatewayTimeout", Status: http.StatusGatewayTimeout, Kind: KindStatus},
	{Name: "HTTPVersionNotSupported", Status: http.StatusHTTPVersionNotSupported, Kind: KindStatus},
	{Name: "InsufficientStorage", Status: http.StatusInsufficientStorage, Kind: KindStatus},
	{Name: "LoopDetected", Status: http.StatusLoopDetected, Kind: KindStatus},
	{Name: "NotExtended", Status: http.StatusNotExtended, Kind: KindStatus},
	{Name: "NetworkAuthenticationRequired", Status: http.StatusNetworkAuthenticationRequired, Kind: KindStatus},

	{Name: "MovedPermanently", Status: http.StatusMovedPermanently, Kind: KindBehavior, act: actRedirect},
	{Name: "Found", Status: http.StatusFound, Kind: KindBehavior, act: actRedirect},
	{Name: "TemporaryRedirect", Status: http.StatusTemporaryRedirect, Kind: KindBehavior, act: actRedirect},
	{Name: "PermanentRedirect", Status: http.StatusPermanentRedirect, Kind: KindBehavior, act: actRedirect},

	{Name: "Ok", Status: http.StatusOK, Kind: KindBehavior, act: actNegotiate},
	{Name: "NotModified", Status: http.StatusNotModified, Kind: KindBehavior, act: actEmpty},
	{Name: "NoContent", Status: http.StatusNoContent, Kind: KindBehavior, act: actEmpty},
	{Name: "Continue", Status: http.StatusContinue, Kind: KindBehavior, act: actEmpty},
	{Name: "SwitchingProtocols", Status: http.StatusSwitchingProtocols, Kind: KindBehavior, act: actSwitch},
	{Name: "Processing", Status: http.StatusProcessing, Kind: KindBehavior, act: actEmpty},
}

var byName = func() map[string]int {
	m := make(map[string]int, len(outcomes))
	for i, o := range outcomes {
		m[o.Name] = i
	}
	return m
}()

// Lookup retrieves the Outcome named name.
func Lookup(name string) (Outcome, bool) {
	i, ok := byName[name]
	if !ok {
		return Outcome{}, false
	}

	return outcomes[i], true
}

// Outcomes lists every Outcome a Response carries, in installation order.
// The returned slice is a copy.
func Outcomes() []Outcome {
	return append([]Outcome(nil), outcomes...)
}
