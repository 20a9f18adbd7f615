package resp

import "strings"

// Media types a Host offers when negotiating Strategies, in order of preference
// for a request that states no preference.
const (
	MediaText = "text/plain"
	MediaJSON = "application/json"
	MediaXML  = "application/xml"
	MediaHTML = "text/html"
)

// MediaTypes lists every media type Strategies answers, in order of preference.
var MediaTypes = []string{MediaText, MediaJSON, MediaXML, MediaHTML}

// A Host is the per-request response object helpers act on.
// Implementations live in the http/host packages.
//
// A Host emits at most one response.
// Each emitting method (Send, JSON, Render, Redirect) writes the status set by SetStatus.
type Host interface {
	// SetStatus records the status code the next emission writes.
	SetStatus(code int)

	// SetHeader replaces the header name with values.
	SetHeader(name string, values ...string)

	// Send emits body as is: strings and []byte are written raw.
	// A nil body emits an empty response.
	Send(body any) error

	// JSON emits body encoded as JSON.
	JSON(body any) error

	// Render executes the template identified by view with body as its data.
	Render(view string, body any) error

	// Redirect points the client at location using the 3xx code.
	Redirect(code int, location string) error

	// Format inspects the request's Accept header and calls exactly one of the Strategies.
	// When nothing acceptable is on offer, the Host decides how to fail.
	Format(s Strategies) error
}

// Strategies holds one emitter per negotiable media type.
type Strategies struct {
	Text func() error
	JSON func() error
	XML  func() error
	HTML func() error
}

// For returns the strategy answering mediaType, if any.
// Parameters such as "; charset=utf-8" are ignored.
func (s Strategies) For(mediaType string) (func() error, bool) {
	mediaType, _, _ = strings.Cut(mediaType, ";")

	var fn func() error
	switch strings.TrimSpace(mediaType) {
	case MediaText:
		fn = s.Text
	case MediaJSON:
		fn = s.JSON
	case MediaXML:
		fn = s.XML
	case MediaHTML:
		fn = s.HTML
	}

	return fn, fn != nil
}

// A StreamFunc passed as the body to Ok takes over the response entirely.
type StreamFunc func() error
