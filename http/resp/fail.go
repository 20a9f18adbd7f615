package resp

import (
	"errors"
	"net/http"

	"github.com/xy-planning-network/respond/logger"
)

// Fail responds with err.
//
// If err wraps an *Error, its Headers and Status are written and its
// Message or JSON representation becomes the negotiated body.
// Any other error is logged and answered as an empty InternalServerError,
// keeping its text away from the client.
func (rw *Response) Fail(err error) error {
	var e *Error
	if !errors.As(err, &e) {
		if err != nil {
			rw.logger.Error(err.Error(), &logger.LogContext{Error: err, Caller: logger.CurrentCaller()})
		}
		e = rw.InternalServerError()
	}

	for k, vs := range e.Headers {
		rw.host.SetHeader(k, vs...)
	}
	rw.host.SetStatus(e.Status)

	text := func() error {
		msg := e.Message
		if msg == "" {
			msg = http.StatusText(e.Status)
		}
		return rw.host.Send(msg)
	}

	return rw.host.Format(Strategies{
		Text: text,
		JSON: func() error { return rw.host.JSON(e) },
		XML: func() error {
			b, err := rw.xml.Serialize("error", e)
			if err != nil {
				return err
			}

			rw.host.SetHeader("Content-Type", MediaXML)
			return rw.host.Send(b)
		},
		HTML: text,
	})
}
