package resp

import (
	"net/http"

	"github.com/xy-planning-network/respond/logger"
)

// negotiate is the default OkFunc.
func (rw *Response) negotiate(h Host, view string, body any, apiMode bool) error {
	if absent(body) {
		body = nil
		if view != "" {
			body = view
		}
		view = ""
	}

	h.SetStatus(http.StatusOK)

	switch fn := body.(type) {
	case StreamFunc:
		return fn()
	case func() error:
		return fn()
	case func():
		fn()
		return nil
	}

	text := func() error {
		rw.debug("text", view)
		return h.Send(body)
	}

	asXML := func() error {
		rw.debug("xml", view)
		b, err := rw.xml.Serialize(view, body)
		if err != nil {
			return err
		}

		h.SetHeader("Content-Type", MediaXML)
		return h.Send(b)
	}

	return h.Format(Strategies{
		Text: text,
		JSON: func() error {
			rw.debug("json", view)
			return h.JSON(body)
		},
		XML: func() error {
			if view == "" {
				return text()
			}

			return asXML()
		},
		HTML: func() error {
			switch {
			case view == "":
				return text()
			case apiMode:
				return asXML()
			default:
				rw.debug("html", view)
				return h.Render(view, body)
			}
		},
	})
}

func (rw *Response) debug(strategy, view string) {
	rw.logger.Debug("negotiated "+strategy, &logger.LogContext{Data: map[string]any{"view": view}})
}

// absent reports whether body was left out of a call to Ok.
func absent(body any) bool {
	switch b := body.(type) {
	case nil:
		return true
	case string:
		return b == ""
	default:
		return false
	}
}
