package resp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
)

var (
	ErrNoResponse = errors.New("no response installed")
	ErrInvalid    = errors.New("invalid")
)

// An Error is the value every status-only and parametric outcome builds.
//
// Code is application-defined and defaults to Status;
// the two are never unified.
// An empty Message and nil Headers stand for "not provided".
//
// An Error holds no reference to the Host it was built for
// and is not modified after construction.
type Error struct {
	Category string      `json:"category" xml:"category"`
	Status   int         `json:"status" xml:"status"`
	Code     int         `json:"code" xml:"code"`
	Message  string      `json:"message,omitempty" xml:"message,omitempty"`
	Headers  http.Header `json:"-" xml:"-"`
}

// An ErrFn sets optional parts of an *Error while it is being built.
type ErrFn func(*Error)

// Msg sets the message, leaving the code at the outcome's status.
//
// Msg is the one-argument form: rw.NotFound(resp.Msg("no such user")).
func Msg(message string) ErrFn {
	return func(e *Error) {
		e.Message = message
	}
}

// Code sets the application code.
func Code(code int) ErrFn {
	return func(e *Error) {
		e.Code = code
	}
}

// Headers sets headers callers ought to send alongside the error.
// h is copied.
func Headers(h http.Header) ErrFn {
	return func(e *Error) {
		e.Headers = h.Clone()
	}
}

// Args applies the positional code, message and headers in one go.
//
// When message is empty the arguments shift:
// code becomes the message and the code falls back to the outcome's status.
func Args(code int, message string, headers http.Header) ErrFn {
	return func(e *Error) {
		if message == "" {
			if code != 0 {
				e.Message = strconv.Itoa(code)
			}
			e.Code = e.Status
		} else {
			e.Code = code
			e.Message = message
		}

		if headers != nil {
			e.Headers = headers.Clone()
		}
	}
}

// NewError builds an *Error for category with the fixed status,
// applying opts the same way every installed outcome does.
func NewError(category string, status int, opts ...ErrFn) *Error {
	return newError(Outcome{Name: category, Status: status}, opts)
}

// newError is the single construction path for *Error.
func newError(o Outcome, opts []ErrFn) *Error {
	e := &Error{Category: o.Name, Status: o.Status, Code: o.Status}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}

	return e
}

// Error formats e as "Category (Status): Message".
func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s (%d)", e.Category, e.Status)
	}

	return fmt.Sprintf("%s (%d): %s", e.Category, e.Status, e.Message)
}

// Is reports whether target is an *Error of the same category and status,
// so errors.Is(err, rw.NotFound()) matches any NotFound.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t.Category == e.Category && t.Status == e.Status
}

// ServeHTTP writes e as a JSON response, including any Headers.
func (e *Error) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	for k, vs := range e.Headers {
		w.Header().Del(k)
		for _, v := range vs {
			w.Header().Add(k, v)
		}
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(e.Status)
	json.NewEncoder(w).Encode(e)
}

// StatusOf reports the HTTP status err stands for.
//
// A nil err is http.StatusOK; an err not wrapping an *Error is http.StatusInternalServerError.
func StatusOf(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}

	return http.StatusInternalServerError
}
