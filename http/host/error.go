package host

import "errors"

var (
	ErrNoParser      = errors.New("no template parser configured")
	ErrNotAcceptable = errors.New("no acceptable media type")
	ErrWritten       = errors.New("response already written")
)
