package middleware

import (
	"fmt"
	"io"
	"net/http"

	"github.com/felixge/httpsnoop"
	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/xy-planning-network/respond"
	"github.com/xy-planning-network/respond/http/resp"
	"github.com/xy-planning-network/respond/logger"
)

// ReportPanic recovers panics in the wrapped http.Handler with sentryhttp,
// reports them and panics again for Recover to answer.
//
// If env does not report panics, NoopAdapter returns and this middleware does nothing.
func ReportPanic(env respond.Environment) Adapter {
	if !env.ReportsPanics() {
		return NoopAdapter
	}

	sh := sentryhttp.New(sentryhttp.Options{
		Repanic:         true,
		WaitForDelivery: true,
	})

	return func(h http.Handler) http.Handler { return sh.Handle(h) }
}

// Recover answers a panic in the wrapped http.Handler with 500 Internal Server Error
// and logs it through ls.
// A response already started when the panic hit is left as is.
// Place it ahead of ReportPanic.
func Recover(ls logger.Logger) Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var started bool
			sw := httpsnoop.Wrap(w, httpsnoop.Hooks{
				WriteHeader: func(next httpsnoop.WriteHeaderFunc) httpsnoop.WriteHeaderFunc {
					return func(code int) {
						started = true
						next(code)
					}
				},
				Write: func(next httpsnoop.WriteFunc) httpsnoop.WriteFunc {
					return func(b []byte) (int, error) {
						started = true
						return next(b)
					}
				},
				ReadFrom: func(next httpsnoop.ReadFromFunc) httpsnoop.ReadFromFunc {
					return func(src io.Reader) (int64, error) {
						started = true
						return next(src)
					}
				},
			})

			defer func() {
				val := recover()
				if val == nil {
					return
				}

				if val == http.ErrAbortHandler {
					panic(val)
				}

				err, ok := val.(error)
				if !ok {
					err = fmt.Errorf("%v", val)
				}

				if ls != nil {
					ls.Error("recovered from panic", &logger.LogContext{
						Data:    map[string]any{"responseStarted": started},
						Error:   err,
						Request: r,
					})
				}

				if started {
					return
				}

				resp.NewError("InternalServerError", http.StatusInternalServerError).ServeHTTP(w, r)
			}()

			h.ServeHTTP(sw, r)
		})
	}
}
