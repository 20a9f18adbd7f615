package middleware

import (
	"net/http"

	"github.com/xy-planning-network/respond/http/host"
	"github.com/xy-planning-network/respond/http/resp"
)

// InjectResponse installs a *resp.Response over a host.Writer for each request
// and stores it in the *http.Request.Context, thereby making it available to handlers
// through resp.FromContext.
//
// A request already carrying a *resp.Response keeps it.
//
// If doer is nil, NoopAdapter returns and this middleware does nothing.
func InjectResponse(doer *host.Responder, opts ...resp.InstallOptFn) Adapter {
	if doer == nil {
		return NoopAdapter
	}

	opts = append([]resp.InstallOptFn{resp.WithLogger(doer.Logger())}, opts...)
	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, err := resp.FromContext(r.Context()); err == nil {
				handler.ServeHTTP(w, r)
				return
			}

			rw := resp.Install(doer.Host(w, r), opts...)
			handler.ServeHTTP(w, r.WithContext(resp.NewContext(r.Context(), rw)))
		})
	}
}

// Fail answers with the status-only outcome called name, e.g. "NotFound".
//
// When InjectResponse ran, the request's *resp.Response builds and sends it,
// so any override installed for name applies.
// Otherwise the outcome serves itself as JSON.
// A name that is not a status-only outcome answers 500 Internal Server Error.
func Fail(w http.ResponseWriter, r *http.Request, name string, opts ...resp.ErrFn) {
	if rw, err := resp.FromContext(r.Context()); err == nil {
		e, err := rw.ErrorByName(name, opts...)
		if err != nil {
			e = rw.InternalServerError()
		}

		_ = rw.Fail(e)
		return
	}

	o, ok := resp.Lookup(name)
	if !ok || o.Kind != resp.KindStatus {
		o, _ = resp.Lookup("InternalServerError")
		opts = nil
	}

	resp.NewError(o.Name, o.Status, opts...).ServeHTTP(w, r)
}
