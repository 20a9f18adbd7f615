package middleware

import (
	"net/http"
	"net/url"

	"github.com/xy-planning-network/respond"
	"github.com/xy-planning-network/respond/http/resp"
)

// ForceHTTPS redirects HTTP requests to HTTPS if the environment is not "development".
//
// The "X-Forwarded-Proto" is used to check whether HTTP was requested due to the application
// running behind a proxy.
//
// The redirect goes through the request's *resp.Response when InjectResponse ran first.
func ForceHTTPS(env respond.Environment) Adapter {
	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("X-Forwarded-Proto") == "https" || env.IsDevelopment() {
				handler.ServeHTTP(w, r)
				return
			}

			u := new(url.URL)
			*u = *r.URL
			u.Scheme = "https"
			u.Host = r.Host

			if rw, err := resp.FromContext(r.Context()); err == nil {
				_ = rw.PermanentRedirect(u.String())
				return
			}

			http.Redirect(w, r, u.String(), http.StatusPermanentRedirect)
		})
	}
}
