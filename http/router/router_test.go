package router_test

import (
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/respond/http/host"
	"github.com/xy-planning-network/respond/http/middleware"
	"github.com/xy-planning-network/respond/http/resp"
	"github.com/xy-planning-network/respond/http/router"
	"github.com/xy-planning-network/respond/logger"
)

func newRouter() *router.Router {
	doer := host.NewResponder(host.WithLogger(logger.New(logger.WithLogger(log.New(io.Discard, "", 0)))))

	rt := router.New()
	rt.OnEveryRequest(middleware.InjectResponse(doer))
	rt.Handle(router.Route{
		Path:   "/users/{id}",
		Method: http.MethodGet,
		Handler: func(w http.ResponseWriter, r *http.Request) {
			rw, _ := resp.FromContext(r.Context())
			_ = rw.Ok("", map[string]string{"id": "1"}, false)
		},
	})

	return rt
}

func serve(h http.Handler, method, target, accept string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(method, target, nil)
	r.Header.Set("Accept", accept)
	h.ServeHTTP(w, r)
	return w
}

func TestRouter(t *testing.T) {
	tcs := []struct {
		name   string
		method string
		target string
		status int
		body   string
	}{
		{"Found", http.MethodGet, "/users/1", http.StatusOK, `{"id":"1"}`},
		{"Not-Found", http.MethodGet, "/nope", http.StatusNotFound, `{"category":"NotFound","status":404,"code":404,"message":"no such route: /nope"}`},
		{"Method-Not-Allowed", http.MethodDelete, "/users/1", http.StatusMethodNotAllowed, `{"category":"MethodNotAllowed","status":405,"code":405}`},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			rt := newRouter()

			// Act
			w := serve(rt, tc.method, tc.target, "application/json")

			// Assert
			require.Equal(t, tc.status, w.Code)
			require.JSONEq(t, tc.body, w.Body.String())
		})
	}
}

func TestUnmatchedUsesOverrides(t *testing.T) {
	// Arrange
	doer := host.NewResponder(host.WithLogger(logger.New(logger.WithLogger(log.New(io.Discard, "", 0)))))
	override := func(category string, status int) resp.ErrorFunc {
		return func(opts ...resp.ErrFn) *resp.Error {
			return resp.NewError(category, status, resp.Code(status*10), resp.Msg("overridden"))
		}
	}

	rt := router.New()
	rt.OnEveryRequest(middleware.InjectResponse(doer,
		resp.OverrideErr("NotFound", override("NotFound", http.StatusNotFound)),
		resp.OverrideErr("MethodNotAllowed", override("MethodNotAllowed", http.StatusMethodNotAllowed)),
	))
	rt.Handle(router.Route{Path: "/users", Method: http.MethodGet, Handler: func(http.ResponseWriter, *http.Request) {}})

	tcs := []struct {
		name   string
		method string
		target string
		body   string
	}{
		{"Not-Found", http.MethodGet, "/nope", `{"category":"NotFound","status":404,"code":4040,"message":"overridden"}`},
		{"Method-Not-Allowed", http.MethodPost, "/users", `{"category":"MethodNotAllowed","status":405,"code":4050,"message":"overridden"}`},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			w := serve(rt, tc.method, tc.target, "application/json")

			// Assert
			require.JSONEq(t, tc.body, w.Body.String())
		})
	}
}

func TestHandleNotFound(t *testing.T) {
	// Arrange
	rt := newRouter()
	rt.HandleNotFound(func(w http.ResponseWriter, r *http.Request) {
		rw, err := resp.FromContext(r.Context())
		require.Nil(t, err)
		_ = rw.Fail(rw.ImATeapot())
	})

	// Act
	w := serve(rt, http.MethodGet, "/nope", "text/plain")

	// Assert
	require.Equal(t, http.StatusTeapot, w.Code)
	require.Equal(t, "I'm a teapot", w.Body.String())
}

func TestCatchAll(t *testing.T) {
	// Arrange
	rt := router.New()
	rt.CatchAll(func(w http.ResponseWriter, r *http.Request) {
		resp.NewError("ServiceUnavailable", http.StatusServiceUnavailable).ServeHTTP(w, r)
	})

	// Act
	w := serve(rt, http.MethodPost, "/anything", "")

	// Assert
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestSubrouter(t *testing.T) {
	// Arrange
	rt := newRouter()
	rt.Subrouter("/api/v1").Handle(router.Route{
		Path:   "/ping",
		Method: http.MethodGet,
		Handler: func(w http.ResponseWriter, r *http.Request) {
			rw, _ := resp.FromContext(r.Context())
			_ = rw.NoContent()
		},
	})

	// Act
	w := serve(rt, http.MethodGet, "/api/v1/ping", "")

	// Assert
	require.Equal(t, http.StatusNoContent, w.Code)
}

func TestStatic(t *testing.T) {
	// Arrange
	rt := router.New()
	rt.Static("/assets/", fstest.MapFS{"app.css": &fstest.MapFile{Data: []byte("body{}")}})

	// Act
	w := serve(rt, http.MethodGet, "/assets/app.css", "")

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "body{}", w.Body.String())
	require.Equal(t, "max-age=2592000", w.Header().Get("Cache-Control"))
}
