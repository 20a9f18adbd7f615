package ranger_test

import (
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/respond"
	"github.com/xy-planning-network/respond/http/host/ginhost"
	"github.com/xy-planning-network/respond/http/resp"
	"github.com/xy-planning-network/respond/http/router"
	"github.com/xy-planning-network/respond/logger"
	"github.com/xy-planning-network/respond/ranger"
)

func quietLogger() logger.Logger {
	return logger.New(logger.WithLogger(log.New(io.Discard, "", 0)))
}

func serve(h http.Handler, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(method, target, nil)
	r.Header.Set("Accept", "application/json")
	h.ServeHTTP(w, r)
	return w
}

func TestNewConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		// Act
		cfg := ranger.NewConfig()

		// Assert
		require.Equal(t, respond.Development, cfg.Env)
		require.Equal(t, ranger.EngineStd, cfg.Engine)
		require.Equal(t, "localhost:3000", cfg.Server.Addr)
		require.Equal(t, "http://localhost:3000/", cfg.BaseURL.String())
		require.Equal(t, logger.LogLevelInfo, cfg.LogLevel)
		require.Equal(t, ranger.DefaultServerReadTimeout, cfg.Server.ReadTimeout)
		require.Equal(t, "views", cfg.ViewsDir)
		require.Equal(t, ".tmpl", cfg.ViewExt)
		require.Equal(t, float64(5), cfg.RateLimit)
		require.Equal(t, 20, cfg.RateBurst)
	})

	t.Run("Environment", func(t *testing.T) {
		// Arrange
		t.Setenv("ENVIRONMENT", "staging")
		t.Setenv("ENGINE", "gin")
		t.Setenv("PORT", "8080")
		t.Setenv("LOG_LEVEL", "DEBUG")
		t.Setenv("API_MODE", "true")
		t.Setenv("MAINTENANCE_MODE", "true")
		t.Setenv("RATE_LIMIT", "0.5")
		t.Setenv("SERVER_WRITE_TIMEOUT", "1m")

		// Act
		cfg := ranger.NewConfig()

		// Assert
		require.Equal(t, respond.Staging, cfg.Env)
		require.Equal(t, ranger.EngineGin, cfg.Engine)
		require.Equal(t, "localhost:8080", cfg.Server.Addr)
		require.Equal(t, logger.LogLevelDebug, cfg.LogLevel)
		require.True(t, cfg.APIMode)
		require.True(t, cfg.Maint)
		require.Equal(t, 0.5, cfg.RateLimit)
		require.Equal(t, time.Minute, cfg.Server.WriteTimeout)
	})

	t.Run("Unknown-Engine", func(t *testing.T) {
		// Arrange
		t.Setenv("ENGINE", "fasthttp")

		// Act
		cfg := ranger.NewConfig()

		// Assert
		require.Equal(t, ranger.EngineStd, cfg.Engine)
	})
}

func TestNewErrors(t *testing.T) {
	tcs := []struct {
		name string
		opt  ranger.RangerOption
	}{
		{"Nil-Logger", ranger.WithLogger(nil)},
		{"Nil-Parser", ranger.WithParser(nil)},
		{"Bad-Env", ranger.WithConfig(ranger.Config{Env: "nope"})},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			rng, err := ranger.New(tc.opt)

			// Assert
			require.ErrorIs(t, err, ranger.ErrBadConfig)
			require.Nil(t, rng)
		})
	}
}

func newConfig(engine string) ranger.Config {
	cfg := ranger.NewConfig()
	cfg.Engine = engine
	return cfg
}

func TestStdEngine(t *testing.T) {
	// Arrange
	rng, err := ranger.New(ranger.WithConfig(newConfig(ranger.EngineStd)), ranger.WithLogger(quietLogger()))
	require.Nil(t, err)
	require.Nil(t, rng.Gin())

	rng.Handle(router.Route{
		Path:   "/hi",
		Method: http.MethodGet,
		Handler: func(w http.ResponseWriter, r *http.Request) {
			rw, _ := resp.FromContext(r.Context())
			_ = rw.Ok("", map[string]int{"a": 1}, false)
		},
	})

	// Act
	found := serve(rng.Handler(), http.MethodGet, "/hi")
	missing := serve(rng.Handler(), http.MethodGet, "/nope")

	// Assert
	require.Equal(t, http.StatusOK, found.Code)
	require.JSONEq(t, `{"a":1}`, found.Body.String())
	require.NotEmpty(t, found.Header().Get("X-Request-Id"))
	require.Equal(t, http.StatusNotFound, missing.Code)
}

func TestGinEngine(t *testing.T) {
	// Arrange
	rng, err := ranger.New(ranger.WithConfig(newConfig(ranger.EngineGin)), ranger.WithLogger(quietLogger()))
	require.Nil(t, err)
	require.NotNil(t, rng.Gin())

	rng.Gin().GET("/hi", func(c *gin.Context) {
		rw, _ := ginhost.FromContext(c)
		_ = rw.Ok("", gin.H{"a": 1}, false)
	})

	// Act
	found := serve(rng.Handler(), http.MethodGet, "/hi")
	missing := serve(rng.Handler(), http.MethodGet, "/nope")
	notAllowed := serve(rng.Handler(), http.MethodPost, "/hi")

	// Assert
	require.Equal(t, http.StatusOK, found.Code)
	require.JSONEq(t, `{"a":1}`, found.Body.String())
	require.Equal(t, http.StatusNotFound, missing.Code)
	require.JSONEq(t, `{"category":"NotFound","status":404,"code":404,"message":"no such route: /nope"}`, missing.Body.String())
	require.Equal(t, http.StatusMethodNotAllowed, notAllowed.Code)
}

func TestMaintMode(t *testing.T) {
	for _, engine := range []string{ranger.EngineStd, ranger.EngineGin} {
		t.Run(engine, func(t *testing.T) {
			// Arrange
			cfg := newConfig(engine)
			cfg.Maint = true
			rng, err := ranger.New(ranger.WithConfig(cfg), ranger.WithLogger(quietLogger()))
			require.Nil(t, err)

			// Act
			w := serve(rng.Handler(), http.MethodPost, "/maint-mode-test")

			// Assert
			require.Equal(t, http.StatusServiceUnavailable, w.Code)
			require.Equal(t, "600", w.Header().Get("Retry-After"))
			require.Contains(t, w.Body.String(), "maintenance")
		})
	}
}

func TestWithViewsFS(t *testing.T) {
	// Arrange
	views := fstest.MapFS{"views/hi.tmpl": {Data: []byte(`<p>hi {{ .name }} from {{ env }}</p>`)}}
	rng, err := ranger.New(
		ranger.WithConfig(newConfig(ranger.EngineStd)),
		ranger.WithLogger(quietLogger()),
		ranger.WithViewsFS(views),
	)
	require.Nil(t, err)

	rng.Handle(router.Route{
		Path:   "/hi",
		Method: http.MethodGet,
		Handler: func(w http.ResponseWriter, r *http.Request) {
			rw, _ := resp.FromContext(r.Context())
			_ = rw.Ok("hi", map[string]string{"name": "gopher"}, false)
		},
	})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/hi", nil)
	r.Header.Set("Accept", "text/html")

	// Act
	rng.Handler().ServeHTTP(w, r)

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "<p>hi gopher from DEVELOPMENT</p>", w.Body.String())
}

func TestMaintModeUsesOverride(t *testing.T) {
	for _, engine := range []string{ranger.EngineStd, ranger.EngineGin} {
		t.Run(engine, func(t *testing.T) {
			// Arrange
			cfg := newConfig(engine)
			cfg.Maint = true
			rng, err := ranger.New(
				ranger.WithConfig(cfg),
				ranger.WithLogger(quietLogger()),
				ranger.WithInstallOpts(resp.OverrideErr("ServiceUnavailable", func(opts ...resp.ErrFn) *resp.Error {
					return resp.NewError("ServiceUnavailable", http.StatusServiceUnavailable, append(opts, resp.Code(5031))...)
				})),
			)
			require.Nil(t, err)

			// Act
			w := serve(rng.Handler(), http.MethodGet, "/")

			// Assert
			require.Equal(t, http.StatusServiceUnavailable, w.Code)
			require.Equal(t, "600", w.Header().Get("Retry-After"))
			require.Contains(t, w.Body.String(), `"code":5031`)
		})
	}
}

func TestPanicReportedOnce(t *testing.T) {
	// Arrange
	var events int
	require.Nil(t, sentry.Init(sentry.ClientOptions{
		BeforeSend: func(e *sentry.Event, _ *sentry.EventHint) *sentry.Event {
			events++
			return nil
		},
	}))
	t.Cleanup(func() { _ = sentry.Init(sentry.ClientOptions{}) })

	cfg := newConfig(ranger.EngineStd)
	cfg.Env = respond.Production
	rng, err := ranger.New(ranger.WithConfig(cfg), ranger.WithLogger(quietLogger()))
	require.Nil(t, err)

	rng.Handle(router.Route{
		Path:    "/boom",
		Method:  http.MethodGet,
		Handler: func(http.ResponseWriter, *http.Request) { panic("boom") },
	})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/boom", nil)
	r.Header.Set("X-Forwarded-Proto", "https")

	// Act
	rng.Handler().ServeHTTP(w, r)

	// Assert
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Equal(t, 1, events)
}
