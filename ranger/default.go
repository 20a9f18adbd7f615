package ranger

import (
	"io/fs"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/xy-planning-network/respond/http/host"
	"github.com/xy-planning-network/respond/http/host/ginhost"
	"github.com/xy-planning-network/respond/http/middleware"
	"github.com/xy-planning-network/respond/http/resp"
	"github.com/xy-planning-network/respond/http/router"
	"github.com/xy-planning-network/respond/http/template"
	"github.com/xy-planning-network/respond/logger"
	"golang.org/x/time/rate"
)

const maintMsg = "We are down for maintenance and will be back shortly."

// defaultLogger constructs a logger.Logger configured for use in the application.
//
// LOG_JSON switches to JSON lines; SENTRY_DSN additionally ships errors to Sentry.
func defaultLogger(cfg Config) logger.Logger {
	opts := []logger.LoggerOptFn{
		logger.WithEnv(cfg.Env.String()),
		logger.WithLevel(cfg.LogLevel),
	}

	if cfg.LogJSON || !cfg.Env.IsDevelopment() {
		opts = append(opts, logger.WithJSON(os.Stdout))
	}

	if cfg.SentryDSN != "" {
		opts = append(opts, logger.WithSentryDSN(cfg.SentryDSN))
	}

	l := logger.New(opts...)
	l.Debug("setting up app logger", nil)

	return l
}

// defaultParser constructs a *template.Parse rendering views found in fsys,
// or the working directory when fsys is nil.
//
// defaultParser makes available these functions in an HTML template:
//
//   - "env"
//   - "isDevelopment"
//   - "isProduction"
//   - "isTesting"
//   - "nonce"
//   - "rootURL"
//   - "statusText"
func defaultParser(cfg Config, fsys fs.FS) *template.Parse {
	opts := []template.ParserOptFn{
		template.WithCache(!cfg.Env.IsDevelopment()),
		template.WithFn(template.Env(cfg.Env)),
		template.WithFn("isDevelopment", cfg.Env.IsDevelopment),
		template.WithFn("isProduction", cfg.Env.IsProduction),
		template.WithFn("isTesting", cfg.Env.IsTesting),
		template.WithFn(template.Nonce()),
		template.WithFn(template.RootURL(cfg.BaseURL)),
		template.WithFn(template.StatusText()),
	}

	if fsys != nil {
		opts = append(opts, template.WithFS(fsys))
	}

	return template.NewParser(opts...)
}

// defaultResponder configures the [*host.Responder] every request's Host is drawn from.
func defaultResponder(cfg Config, l logger.Logger, p template.Parser) *host.Responder {
	return host.NewResponder(
		host.WithLogger(l),
		host.WithParser(p),
		host.WithViews(cfg.ViewsDir, cfg.ViewExt),
	)
}

// defaultMiddlewares lists the adapters wrapping every request, whichever engine serves it.
func defaultMiddlewares(cfg Config, l logger.Logger) []middleware.Adapter {
	return []middleware.Adapter{
		middleware.Recover(l),
		middleware.ReportPanic(cfg.Env),
		middleware.RequestID(),
		middleware.InjectIPAddress(),
		middleware.LogRequest(l),
		middleware.CORS(cfg.CORSOrigin),
		middleware.RateLimit(middleware.NewVisitors(rate.Limit(cfg.RateLimit), cfg.RateBurst)),
		middleware.ForceHTTPS(cfg.Env),
	}
}

// defaultRouter constructs a [*router.Router] whose routes answer through a *resp.Response.
func defaultRouter(cfg Config, doer *host.Responder, opts []resp.InstallOptFn) *router.Router {
	rt := router.New()
	rt.OnEveryRequest(middleware.InjectResponse(doer, opts...))
	if cfg.Maint {
		rt.CatchAll(MaintModeHandler)
	}

	return rt
}

// defaultEngine constructs a [*gin.Engine] whose handlers answer through a *resp.Response
// fetched with ginhost.FromContext.
func defaultEngine(cfg Config, doer *host.Responder, opts []resp.InstallOptFn) *gin.Engine {
	if !cfg.Env.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	e := gin.New()
	e.HandleMethodNotAllowed = true
	e.Use(ginhost.InjectResponse(doer, opts...))
	if cfg.Maint {
		e.Use(func(c *gin.Context) {
			MaintModeHandler(c.Writer, c.Request)
			c.Abort()
		})
	}

	e.NoRoute(func(c *gin.Context) { router.NotFound(c.Writer, c.Request) })
	e.NoMethod(func(c *gin.Context) { router.MethodNotAllowed(c.Writer, c.Request) })

	return e
}

// MaintModeHandler answers every request with the ServiceUnavailable outcome,
// asking clients to retry in ten minutes.
func MaintModeHandler(w http.ResponseWriter, r *http.Request) {
	middleware.Fail(w, r, "ServiceUnavailable",
		resp.Msg(maintMsg),
		resp.Headers(http.Header{"Retry-After": {"600"}}),
	)
}
