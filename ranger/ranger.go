package ranger

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xy-planning-network/respond/http/host"
	"github.com/xy-planning-network/respond/http/middleware"
	"github.com/xy-planning-network/respond/http/resp"
	"github.com/xy-planning-network/respond/http/router"
	"github.com/xy-planning-network/respond/http/template"
	"github.com/xy-planning-network/respond/logger"
)

// A Ranger manages and exposes all components of an app answering through
// *resp.Response to one another.
//
// Register routes on the embedded *router.Router when Config.Engine is EngineStd,
// or on Gin when it is EngineGin.
type Ranger struct {
	*router.Router
	Config

	ctx         context.Context
	doer        *host.Responder
	engine      *gin.Engine
	installOpts []resp.InstallOptFn
	l           logger.Logger
	mws         []middleware.Adapter
	p           template.Parser
	srv         *http.Server
	viewsFS     fs.FS
}

// New constructs a Ranger from the provided options.
// Configuration is read from the environment first; options then override it.
func New(opts ...RangerOption) (*Ranger, error) {
	r := &Ranger{Config: NewConfig()}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrBadConfig, err)
		}
	}

	if r.ctx == nil {
		r.ctx = context.Background()
	}

	if r.l == nil {
		r.l = defaultLogger(r.Config)
	}

	if r.p == nil {
		r.p = defaultParser(r.Config, r.viewsFS)
	}

	r.doer = defaultResponder(r.Config, r.l, r.p)
	r.installOpts = append([]resp.InstallOptFn{resp.WithLogger(r.l)}, r.installOpts...)
	r.mws = append(defaultMiddlewares(r.Config, r.l), r.mws...)
	r.Router = defaultRouter(r.Config, r.doer, r.installOpts)
	if r.Config.Engine == EngineGin {
		r.engine = defaultEngine(r.Config, r.doer, r.installOpts)
	}

	r.srv = &http.Server{
		Addr:         r.Server.Addr,
		IdleTimeout:  r.Server.IdleTimeout,
		ReadTimeout:  r.Server.ReadTimeout,
		WriteTimeout: r.Server.WriteTimeout,
	}

	r.l.Debug(fmt.Sprintf("configured %s engine for %s", r.Config.Engine, r.Config.Env), nil)

	return r, nil
}

// Gin returns the *gin.Engine requests are routed through, if Config.Engine is EngineGin.
func (r *Ranger) Gin() *gin.Engine { return r.engine }

// Handler returns the http.Handler Guide serves: the configured engine
// wrapped in every default and WithMiddlewares adapter.
func (r *Ranger) Handler() http.Handler {
	var h http.Handler = r.Router
	if r.engine != nil {
		h = r.engine
	}

	return middleware.Chain(h, r.mws...)
}

func (r *Ranger) Logger() logger.Logger      { return r.l }
func (r *Ranger) Responder() *host.Responder { return r.doer }

// Guide begins the web server.
//
// These, and (*Ranger).Shutdown, stop Guide:
//
// - os.Interrupt
// - syscall.SIGHUP
// - syscall.SIGINT
// - syscall.SIGQUIT
// - syscall.SIGTERM
// - cancelling the context.Context set with WithContext
func (r *Ranger) Guide() error {
	ctx, cancel := signal.NotifyContext(
		r.ctx,
		os.Interrupt,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGQUIT,
		syscall.SIGTERM,
	)
	defer cancel()

	errs := make(chan error, 1)
	go func() {
		r.l.Info(fmt.Sprintf("running web server at %s", r.srv.Addr), nil)
		r.srv.Handler = r.Handler()
		if err := r.srv.ListenAndServe(); err != http.ErrServerClosed {
			err = fmt.Errorf("could not listen: %w", err)
			r.l.Error(err.Error(), nil)
			errs <- err
		}
	}()

	select {
	case <-ctx.Done():
		r.l.Info("received shutdown signal", nil)
		return r.Shutdown()
	case err := <-errs:
		return err
	}
}

// Shutdown shutdowns the web server.
func (r *Ranger) Shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	r.l.Info("shutting down web server", nil)
	err := r.srv.Shutdown(shutdownCtx)
	if err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("could not shutdown: %w", err)
	}

	r.l.Info("web server shutdown successfully", nil)
	return nil
}
