package ranger

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/xy-planning-network/respond/http/middleware"
	"github.com/xy-planning-network/respond/http/resp"
	"github.com/xy-planning-network/respond/http/template"
	"github.com/xy-planning-network/respond/logger"
)

// A RangerOption configures a *Ranger before New assembles the remaining defaults.
type RangerOption func(rng *Ranger) error

// WithConfig replaces the Config read from the environment.
func WithConfig(cfg Config) RangerOption {
	return func(rng *Ranger) error {
		if err := cfg.Env.Valid(); err != nil {
			return fmt.Errorf("%w: environment %q", err, cfg.Env)
		}

		rng.Config = cfg
		return nil
	}
}

// WithContext exposes the provided context.Context to the app.
// Cancelling it stops Guide.
func WithContext(ctx context.Context) RangerOption {
	return func(rng *Ranger) error {
		rng.ctx = ctx
		return nil
	}
}

// WithInstallOpts passes opts along to resp.Install for every request,
// e.g. resp.OverrideErr to customize an outcome app-wide.
func WithInstallOpts(opts ...resp.InstallOptFn) RangerOption {
	return func(rng *Ranger) error {
		rng.installOpts = append(rng.installOpts, opts...)
		return nil
	}
}

// WithLogger replaces the logger.Logger built from LOG_* and SENTRY_DSN env vars.
func WithLogger(l logger.Logger) RangerOption {
	return func(rng *Ranger) error {
		if l == nil {
			return fmt.Errorf("%w: nil logger", ErrBadConfig)
		}

		rng.l = l
		return nil
	}
}

// WithMiddlewares appends adpts to the adapters wrapping every request.
func WithMiddlewares(adpts ...middleware.Adapter) RangerOption {
	return func(rng *Ranger) error {
		rng.mws = append(rng.mws, adpts...)
		return nil
	}
}

// WithParser replaces the template.Parser rendering views.
func WithParser(p template.Parser) RangerOption {
	return func(rng *Ranger) error {
		if p == nil {
			return fmt.Errorf("%w: nil parser", ErrBadConfig)
		}

		rng.p = p
		return nil
	}
}

// WithViewsFS reads views from fsys instead of the working directory,
// e.g. an embed.FS holding the VIEWS_DIR directory.
// WithParser takes precedence.
func WithViewsFS(fsys fs.FS) RangerOption {
	return func(rng *Ranger) error {
		rng.viewsFS = fsys
		return nil
	}
}
