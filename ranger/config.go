package ranger

import (
	"net"
	"net/url"
	"os"
	"time"

	// TODO(dlk): configurable env files
	_ "github.com/joho/godotenv/autoload"
	"github.com/xy-planning-network/respond"
	"github.com/xy-planning-network/respond/logger"
)

const (
	// Base URL defaults
	BaseURLEnvVar = "BASE_URL"

	// Environment defaults
	environmentEnvVar = "ENVIRONMENT"

	// Engine defaults
	engineEnvVar      = "ENGINE"
	EngineStd         = "std"
	EngineGin         = "gin"
	defaultEngineName = EngineStd

	// Log defaults
	logLevelEnvVar  = "LOG_LEVEL"
	defaultLogLvl   = logger.LogLevelInfo
	logJSONEnvVar   = "LOG_JSON"
	defaultLogJSON  = false
	sentryDsnEnvVar = "SENTRY_DSN"

	// Response defaults
	apiModeEnvVar    = "API_MODE"
	defaultAPIMode   = false
	corsOriginEnvVar = "CORS_ORIGIN"
	maintModeEnvVar  = "MAINTENANCE_MODE"
	rateLimitEnvVar  = "RATE_LIMIT"
	defaultRateLimit = 5
	rateBurstEnvVar  = "RATE_BURST"
	defaultRateBurst = 20

	// View defaults
	viewsDirEnvVar  = "VIEWS_DIR"
	defaultViewsDir = "views"
	viewExtEnvVar   = "VIEW_EXT"
	defaultViewExt  = ".tmpl"

	// Web server defaults
	DefaultHost               = "localhost"
	hostEnvVar                = "HOST"
	DefaultPort               = ":3000"
	portEnvVar                = "PORT"
	serverReadTimeoutEnvVar   = "SERVER_READ_TIMEOUT"
	DefaultServerReadTimeout  = 5 * time.Second
	serverIdleTimeoutEnvVar   = "SERVER_IDLE_TIMEOUT"
	DefaultServerIdleTimeout  = 120 * time.Second
	serverWriteTimeoutEnvVar  = "SERVER_WRITE_TIMEOUT"
	DefaultServerWriteTimeout = 5 * time.Second
)

// Config collects every setting a Ranger reads from the environment.
type Config struct {
	APIMode    bool
	BaseURL    *url.URL
	CORSOrigin string
	Engine     string
	Env        respond.Environment
	LogJSON    bool
	LogLevel   logger.LogLevel
	Maint      bool
	RateBurst  int
	RateLimit  float64
	SentryDSN  string
	Server     ServerConfig
	ViewExt    string
	ViewsDir   string
}

// ServerConfig holds the *http.Server settings.
type ServerConfig struct {
	Addr         string
	IdleTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// NewConfig reads the Config from environment variables,
// including those set in a ".env" file in the working directory.
//
// BASE_URL, when set, decides the address listened on; HOST and PORT otherwise.
func NewConfig() Config {
	host := respond.EnvVarOrString(hostEnvVar, DefaultHost)
	port := respond.EnvVarOrString(portEnvVar, DefaultPort)
	if port[0] != ':' {
		port = ":" + port
	}

	baseURL := respond.EnvVarOrURL(BaseURLEnvVar, "http://"+host+port)
	addr := host + port
	if h, p, err := net.SplitHostPort(baseURL.Host); err == nil {
		addr = net.JoinHostPort(h, p)
	}

	engine := respond.EnvVarOrString(engineEnvVar, defaultEngineName)
	if engine != EngineGin {
		engine = EngineStd
	}

	return Config{
		APIMode:    respond.EnvVarOrBool(apiModeEnvVar, defaultAPIMode),
		BaseURL:    baseURL,
		CORSOrigin: os.Getenv(corsOriginEnvVar),
		Engine:     engine,
		Env:        respond.EnvVarOrEnv(environmentEnvVar, respond.Development),
		LogJSON:    respond.EnvVarOrBool(logJSONEnvVar, defaultLogJSON),
		LogLevel:   envVarOrLogLevel(logLevelEnvVar, defaultLogLvl),
		Maint:      respond.EnvVarOrBool(maintModeEnvVar, false),
		RateBurst:  respond.EnvVarOrInt(rateBurstEnvVar, defaultRateBurst),
		RateLimit:  respond.EnvVarOrFloat(rateLimitEnvVar, defaultRateLimit),
		SentryDSN:  os.Getenv(sentryDsnEnvVar),
		Server: ServerConfig{
			Addr:         addr,
			IdleTimeout:  respond.EnvVarOrDuration(serverIdleTimeoutEnvVar, DefaultServerIdleTimeout),
			ReadTimeout:  respond.EnvVarOrDuration(serverReadTimeoutEnvVar, DefaultServerReadTimeout),
			WriteTimeout: respond.EnvVarOrDuration(serverWriteTimeoutEnvVar, DefaultServerWriteTimeout),
		},
		ViewExt:  respond.EnvVarOrString(viewExtEnvVar, defaultViewExt),
		ViewsDir: respond.EnvVarOrString(viewsDirEnvVar, defaultViewsDir),
	}
}

// envVarOrLogLevel gets the environment variable from the provided key,
// creates a logger.LogLevel from the retrieved value,
// or returns the provided default logger.LogLevel
// if the value is an unknown logger.LogLevel.
func envVarOrLogLevel(key string, def logger.LogLevel) logger.LogLevel {
	val := os.Getenv(key)
	if val == "" {
		return def
	}

	ll := logger.NewLogLevel(val)
	if ll == logger.LogLevelUnk {
		return def
	}

	return ll
}
