/*
Package ranger initializes and manages an app answering through *resp.Response with sane defaults.

# Ranger

The main entrypoint to package ranger is the [Ranger] type, constructed with [New].

[*Ranger.Guide] begins the app's web server.
By default, [*Ranger.Guide] listens on [DefaultHost][DefaultPort] (localhost:3000).
Stop that web server with [*Ranger.Shutdown],
cancel the context.Context set with [WithContext],
or send a signal [*Ranger.Guide] listens for.

Requests pass through, in order:
middleware.Recover, middleware.ReportPanic, middleware.RequestID, middleware.InjectIPAddress,
middleware.LogRequest, middleware.CORS, middleware.RateLimit and middleware.ForceHTTPS,
before reaching the engine, which installs the request's *resp.Response.

# Configuration

A developer configures the app through environment variables, read by [NewConfig],
and through [RangerOption]s passed to [New].

Environment variables ought to be set in a file called ".env"
found at the same directory the application is executed from.

Here are the available environment variables.
  - API_MODE: answer HTML requests for views with XML; default: false
  - BASE_URL: the base URL the application runs on; replaces HOST & PORT
  - CORS_ORIGIN: the origin allowed to make cross-origin requests; default: none
  - ENGINE: std or gin; default: std
  - ENVIRONMENT: DEMO, DEVELOPMENT, PRODUCTION, REVIEW, STAGING or TESTING; default: DEVELOPMENT
  - HOST: the host the web server listens on; default: localhost
  - LOG_JSON: log JSON lines, which any environment but DEVELOPMENT does regardless; default: false
  - LOG_LEVEL: DEBUG, INFO, WARN, ERROR or FATAL; default: INFO
  - MAINTENANCE_MODE: answer every request with 503; default: false
  - PORT: the port the web server listens on; default: :3000
  - RATE_BURST: requests an IP address may burst to; default: 20
  - RATE_LIMIT: requests per second an IP address may make; default: 5
  - SENTRY_DSN: the Sentry DSN errors and panics are reported to
  - SERVER_IDLE_TIMEOUT: default: 120s
  - SERVER_READ_TIMEOUT: default: 5s
  - SERVER_WRITE_TIMEOUT: default: 5s
  - VIEW_EXT: the extension appended to views named without one; default: .tmpl
  - VIEWS_DIR: the directory views are found in; default: views
*/
package ranger
