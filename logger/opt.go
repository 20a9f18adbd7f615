package logger

import (
	"io"
	"log"
)

// config collects the choices made by LoggerOptFns before New builds a Logger.
type config struct {
	tl        *TextLogger
	json      io.Writer
	sentryDSN string
}

// A LoggerOptFn is a functional option configuring a Logger when constructing a new one.
type LoggerOptFn func(*config)

// WithEnv sets the environment the Logger is operating in.
func WithEnv(env string) LoggerOptFn {
	return func(c *config) {
		c.tl.env = env
	}
}

// WithJSON emits structured JSON lines to w through logrus instead of colorized text.
func WithJSON(w io.Writer) LoggerOptFn {
	return func(c *config) {
		c.json = w
	}
}

// WithLevel sets the log level the Logger uses.
func WithLevel(level LogLevel) LoggerOptFn {
	return func(c *config) {
		c.tl.ll = level
	}
}

// WithLogger sets the log.Logger a TextLogger uses.
func WithLogger(log *log.Logger) LoggerOptFn {
	return func(c *config) {
		c.tl.l = log
	}
}

// WithSentryDSN ships Warn, Error and Fatal logs carrying an error to Sentry.
//
// An empty dsn does nothing.
func WithSentryDSN(dsn string) LoggerOptFn {
	return func(c *config) {
		c.sentryDSN = dsn
	}
}

// WithSkip sets the number of frames in the call stack
// to skip in order to log the desired file and line number
// of the calling code.
func WithSkip(skip int) LoggerOptFn {
	return func(c *config) {
		c.tl.skip = skip
	}
}
