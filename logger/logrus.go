package logger

import (
	"fmt"
	"io"
	"runtime"

	"github.com/sirupsen/logrus"
)

// LogrusLogger implements Logger by emitting JSON lines through logrus.
// Each key of a LogContext becomes a top-level field.
type LogrusLogger struct {
	skip int
	l    *logrus.Logger
	ll   LogLevel
}

// NewLogrusLogger constructs a *LogrusLogger writing JSON to w at level ll.
func NewLogrusLogger(w io.Writer, ll LogLevel) *LogrusLogger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(logrus.TraceLevel)

	return &LogrusLogger{l: l, ll: ll}
}

// AddSkip replaces the current number of frames to scroll back
// when logging a message.
func (l *LogrusLogger) AddSkip(i int) SkipLogger {
	newl := *l
	newl.skip = i
	return &newl
}

func (l *LogrusLogger) Debug(msg string, ctx *LogContext) {
	l.log(LogLevelDebug, logrus.DebugLevel, msg, ctx)
}

func (l *LogrusLogger) Error(msg string, ctx *LogContext) {
	l.log(LogLevelError, logrus.ErrorLevel, msg, ctx)
}

// Fatal logs at logrus.ErrorLevel with a "fatal" field;
// it does not exit the process the way logrus.Fatal does.
func (l *LogrusLogger) Fatal(msg string, ctx *LogContext) {
	l.log(LogLevelFatal, logrus.ErrorLevel, msg, ctx)
}

func (l *LogrusLogger) Info(msg string, ctx *LogContext) {
	l.log(LogLevelInfo, logrus.InfoLevel, msg, ctx)
}

func (l *LogrusLogger) Warn(msg string, ctx *LogContext) {
	l.log(LogLevelWarn, logrus.WarnLevel, msg, ctx)
}

// LogLevel returns the LogLevel set for the LogrusLogger.
func (l *LogrusLogger) LogLevel() LogLevel { return l.ll }

// Skip returns the current amount of frames to scroll back
// when logging a message.
func (l *LogrusLogger) Skip() int { return l.skip }

func (l *LogrusLogger) log(level LogLevel, lvl logrus.Level, msg string, ctx *LogContext) {
	if l.ll > level {
		return
	}

	e := l.entry(ctx)
	if level == LogLevelFatal {
		e = e.WithField("fatal", true)
	}

	e.Log(lvl, msg)
}

// entry builds the *logrus.Entry carrying the caller and every field of ctx.
func (l *LogrusLogger) entry(ctx *LogContext) *logrus.Entry {
	var caller string
	if ctx != nil && ctx.Caller != "" {
		caller = ctx.Caller
	} else {
		_, file, line, _ := runtime.Caller(knownFrames + 1 + l.skip)
		caller = fmt.Sprintf(callerTmpl, immediateFilepath(file), line)
	}

	e := l.l.WithField("caller", caller)
	if ctx == nil {
		return e
	}

	for k, v := range ctx.fields() {
		e = e.WithField(k, v)
	}

	return e
}
