/*
Package logger provides logging functionality to the respond packages by defining the required behavior in [Logger]
and providing implementations of it with [TextLogger], [LogrusLogger] and [SentryLogger].

# Overview

The Logger interface outputs messages at certain levels of importance.
LogLevel is the type to use to represent those levels.
An implementation of Logger may be initialized at a certain [LogLevel]
and only emit messages at or above that level of importance.
For example, if [New] is called with WithLevel(LogLevelWarn),
only Warn, Error, and Fatal produce messages.

# TextLogger

The [TextLogger] is the implementation of [Logger] returned by [New] by default.

Log messages emitted by [TextLogger] are composed of a few parts:
  - timestamp
  - log level
  - call site
  - message
  - log context

Here's an example:

	2022/04/28 15:55:21 [DEBUG] http/resp/ok.go:43 'negotiated xml' log_context: {"data":{"view":"profile"}}

# LogrusLogger

WithJSON swaps [TextLogger] for [LogrusLogger], which writes each message as a JSON object
with the log context flattened into top-level fields.

# SkipLogger

Sometimes, especially with internal packages, the file and line number in a log needs to be configurable.
[SkipLogger] provides additional configuration functionality by setting the number of frames to skip
back in order to reach the desired caller.
*/
package logger
