// Package logger provides structured logging for the reqbuild CLI on top of
// the Zap logging library. It holds a process-wide logger with an adjustable
// level, helpers for attaching a logger to a context, and leveled logging
// functions that accept plain messages, format strings or key-value pairs.
package logger
