// Package mlog declares the logger interface used throughout the
// request-processing pipeline and a context carrier for it, so
// handlers never depend on a concrete logging library directly.
package mlog

import "context"

// Logger is the common interface for log implementations.
type Logger interface {
	Info(args ...any)
	Infof(format string, args ...any)
	Infoln(args ...any)

	Error(args ...any)
	Errorf(format string, args ...any)
	Errorln(args ...any)

	Warn(args ...any)
	Warnf(format string, args ...any)
	Warnln(args ...any)

	Debug(args ...any)
	Debugf(format string, args ...any)
	Debugln(args ...any)

	Fatal(args ...any)
	Fatalf(format string, args ...any)
	Fatalln(args ...any)

	WithFields(fields ...any) Logger

	Sync() error
}

type contextKey string

const loggerContextKey contextKey = "logger"

// ContextWithLogger returns a context carrying logger.
func ContextWithLogger(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey, logger)
}

// FromContext extracts the Logger attached to ctx, or a NoneLogger if
// none was attached.
//
//nolint:ireturn
func FromContext(ctx context.Context) Logger {
	if logger := ctx.Value(loggerContextKey); logger != nil {
		if l, ok := logger.(Logger); ok {
			return l
		}
	}

	return &NoneLogger{}
}
