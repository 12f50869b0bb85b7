package mlog

// NoneLogger discards everything written to it. Used as the fallback
// when no Logger has been attached to a context.
type NoneLogger struct{}

func (l *NoneLogger) Info(args ...any)                 {}
func (l *NoneLogger) Infof(format string, args ...any) {}
func (l *NoneLogger) Infoln(args ...any)               {}

func (l *NoneLogger) Error(args ...any)                 {}
func (l *NoneLogger) Errorf(format string, args ...any) {}
func (l *NoneLogger) Errorln(args ...any)               {}

func (l *NoneLogger) Warn(args ...any)                 {}
func (l *NoneLogger) Warnf(format string, args ...any) {}
func (l *NoneLogger) Warnln(args ...any)               {}

func (l *NoneLogger) Debug(args ...any)                 {}
func (l *NoneLogger) Debugf(format string, args ...any) {}
func (l *NoneLogger) Debugln(args ...any)               {}

func (l *NoneLogger) Fatal(args ...any)                 {}
func (l *NoneLogger) Fatalf(format string, args ...any) {}
func (l *NoneLogger) Fatalln(args ...any)               {}

func (l *NoneLogger) Sync() error { return nil }

//nolint:ireturn
func (l *NoneLogger) WithFields(fields ...any) Logger {
	return l
}

var _ Logger = (*NoneLogger)(nil)
