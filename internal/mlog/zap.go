package mlog

import "go.uber.org/zap"

// ZapLogger is a zap-backed Logger.
type ZapLogger struct {
	Sugar *zap.SugaredLogger
}

// NewZapLogger builds a ZapLogger at the given level ("debug", "info",
// "warn", "error"), logging structured JSON to stderr.
func NewZapLogger(level string) (*ZapLogger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		lvl = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	return &ZapLogger{Sugar: logger.Sugar()}, nil
}

func (l *ZapLogger) Info(args ...any)                 { l.Sugar.Info(args...) }
func (l *ZapLogger) Infof(format string, args ...any) { l.Sugar.Infof(format, args...) }
func (l *ZapLogger) Infoln(args ...any)               { l.Sugar.Infoln(args...) }

func (l *ZapLogger) Error(args ...any)                 { l.Sugar.Error(args...) }
func (l *ZapLogger) Errorf(format string, args ...any) { l.Sugar.Errorf(format, args...) }
func (l *ZapLogger) Errorln(args ...any)               { l.Sugar.Errorln(args...) }

func (l *ZapLogger) Warn(args ...any)                 { l.Sugar.Warn(args...) }
func (l *ZapLogger) Warnf(format string, args ...any) { l.Sugar.Warnf(format, args...) }
func (l *ZapLogger) Warnln(args ...any)               { l.Sugar.Warnln(args...) }

func (l *ZapLogger) Debug(args ...any)                 { l.Sugar.Debug(args...) }
func (l *ZapLogger) Debugf(format string, args ...any) { l.Sugar.Debugf(format, args...) }
func (l *ZapLogger) Debugln(args ...any)               { l.Sugar.Debugln(args...) }

func (l *ZapLogger) Fatal(args ...any)                 { l.Sugar.Fatal(args...) }
func (l *ZapLogger) Fatalf(format string, args ...any) { l.Sugar.Fatalf(format, args...) }
func (l *ZapLogger) Fatalln(args ...any)               { l.Sugar.Fatalln(args...) }

// WithFields returns a new ZapLogger with fields added to every
// subsequent entry. The receiver is left unchanged.
//
//nolint:ireturn
func (l *ZapLogger) WithFields(fields ...any) Logger {
	return &ZapLogger{Sugar: l.Sugar.With(fields...)}
}

// Sync flushes any buffered log entries.
func (l *ZapLogger) Sync() error { return l.Sugar.Sync() }

var _ Logger = (*ZapLogger)(nil)
