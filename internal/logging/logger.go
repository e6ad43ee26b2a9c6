package logging

import (
	"fmt"
	"sort"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Fields map[string]any

// Logger is the format-string logger used across the service.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
	WithFields(Fields) Logger
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// New builds a zap backed logger. Valid environments are development, test,
// staging and production; level overrides the default level when set.
func New(env, level string) (Logger, error) {
	var config zap.Config

	switch env {
	case "development", "test", "":
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	case "production", "staging":
		config = zap.NewProductionConfig()
		config.EncoderConfig.TimeKey = "timestamp"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	default:
		return nil, fmt.Errorf("invalid environment: %s (must be development, test, staging, or production)", env)
	}

	if level != "" {
		var lvl zapcore.Level
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("invalid log level: %w", err)
		}
		config.Level = zap.NewAtomicLevelAt(lvl)
	}

	z, err := config.Build(
		zap.AddCallerSkip(1),
		zap.AddStacktrace(zapcore.ErrorLevel),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	return FromZap(z), nil
}

// FromZap wraps an existing zap logger.
func FromZap(z *zap.Logger) Logger {
	return &zapLogger{sugar: z.Sugar()}
}

// Nop discards everything.
func Nop() Logger {
	return FromZap(zap.NewNop())
}

func (l *zapLogger) Debug(format string, args ...any) { l.sugar.Debugf(format, args...) }

func (l *zapLogger) Info(format string, args ...any) { l.sugar.Infof(format, args...) }

func (l *zapLogger) Warn(format string, args ...any) { l.sugar.Warnf(format, args...) }

func (l *zapLogger) Error(format string, args ...any) { l.sugar.Errorf(format, args...) }

func (l *zapLogger) WithFields(fields Fields) Logger {
	if len(fields) == 0 {
		return l
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]any, 0, len(keys)*2)
	for _, key := range keys {
		pairs = append(pairs, key, fields[key])
	}

	return &zapLogger{sugar: l.sugar.With(pairs...)}
}

// Sync flushes buffered entries. Call it before shutdown.
func Sync(l Logger) error {
	if z, ok := l.(*zapLogger); ok {
		return z.sugar.Sync()
	}
	return nil
}
