// Package logging provides the structured logger used by the server and the
// profile extractor.
package logging

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a leveled structured logger.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
	Sync() error
}

// Field is a key-value pair attached to a log entry.
type Field = zap.Field

// Config controls logger construction.
type Config struct {
	Level       string
	Development bool
	OutputPaths []string
}

type zapLogger struct {
	logger *zap.Logger
}

// New builds a JSON logger with ISO-8601 timestamps.
func New(cfg Config) (logger Logger, err error) {
	zapCfg := zap.NewProductionConfig()
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapCfg.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	zapCfg.Level = zap.NewAtomicLevelAt(ParseLevel(cfg.Level))

	if len(cfg.OutputPaths) > 0 {
		zapCfg.OutputPaths = cfg.OutputPaths
	}

	if cfg.Development {
		zapCfg.Sampling = nil
	}

	var z *zap.Logger
	z, err = zapCfg.Build(zap.AddCallerSkip(1), zap.AddStacktrace(zapcore.ErrorLevel))
	if err != nil {
		err = errors.Wrap(err, "failed to build logger")
		return logger, err
	}

	logger = &zapLogger{logger: z}
	return logger, err
}

// ParseLevel maps a level name to a zap level. Unknown names map to info.
func ParseLevel(level string) (l zapcore.Level) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		l = zapcore.DebugLevel
	case "warn", "warning":
		l = zapcore.WarnLevel
	case "error":
		l = zapcore.ErrorLevel
	default:
		l = zapcore.InfoLevel
	}
	return l
}

func (l *zapLogger) Debug(msg string, fields ...Field) { l.logger.Debug(msg, fields...) }
func (l *zapLogger) Info(msg string, fields ...Field)  { l.logger.Info(msg, fields...) }
func (l *zapLogger) Warn(msg string, fields ...Field)  { l.logger.Warn(msg, fields...) }
func (l *zapLogger) Error(msg string, fields ...Field) { l.logger.Error(msg, fields...) }

func (l *zapLogger) With(fields ...Field) (logger Logger) {
	logger = &zapLogger{logger: l.logger.With(fields...)}
	return logger
}

func (l *zapLogger) Sync() (err error) {
	err = l.logger.Sync()
	return err
}

type nopLogger struct{}

// NewNop returns a logger that discards everything.
func NewNop() (logger Logger) {
	logger = nopLogger{}
	return logger
}

func (nopLogger) Debug(string, ...Field)          {}
func (nopLogger) Info(string, ...Field)           {}
func (nopLogger) Warn(string, ...Field)           {}
func (nopLogger) Error(string, ...Field)          {}
func (n nopLogger) With(...Field) (logger Logger) { return n }
func (nopLogger) Sync() (err error)               { return err }

type ctxKey struct{}

// WithContext stores logger in ctx.
func WithContext(ctx context.Context, logger Logger) (out context.Context) {
	out = context.WithValue(ctx, ctxKey{}, logger)
	return out
}

// FromContext returns the logger stored in ctx, or a no-op logger.
func FromContext(ctx context.Context) (logger Logger) {
	logger, ok := ctx.Value(ctxKey{}).(Logger)
	if !ok {
		logger = NewNop()
	}
	return logger
}

// String creates a string field.
func String(key, val string) (f Field) { return zap.String(key, val) }

// Int creates an int field.
func Int(key string, val int) (f Field) { return zap.Int(key, val) }

// Bool creates a bool field.
func Bool(key string, val bool) (f Field) { return zap.Bool(key, val) }

// Duration creates a duration field.
func Duration(key string, val time.Duration) (f Field) { return zap.Duration(key, val) }

// Err creates an error field under the "error" key.
func Err(err error) (f Field) { return zap.Error(err) }

// Strings creates a string slice field.
func Strings(key string, val []string) (f Field) { return zap.Strings(key, val) }

// Any creates a field for an arbitrary value.
func Any(key string, val any) (f Field) { return zap.Any(key, val) }
