package logger

import (
	"context"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type contextKey struct{}

var (
	globalLevel = zap.NewAtomicLevelAt(zapcore.InfoLevel)

	globalLogger = New(globalLevel)
)

// New creates a console logger writing to stderr. A nil level enables the
// process-wide level.
func New(level zapcore.LevelEnabler) *zap.SugaredLogger {
	if level == nil {
		level = globalLevel
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(os.Stderr),
		level,
	)

	return zap.New(core).Sugar()
}

// ParseLogLevel converts a level name into a zap level. Unknown names yield
// InfoLevel and false.
func ParseLogLevel(s string) (zapcore.Level, bool) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(s)))); err != nil || s == "" {
		return zapcore.InfoLevel, false
	}
	return level, true
}

// Level returns the process-wide log level.
func Level() zapcore.Level {
	return globalLevel.Level()
}

// SetLevel changes the process-wide log level.
func SetLevel(level zapcore.Level) {
	globalLevel.SetLevel(level)
}

// Logger returns the process-wide logger.
func Logger() *zap.SugaredLogger {
	return globalLogger
}

// ToContext attaches l to ctx.
func ToContext(ctx context.Context, l *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// FromContext returns the logger attached to ctx, or the process-wide logger.
func FromContext(ctx context.Context) *zap.SugaredLogger {
	if ctx != nil {
		if l, ok := ctx.Value(contextKey{}).(*zap.SugaredLogger); ok {
			return l
		}
	}
	return Logger()
}

// WithKV returns a context whose logger carries the given key-value pairs.
func WithKV(ctx context.Context, kvs ...any) context.Context {
	return ToContext(ctx, FromContext(ctx).With(kvs...))
}

func DebugKV(ctx context.Context, msg string, kvs ...any)   { FromContext(ctx).Debugw(msg, kvs...) }
func Warnf(ctx context.Context, format string, args ...any) { FromContext(ctx).Warnf(format, args...) }
func ErrorKV(ctx context.Context, msg string, kvs ...any)   { FromContext(ctx).Errorw(msg, kvs...) }
