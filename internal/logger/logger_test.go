package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	t.Parallel()

	for _, level := range []zapcore.LevelEnabler{zapcore.DebugLevel, zapcore.ErrorLevel, nil} {
		assert.NotNil(t, New(level))
	}
}

func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected zapcore.Level
		valid    bool
	}{
		{name: "debug level", input: "debug", expected: zapcore.DebugLevel, valid: true},
		{name: "warn level", input: "warn", expected: zapcore.WarnLevel, valid: true},
		{name: "uppercase error", input: "ERROR", expected: zapcore.ErrorLevel, valid: true},
		{name: "with spaces", input: " info ", expected: zapcore.InfoLevel, valid: true},
		{name: "invalid level", input: "loud", expected: zapcore.InfoLevel, valid: false},
		{name: "empty string", input: "", expected: zapcore.InfoLevel, valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			level, valid := ParseLogLevel(tt.input)
			assert.Equal(t, tt.expected, level)
			assert.Equal(t, tt.valid, valid)
		})
	}
}

func TestSetLevel(t *testing.T) {
	original := Level()
	defer SetLevel(original)

	SetLevel(zapcore.DebugLevel)
	assert.Equal(t, zapcore.DebugLevel, Level())
}

func TestContextLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := ToContext(context.Background(), zap.New(core).Sugar())
	ctx = WithKV(ctx, "method", "GET")

	DebugKV(ctx, "built request", "uri", "/users")
	Warnf(ctx, "%d validation errors", 2)
	ErrorKV(ctx, "failed", "reason", "boom")

	entries := logs.All()
	if assert.Len(t, entries, 3) {
		assert.Equal(t, "built request", entries[0].Message)
		assert.Equal(t, "/users", entries[0].ContextMap()["uri"])
		assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
		assert.Equal(t, "2 validation errors", entries[1].Message)
		assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
		assert.Equal(t, "GET", entries[2].ContextMap()["method"])
		assert.Equal(t, "boom", entries[2].ContextMap()["reason"])
	}
}

func TestFromContextFallsBackToGlobal(t *testing.T) {
	assert.Equal(t, Logger(), FromContext(context.Background()))
}
