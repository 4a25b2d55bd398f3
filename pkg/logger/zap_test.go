package logger

import (
	"context"
	"testing"

	"github.com/duccv/go-profile-guard/internal/constant"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestGetLogLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		level string
		env   string
		want  zapcore.Level
	}{
		{name: "debug in development", level: "debug", env: "development", want: zapcore.DebugLevel},
		{name: "invalid falls back to info", level: "loud", env: "development", want: zapcore.InfoLevel},
		{name: "debug not allowed in production", level: "debug", env: "production", want: zapcore.InfoLevel},
		{name: "warn allowed in production", level: "warn", env: "production", want: zapcore.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, getLogLevel(tt.level, tt.env).Level())
		})
	}
}

func TestFromContextAddsCorrelationID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	defer restore()

	ctx := context.WithValue(context.Background(), constant.CorrelationIDKey, "cid-1")
	FromContext(ctx).Info("with id")
	FromContext(context.Background()).Info("without id")

	entries := logs.All()
	assert.Len(t, entries, 2)
	assert.Equal(t, "cid-1", entries[0].ContextMap()["correlation_id"])
	assert.NotContains(t, entries[1].ContextMap(), "correlation_id")
}

func TestWithComponent(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.InfoLevel)
	WithComponent(zap.New(core), "sanitizer").Info("hello")

	assert.Equal(t, "sanitizer", logs.All()[0].ContextMap()["component"])
}
