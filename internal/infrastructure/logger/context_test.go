package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWithContextAndFromContext(t *testing.T) {
	t.Run("round-trips a logger through context", func(t *testing.T) {
		logger := zap.NewNop()
		ctx := WithContext(context.Background(), logger)
		assert.Same(t, logger, FromContext(ctx))
	})

	t.Run("returns no-op logger when context has none", func(t *testing.T) {
		logger := FromContext(context.Background())
		require.NotNil(t, logger)
		assert.NotPanics(t, func() { logger.Info("safe") })
	})
}

func TestWithRequestID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	ctx, enriched := WithRequestID(context.Background(), logger, "req-123")

	assert.Equal(t, "req-123", GetRequestID(ctx))

	enriched.Info("hello")
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "req-123", logs.All()[0].ContextMap()["request_id"])
}

func TestWithSessionID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	ctx, enriched := WithSessionID(context.Background(), logger, "sess-abc")

	assert.Equal(t, "sess-abc", GetSessionID(ctx))

	enriched.Info("hello")
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "sess-abc", logs.All()[0].ContextMap()["session_id"])
}

func TestGetTraceID(t *testing.T) {
	t.Run("empty without an active span", func(t *testing.T) {
		assert.Empty(t, GetTraceID(context.Background()))
	})
}

func TestWithTraceContext(t *testing.T) {
	t.Run("returns logger unchanged without a span", func(t *testing.T) {
		logger := zap.NewNop()
		assert.Same(t, logger, WithTraceContext(context.Background(), logger))
	})
}

func TestContextLogger(t *testing.T) {
	t.Run("injects request and session fields", func(t *testing.T) {
		core, logs := observer.New(zapcore.InfoLevel)
		logger := zap.New(core)

		ctx := context.WithValue(context.Background(), RequestIDKey, "req-1")
		ctx = context.WithValue(ctx, SessionIDKey, "sess-1")

		WithLogger(ctx, logger).Info("checkout started")

		require.Equal(t, 1, logs.Len())
		fields := logs.All()[0].ContextMap()
		assert.Equal(t, "req-1", fields["request_id"])
		assert.Equal(t, "sess-1", fields["session_id"])
	})

	t.Run("L falls back to no-op logger", func(t *testing.T) {
		assert.NotPanics(t, func() {
			L(context.Background()).Info("no logger in context")
		})
	})

	t.Run("With adds fields to subsequent entries", func(t *testing.T) {
		core, logs := observer.New(zapcore.InfoLevel)
		logger := zap.New(core)

		WithLogger(context.Background(), logger).
			With(zap.String("component", "cart")).
			Info("item added")

		require.Equal(t, 1, logs.Len())
		assert.Equal(t, "cart", logs.All()[0].ContextMap()["component"])
	})

	t.Run("Zap returns a usable logger", func(t *testing.T) {
		core, logs := observer.New(zapcore.InfoLevel)
		logger := zap.New(core)

		WithLogger(context.Background(), logger).Zap().Info("direct")
		assert.Equal(t, 1, logs.Len())
	})
}
