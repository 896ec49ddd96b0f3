package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	appctx "isoref/internal/core/context"
)

func observed() (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return &Logger{zap.New(core).Sugar()}, logs
}

func TestWithContext_AddsTraceFields(t *testing.T) {
	l, logs := observed()
	ctx := appctx.WithTrace(context.Background(), &appctx.TraceContext{TraceID: "t-1", RequestID: "r-1"})

	l.WithContext(ctx).WithComponent("http").Infow("served", "status", 200)

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "t-1", fields["trace_id"])
	assert.Equal(t, "r-1", fields["request_id"])
	assert.Equal(t, "http", fields["component"])
	assert.EqualValues(t, 200, fields["status"])
}

func TestWithContext_NoTrace(t *testing.T) {
	l, _ := observed()
	assert.Same(t, l, l.WithContext(context.Background()))
}

func TestFromContext(t *testing.T) {
	l, logs := observed()
	ctx := WithLogger(context.Background(), l)

	Warn(ctx, "careful")
	Debug(ctx, "details")

	assert.Equal(t, 2, logs.Len())
	assert.NotNil(t, FromContext(context.Background()))
}

func TestNew_BadLevelFallsBack(t *testing.T) {
	l, err := New(Config{Level: "loud", OutputPaths: []string{"stderr"}})
	require.NoError(t, err)
	assert.True(t, l.Desugar().Core().Enabled(zap.InfoLevel))
	assert.False(t, l.Desugar().Core().Enabled(zap.DebugLevel))
}
