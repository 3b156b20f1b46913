package telemetry

import (
	"bytes"
	"context"
	"testing"

	"github.com/phrazzld/tasks-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestSetupDisabled(t *testing.T) {
	before := otel.GetTracerProvider()

	shutdown, err := SetupWithWriter(context.Background(), config.TelemetryConfig{
		Enabled:     false,
		ServiceName: "tasks-api",
	}, &bytes.Buffer{}, nil)

	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
	assert.Equal(t, before, otel.GetTracerProvider(), "global provider must be untouched")
}

func TestNewTracerProviderExportsSpans(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer

	tp, err := NewTracerProvider(ctx, config.TelemetryConfig{
		Enabled:     true,
		ServiceName: "tasks-test",
		SampleRatio: 1,
	}, &buf)
	require.NoError(t, err)

	_, span := tp.Tracer("test").Start(ctx, "TaskService.CreateTask")
	span.End()

	require.NoError(t, tp.Shutdown(ctx), "shutdown flushes the batcher")
	assert.Contains(t, buf.String(), "TaskService.CreateTask")
	assert.Contains(t, buf.String(), "tasks-test")
}

func TestNewTracerProviderZeroRatioDropsSpans(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer

	tp, err := NewTracerProvider(ctx, config.TelemetryConfig{
		Enabled:     true,
		ServiceName: "tasks-test",
		SampleRatio: 0,
	}, &buf)
	require.NoError(t, err)

	_, span := tp.Tracer("test").Start(ctx, "dropped")
	span.End()

	require.NoError(t, tp.Shutdown(ctx))
	assert.NotContains(t, buf.String(), "dropped")
}
