package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestInitTracer_Disabled(t *testing.T) {
	tp, err := InitTracer(Config{ServiceName: "catalog-test"})
	require.NoError(t, err)

	_, isSDK := tp.(*sdktrace.TracerProvider)
	assert.False(t, isSDK)
	assert.NoError(t, Shutdown(context.Background(), tp))
}

func TestInitTracer_Enabled(t *testing.T) {
	tp, err := InitTracer(Config{
		ServiceName:    "catalog-test",
		JaegerEndpoint: "http://127.0.0.1:1/api/traces",
		Enabled:        true,
	})
	require.NoError(t, err)

	_, isSDK := tp.(*sdktrace.TracerProvider)
	assert.True(t, isSDK)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	// nothing was recorded, so shutdown does not need the collector
	_ = Shutdown(ctx, tp)
}

func TestSampler(t *testing.T) {
	assert.Equal(t, sdktrace.AlwaysSample().Description(), sampler(0).Description())
	assert.Equal(t, sdktrace.AlwaysSample().Description(), sampler(1).Description())
	assert.Contains(t, sampler(0.25).Description(), "TraceIDRatioBased{0.25}")
}
