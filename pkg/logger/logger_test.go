package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestInfo_AddsTraceIDs(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("catalog-test", &buf)
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	tp := sdktrace.NewTracerProvider()
	ctx, span := tp.Tracer("test").Start(context.Background(), "op")
	Info(ctx).Str("category", "Pharmacy").Msg("Product uploaded")
	span.End()

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "catalog-test", entry["service"])
	assert.Equal(t, "Pharmacy", entry["category"])
	assert.Equal(t, span.SpanContext().TraceID().String(), entry["trace_id"])
	assert.Contains(t, entry, "span_id")
}

func TestInfo_WithoutSpan(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("catalog-test", &buf)

	Warn(context.Background()).Msg("no span")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.NotContains(t, entry, "trace_id")
}

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	testCases := []struct {
		in   string
		want zerolog.Level
	}{
		{in: "debug", want: zerolog.DebugLevel},
		{in: "WARN", want: zerolog.WarnLevel},
		{in: "error", want: zerolog.ErrorLevel},
		{in: "chatty", want: zerolog.InfoLevel},
		{in: "", want: zerolog.InfoLevel},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			SetLevel(tc.in)
			assert.Equal(t, tc.want, zerolog.GlobalLevel())
		})
	}
}

func TestWithContext_RequestID(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("catalog-test", &buf)

	ctx := ContextWithRequestID(context.Background(), "req-42")
	assert.Equal(t, "req-42", RequestID(ctx))
	assert.Empty(t, RequestID(context.Background()))

	Error(ctx).Msg("failed")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-42", entry["request_id"])
	assert.Equal(t, "error", entry["level"])
}
