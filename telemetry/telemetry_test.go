package telemetry

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func useRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)))
	t.Cleanup(func() { otel.SetTracerProvider(previous) })
	return recorder
}

func TestInit_Disabled(t *testing.T) {
	shutdown, err := Init(context.Background(), Config{Disable: true})
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
	assert.NotNil(t, otel.GetTextMapPropagator())
}

func TestInit_StderrExporter(t *testing.T) {
	t.Setenv(EndpointEnv, "")
	previous := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	shutdown, err := Init(context.Background(), Config{ServiceVersion: "1.0.0"})
	require.NoError(t, err)
	require.NotNil(t, shutdown)

	_, ok := otel.GetTracerProvider().(*sdktrace.TracerProvider)
	assert.True(t, ok, "expected an SDK tracer provider to be installed")

	_, span := Start(context.Background(), "product.generate")
	End(span, nil)

	assert.NoError(t, shutdown(context.Background()))
}

func TestStartEnd_Success(t *testing.T) {
	recorder := useRecorder(t)

	_, span := Start(context.Background(), "product.generate", attribute.String("product.category", "Электроника"))
	End(span, nil)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "product.generate", spans[0].Name())
	assert.Equal(t, codes.Ok, spans[0].Status().Code)
	assert.Contains(t, spans[0].Attributes(), attribute.String("product.category", "Электроника"))
}

func TestStartEnd_Error(t *testing.T) {
	recorder := useRecorder(t)

	_, span := Start(context.Background(), "product.generate")
	End(span, errors.New("provider unavailable"))

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "provider unavailable", spans[0].Status().Description)
	require.Len(t, spans[0].Events(), 1)
	assert.Equal(t, "exception", spans[0].Events()[0].Name)
}

func TestEnd_NilSpan(t *testing.T) {
	assert.NotPanics(t, func() { End(nil, errors.New("ignored")) })
}
