package telemetry_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/logshare/internal/adapters/telemetry"
	"go.trai.ch/logshare/internal/core/ports"
	"go.trai.ch/logshare/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func setupRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := trace.NewTracerProvider(trace.WithSpanProcessor(sr))
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return sr
}

func attributesOf(span trace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	out := make(map[attribute.Key]attribute.Value)
	for _, kv := range span.Attributes() {
		out[kv.Key] = kv.Value
	}
	return out
}

func TestOTelTracer_StartAppliesOptions(t *testing.T) {
	sr := setupRecorder(t)
	tracer := telemetry.NewOTelTracer(telemetry.InstrumentationName)

	_, span := tracer.Start(context.Background(), "Rendering bodies",
		ports.WithAttribute("logshare.workers", 8),
		ports.WithAttribute("logshare.format", "html"))
	span.End()

	ended := sr.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "Rendering bodies", ended[0].Name())

	attrs := attributesOf(ended[0])
	assert.Equal(t, int64(8), attrs["logshare.workers"].AsInt64())
	assert.Equal(t, "html", attrs["logshare.format"].AsString())
}

func TestOTelSpan_SetAttribute(t *testing.T) {
	sr := setupRecorder(t)
	tracer := telemetry.NewOTelTracer(telemetry.InstrumentationName)

	_, span := tracer.Start(context.Background(), "attrs")
	span.SetAttribute("s", "value")
	span.SetAttribute("i", 3)
	span.SetAttribute("i64", int64(4))
	span.SetAttribute("f", 0.5)
	span.SetAttribute("b", true)
	span.SetAttribute("list", []string{"a", "b"})
	span.SetAttribute("other", fmt.Errorf("boom"))
	span.End()

	ended := sr.Ended()
	require.Len(t, ended, 1)
	attrs := attributesOf(ended[0])
	assert.Equal(t, "value", attrs["s"].AsString())
	assert.Equal(t, int64(3), attrs["i"].AsInt64())
	assert.Equal(t, int64(4), attrs["i64"].AsInt64())
	assert.InDelta(t, 0.5, attrs["f"].AsFloat64(), 1e-9)
	assert.True(t, attrs["b"].AsBool())
	assert.Equal(t, []string{"a", "b"}, attrs["list"].AsStringSlice())
	assert.Equal(t, "boom", attrs["other"].AsString())
}

func TestOTelSpan_RecordErrorAndWrite(t *testing.T) {
	sr := setupRecorder(t)
	tracer := telemetry.NewOTelTracer(telemetry.InstrumentationName)

	_, span := tracer.Start(context.Background(), "Exporting html")
	n, err := span.Write([]byte("wrote logs.html"))
	require.NoError(t, err)
	assert.Equal(t, 15, n)
	span.RecordError(errors.New("disk full"))
	span.End()

	ended := sr.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Equal(t, "disk full", ended[0].Status().Description)

	var names []string
	for _, ev := range ended[0].Events() {
		names = append(names, ev.Name)
	}
	assert.Contains(t, names, "log")
	assert.Contains(t, names, "exception")
}

func TestSetup_ForwardsSpansToView(t *testing.T) {
	ctrl := gomock.NewController(t)
	view := mocks.NewMockProgressView(ctrl)
	view.EXPECT().OnPhaseStart(gomock.Any(), "Collecting bodies", gomock.Any())
	view.EXPECT().OnPhaseComplete(gomock.Any(), gomock.Any(), nil)

	tp := telemetry.Setup(view)
	defer func() { _ = tp.Shutdown(context.Background()) }()

	_, span := telemetry.NewOTelTracer(telemetry.InstrumentationName).Start(context.Background(), "Collecting bodies")
	span.End()
}
