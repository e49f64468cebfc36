package telemetry_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/reattach/internal/adapters/telemetry"
	"go.trai.ch/reattach/internal/core/ports"
	"go.trai.ch/reattach/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestInterfaceSatisfaction(_ *testing.T) {
	var _ ports.Tracer = (*telemetry.OTelTracer)(nil)
	var _ ports.Span = (*telemetry.OTelSpan)(nil)
	var _ ports.Tracer = (*telemetry.NoOpTracer)(nil)
	var _ ports.Span = (*telemetry.NoOpSpan)(nil)
	var _ sdktrace.SpanProcessor = (*telemetry.LogBridge)(nil)
}

func newRecordedTracer(t *testing.T) (*telemetry.OTelTracer, *tracetest.SpanRecorder) {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = provider.Shutdown(t.Context()) })
	return telemetry.NewOTelTracerFrom(provider, "test"), recorder
}

func TestOTelTracer_Start(t *testing.T) {
	tracer, recorder := newRecordedTracer(t)

	_, span := tracer.Start(t.Context(), "reconnect.discover", ports.WithAttribute("app", "hello"))
	span.SetAttribute("versions", 2)
	span.SetAttribute("full", false)
	span.SetAttribute("tags", []string{"x", "y"})
	span.SetAttribute("dir", struct{ Name string }{"runs"})
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "reconnect.discover", ended[0].Name())
	assert.ElementsMatch(t, []attribute.KeyValue{
		attribute.String("app", "hello"),
		attribute.Int("versions", 2),
		attribute.Bool("full", false),
		attribute.StringSlice("tags", []string{"x", "y"}),
		attribute.String("dir", "{runs}"),
	}, ended[0].Attributes())
	assert.Equal(t, codes.Unset, ended[0].Status().Code)
}

func TestOTelSpan_RecordError(t *testing.T) {
	tracer, recorder := newRecordedTracer(t)

	_, span := tracer.Start(t.Context(), "reconnect.test")
	span.RecordError(nil)
	span.RecordError(errors.New("permission denied"))
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Equal(t, "permission denied", ended[0].Status().Description)
	require.Len(t, ended[0].Events(), 1)
	assert.Equal(t, "exception", ended[0].Events()[0].Name)
}

func TestNoOpTracer_Start(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()

	ctx, span := tracer.Start(t.Context(), "test-span")
	assert.Equal(t, t.Context(), ctx)
	assert.NotNil(t, span)

	span.SetAttribute("key", "value")
	span.RecordError(errors.New("ignored"))
	span.End()
}

func TestFormatSpan(t *testing.T) {
	start := time.Date(2023, 1, 2, 3, 4, 5, 0, time.UTC)
	stub := tracetest.SpanStub{
		Name:      "reconnect.discover",
		StartTime: start,
		EndTime:   start.Add(1500 * time.Microsecond),
		Attributes: []attribute.KeyValue{
			attribute.String("problem", "none"),
			attribute.String("app", "hello"),
		},
	}
	assert.Equal(t, "span reconnect.discover app=hello problem=none (1.5ms)", telemetry.FormatSpan(stub.Snapshot()))

	stub.Status = sdktrace.Status{Code: codes.Error, Description: "no runs"}
	assert.Equal(t,
		"span reconnect.discover app=hello problem=none (1.5ms) failed: no runs",
		telemetry.FormatSpan(stub.Snapshot()),
	)
}

func TestLogBridge_OnEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	var logged string
	log.EXPECT().Debug(gomock.Any()).Do(func(msg string) { logged = msg })

	provider := telemetry.NewProvider(log)
	t.Cleanup(func() { _ = provider.Shutdown(t.Context()) })

	tracer := telemetry.NewOTelTracerFrom(provider, "test")
	_, span := tracer.Start(t.Context(), "reconnect.discover", ports.WithAttribute("app", "hello"))
	span.End()

	assert.True(t, strings.HasPrefix(logged, "span reconnect.discover app=hello ("), logged)
}
