package telemetry_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/tsload/internal/adapters/telemetry"
	"go.trai.ch/tsload/internal/core/domain"
	"go.trai.ch/tsload/internal/core/ports"
	"go.trai.ch/tsload/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestInterfaceSatisfaction(_ *testing.T) {
	var _ ports.Tracer = (*telemetry.OTelTracer)(nil)
	var _ ports.Span = (*telemetry.OTelSpan)(nil)
	var _ sdktrace.SpanProcessor = (*telemetry.LogBridge)(nil)
}

func newRecordedTracer(t *testing.T) (*telemetry.OTelTracer, *tracetest.SpanRecorder) {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tp.Shutdown(t.Context()) })
	return telemetry.NewOTelTracerFrom(tp, "test"), recorder
}

func TestOTelTracer_Start(t *testing.T) {
	tracer, recorder := newRecordedTracer(t)

	ctx, span := tracer.Start(t.Context(), "session.bootstrap", ports.WithAttribute("instance", "web"))
	span.SetAttribute("strategy", domain.StrategyWatchDriven)
	span.SetAttribute("files", 3)
	tracer.EmitFiles(ctx, []string{"/project/a.ts"})
	n, err := span.Write([]byte("seeded"))
	require.NoError(t, err)
	assert.Equal(t, 6, n)
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	got := ended[0]
	assert.Equal(t, "session.bootstrap", got.Name())
	assert.Contains(t, got.Attributes(), attribute.String("instance", "web"))
	assert.Contains(t, got.Attributes(), attribute.String("strategy", domain.StrategyWatchDriven.String()))
	assert.Contains(t, got.Attributes(), attribute.Int("files", 3))

	events := got.Events()
	require.Len(t, events, 2)
	assert.Equal(t, "files_emitted", events[0].Name)
	assert.Equal(t, "log", events[1].Name)
}

func TestOTelSpan_RecordError(t *testing.T) {
	tracer, recorder := newRecordedTracer(t)

	_, span := tracer.Start(t.Context(), "session.emit")
	span.RecordError(nil)
	span.RecordError(errors.New("boom"))
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Equal(t, "boom", ended[0].Status().Description)
}

func TestNoOpTracer_Start(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()

	ctx, span := tracer.Start(t.Context(), "session.emit", ports.WithAttribute("instance", "web"))
	tracer.EmitFiles(ctx, []string{"a.ts"})

	span.SetAttribute("key", "value")
	span.RecordError(errors.New("ignored"))
	n, err := span.Write([]byte("test log"))
	require.NoError(t, err)
	assert.Equal(t, 8, n)
	span.End()

	assert.False(t, trace.SpanFromContext(ctx).IsRecording())
}

func TestLogBridge(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)

	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewLogBridge(logger)))
	t.Cleanup(func() { _ = tp.Shutdown(t.Context()) })
	tracer := telemetry.NewOTelTracerFrom(tp, "test")

	var infos, warns []string
	logger.EXPECT().Info(gomock.Any()).Do(func(msg string) { infos = append(infos, msg) })
	logger.EXPECT().Warn(gomock.Any()).Do(func(msg string) { warns = append(warns, msg) })

	_, ok := tracer.Start(t.Context(), "session.apply_delta")
	ok.End()

	_, failed := tracer.Start(t.Context(), "session.emit")
	failed.RecordError(errors.New("file is not part of the compilation"))
	failed.End()

	require.Len(t, infos, 1)
	assert.Regexp(t, `^session\.apply_delta took \S+$`, infos[0])
	require.Len(t, warns, 1)
	assert.Regexp(t, `^session\.emit failed after \S+: file is not part of the compilation$`, warns[0])
}
