package telemetry

import "go.opentelemetry.io/otel/trace/noop"

// NewNoOpTracer returns a tracer whose spans are never recorded or exported.
func NewNoOpTracer() *OTelTracer {
	return NewOTelTracerFrom(noop.NewTracerProvider(), InstrumentationName)
}
