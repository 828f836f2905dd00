package telemetry

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/tricks/internal/core/ports"
)

// OutputEvent is the span event name carrying a batch of process output lines.
const OutputEvent = "output"

// Attribute keys of an OutputEvent.
const (
	OutputLinesKey = "lines"
	OutputCountKey = "count"
)

// OTelTracer is a concrete implementation of ports.Tracer using OpenTelemetry.
type OTelTracer struct {
	tracer    trace.Tracer
	batchOpts []BatchOption
}

// NewOTelTracer creates a new OTelTracer using the global provider.
func NewOTelTracer(name string, opts ...BatchOption) *OTelTracer {
	return NewOTelTracerWithProvider(otel.GetTracerProvider(), name, opts...)
}

// NewOTelTracerWithProvider creates a new OTelTracer from an explicit provider.
func NewOTelTracerWithProvider(tp trace.TracerProvider, name string, opts ...BatchOption) *OTelTracer {
	return &OTelTracer{
		tracer:    tp.Tracer(name),
		batchOpts: opts,
	}
}

// Start creates a new span.
func (t *OTelTracer) Start(ctx context.Context, name string, opts ...ports.SpanOption) (context.Context, ports.Span) {
	cfg := &ports.SpanConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	ctx, span := t.tracer.Start(ctx, name, trace.WithAttributes(stringAttributes(cfg.Attributes)...))

	s := &OTelSpan{span: span}
	if span.IsRecording() {
		s.batcher = NewLineBatcher(func(lines []string) {
			span.AddEvent(OutputEvent, trace.WithAttributes(
				attribute.String(OutputLinesKey, strings.Join(lines, "\n")),
				attribute.Int(OutputCountKey, len(lines)),
			))
		}, t.batchOpts...)
	}

	return ctx, s
}

// OTelSpan is a concrete implementation of ports.Span using OpenTelemetry.
type OTelSpan struct {
	span    trace.Span
	batcher *LineBatcher
}

// End flushes buffered output and completes the span.
func (s *OTelSpan) End() {
	if s.batcher != nil {
		_ = s.batcher.Close()
	}
	s.span.End()
}

// RecordError records an error for the span.
func (s *OTelSpan) RecordError(err error) {
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

// SetAttribute adds a key-value pair to the span.
func (s *OTelSpan) SetAttribute(key string, value any) {
	switch v := value.(type) {
	case string:
		s.span.SetAttributes(attribute.String(key, v))
	case int:
		s.span.SetAttributes(attribute.Int(key, v))
	case int64:
		s.span.SetAttributes(attribute.Int64(key, v))
	case float64:
		s.span.SetAttributes(attribute.Float64(key, v))
	case bool:
		s.span.SetAttributes(attribute.Bool(key, v))
	case []string:
		s.span.SetAttributes(attribute.StringSlice(key, v))
	default:
		s.span.SetAttributes(attribute.String(key, fmt.Sprintf("%v", v)))
	}
}

// AddEvent records a named point in time on the span.
func (s *OTelSpan) AddEvent(name string, attrs map[string]string) {
	s.span.AddEvent(name, trace.WithAttributes(stringAttributes(attrs)...))
}

// Write satisfies io.Writer by batching output lines into span events.
func (s *OTelSpan) Write(p []byte) (n int, err error) {
	if s.batcher == nil {
		return len(p), nil
	}
	return s.batcher.Write(p)
}

func stringAttributes(m map[string]string) []attribute.KeyValue {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attrs := make([]attribute.KeyValue, 0, len(keys))
	for _, k := range keys {
		attrs = append(attrs, attribute.String(k, m[k]))
	}
	return attrs
}
