package telemetry

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/tricks/internal/core/ports"
	"go.trai.ch/zerr"
)

// exceptionEvent is the event name span.RecordError emits. The error itself
// is logged from the span status.
const exceptionEvent = "exception"

// LogBridge implements sdktrace.SpanProcessor and reports finished spans through the logger.
type LogBridge struct {
	logger ports.Logger
}

// NewLogBridge returns a new LogBridge.
func NewLogBridge(logger ports.Logger) *LogBridge {
	return &LogBridge{logger: logger}
}

// OnStart does nothing, spans are reported once they end.
func (b *LogBridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd logs the span summary and every event except raw output batches and recorded errors.
func (b *LogBridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil || !s.SpanContext().IsValid() {
		return
	}

	duration := s.EndTime().Sub(s.StartTime()).Round(time.Millisecond)
	outputs := 0

	for _, ev := range s.Events() {
		if ev.Name == OutputEvent {
			outputs++
			continue
		}
		if ev.Name == exceptionEvent {
			continue
		}
		parts := make([]string, 0, len(ev.Attributes))
		for _, kv := range ev.Attributes {
			parts = append(parts, fmt.Sprintf("%s=%s", kv.Key, kv.Value.Emit()))
		}
		b.logger.Info(strings.TrimSpace(fmt.Sprintf("trace %s event %s %s", s.Name(), ev.Name, strings.Join(parts, " "))))
	}

	if s.Status().Code == codes.Error {
		desc := s.Status().Description
		if desc == "" {
			desc = "span failed"
		}
		b.logger.Error(zerr.With(zerr.New(desc), "span", s.Name()))
		return
	}

	b.logger.Info(fmt.Sprintf("trace %s finished in %s (%d output batches)", s.Name(), duration, outputs))
}

// ForceFlush does nothing.
func (b *LogBridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *LogBridge) Shutdown(_ context.Context) error {
	return nil
}
