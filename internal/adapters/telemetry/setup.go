package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/tricks/internal/core/ports"
)

// Setup registers the global tracer provider. With verbose set, finished spans
// are reported through logger. The returned function shuts the provider down.
func Setup(logger ports.Logger, verbose bool) func(context.Context) error {
	var opts []sdktrace.TracerProviderOption
	if verbose {
		opts = append(opts, sdktrace.WithSpanProcessor(NewLogBridge(logger)))
	}

	tp := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)

	return tp.Shutdown
}
