// pkg/telemetry/telemetry.go
package telemetry

import (
	"context"
	"io"
	"os"

	cerr "github.com/cockroachdb/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

var tracer trace.Tracer = noop.NewTracerProvider().Tracer("logdir")

// Shutdown flushes and stops the tracer provider.
type Shutdown func(ctx context.Context) error

// Init configures OpenTelemetry; call this early in main(). When disabled a
// noop provider is installed. When enabled spans are written as JSON to w
// (stderr if nil) as they end.
func Init(service string, enabled bool, w io.Writer) (Shutdown, error) {
	if !enabled {
		tp := noop.NewTracerProvider()
		otel.SetTracerProvider(tp)
		tracer = tp.Tracer(service)
		return func(context.Context) error { return nil }, nil
	}

	if w == nil {
		w = os.Stderr
	}
	exp, err := stdouttrace.New(
		stdouttrace.WithWriter(w),
		stdouttrace.WithPrettyPrint(),
	)
	if err != nil {
		return nil, cerr.Wrap(err, "failed to create trace exporter")
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exp),
		sdktrace.WithResource(sdkresource.NewSchemaless(
			attribute.String("service.name", service),
			attribute.String("host.name", hostname()),
		)),
	)

	otel.SetTracerProvider(tp)
	tracer = tp.Tracer(service)
	return tp.Shutdown, nil
}

// Start a telemetry span with optional attributes.
func Start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if ctx == nil {
		ctx = context.Background()
	}
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// TraceID returns the span's trace ID, or "" when the span is not recording.
func TraceID(span trace.Span) string {
	sc := span.SpanContext()
	if !sc.HasTraceID() {
		return ""
	}
	return sc.TraceID().String()
}

func hostname() string {
	if h, err := os.Hostname(); err == nil {
		return h
	}
	return "unknown"
}
