// Package telemetry exports shell activity as OpenTelemetry spans.
//
// Export is opt-in: without OTEL_EXPORTER_OTLP_ENDPOINT, New returns a nil *Tracer and every
// method on a nil *Tracer is a no-op.
package telemetry

import (
	"context"
	"os"

	"folio/internal/contact"
	"folio/internal/viewstate"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

const (
	// EndpointEnv enables export when set.
	EndpointEnv = "OTEL_EXPORTER_OTLP_ENDPOINT"
	// ServiceNameEnv overrides the reported service name.
	ServiceNameEnv = "OTEL_SERVICE_NAME"

	defaultServiceName  = "folio"
	instrumentationName = "folio/shell"
)

// Tracer records navigation and contact submissions as spans.
type Tracer struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

var _ contact.Sink = (*Tracer)(nil)

// New creates a Tracer exporting over OTLP/HTTP if OTEL_EXPORTER_OTLP_ENDPOINT is set.
// The endpoint is a base URL such as http://collector:4318; the exporter reads it (and the
// other OTEL_EXPORTER_OTLP_* variables) itself and posts to its /v1/traces path.
// Returns nil, nil when the endpoint is not configured.
func New(ctx context.Context) (*Tracer, error) {
	if os.Getenv(EndpointEnv) == "" {
		return nil, nil
	}

	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}
	return NewWithExporter(exporter), nil
}

// NewWithExporter builds a Tracer over any span exporter, batching exports.
func NewWithExporter(exporter sdktrace.SpanExporter) *Tracer {
	serviceName := os.Getenv(ServiceNameEnv)
	if serviceName == "" {
		serviceName = defaultServiceName
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	return &Tracer{
		provider: provider,
		tracer:   provider.Tracer(instrumentationName),
	}
}

// Record implements contact.Sink with one "contact.submit" span per submission.
func (t *Tracer) Record(ctx context.Context, sub contact.Submission) {
	if t == nil {
		return
	}
	_, span := t.tracer.Start(ctx, "contact.submit")
	span.SetAttributes(
		attribute.String("folio.contact.name", sub.Name),
		attribute.String("folio.contact.email", sub.Email),
		attribute.Int("folio.contact.message_length", len(sub.Message)),
	)
	span.End()
}

// Navigated records a section change.
func (t *Tracer) Navigated(ctx context.Context, from, to viewstate.Section) {
	if t == nil {
		return
	}
	_, span := t.tracer.Start(ctx, "shell.navigate")
	span.SetAttributes(
		attribute.String("folio.section.from", from.String()),
		attribute.String("folio.section.to", to.String()),
	)
	span.End()
}

// Flush exports all ended spans without stopping the exporter.
func (t *Tracer) Flush(ctx context.Context) error {
	if t == nil {
		return nil
	}
	return t.provider.ForceFlush(ctx)
}

// Shutdown flushes pending spans and stops the exporter.
func (t *Tracer) Shutdown(ctx context.Context) error {
	if t == nil {
		return nil
	}
	return t.provider.Shutdown(ctx)
}
