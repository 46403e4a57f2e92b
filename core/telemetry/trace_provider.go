package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.opentelemetry.io/otel/trace/noop"
)

// CollectorEndpoint describes where spans are exported.
type CollectorEndpoint struct {
	Endpoint      string // host:port of the OTLP/HTTP collector; empty disables export.
	CACertsBase64 string // Base64 encoded PEM bundle; when empty the connection is insecure.
}

// ShutdownFunc flushes and stops the installed provider.
type ShutdownFunc func(ctx context.Context) error

// InstallTraceProvider installs a global trace provider based on the http otlp exporter
// and the W3C propagators. Without an endpoint a noop provider is installed.
func InstallTraceProvider(
	settings CollectorEndpoint,
	serviceName string,
) (ShutdownFunc, error) {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	noShutdown := func(context.Context) error { return nil }

	if settings.Endpoint == "" {
		otel.SetTracerProvider(noop.NewTracerProvider())
		return noShutdown, nil
	}

	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(settings.Endpoint)}
	if settings.CACertsBase64 == "" {
		opts = append(opts, otlptracehttp.WithInsecure())
	} else {
		tlsConfig, err := getTLSConfig(settings.CACertsBase64)
		if err != nil {
			return noShutdown, err
		}
		opts = append(opts, otlptracehttp.WithTLSClientConfig(tlsConfig))
	}

	exporter, err := otlptrace.New(context.Background(), otlptracehttp.NewClient(opts...))
	if err != nil {
		return noShutdown, fmt.Errorf("creating OTLP trace exporter: %w", err)
	}

	r, err := resource.Merge(
		resource.Default(),
		resource.NewSchemaless(semconv.ServiceName(serviceName)))
	if err != nil {
		return noShutdown, fmt.Errorf("creating resource: %w", err)
	}

	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(r))
	otel.SetTracerProvider(tracerProvider)

	return tracerProvider.Shutdown, nil
}
