package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// TracerName is the instrumentation name of the dispatcher spans.
const TracerName = "github.com/anoideaopen/commandline"

type TracingHandler struct {
	Tracer      trace.Tracer
	Propagators propagation.TextMapPropagator
}

// NewTracingHandler returns a handler tracing with tp, or with the global provider when tp is nil.
func NewTracingHandler(tp trace.TracerProvider) *TracingHandler {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}

	return &TracingHandler{
		Tracer:      tp.Tracer(TracerName),
		Propagators: otel.GetTextMapPropagator(),
	}
}

// StartNewSpan starts new span
func (th *TracingHandler) StartNewSpan(ctx context.Context, spanName string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	if ctx == nil {
		ctx = context.Background()
	}

	return th.Tracer.Start(ctx, spanName, opts...)
}

// ContextFromEnv returns ctx carrying the remote span context found in environ, if any.
func (th *TracingHandler) ContextFromEnv(ctx context.Context, environ []string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return th.Propagators.Extract(ctx, CarrierFromEnv(environ))
}

// RemoteCarrier returns the propagation fields of the span in ctx.
func (th *TracingHandler) RemoteCarrier(ctx context.Context) propagation.MapCarrier {
	carrier := propagation.MapCarrier{}
	th.Propagators.Inject(ctx, carrier)
	return carrier
}

// EndSpan sets the span status from err and ends it.
func EndSpan(span trace.Span, err error) {
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
