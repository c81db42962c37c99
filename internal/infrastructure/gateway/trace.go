package gateway

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var gatewayTracer = otel.Tracer("football-lab/internal/infrastructure/gateway")
var gatewayNoopSpan = trace.SpanFromContext(context.Background())

func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() {
		return ctx, gatewayNoopSpan
	}
	return gatewayTracer.Start(ctx, name, trace.WithAttributes(attrs...))
}
