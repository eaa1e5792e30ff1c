package spans

import (
	"context"

	"github.com/amp-labs/amp-paramcheck/contexts"
	"go.opentelemetry.io/otel/trace"
)

type contextKey string

// TracerKey is the context key the tracer is stored under.
const TracerKey contextKey = "tracer"

// WithTracer stores an OpenTelemetry tracer in the context. StartErr creates
// spans only when one is present.
func WithTracer(ctx context.Context, tracer trace.Tracer) context.Context {
	return contexts.WithValue[contextKey, trace.Tracer](ctx, TracerKey, tracer)
}

// TracerFromContext returns the tracer stored by WithTracer, if any.
func TracerFromContext(ctx context.Context) (trace.Tracer, bool) {
	tracer, found := contexts.GetValue[contextKey, trace.Tracer](ctx, TracerKey)
	if !found || tracer == nil {
		return nil, false
	}

	return tracer, true
}
