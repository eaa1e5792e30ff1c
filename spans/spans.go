// Package spans runs a fallible operation inside an OpenTelemetry span.
//
// The tracer travels in the context (WithTracer). Without one the operation
// runs as is and only a "without tracer" counter is bumped, so callers never
// need to branch on whether tracing is configured:
//
//	ctx = spans.WithTracer(ctx, otel.Tracer("paramcheck"))
//	err := spans.StartErr(ctx, "paramcheck.check",
//	    spans.WithAttribute("function", attribute.StringValue("myfunc")),
//	).Enter(func(ctx context.Context, span trace.Span) error {
//	    return check(ctx)
//	})
package spans

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

// StartErr creates an orchestrator for a function that returns an error. A
// returned error is recorded on the span and sets its status to Error.
func StartErr(ctx context.Context, name string, opts ...Option) *StartErrorOrchestrator {
	return &StartErrorOrchestrator{
		ctx:  ctx,
		name: name,
		opts: opts,
	}
}

// StartErrorOrchestrator is created by StartErr.
type StartErrorOrchestrator struct {
	ctx  context.Context //nolint:containedctx
	name string
	opts []Option
}

// Enter runs f, within a span when the context carries a tracer. Panics are
// recorded on the span and re-raised.
func (o *StartErrorOrchestrator) Enter(f func(ctx context.Context, span trace.Span) error) error {
	if f == nil {
		return nil
	}

	tracer, found := TracerFromContext(o.ctx)
	r := newRunner(tracer, o.name, o.opts...)

	if !found {
		if r.metrics {
			spanWithoutTracerCounter.WithLabelValues(o.name).Inc()
		}

		return f(o.ctx, trace.SpanFromContext(o.ctx))
	}

	return r.runWithSpan(o.ctx, f)
}
