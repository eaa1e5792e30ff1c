package spans

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Option configures the span created by an orchestrator.
type Option func(*runner)

// WithAttribute adds an attribute to the span when it is created.
func WithAttribute(key attribute.Key, value attribute.Value) Option {
	return func(r *runner) {
		r.sso = append(r.sso, trace.WithAttributes(attribute.KeyValue{
			Key:   key,
			Value: value,
		}))
	}
}

// WithSpanKind sets the span kind. The default is SpanKindInternal.
func WithSpanKind(kind trace.SpanKind) Option {
	return func(r *runner) {
		r.spanKind = kind
	}
}

// WithSuccessMessage sets the status description used when the function
// succeeds. It defaults to "ok".
func WithSuccessMessage(description string) Option {
	return func(r *runner) {
		r.success = description
	}
}

// WithErrorMessage sets a prefix for the status description used when the
// function fails: "<prefix>: <error>".
func WithErrorMessage(description string) Option {
	return func(r *runner) {
		r.failure = description
	}
}

// WithSpanDecorator registers a function that runs on the span before the
// wrapped function does. Decorators run in registration order.
func WithSpanDecorator(decorator func(span trace.Span)) Option {
	return func(r *runner) {
		r.decorate = append(r.decorate, decorator)
	}
}

// WithMetrics controls whether a run without a tracer is counted in
// paramcheck_spans_without_tracer_total. It is on by default.
func WithMetrics(enabled bool) Option {
	return func(r *runner) {
		r.metrics = enabled
	}
}
