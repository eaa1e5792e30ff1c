// Package contexts holds typed helpers for request-scoped flags: the argument
// error preference of the decorator, the tracer of the spans package, the
// logger subsystem and env overrides all travel through them.
package contexts

import "context"

// EnsureContext returns the first non-nil context, or context.Background().
func EnsureContext(ctx ...context.Context) context.Context {
	for _, c := range ctx {
		if c != nil {
			return c
		}
	}

	return context.Background()
}

// WithValue is a typed context.WithValue. A nil ctx is replaced by
// context.Background().
func WithValue[K any, V any](ctx context.Context, key K, value V) context.Context {
	return context.WithValue(EnsureContext(ctx), key, value)
}

// GetValue returns the value stored under key when it is present and has type V.
func GetValue[K any, V any](ctx context.Context, key K) (V, bool) {
	var zero V

	if ctx == nil {
		return zero, false
	}

	v, ok := ctx.Value(key).(V)
	if !ok {
		return zero, false
	}

	return v, true
}

// GetValueOr is GetValue with a fallback for missing values.
func GetValueOr[K any, V any](ctx context.Context, key K, fallback V) V {
	if v, ok := GetValue[K, V](ctx, key); ok {
		return v
	}

	return fallback
}
