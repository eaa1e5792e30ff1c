package envutil

import (
	"context"
	"maps"

	"github.com/amp-labs/amp-paramcheck/contexts"
)

type overridesKey struct{}

// WithEnvOverride makes readers built with ctx see value for key, whatever the
// process environment says.
func WithEnvOverride(ctx context.Context, key string, value string) context.Context {
	return WithEnvOverrides(ctx, map[string]string{key: value})
}

// WithEnvOverrides is WithEnvOverride for several keys at once. Overrides
// already in ctx are kept unless values replaces them.
func WithEnvOverrides(ctx context.Context, values map[string]string) context.Context {
	existing, _ := contexts.GetValue[overridesKey, map[string]string](ctx, overridesKey{})

	merged := make(map[string]string, len(existing)+len(values))
	maps.Copy(merged, existing)
	maps.Copy(merged, values)

	return contexts.WithValue[overridesKey, map[string]string](ctx, overridesKey{}, merged)
}

func getEnvOverride(ctx context.Context, key string) (string, bool) {
	overrides, ok := contexts.GetValue[overridesKey, map[string]string](ctx, overridesKey{})
	if !ok {
		return "", false
	}

	value, ok := overrides[key]

	return value, ok
}
