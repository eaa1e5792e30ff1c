package validate

import (
	"context"

	"github.com/amp-labs/amp-paramcheck/contexts"
)

type contextKey string

const argumentErrorsKey contextKey = "argumentErrors"

// WithArgumentErrors controls whether rejections made under ctx are wrapped in
// *errors.ArgumentError, which names the function and the parameter. The
// wrapped error unwraps to the original failure, so errors.Is and errors.As
// behave the same either way. The flag beats config.Config.ArgumentErrors.
func WithArgumentErrors(ctx context.Context, wrap bool) context.Context {
	return contexts.WithValue[contextKey, bool](ctx, argumentErrorsKey, wrap)
}

// wantArgumentErrors reports the context flag, or fallback when unset.
func wantArgumentErrors(ctx context.Context, fallback bool) bool {
	return contexts.GetValueOr(ctx, argumentErrorsKey, fallback)
}
