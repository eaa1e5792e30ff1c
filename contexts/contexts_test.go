package contexts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type contextKey string

func TestEnsureContext(t *testing.T) {
	t.Parallel()

	t.Run("returns first non-nil context", func(t *testing.T) {
		t.Parallel()

		ctx := context.WithValue(t.Context(), contextKey("key"), "value")

		assert.Equal(t, ctx, EnsureContext(nil, ctx, t.Context()))
	})

	t.Run("falls back to background", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, context.Background(), EnsureContext(nil, nil)) //nolint:usetesting
		assert.Equal(t, context.Background(), EnsureContext())         //nolint:usetesting
	})
}

func TestWithValue(t *testing.T) {
	t.Parallel()

	t.Run("stores the value", func(t *testing.T) {
		t.Parallel()

		ctx := WithValue(t.Context(), contextKey("flag"), true)
		assert.Equal(t, true, ctx.Value(contextKey("flag")))
	})

	t.Run("creates background context when nil", func(t *testing.T) {
		t.Parallel()

		ctx := WithValue[contextKey, int](nil, contextKey("n"), 42) //nolint:staticcheck
		assert.Equal(t, 42, ctx.Value(contextKey("n")))
	})
}

func TestGetValue(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		t.Parallel()

		ctx := WithValue(t.Context(), contextKey("flag"), true)

		value, ok := GetValue[contextKey, bool](ctx, contextKey("flag"))
		assert.True(t, ok)
		assert.True(t, value)
	})

	t.Run("missing key", func(t *testing.T) {
		t.Parallel()

		value, ok := GetValue[contextKey, string](t.Context(), contextKey("missing"))
		assert.False(t, ok)
		assert.Empty(t, value)
	})

	t.Run("type mismatch", func(t *testing.T) {
		t.Parallel()

		ctx := WithValue(t.Context(), contextKey("flag"), "yes")

		value, ok := GetValue[contextKey, bool](ctx, contextKey("flag"))
		assert.False(t, ok)
		assert.False(t, value)
	})

	t.Run("nil context", func(t *testing.T) {
		t.Parallel()

		_, ok := GetValue[contextKey, bool](nil, contextKey("flag")) //nolint:staticcheck
		assert.False(t, ok)
	})
}

func TestGetValueOr(t *testing.T) {
	t.Parallel()

	ctx := WithValue(t.Context(), contextKey("level"), 3)

	assert.Equal(t, 3, GetValueOr(ctx, contextKey("level"), 1))
	assert.Equal(t, 1, GetValueOr(ctx, contextKey("other"), 1))
}
