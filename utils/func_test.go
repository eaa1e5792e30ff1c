package utils //nolint:revive // utils is an appropriate package name for utility functions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFunctionName(t *testing.T) {
	t.Parallel()

	t.Run("named function", func(t *testing.T) {
		t.Parallel()

		name, ok := FunctionName(TestFunctionName)
		assert.True(t, ok)
		assert.Equal(t, "github.com/amp-labs/amp-paramcheck/utils.TestFunctionName", name)
	})

	t.Run("anonymous function", func(t *testing.T) {
		t.Parallel()

		name, ok := FunctionName(func() {})
		assert.True(t, ok)
		assert.Contains(t, name, "func")
	})

	t.Run("nil", func(t *testing.T) {
		t.Parallel()

		var f func()

		for _, fn := range []any{nil, f} {
			_, ok := FunctionName(fn)
			assert.False(t, ok)
		}
	})

	t.Run("not a function", func(t *testing.T) {
		t.Parallel()

		for _, fn := range []any{"not a function", 42, &struct{}{}} {
			_, ok := FunctionName(fn)
			assert.False(t, ok)
		}
	})
}

func TestShortFunctionName(t *testing.T) {
	t.Parallel()

	name, ok := ShortFunctionName(TestShortFunctionName)
	assert.True(t, ok)
	assert.Equal(t, "utils.TestShortFunctionName", name)

	_, ok = ShortFunctionName(nil)
	assert.False(t, ok)
}
