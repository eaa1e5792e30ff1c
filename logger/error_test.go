//nolint:err113
package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnotateError(t *testing.T) {
	t.Parallel()

	t.Run("nil error", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, AnnotateError(nil, "key", "value"))
	})

	t.Run("keeps message and chain", func(t *testing.T) {
		t.Parallel()

		baseErr := errors.New("base error")
		annotated := AnnotateError(baseErr, "param", "a", "kind", "validation")

		assert.Equal(t, "base error", annotated.Error())
		require.ErrorIs(t, annotated, baseErr)

		var se *slogError
		require.ErrorAs(t, annotated, &se)
		require.Len(t, se.attrs, 2)
		assert.Equal(t, "param", se.attrs[0].Key)
		assert.Equal(t, "kind", se.attrs[1].Key)
	})
}

func newJSONLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(&slogErrorLogger{inner: slog.NewJSONHandler(buf, nil)})
}

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	return out
}

func TestSlogErrorLogger_Handle(t *testing.T) {
	t.Parallel()

	t.Run("expands annotated errors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		err := AnnotateError(errors.New("rejected"), "param", "a")
		newJSONLogger(&buf).Info("argument rejected", "error", err, "function", "myfunc")

		out := decode(t, &buf)
		assert.Equal(t, "rejected", out["error"])
		assert.Equal(t, "a", out["param"])
		assert.Equal(t, "myfunc", out["function"])
	})

	t.Run("keeps plain errors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		newJSONLogger(&buf).Info("failed", "error", errors.New("plain"))

		out := decode(t, &buf)
		assert.Equal(t, "plain", out["error"])
	})

	t.Run("finds annotations through wrapping", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		inner := AnnotateError(errors.New("inner"), "validator", "is.Even")
		newJSONLogger(&buf).Info("failed", "error", errors.Join(inner))

		out := decode(t, &buf)
		assert.Equal(t, "is.Even", out["validator"])
	})

	t.Run("with attrs and groups keep expanding", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		log := newJSONLogger(&buf).With("function", "myfunc").WithGroup("call")
		log.Info("failed", "error", AnnotateError(errors.New("x"), "param", "b"))

		out := decode(t, &buf)
		assert.Equal(t, "myfunc", out["function"])

		call, ok := out["call"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "b", call["param"])
	})
}
