package telemetry

import (
	"testing"
	"time"

	"github.com/amp-labs/amp-paramcheck/envutil"
	"github.com/amp-labs/amp-paramcheck/logger"
	"github.com/amp-labs/amp-paramcheck/spans"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromEnv(t *testing.T) {
	t.Parallel()

	t.Run("empty boolean is rejected", func(t *testing.T) {
		t.Parallel()

		ctx := t.Context()
		for _, key := range []string{
			"OTEL_ENABLED", "OTEL_SERVICE_NAME", "OTEL_SERVICE_VERSION",
			"OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", "OTEL_EXPORTER_OTLP_LOGS_ENDPOINT",
			"OTEL_EXPORTER_OTLP_TIMEOUT",
		} {
			ctx = envutil.WithEnvOverride(ctx, key, "")
		}

		cfg, err := LoadConfigFromEnv(ctx, "test")
		require.Error(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Parallel()

		ctx := t.Context()
		ctx = envutil.WithEnvOverride(ctx, "OTEL_ENABLED", "true")
		ctx = envutil.WithEnvOverride(ctx, "OTEL_SERVICE_NAME", "checker")
		ctx = envutil.WithEnvOverride(ctx, "OTEL_SERVICE_VERSION", "2.0.0")
		ctx = envutil.WithEnvOverride(ctx, "OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", "http://collector:4318")
		ctx = envutil.WithEnvOverride(ctx, "OTEL_EXPORTER_OTLP_LOGS_ENDPOINT", "http://collector:4318")
		ctx = envutil.WithEnvOverride(ctx, "OTEL_EXPORTER_OTLP_TIMEOUT", "2s")

		cfg, err := LoadConfigFromEnv(ctx, "staging")
		require.NoError(t, err)
		assert.Equal(t, &Config{
			ServiceName:    "checker",
			ServiceVersion: "2.0.0",
			Environment:    "staging",
			TracesEndpoint: "http://collector:4318",
			LogsEndpoint:   "http://collector:4318",
			Enabled:        true,
			Timeout:        2 * time.Second,
		}, cfg)
	})

	t.Run("bad timeout", func(t *testing.T) {
		t.Parallel()

		ctx := envutil.WithEnvOverride(t.Context(), "OTEL_ENABLED", "false")
		ctx = envutil.WithEnvOverride(ctx, "OTEL_EXPORTER_OTLP_TIMEOUT", "soon")

		_, err := LoadConfigFromEnv(ctx, "test")
		require.Error(t, err)
	})
}

func TestInitialize_Disabled(t *testing.T) {
	t.Parallel()

	ctx := logger.WithMuted(t.Context(), true)

	out, err := Initialize(ctx, &Config{Enabled: false})
	require.NoError(t, err)
	assert.Equal(t, ctx, out)

	out, err = Initialize(ctx, &Config{Enabled: true})
	require.NoError(t, err)

	_, found := spans.TracerFromContext(out)
	assert.False(t, found)
}

// Installs global providers, so it does not run in parallel.
func TestInitialize(t *testing.T) { //nolint:paralleltest
	ctx := logger.WithMuted(t.Context(), true)

	out, err := Initialize(ctx, &Config{
		ServiceName:    "paramcheck-test",
		ServiceVersion: "0.0.1",
		Environment:    "test",
		TracesEndpoint: "http://127.0.0.1:4318",
		LogsEndpoint:   "http://127.0.0.1:4318",
		Enabled:        true,
		Timeout:        time.Second,
	})
	require.NoError(t, err)

	_, found := spans.TracerFromContext(out)
	assert.True(t, found)

	opts := LoggerOptions(logger.Options{Subsystem: "paramcheck-test"})
	assert.True(t, opts.OTel)
	assert.NotNil(t, opts.LoggerProvider)

	require.NoError(t, Shutdown(ctx))
	require.NoError(t, Shutdown(ctx))

	assert.False(t, LoggerOptions(logger.Options{}).OTel)
}
