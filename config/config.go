// Package config holds the settings of the paramcheck engine: which side
// effects a decorated function has on every call and how rejections are reported.
//
// Values come from Default, from the environment (FromEnv) or from a YAML file
// (LoadFile, Parse):
//
//	metrics: true
//	log_rejections: true
//	rejection_level: warn
//	argument_errors: false
//	tracing: true
package config

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/amp-labs/amp-paramcheck/envutil"
	"github.com/amp-labs/amp-paramcheck/errors"
	"github.com/amp-labs/amp-paramcheck/xform"
	"gopkg.in/yaml.v3"
)

const (
	EnvMetrics        = "PARAMCHECK_METRICS"
	EnvLogRejections  = "PARAMCHECK_LOG_REJECTIONS"
	EnvRejectionLevel = "PARAMCHECK_REJECTION_LEVEL"
	EnvArgumentErrors = "PARAMCHECK_ARGUMENT_ERRORS"
	EnvTracing        = "PARAMCHECK_TRACING"
)

// Config is the engine configuration.
type Config struct {
	// MetricsEnabled records prometheus metrics for every call, including the
	// spans counter of checks that ran without a tracer.
	MetricsEnabled bool
	// LogRejections logs each rejected call at RejectionLevel.
	LogRejections  bool
	RejectionLevel slog.Level
	// ArgumentErrors wraps rejections in *errors.ArgumentError. The context flag
	// set by validate.WithArgumentErrors takes precedence.
	ArgumentErrors bool
	// TracingEnabled checks arguments inside a span when the context carries a tracer.
	TracingEnabled bool
}

// Default returns metrics and tracing on, rejections logged at debug, and
// rejections returned unwrapped.
func Default() Config {
	return Config{
		MetricsEnabled: true,
		LogRejections:  true,
		RejectionLevel: slog.LevelDebug,
		ArgumentErrors: false,
		TracingEnabled: true,
	}
}

// FromEnv overlays the PARAMCHECK_* environment variables on Default.
func FromEnv(ctx context.Context) (Config, error) {
	cfg := Default()

	var err error

	if cfg.MetricsEnabled, err = envutil.Bool(ctx, EnvMetrics,
		envutil.Default(cfg.MetricsEnabled)).Value(); err != nil {
		return Config{}, err
	}

	if cfg.LogRejections, err = envutil.Bool(ctx, EnvLogRejections,
		envutil.Default(cfg.LogRejections)).Value(); err != nil {
		return Config{}, err
	}

	if cfg.RejectionLevel, err = envutil.SlogLevel(ctx, EnvRejectionLevel,
		envutil.Default(cfg.RejectionLevel)).Value(); err != nil {
		return Config{}, err
	}

	if cfg.ArgumentErrors, err = envutil.Bool(ctx, EnvArgumentErrors,
		envutil.Default(cfg.ArgumentErrors)).Value(); err != nil {
		return Config{}, err
	}

	if cfg.TracingEnabled, err = envutil.Bool(ctx, EnvTracing,
		envutil.Default(cfg.TracingEnabled)).Value(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadFile reads a YAML configuration file. Keys missing from the file keep
// their Default value.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML over Default. Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	raw := rawConfig{}
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}

		return Config{}, &errors.ConfigurationError{Reason: fmt.Sprintf("cannot parse config: %v", err)}
	}

	if raw.Metrics != nil {
		cfg.MetricsEnabled = *raw.Metrics
	}

	if raw.LogRejections != nil {
		cfg.LogRejections = *raw.LogRejections
	}

	if raw.RejectionLevel != nil {
		level, err := parseLevel(*raw.RejectionLevel)
		if err != nil {
			return Config{}, &errors.ConfigurationError{Reason: err.Error()}
		}

		cfg.RejectionLevel = level
	}

	if raw.ArgumentErrors != nil {
		cfg.ArgumentErrors = *raw.ArgumentErrors
	}

	if raw.Tracing != nil {
		cfg.TracingEnabled = *raw.Tracing
	}

	return cfg, nil
}

// rawConfig tells keys that are absent from keys set to their zero value.
type rawConfig struct {
	Metrics        *bool   `yaml:"metrics"`
	LogRejections  *bool   `yaml:"log_rejections"`
	RejectionLevel *string `yaml:"rejection_level"`
	ArgumentErrors *bool   `yaml:"argument_errors"`
	Tracing        *bool   `yaml:"tracing"`
}

func parseLevel(value string) (slog.Level, error) {
	value, _ = xform.TrimString(value)
	value, _ = xform.ToLower(value)

	return xform.SlogLevel(value)
}

// MarshalYAML writes the level the way Parse reads it.
func (c Config) MarshalYAML() (any, error) {
	level := strings.ToLower(c.RejectionLevel.String())

	return struct {
		Metrics        bool   `yaml:"metrics"`
		LogRejections  bool   `yaml:"log_rejections"`
		RejectionLevel string `yaml:"rejection_level"`
		ArgumentErrors bool   `yaml:"argument_errors"`
		Tracing        bool   `yaml:"tracing"`
	}{c.MetricsEnabled, c.LogRejections, level, c.ArgumentErrors, c.TracingEnabled}, nil
}
