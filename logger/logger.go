// Package logger configures log/slog for paramcheck and hands out loggers
// scoped to a context: subsystem, extra key-values added with With, an
// explicit logger installed with WithLogger, or silence with WithMuted.
package logger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"

	"github.com/amp-labs/amp-paramcheck/contexts"
	"github.com/amp-labs/amp-paramcheck/envutil"
	"github.com/amp-labs/amp-paramcheck/xform"
	"go.opentelemetry.io/contrib/bridges/otelslog"
	otelLog "go.opentelemetry.io/otel/log"
)

// Default subsystem, set by ConfigureLoggingWithOptions.
var subsystem atomic.Value //nolint:gochecknoglobals

// configMutex serializes changes to the slog default.
var configMutex sync.Mutex //nolint:gochecknoglobals

type contextKey string

const (
	mutedKey     contextKey = "mute"
	subsystemKey contextKey = "subsystem"
	valuesKey    contextKey = "loggerValues"
	loggerKey    contextKey = "logger"
)

// ErrInvalidLogOutput is returned when LOG_OUTPUT names neither stdout nor stderr.
var ErrInvalidLogOutput = errors.New("invalid log output")

// Options is used to configure logging.
type Options struct {
	Subsystem string
	JSON      bool
	MinLevel  slog.Level
	Output    io.Writer

	// OTel additionally sends every record through the OpenTelemetry slog bridge.
	OTel bool
	// LoggerProvider is the provider the bridge emits to. The global provider
	// is used when nil.
	LoggerProvider otelLog.LoggerProvider
}

// ConfigureLoggingWithOptions installs a text or JSON handler as the slog
// default and returns the resulting logger.
func ConfigureLoggingWithOptions(opts Options) *slog.Logger {
	configMutex.Lock()
	defer configMutex.Unlock()

	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	handlerOpts := &slog.HandlerOptions{Level: opts.MinLevel}

	var handler slog.Handler
	if opts.JSON {
		handler = slog.NewJSONHandler(opts.Output, handlerOpts)
	} else {
		handler = slog.NewTextHandler(opts.Output, handlerOpts)
	}

	if opts.OTel {
		var bridgeOpts []otelslog.Option
		if opts.LoggerProvider != nil {
			bridgeOpts = append(bridgeOpts, otelslog.WithLoggerProvider(opts.LoggerProvider))
		}

		handler = &fanoutHandler{handlers: []slog.Handler{
			handler,
			otelslog.NewHandler(opts.Subsystem, bridgeOpts...),
		}}
	}

	logger := slog.New(&slogErrorLogger{inner: handler})

	slog.SetDefault(logger)
	subsystem.Store(opts.Subsystem)

	return logger
}

// Option is a functional option for ConfigureLogging.
type Option func(*Options)

// ConfigureLogging configures logging from the environment: LOG_JSON (default
// false), LOG_LEVEL (default info), LOG_OUTPUT (stdout or stderr, default
// stdout) and LOG_OTEL (default false).
func ConfigureLogging(ctx context.Context, app string, opts ...Option) (*slog.Logger, error) {
	logJSON, err := envutil.Bool(ctx, "LOG_JSON", envutil.Default(false)).Value()
	if err != nil {
		return nil, err
	}

	minLevel, err := envutil.SlogLevel(ctx, "LOG_LEVEL", envutil.Default(slog.LevelInfo)).Value()
	if err != nil {
		return nil, err
	}

	otel, err := envutil.Bool(ctx, "LOG_OTEL", envutil.Default(false)).Value()
	if err != nil {
		return nil, err
	}

	output, err := envutil.Map(
		envutil.String(ctx, "LOG_OUTPUT", envutil.Validate(func(name string) error {
			_, err := xform.OneOf("stdout", "stderr")(name)

			return err
		})),
		func(outName string) (io.Writer, error) {
			if outName == "stderr" {
				return os.Stderr, nil
			}

			return os.Stdout, nil
		}).WithDefault(os.Stdout).Value()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidLogOutput, err)
	}

	options := Options{
		Subsystem: app,
		JSON:      logJSON,
		MinLevel:  minLevel,
		Output:    output,
		OTel:      otel,
	}

	for _, o := range opts {
		o(&options)
	}

	return ConfigureLoggingWithOptions(options), nil
}

// WithMuted silences every logger obtained from the returned context.
func WithMuted(ctx context.Context, muted bool) context.Context {
	return contexts.WithValue[contextKey, bool](ctx, mutedKey, muted)
}

// WithSubsystem overrides the default subsystem for loggers obtained from ctx.
func WithSubsystem(ctx context.Context, subsystem string) context.Context {
	return contexts.WithValue[contextKey, string](ctx, subsystemKey, subsystem)
}

// WithLogger makes Get return l, enriched as usual, instead of the slog default.
func WithLogger(ctx context.Context, l *slog.Logger) context.Context {
	return contexts.WithValue[contextKey, *slog.Logger](ctx, loggerKey, l)
}

// GetSubsystem returns the subsystem from the context, or the default one.
func GetSubsystem(ctx context.Context) string {
	if sub, ok := contexts.GetValue[contextKey, string](ctx, subsystemKey); ok {
		return sub
	}

	if val, ok := subsystem.Load().(string); ok {
		return val
	}

	return ""
}

// Get returns the logger for the first non-nil context, enriched with the
// subsystem and any values added with With.
//
//nolint:contextcheck
func Get(ctx ...context.Context) *slog.Logger {
	realCtx := contexts.EnsureContext(ctx...)

	if contexts.GetValueOr(realCtx, mutedKey, false) {
		return nullLogger
	}

	logger := slog.Default()
	if l, ok := contexts.GetValue[contextKey, *slog.Logger](realCtx, loggerKey); ok && l != nil {
		logger = l
	}

	if sub := GetSubsystem(realCtx); sub != "" {
		logger = logger.With("subsystem", sub)
	}

	if vals := getValues(realCtx); len(vals) > 0 {
		logger = logger.With(vals...)
	}

	return logger
}

// With returns a new context whose loggers carry the given key-values.
func With(ctx context.Context, values ...any) context.Context {
	if len(values) == 0 && ctx != nil {
		return ctx
	}

	existing := getValues(ctx)
	vals := make([]any, 0, len(existing)+len(values))
	vals = append(vals, existing...)
	vals = append(vals, values...)

	return contexts.WithValue[contextKey, []any](ctx, valuesKey, vals)
}

func getValues(ctx context.Context) []any {
	vals, _ := contexts.GetValue[contextKey, []any](ctx, valuesKey)

	return vals
}
