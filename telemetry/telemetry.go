// Package telemetry installs OTLP exporters for the traces and logs that the
// paramcheck packages emit.
//
//	cfg, err := telemetry.LoadConfigFromEnv(ctx, "production")
//	ctx, err = telemetry.Initialize(ctx, cfg)
//	defer telemetry.Shutdown(ctx)
//
// Initialize returns a context carrying the tracer spans use, and configures
// logger to forward records to the OTLP log exporter.
package telemetry

import (
	"context"
	stdErrors "errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/amp-labs/amp-paramcheck/envutil"
	"github.com/amp-labs/amp-paramcheck/logger"
	"github.com/amp-labs/amp-paramcheck/spans"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploghttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/log/global"
	"go.opentelemetry.io/otel/propagation"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
)

const (
	defaultServiceName    = "paramcheck"
	defaultServiceVersion = "1.0.0"
	defaultTimeout        = 5 * time.Second
	tracerName            = "github.com/amp-labs/amp-paramcheck"
)

var (
	mut            sync.Mutex               //nolint:gochecknoglobals
	tracerProvider *sdktrace.TracerProvider //nolint:gochecknoglobals
	loggerProvider *sdklog.LoggerProvider   //nolint:gochecknoglobals
)

// Config holds the OpenTelemetry configuration.
type Config struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
	TracesEndpoint string
	// LogsEndpoint is optional; logs stay local when it is empty.
	LogsEndpoint string
	Enabled      bool
	Timeout      time.Duration
}

// LoadConfigFromEnv loads the configuration from the standard OTEL_* variables.
func LoadConfigFromEnv(ctx context.Context, runningEnv string) (*Config, error) {
	enabled, err := envutil.Bool(ctx, "OTEL_ENABLED", envutil.Default(false)).Value()
	if err != nil {
		return nil, err
	}

	serviceName := logger.GetSubsystem(ctx)
	if serviceName == "" {
		serviceName = defaultServiceName
	}

	svcName, err := envutil.String(ctx, "OTEL_SERVICE_NAME", envutil.Default(serviceName)).Value()
	if err != nil {
		return nil, err
	}

	svcVersion, err := envutil.String(ctx, "OTEL_SERVICE_VERSION", envutil.Default(defaultServiceVersion)).Value()
	if err != nil {
		return nil, err
	}

	traces, err := envutil.String(ctx, "OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", envutil.Default("")).Value()
	if err != nil {
		return nil, err
	}

	logs, err := envutil.String(ctx, "OTEL_EXPORTER_OTLP_LOGS_ENDPOINT", envutil.Default("")).Value()
	if err != nil {
		return nil, err
	}

	timeout, err := envutil.Duration(ctx, "OTEL_EXPORTER_OTLP_TIMEOUT", envutil.Default(defaultTimeout)).Value()
	if err != nil {
		return nil, err
	}

	return &Config{
		ServiceName:    svcName,
		ServiceVersion: svcVersion,
		Environment:    runningEnv,
		TracesEndpoint: traces,
		LogsEndpoint:   logs,
		Enabled:        enabled,
		Timeout:        timeout,
	}, nil
}

// Initialize sets up the exporters and installs them as the global providers.
// The returned context carries the tracer. When telemetry is disabled or has
// no traces endpoint, ctx is returned as is.
func Initialize(ctx context.Context, config *Config) (context.Context, error) {
	if config == nil || !config.Enabled {
		logger.Get(ctx).Info("OpenTelemetry is disabled")

		return ctx, nil
	}

	if config.TracesEndpoint == "" {
		logger.Get(ctx).Warn("OpenTelemetry traces endpoint not configured, telemetry will be disabled")

		return ctx, nil
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(config.ServiceName),
			semconv.ServiceVersionKey.String(config.ServiceVersion),
			semconv.DeploymentEnvironmentKey.String(config.Environment),
		),
	)
	if err != nil {
		return ctx, fmt.Errorf("failed to create resource: %w", err)
	}

	traceExporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(config.TracesEndpoint),
		otlptracehttp.WithTimeout(config.Timeout),
	)
	if err != nil {
		return ctx, fmt.Errorf("failed to create OTLP trace exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(traceExporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)

	var lp *sdklog.LoggerProvider

	if config.LogsEndpoint != "" {
		logExporter, err := otlploghttp.New(ctx,
			otlploghttp.WithEndpointURL(config.LogsEndpoint),
			otlploghttp.WithTimeout(config.Timeout),
		)
		if err != nil {
			_ = tp.Shutdown(ctx)

			return ctx, fmt.Errorf("failed to create OTLP log exporter: %w", err)
		}

		lp = sdklog.NewLoggerProvider(
			sdklog.WithProcessor(sdklog.NewBatchProcessor(logExporter)),
			sdklog.WithResource(res),
		)

		global.SetLoggerProvider(lp)
	}

	mut.Lock()
	tracerProvider = tp
	loggerProvider = lp
	mut.Unlock()

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	logger.Get(ctx).Info("OpenTelemetry initialized",
		"service", config.ServiceName,
		"version", config.ServiceVersion,
		"environment", config.Environment,
		"traces", config.TracesEndpoint,
		"logs", config.LogsEndpoint,
	)

	return spans.WithTracer(ctx, tp.Tracer(tracerName)), nil
}

// LoggerOptions returns logger options that forward records to the OTLP log
// exporter, or opts unchanged when no log exporter is installed.
func LoggerOptions(opts logger.Options) logger.Options {
	mut.Lock()
	defer mut.Unlock()

	if loggerProvider != nil {
		opts.OTel = true
		opts.LoggerProvider = loggerProvider
	}

	return opts
}

// Shutdown flushes and stops the installed providers.
func Shutdown(ctx context.Context) error {
	mut.Lock()
	tp, lp := tracerProvider, loggerProvider
	tracerProvider, loggerProvider = nil, nil
	mut.Unlock()

	var errs []error

	if tp != nil {
		slog.Info("Shutting down OpenTelemetry tracer provider")

		errs = append(errs, tp.Shutdown(ctx))
	}

	if lp != nil {
		errs = append(errs, lp.Shutdown(ctx))
	}

	return stdErrors.Join(errs...)
}
