package spans

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// spanWithoutTracerCounter counts operations that ran without a tracer in the
// context, i.e. where spans.WithTracer was never called.
//
// Example PromQL query:
//
//	sum by (span_name) (rate(paramcheck_spans_without_tracer_total[5m]))
var spanWithoutTracerCounter = promauto.NewCounterVec( //nolint:gochecknoglobals
	prometheus.CounterOpts{
		Namespace: "paramcheck",
		Subsystem: "spans",
		Name:      "without_tracer_total",
		Help:      "Total number of span executions without a tracer in context",
	},
	[]string{"span_name"},
)
