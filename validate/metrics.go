package validate

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeAccepted = "accepted"
	outcomeRejected = "rejected"

	kindValidation = "validation"
	kindAssertion  = "assertion"
	kindType       = "type"
	kindOther      = "other"
)

var (
	// callsTotal counts checked calls per decorated function.
	//
	// Labels:
	//   - function: the name given with WithName, or the Go function name.
	//   - outcome: "accepted" when every rule passed, "rejected" otherwise.
	//
	// Usage example in dashboards:
	//   - sum(rate(paramcheck_calls_total{outcome="rejected"}[5m])) by (function) - Rejections per second
	callsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "paramcheck_calls_total",
		Help: "The total number of calls checked by a decorated function",
	}, []string{"function", "outcome"})

	// rejectionsTotal counts rejected calls by the parameter that failed.
	//
	// Labels:
	//   - function, param: where the failure happened.
	//   - kind: "validation" for predicate, checker and combinator failures,
	//     "assertion" for asserting checkers, "type" for arguments of the wrong
	//     type and "other" for unrelated errors raised by a validator.
	rejectionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "paramcheck_rejections_total",
		Help: "The total number of rejected arguments",
	}, []string{"function", "param", "kind"})

	// checkTime is the time spent checking arguments, in milliseconds. It does
	// not include the wrapped function.
	checkTime = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint:gochecknoglobals
		Name: "paramcheck_check_time_millis",
		Help: "The time it takes to check the arguments of a call, in milliseconds",
		Buckets: []float64{
			0.01, 0.05, 0.1, 0.5, 1, 5, 10, 50, 100,
		},
	}, []string{"function", "outcome"})
)

// initMetrics pre-initializes the call counters of a function so dashboards see
// zero instead of no data.
func initMetrics(function string) {
	callsTotal.WithLabelValues(function, outcomeAccepted).Add(0)
	callsTotal.WithLabelValues(function, outcomeRejected).Add(0)
}
