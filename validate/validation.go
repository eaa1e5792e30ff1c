package validate

import (
	"context"
	"fmt"
	"slices"
	"time"

	"facette.io/natsort"
	"github.com/amp-labs/amp-paramcheck/config"
	"github.com/amp-labs/amp-paramcheck/contexts"
	"github.com/amp-labs/amp-paramcheck/errors"
	"github.com/amp-labs/amp-paramcheck/logger"
	"github.com/amp-labs/amp-paramcheck/signature"
	"github.com/amp-labs/amp-paramcheck/spans"
	"github.com/amp-labs/amp-paramcheck/utils"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/atomic"
)

const anonymous = "anonymous"

// Validation is a compiled Validation Map, checked against a signature. It is
// immutable and safe for concurrent use.
type Validation struct {
	name  string
	sig   *signature.Signature
	rules []Rule
	cfg   config.Config
	stats counters
}

// Stats reports how many calls a Validation has checked.
type Stats struct {
	Calls    int64
	Accepted int64
	Rejected int64
}

type counters struct {
	calls    atomic.Int64
	accepted atomic.Int64
	rejected atomic.Int64
}

// New compiles rules against sig. Every rule must name a parameter sig
// declares, and no parameter may have two rules; otherwise New returns an
// *errors.ConfigurationError listing the offending names.
func New(sig *signature.Signature, rules Map, opts ...Option) (*Validation, error) {
	o := newOptions(opts)

	return newValidation(sig, rules, o)
}

func newValidation(sig *signature.Signature, rules Map, o options) (*Validation, error) {
	if o.name == "" {
		o.name = anonymous
	}

	if err := checkNames(o.name, sig, rules); err != nil {
		logger.Get(o.ctx).Error("invalid validation map", "function", o.name, "error", err)

		return nil, err
	}

	v := &Validation{
		name:  o.name,
		sig:   sig,
		rules: slices.Clone(rules),
		cfg:   o.cfg,
	}

	if v.cfg.MetricsEnabled {
		initMetrics(v.name)
	}

	return v, nil
}

func checkNames(function string, sig *signature.Signature, rules Map) error {
	if sig == nil {
		return &errors.ConfigurationError{Function: function, Reason: "no signature"}
	}

	seen := make(map[string]struct{}, len(rules))

	var unknown []string

	for _, r := range rules {
		if r.check == nil {
			return &errors.ConfigurationError{Function: function, Reason: "rule was not built with validate.Arg"}
		}

		if _, dup := seen[r.name]; dup {
			return &errors.ConfigurationError{
				Function: function,
				Reason:   fmt.Sprintf("more than one rule for parameter %q", r.name),
			}
		}

		seen[r.name] = struct{}{}

		if !sig.Has(r.name) {
			unknown = append(unknown, r.name)
		}
	}

	if len(unknown) > 0 {
		natsort.Sort(unknown)

		return &errors.ConfigurationError{
			Function: function,
			Unknown:  unknown,
			Declared: sig.Names(),
		}
	}

	return nil
}

// Name returns the function label.
func (v *Validation) Name() string {
	return v.name
}

// Signature returns the signature the map was checked against.
func (v *Validation) Signature() *signature.Signature {
	return v.sig
}

// Rules returns a copy of the compiled rules.
func (v *Validation) Rules() Map {
	return slices.Clone(v.rules)
}

// Rule returns the rule for the named parameter, if there is one.
func (v *Validation) Rule(name string) (Rule, bool) {
	for _, r := range v.rules {
		if r.name == name {
			return r, true
		}
	}

	return Rule{}, false
}

func (v *Validation) Stats() Stats {
	return Stats{
		Calls:    v.stats.calls.Load(),
		Accepted: v.stats.accepted.Load(),
		Rejected: v.stats.rejected.Load(),
	}
}

// Check enforces the map on arguments bound against the Validation's
// signature. Rules run in map order; the first failure is returned exactly as
// the validator reported it, or as an *errors.ArgumentError when argument
// errors are enabled. Nil and absent arguments only meet nil-aware validators.
func (v *Validation) Check(ctx context.Context, bound *signature.Bound) error {
	ctx = contexts.EnsureContext(ctx)

	if bound == nil || bound.Signature() != v.sig {
		return fmt.Errorf("%w: arguments were not bound against the signature of %s", errors.ErrBinding, v.name)
	}

	if !v.cfg.TracingEnabled {
		return v.check(ctx, bound)
	}

	return spans.StartErr(ctx, "paramcheck.check",
		spans.WithAttribute("function", attribute.StringValue(v.name)),
		spans.WithErrorMessage("arguments rejected"),
		spans.WithMetrics(v.cfg.MetricsEnabled),
	).Enter(func(ctx context.Context, _ trace.Span) error {
		return v.check(ctx, bound)
	})
}

// CheckValue runs the rule of a single parameter, as Check would for a call
// where that parameter is bound to value. A parameter without a rule accepts
// everything.
func (v *Validation) CheckValue(ctx context.Context, name string, value any) error {
	ctx = contexts.EnsureContext(ctx)

	r, ok := v.Rule(name)
	if !ok {
		if !v.sig.Has(name) {
			return fmt.Errorf("%w: unexpected argument %q", errors.ErrBinding, name)
		}

		return nil
	}

	start := time.Now()

	err := evaluate(r, value, true)
	v.observe(ctx, name, err, time.Since(start))

	return v.wrap(ctx, name, err)
}

func (v *Validation) check(ctx context.Context, bound *signature.Bound) error {
	start := time.Now()

	param, err := v.firstFailure(bound)
	v.observe(ctx, param, err, time.Since(start))

	return v.wrap(ctx, param, err)
}

func (v *Validation) firstFailure(bound *signature.Bound) (string, error) {
	for _, r := range v.rules {
		value, present := bound.Value(r.name)

		if err := evaluate(r, value, present); err != nil {
			return r.name, err
		}
	}

	return "", nil
}

func evaluate(r Rule, value any, present bool) error {
	if !present || utils.IsNilish(value) {
		return r.checkNil()
	}

	return r.check(value)
}

func (v *Validation) wrap(ctx context.Context, param string, err error) error {
	if err == nil || !wantArgumentErrors(ctx, v.cfg.ArgumentErrors) {
		return err
	}

	return &errors.ArgumentError{Function: v.name, Param: param, Err: err}
}

func (v *Validation) observe(ctx context.Context, param string, err error, elapsed time.Duration) {
	outcome := outcomeAccepted

	v.stats.calls.Inc()

	if err != nil {
		outcome = outcomeRejected

		v.stats.rejected.Inc()
	} else {
		v.stats.accepted.Inc()
	}

	if v.cfg.MetricsEnabled {
		callsTotal.WithLabelValues(v.name, outcome).Inc()
		checkTime.WithLabelValues(v.name, outcome).Observe(float64(elapsed.Microseconds()) / 1000.0)

		if err != nil {
			rejectionsTotal.WithLabelValues(v.name, param, kindOf(err)).Inc()
		}
	}

	if err != nil && v.cfg.LogRejections {
		logger.Get(ctx).Log(ctx, v.cfg.RejectionLevel, "argument rejected",
			"function", v.name,
			"param", param,
			"kind", kindOf(err),
			"error", annotate(err))
	}
}

func kindOf(err error) string {
	switch {
	case errors.Is(err, errors.ErrAssertion):
		return kindAssertion
	case errors.Is(err, errors.ErrWrongType):
		return kindType
	case errors.Is(err, errors.ErrValidation):
		return kindValidation
	default:
		return kindOther
	}
}

func annotate(err error) error {
	var verr *errors.ValidationError
	if errors.As(err, &verr) && verr.Validator != "" {
		return logger.AnnotateError(err, "validator", verr.Validator)
	}

	var aerr *errors.AssertionError
	if errors.As(err, &aerr) {
		return logger.AnnotateError(err, "validator", aerr.Validator)
	}

	return err
}
