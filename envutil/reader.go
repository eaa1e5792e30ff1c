package envutil

import (
	"errors"
	"fmt"
	"log/slog"
)

var (
	ErrBadEnvVar     = errors.New("error parsing environment variable")
	ErrEnvVarMissing = errors.New("missing environment variable")
)

// Reader is the outcome of reading one variable. It is an immutable value;
// options and Map return new readers.
type Reader[A any] struct {
	key     string
	present bool
	value   A
	err     error
}

func (r Reader[A]) Key() string {
	return r.key
}

// Value returns the parsed value. It fails with ErrBadEnvVar when parsing
// failed and with ErrEnvVarMissing when the variable is unset and has no
// default.
func (r Reader[A]) Value() (A, error) { //nolint:ireturn
	switch {
	case r.err != nil:
		return r.value, fmt.Errorf("%w %s: %w (given value is %v)", ErrBadEnvVar, r.key, r.err, r.value)
	case !r.present:
		return r.value, fmt.Errorf("%w %s", ErrEnvVarMissing, r.key)
	default:
		return r.value, nil
	}
}

// MustValue is Value for process startup: it panics instead of failing.
func (r Reader[A]) MustValue() A { //nolint:ireturn
	value, err := r.Value()
	if err != nil {
		panic(err)
	}

	return value
}

// ValueOr returns fallback unless the variable holds a valid value. A value
// that fails to parse is logged before being replaced.
func (r Reader[A]) ValueOr(fallback A) A { //nolint:ireturn
	if r.Present() {
		return r.value
	}

	if r.err != nil {
		slog.Warn("error reading environment variable, using fallback value",
			"key", r.key, "value", r.value, "error", r.err, "fallback", fallback)
	}

	return fallback
}

// Present reports whether there is a valid value, read or defaulted.
func (r Reader[A]) Present() bool {
	return r.present && r.err == nil
}

func (r Reader[A]) Err() error {
	return r.err
}

func (r Reader[A]) String() string {
	switch {
	case r.err != nil:
		return fmt.Sprintf("%s=<error: %v>", r.key, r.err)
	case !r.present:
		return r.key + "=<not set>"
	default:
		return fmt.Sprintf("%s=%v", r.key, r.value)
	}
}

// WithDefault fills in v when the variable is unset. A parse error is kept.
func (r Reader[A]) WithDefault(v A) Reader[A] { //nolint:ireturn
	if r.present {
		return r
	}

	r.present = true
	r.value = v

	return r
}

// WithErrorIfMissing reports err instead of ErrEnvVarMissing for an unset variable.
func (r Reader[A]) WithErrorIfMissing(err error) Reader[A] { //nolint:ireturn
	if r.present || r.err != nil {
		return r
	}

	return Reader[A]{key: r.key, err: err}
}

// Map transforms the value of r. Unset variables and earlier errors pass
// through without calling f.
func Map[A any, B any](r Reader[A], f func(A) (B, error)) Reader[B] {
	out := Reader[B]{key: r.key, present: r.present, err: r.err}

	if !r.present || r.err != nil {
		return out
	}

	out.value, out.err = f(r.value)

	return out
}
