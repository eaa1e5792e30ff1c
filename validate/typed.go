package validate

import (
	"fmt"
	"reflect"

	"github.com/amp-labs/amp-paramcheck/errors"
	"github.com/amp-labs/amp-paramcheck/signature"
)

// The typed wrappers return a function with the same type as fn, so decorated
// functions are called like any other. sig must declare exactly the
// function's parameters; defaults are ignored since every argument is always
// supplied. Calls check with the context given by WithContext.

func Func1[A, R any](fn func(A) (R, error), sig *signature.Signature, rules Map,
	opts ...Option,
) (func(A) (R, error), error) {
	v, err := typed(fn, 1, sig, rules, opts)
	if err != nil {
		return nil, err
	}

	return func(a A) (R, error) {
		if err := v.call(a); err != nil {
			var zero R

			return zero, err
		}

		return fn(a)
	}, nil
}

func Func2[A, B, R any](fn func(A, B) (R, error), sig *signature.Signature, rules Map,
	opts ...Option,
) (func(A, B) (R, error), error) {
	v, err := typed(fn, 2, sig, rules, opts) //nolint:mnd
	if err != nil {
		return nil, err
	}

	return func(a A, b B) (R, error) {
		if err := v.call(a, b); err != nil {
			var zero R

			return zero, err
		}

		return fn(a, b)
	}, nil
}

func Func3[A, B, C, R any](fn func(A, B, C) (R, error), sig *signature.Signature, rules Map,
	opts ...Option,
) (func(A, B, C) (R, error), error) {
	v, err := typed(fn, 3, sig, rules, opts) //nolint:mnd
	if err != nil {
		return nil, err
	}

	return func(a A, b B, c C) (R, error) {
		if err := v.call(a, b, c); err != nil {
			var zero R

			return zero, err
		}

		return fn(a, b, c)
	}, nil
}

func Func4[A, B, C, D, R any](fn func(A, B, C, D) (R, error), sig *signature.Signature, rules Map,
	opts ...Option,
) (func(A, B, C, D) (R, error), error) {
	v, err := typed(fn, 4, sig, rules, opts) //nolint:mnd
	if err != nil {
		return nil, err
	}

	return func(a A, b B, c C, d D) (R, error) {
		if err := v.call(a, b, c, d); err != nil {
			var zero R

			return zero, err
		}

		return fn(a, b, c, d)
	}, nil
}

func Proc1[A any](fn func(A) error, sig *signature.Signature, rules Map, opts ...Option) (func(A) error, error) {
	v, err := typed(fn, 1, sig, rules, opts)
	if err != nil {
		return nil, err
	}

	return func(a A) error {
		if err := v.call(a); err != nil {
			return err
		}

		return fn(a)
	}, nil
}

func Proc2[A, B any](fn func(A, B) error, sig *signature.Signature, rules Map,
	opts ...Option,
) (func(A, B) error, error) {
	v, err := typed(fn, 2, sig, rules, opts) //nolint:mnd
	if err != nil {
		return nil, err
	}

	return func(a A, b B) error {
		if err := v.call(a, b); err != nil {
			return err
		}

		return fn(a, b)
	}, nil
}

func Proc3[A, B, C any](fn func(A, B, C) error, sig *signature.Signature, rules Map,
	opts ...Option,
) (func(A, B, C) error, error) {
	v, err := typed(fn, 3, sig, rules, opts) //nolint:mnd
	if err != nil {
		return nil, err
	}

	return func(a A, b B, c C) error {
		if err := v.call(a, b, c); err != nil {
			return err
		}

		return fn(a, b, c)
	}, nil
}

func Proc4[A, B, C, D any](fn func(A, B, C, D) error, sig *signature.Signature, rules Map,
	opts ...Option,
) (func(A, B, C, D) error, error) {
	v, err := typed(fn, 4, sig, rules, opts) //nolint:mnd
	if err != nil {
		return nil, err
	}

	return func(a A, b B, c C, d D) error {
		if err := v.call(a, b, c, d); err != nil {
			return err
		}

		return fn(a, b, c, d)
	}, nil
}

type typedValidation struct {
	*Validation
	opts options
}

func typed(fn any, arity int, sig *signature.Signature, rules Map, opts []Option) (*typedValidation, error) {
	o := newOptions(opts)
	if o.name == "" {
		o.name = functionName(fn)
	}

	if fn == nil || reflectNil(fn) {
		return nil, &errors.ConfigurationError{Function: o.name, Reason: "cannot decorate a nil function"}
	}

	if sig != nil && sig.Len() != arity {
		return nil, &errors.ConfigurationError{
			Function: o.name,
			Reason:   fmt.Sprintf("function takes %d argument(s) but the signature declares %d", arity, sig.Len()),
		}
	}

	v, err := newValidation(sig, rules, o)
	if err != nil {
		return nil, err
	}

	if err := checkParamTypes(v, reflect.TypeOf(fn)); err != nil {
		return nil, err
	}

	return &typedValidation{Validation: v, opts: o}, nil
}

func (v *typedValidation) call(args ...any) error {
	bound, err := v.sig.Bind(args, nil)
	if err != nil {
		return err
	}

	return v.Check(v.opts.ctx, bound)
}
