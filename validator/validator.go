// Package validator defines what a validator is and how validators combine.
//
// A Validator checks one value and reports a failure as an error. There are three
// shapes, all normalized by Evaluate:
//
//   - Predicate: func(T) bool. false is a failure; the engine produces a generic
//     *errors.ValidationError naming the predicate.
//   - Checker: func(T) error. A non-nil error is returned unchanged. It is a
//     validation failure when it wraps errors.ErrValidation (see errors.Failf);
//     any other error is an unrelated runtime error.
//   - Asserting: func(T) that panics on invalid input, typically through the
//     assert package. The panic becomes an *errors.AssertionError, a distinct
//     kind that combinators never absorb.
//
// All, Not, Nor, Or and Xor build new validators out of existing ones. Only
// validation failures are interpreted by combinators; every other error aborts
// the evaluation and propagates as is.
package validator

import (
	"fmt"

	"github.com/amp-labs/amp-paramcheck/errors"
	"github.com/amp-labs/amp-paramcheck/utils"
)

// Validator checks a single value of type T.
type Validator[T any] interface {
	// Validate returns nil when value is valid.
	Validate(value T) error
	// String names the check in error messages, e.g. "is.Gt(1)".
	String() string
}

// Kind tells the validator shapes apart.
type Kind int

const (
	KindPredicate Kind = iota
	KindChecker
	KindAsserting
	KindCombinator
)

func (k Kind) String() string {
	switch k {
	case KindPredicate:
		return "predicate"
	case KindChecker:
		return "checker"
	case KindAsserting:
		return "asserting"
	case KindCombinator:
		return "combinator"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Kinded is implemented by every validator built in this package.
type Kinded interface {
	Kind() Kind
}

// Predicate adapts a boolean function. A false result fails with a generic
// validation error.
//
//nolint:ireturn
func Predicate[T any](name string, fn func(T) bool) Validator[T] {
	return &predicate[T]{name: name, fn: fn}
}

// Checker adapts a function that reports failure through its error result.
//
//nolint:ireturn
func Checker[T any](name string, fn func(T) error) Validator[T] {
	return &checker[T]{name: name, fn: fn}
}

// Asserting adapts a function that panics on invalid input.
//
//nolint:ireturn
func Asserting[T any](name string, fn func(T)) Validator[T] {
	return &asserting[T]{name: name, fn: fn}
}

// Evaluate runs v against value and returns the normalized outcome: nil on
// success, otherwise the failure exactly as the validator reported it.
// A nil validator accepts everything.
func Evaluate[T any](v Validator[T], value T) error {
	if v == nil {
		return nil
	}

	return v.Validate(value)
}

// IsValidationFailure reports whether err is a validation-class failure, the only
// kind combinators are allowed to interpret. Assertion failures never are.
func IsValidationFailure(err error) bool {
	return err != nil && errors.Is(err, errors.ErrValidation) && !errors.Is(err, errors.ErrAssertion)
}

type predicate[T any] struct {
	name string
	fn   func(T) bool
}

func (p *predicate[T]) Validate(value T) error {
	if p.fn(value) {
		return nil
	}

	return &errors.ValidationError{Validator: p.name, Value: value}
}

func (p *predicate[T]) String() string { return p.name }

func (p *predicate[T]) Kind() Kind { return KindPredicate }

type checker[T any] struct {
	name string
	fn   func(T) error
}

func (c *checker[T]) Validate(value T) error {
	return c.fn(value)
}

func (c *checker[T]) String() string { return c.name }

func (c *checker[T]) Kind() Kind { return KindChecker }

type asserting[T any] struct {
	name string
	fn   func(T)
}

func (a *asserting[T]) Validate(value T) error {
	recovered, err := utils.Recover(func() {
		a.fn(value)
	})
	if err != nil {
		return &errors.AssertionError{Validator: a.name, Panic: recovered, Cause: err}
	}

	return nil
}

func (a *asserting[T]) String() string { return a.name }

func (a *asserting[T]) Kind() Kind { return KindAsserting }

// Named renames v in error messages. Failures produced by v itself keep the
// name v gave them; only the generic failure of a predicate is relabeled.
//
//nolint:ireturn
func Named[T any](name string, v Validator[T]) Validator[T] {
	return &named[T]{name: name, inner: v}
}

type named[T any] struct {
	name  string
	inner Validator[T]
}

func (n *named[T]) Validate(value T) error {
	err := n.inner.Validate(value)
	if err == nil {
		return nil
	}

	var verr *errors.ValidationError
	if errors.As(err, &verr) && verr.Validator == n.inner.String() {
		relabeled := *verr
		relabeled.Validator = n.name

		return &relabeled
	}

	return err
}

// ValidateNil keeps the wrapped validator nil aware.
func (n *named[T]) ValidateNil() error {
	return ValidateNil(n.inner)
}

func (n *named[T]) String() string { return n.name }

func (n *named[T]) Kind() Kind {
	if k, ok := n.inner.(Kinded); ok {
		return k.Kind()
	}

	return KindChecker
}
