package validator

import (
	"github.com/amp-labs/amp-paramcheck/errors"
	"github.com/amp-labs/amp-paramcheck/utils"
)

// NilAware is implemented by validators that still run when the argument is nil
// or absent. Every other validator is skipped for such values.
type NilAware interface {
	// ValidateNil returns the failure, if any, for a nil or absent value.
	ValidateNil() error
}

// ValidateNil evaluates v for a nil or absent argument. Only nil-aware validators,
// directly or as members of an All group, take part; everything else passes through.
func ValidateNil[T any](v Validator[T]) error {
	aware, ok := v.(NilAware)
	if !ok {
		return nil
	}

	return aware.ValidateNil()
}

// NotNil rejects nil and absent values. It is the only built-in validator that runs
// on them.
//
//nolint:ireturn
func NotNil[T any]() Validator[T] {
	return notNil[T]{}
}

type notNil[T any] struct{}

func (notNil[T]) Validate(value T) error {
	if utils.IsNilish(value) {
		return notNilFailure()
	}

	return nil
}

func (notNil[T]) ValidateNil() error {
	return notNilFailure()
}

func (notNil[T]) String() string { return "not_nil" }

func (notNil[T]) Kind() Kind { return KindPredicate }

func notNilFailure() error {
	return &errors.ValidationError{Validator: "not_nil", Message: "value is nil or absent"}
}
