// Package is ships ready-made validators for the checks that come up most often:
// parity, divisibility, ordering, ranges, membership and string shape.
//
// Every function here is a factory. It returns a validator.Validator whose failure
// is an *errors.ValidationError carrying the validator name (e.g. "is.Gt(1)") and a
// readable message, so built-ins blend with user supplied predicates:
//
//	validate.Arg("a", is.Even[int]()),
//	validate.Arg("b", validator.Or(is.Even[int](), is.Mod(3))),
package is

import (
	"fmt"

	"github.com/amp-labs/amp-paramcheck/errors"
	"github.com/amp-labs/amp-paramcheck/validator"
)

// Integer is the set of types that support the modulo operator.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Numeric is the set of ordered number types. time.Duration satisfies it.
type Numeric interface {
	Integer | ~float32 | ~float64
}

// ErrZeroModulus is returned by Mod(0). It is not a validation failure, so no
// combinator absorbs it.
var ErrZeroModulus = errors.New("modulus must not be zero")

// NotNil rejects nil and absent values. It is the only built-in that runs on them.
//
//nolint:ireturn
func NotNil[T any]() validator.Validator[T] {
	return validator.NotNil[T]()
}

// OneOf accepts values equal to one of the choices.
//
//nolint:ireturn
func OneOf[T comparable](choices ...T) validator.Validator[T] {
	set := make(map[T]struct{}, len(choices))
	for _, c := range choices {
		set[c] = struct{}{}
	}

	name := fmt.Sprintf("is.OneOf(%v)", choices)

	return validator.Checker(name, func(value T) error {
		if _, ok := set[value]; ok {
			return nil
		}

		return fail(name, value, "%v is not one of %v", value, choices)
	})
}

func fail(name string, value any, format string, args ...any) error {
	return &errors.ValidationError{
		Validator: name,
		Message:   fmt.Sprintf(format, args...),
		Value:     value,
	}
}
