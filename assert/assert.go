// Package assert provides blunt, panicking assertions for asserting-style validators
// and a type assertion helper used when binding arguments to typed rules.
//
// Asserting validators are only meaningful in builds where assertions are enabled.
// Building with the assertions_disabled tag turns True, False, Nil and NotNil into
// no-ops, so an asserting validator then accepts every value.
package assert

import (
	"fmt"

	"github.com/amp-labs/amp-paramcheck/errors"
)

// Type asserts that the given value is of the expected type T.
// If the assertion fails, it returns an error wrapping errors.ErrWrongType.
//
//nolint:ireturn
func Type[T any](val any) (T, error) {
	of, ok := val.(T)
	if !ok {
		return of, fmt.Errorf("%w: expected type %T, but received %T", errors.ErrWrongType, of, val)
	}

	return of, nil
}

// message renders the optional panic message arguments the same way for every assertion:
// a leading string is a format, anything else is listed verbatim.
func message(args []any) string {
	if len(args) == 0 {
		return "assertion failed"
	}

	if format, ok := args[0].(string); ok {
		return fmt.Sprintf(format, args[1:]...)
	}

	return fmt.Sprintf("assertion failed: %v", args)
}
