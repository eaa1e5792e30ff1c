package is

import (
	"cmp"
	"fmt"

	"github.com/amp-labs/amp-paramcheck/validator"
)

//nolint:ireturn
func Even[T Integer]() validator.Validator[T] {
	return validator.Checker("is.Even", func(value T) error {
		if value%2 == 0 {
			return nil
		}

		return fail("is.Even", value, "%v is not even", value)
	})
}

//nolint:ireturn
func Odd[T Integer]() validator.Validator[T] {
	return validator.Checker("is.Odd", func(value T) error {
		if value%2 != 0 {
			return nil
		}

		return fail("is.Odd", value, "%v is not odd", value)
	})
}

// Mod accepts multiples of ref. Mod(0) reports ErrZeroModulus for every value.
//
//nolint:ireturn
func Mod[T Integer](ref T) validator.Validator[T] {
	name := fmt.Sprintf("is.Mod(%v)", ref)

	return validator.Checker(name, func(value T) error {
		if ref == 0 {
			return fmt.Errorf("%s: %w", name, ErrZeroModulus)
		}

		if value%ref == 0 {
			return nil
		}

		return fail(name, value, "%v is not a multiple of %v", value, ref)
	})
}

// Gt accepts values strictly greater than ref.
//
//nolint:ireturn
func Gt[T cmp.Ordered](ref T) validator.Validator[T] {
	return compare(fmt.Sprintf("is.Gt(%v)", ref), ref, ">", func(c int) bool { return c > 0 })
}

// Gte accepts values greater than or equal to ref.
//
//nolint:ireturn
func Gte[T cmp.Ordered](ref T) validator.Validator[T] {
	return compare(fmt.Sprintf("is.Gte(%v)", ref), ref, ">=", func(c int) bool { return c >= 0 })
}

// Lt accepts values strictly less than ref.
//
//nolint:ireturn
func Lt[T cmp.Ordered](ref T) validator.Validator[T] {
	return compare(fmt.Sprintf("is.Lt(%v)", ref), ref, "<", func(c int) bool { return c < 0 })
}

// Lte accepts values less than or equal to ref.
//
//nolint:ireturn
func Lte[T cmp.Ordered](ref T) validator.Validator[T] {
	return compare(fmt.Sprintf("is.Lte(%v)", ref), ref, "<=", func(c int) bool { return c <= 0 })
}

// Between accepts values in the closed range [lo, hi].
//
//nolint:ireturn
func Between[T cmp.Ordered](lo, hi T) validator.Validator[T] {
	name := fmt.Sprintf("is.Between(%v, %v)", lo, hi)

	return validator.Checker(name, func(value T) error {
		if cmp.Compare(value, lo) >= 0 && cmp.Compare(value, hi) <= 0 {
			return nil
		}

		return fail(name, value, "%v is not in [%v, %v]", value, lo, hi)
	})
}

//nolint:ireturn
func Positive[T Numeric]() validator.Validator[T] {
	return validator.Checker("is.Positive", func(value T) error {
		if value > 0 {
			return nil
		}

		return fail("is.Positive", value, "%v is not positive", value)
	})
}

//nolint:ireturn
func NonZero[T Numeric]() validator.Validator[T] {
	return validator.Checker("is.NonZero", func(value T) error {
		if value != 0 {
			return nil
		}

		return fail("is.NonZero", value, "value is zero")
	})
}

//nolint:ireturn
func compare[T cmp.Ordered](name string, ref T, op string, ok func(int) bool) validator.Validator[T] {
	return validator.Checker(name, func(value T) error {
		if ok(cmp.Compare(value, ref)) {
			return nil
		}

		return fail(name, value, "x %s %v does not hold for x=%v", op, ref, value)
	})
}
