package is

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/amp-labs/amp-paramcheck/validator"
)

//nolint:ireturn
func NotEmpty[T ~string]() validator.Validator[T] {
	return validator.Checker("is.NotEmpty", func(value T) error {
		if value != "" {
			return nil
		}

		return fail("is.NotEmpty", value, "string is empty")
	})
}

// MinLen accepts strings of at least n characters (runes, not bytes).
//
//nolint:ireturn
func MinLen[T ~string](n int) validator.Validator[T] {
	name := fmt.Sprintf("is.MinLen(%d)", n)

	return validator.Checker(name, func(value T) error {
		if l := utf8.RuneCountInString(string(value)); l < n {
			return fail(name, value, "length %d is less than %d", l, n)
		}

		return nil
	})
}

// MaxLen accepts strings of at most n characters (runes, not bytes).
//
//nolint:ireturn
func MaxLen[T ~string](n int) validator.Validator[T] {
	name := fmt.Sprintf("is.MaxLen(%d)", n)

	return validator.Checker(name, func(value T) error {
		if l := utf8.RuneCountInString(string(value)); l > n {
			return fail(name, value, "length %d is more than %d", l, n)
		}

		return nil
	})
}

// Matches accepts strings containing a match of re.
//
//nolint:ireturn
func Matches[T ~string](re *regexp.Regexp) validator.Validator[T] {
	name := fmt.Sprintf("is.Matches(%s)", re)

	return validator.Checker(name, func(value T) error {
		if re.MatchString(string(value)) {
			return nil
		}

		return fail(name, value, "%q does not match %s", value, re)
	})
}
