//go:build !assertions_disabled

package assert

import "github.com/amp-labs/amp-paramcheck/utils"

// Enabled reports whether assertions are compiled in.
const Enabled = true

// True panics unless value is true.
// The optional args can be used to provide a formatted panic message:
// - If the first arg is a string, it's used as a format string with remaining args.
// - Otherwise, all args are included in the panic message.
func True(value bool, args ...any) {
	if value {
		return
	}

	panic(message(args))
}

// False panics unless value is false.
func False(value bool, args ...any) {
	True(!value, args...)
}

// Nil panics unless value is nil, including typed nils.
func Nil(value any, args ...any) {
	True(utils.IsNilish(value), args...)
}

// NotNil panics if value is nil, including typed nils.
func NotNil(value any, args ...any) {
	True(!utils.IsNilish(value), args...)
}
