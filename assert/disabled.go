//go:build assertions_disabled

package assert

// Enabled reports whether assertions are compiled in.
const Enabled = false

func True(bool, ...any) {}

func False(bool, ...any) {}

func Nil(any, ...any) {}

func NotNil(any, ...any) {}

