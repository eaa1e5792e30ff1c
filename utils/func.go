package utils

import (
	"reflect"
	"runtime"
	"strings"
)

// FunctionName returns the runtime name of fn, such as
// "github.com/amp-labs/amp-paramcheck/validate.New". The boolean is false when
// fn is nil or not a function.
func FunctionName(fn any) (string, bool) {
	if IsNilish(fn) {
		return "", false
	}

	value := reflect.ValueOf(fn)
	if value.Kind() != reflect.Func {
		return "", false
	}

	info := runtime.FuncForPC(value.Pointer())
	if info == nil {
		return "", false
	}

	return info.Name(), true
}

// ShortFunctionName is FunctionName without the import path: "validate.New".
func ShortFunctionName(fn any) (string, bool) {
	name, ok := FunctionName(fn)
	if !ok {
		return "", false
	}

	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		name = name[idx+1:]
	}

	return name, true
}
