package utils //nolint:revive // utils is an appropriate package name for utility functions

import "reflect"

// IsNilish returns true if the value is a literal nil
// or if it points to something with a nil value.
//
// The decorator uses it to decide whether an argument is absent: a typed nil
// pointer, map, slice, channel, func or interface counts the same as no value.
func IsNilish(val any) bool {
	if val == nil {
		return true
	}

	valOf := reflect.ValueOf(val)

	switch valOf.Kind() { //nolint:exhaustive
	case reflect.Chan, reflect.Func, reflect.Map, reflect.Pointer,
		reflect.UnsafePointer, reflect.Interface, reflect.Slice:
		return valOf.IsNil()
	}

	return false
}

// CanBeNil reports whether values of the given type can hold nil.
func CanBeNil(typ reflect.Type) bool {
	if typ == nil {
		return true
	}

	switch typ.Kind() { //nolint:exhaustive
	case reflect.Chan, reflect.Func, reflect.Map, reflect.Pointer,
		reflect.UnsafePointer, reflect.Interface, reflect.Slice:
		return true
	}

	return false
}
