package envutil

// Option modifies a Reader. Readers such as String and Bool accept options for
// defaults, missing-value errors and validation.
type Option[T any] func(Reader[T]) Reader[T]

// Default supplies the value used when the variable is not set.
func Default[T any](dfl T) Option[T] {
	return func(rdr Reader[T]) Reader[T] {
		return rdr.WithDefault(dfl)
	}
}

// IfMissing supplies the error reported when the variable is not set.
func IfMissing[T any](err error) Option[T] {
	return func(rdr Reader[T]) Reader[T] {
		return rdr.WithErrorIfMissing(err)
	}
}

// Validate runs f on the parsed value; a non-nil result becomes the reader's
// error. Validator methods fit directly: envutil.Validate(is.Positive[int]().Validate).
func Validate[T any](f func(T) error) Option[T] {
	return func(rdr Reader[T]) Reader[T] {
		return Map(rdr, func(val T) (T, error) {
			err := f(val)

			return val, err
		})
	}
}
