// Package errors defines the error taxonomy shared by every paramcheck package.
//
// Failures fall into a few kinds that callers tell apart with errors.Is:
//   - ErrValidation: a predicate returned false, a combinator's condition was not met,
//     or a checker reported a domain failure. NOT/OR/XOR absorb only this kind.
//   - ErrAssertion: an asserting checker panicked. Never absorbed.
//   - ErrConfiguration: a Validation Map or signature is malformed (decoration time).
//   - ErrBinding: call arguments could not be bound to parameter names.
//   - ErrWrongType: an argument does not have the type its rule was declared for.
package errors

import "errors"

var (
	ErrValidation      = errors.New("validation failed")
	ErrAssertion       = errors.New("assertion failed")
	ErrConfiguration   = errors.New("invalid configuration")
	ErrBinding         = errors.New("cannot bind arguments")
	ErrWrongType       = errors.New("wrong type")
	ErrPanicRecovery   = errors.New("recovered from panic")
	ErrEmptyCombinator = errors.New("combinator has no validators")
)

// Collection is a thread-unsafe utility for accumulating multiple errors.
// The OR combinator uses it to report every member failure at once.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Clear removes all errors from the collection.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// Len returns the number of collected errors.
func (c *Collection) Len() int {
	return len(c.errors)
}

// GetError returns the collected errors as a single error: nil when empty,
// the error itself when there is one, errors.Join otherwise.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}

// Is, As and Unwrap re-export the standard library helpers so callers only
// need one errors import.
func Is(err, target error) bool { return errors.Is(err, target) }

func As(err error, target any) bool { return errors.As(err, target) }

func Unwrap(err error) error { return errors.Unwrap(err) }

func New(text string) error { return errors.New(text) }
