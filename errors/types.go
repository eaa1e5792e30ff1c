package errors

import (
	"fmt"
	"strings"
)

// ValidationError is the generic validation failure. The engine produces it when a
// predicate returns false or a combinator's condition does not hold; checkers may
// return it themselves (see Failf) to report a domain-specific failure.
type ValidationError struct {
	// Validator names the check that failed, e.g. "is.Gt(1)" or "or(...)".
	Validator string
	// Message is an optional human readable explanation.
	Message string
	// Value is the offending value, if known.
	Value any
	// Cause carries the member failures of a combinator, if any.
	Cause error
}

func (e *ValidationError) Error() string {
	var sb strings.Builder

	sb.WriteString(ErrValidation.Error())

	if e.Validator != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Validator)
	}

	if e.Message != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Message)
	} else if e.Value != nil {
		fmt.Fprintf(&sb, " does not hold for %v", e.Value)
	}

	return sb.String()
}

// Is reports every ValidationError as ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation //nolint:errorlint,err113
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// Failf builds a domain-specific validation failure for checker-style validators.
//
//	func gtEx1(x int) error {
//	    if x >= 1 {
//	        return nil
//	    }
//	    return errors.Failf("gt_ex1: x >= 1 does not hold for x=%d", x)
//	}
func Failf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// AssertionError reports that an asserting checker panicked. It is deliberately not
// validation class: NOT never turns it into a success.
type AssertionError struct {
	Validator string
	// Panic is the recovered panic value.
	Panic any
	Cause error
}

func (e *AssertionError) Error() string {
	if e.Validator == "" {
		return fmt.Sprintf("%s: %v", ErrAssertion.Error(), e.Panic)
	}

	return fmt.Sprintf("%s: %s: %v", ErrAssertion.Error(), e.Validator, e.Panic)
}

func (e *AssertionError) Is(target error) bool {
	return target == ErrAssertion //nolint:errorlint,err113
}

func (e *AssertionError) Unwrap() error {
	return e.Cause
}

// ConfigurationError is returned at decoration time when a Validation Map names
// parameters the callable does not declare.
type ConfigurationError struct {
	Function string
	Unknown  []string
	Declared []string
	// Reason replaces the default message when the problem is not about unknown names.
	Reason string
}

func (e *ConfigurationError) Error() string {
	var sb strings.Builder

	sb.WriteString(ErrConfiguration.Error())

	if e.Function != "" {
		sb.WriteString(" for ")
		sb.WriteString(e.Function)
	}

	if e.Reason != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Reason)

		return sb.String()
	}

	fmt.Fprintf(&sb, ": unknown parameter(s) %s, declared parameters are [%s]",
		strings.Join(e.Unknown, ", "), strings.Join(e.Declared, ", "))

	return sb.String()
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration //nolint:errorlint,err113
}

// ArgumentError annotates a rejection with the function and the parameter it
// happened on. It unwraps to the original error, so the failure kind survives.
type ArgumentError struct {
	Function string
	Param    string
	Err      error
}

func (e *ArgumentError) Error() string {
	if e.Function == "" {
		return fmt.Sprintf("argument %q: %v", e.Param, e.Err)
	}

	return fmt.Sprintf("%s: argument %q: %v", e.Function, e.Param, e.Err)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}
