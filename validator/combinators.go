package validator

import (
	"fmt"
	"strings"

	"github.com/amp-labs/amp-paramcheck/errors"
)

// All is the implicit AND group: every member must accept the value. Members run
// in order and the first failure is returned unchanged; later members do not run.
// An empty group accepts everything.
//
//nolint:ireturn
func All[T any](validators ...Validator[T]) Validator[T] {
	return &group[T]{members: compact(validators)}
}

// Not succeeds iff the members, taken as an All group, fail with a validation
// failure. If the group succeeds, Not fails with a generic validation error.
// Any other error from the group, assertions included, propagates unchanged.
//
// It is not nil aware: a nil or absent argument is accepted without running
// the members, so Not(NotNil[T]()) accepts nil. Put NotNil beside it instead.
//
//nolint:ireturn
func Not[T any](validators ...Validator[T]) Validator[T] {
	return &not[T]{inner: All(validators...)}
}

// Nor succeeds iff every member fails with a validation failure, i.e. no member
// accepts the value. Members are evaluated in order and the first one that
// succeeds makes Nor fail.
//
// It is not nil aware: a nil or absent argument is accepted without running
// the members, so Nor(NotNil[T]()) accepts nil. Put NotNil beside it instead.
//
//nolint:ireturn
func Nor[T any](validators ...Validator[T]) Validator[T] {
	return &nor[T]{members: compact(validators)}
}

// Or succeeds as soon as one member succeeds; the remaining members are not
// evaluated. If every member fails with a validation failure, Or fails with one
// generic validation error whose cause joins the member failures. A member error
// that is not a validation failure aborts immediately. Or of nothing fails.
//
// It is not nil aware: a nil or absent argument is accepted without running
// the members, so Or(NotNil[T]()) accepts nil. Put NotNil beside it instead.
//
//nolint:ireturn
func Or[T any](validators ...Validator[T]) Validator[T] {
	return &or[T]{members: compact(validators)}
}

// Xor evaluates every member and succeeds iff exactly one of them succeeds.
// A member error that is not a validation failure aborts the count. Xor of
// nothing fails, since zero successes is not one.
//
// It is not nil aware: a nil or absent argument is accepted without running
// the members, so Xor(NotNil[T]()) accepts nil. Put NotNil beside it instead.
//
//nolint:ireturn
func Xor[T any](validators ...Validator[T]) Validator[T] {
	return &xor[T]{members: compact(validators)}
}

func compact[T any](validators []Validator[T]) []Validator[T] {
	out := make([]Validator[T], 0, len(validators))

	for _, v := range validators {
		if v != nil {
			out = append(out, v)
		}
	}

	return out
}

func names[T any](validators []Validator[T]) string {
	parts := make([]string, len(validators))
	for i, v := range validators {
		parts[i] = v.String()
	}

	return strings.Join(parts, ", ")
}

type group[T any] struct {
	members []Validator[T]
}

func (g *group[T]) Validate(value T) error {
	for _, m := range g.members {
		if err := m.Validate(value); err != nil {
			return err
		}
	}

	return nil
}

// ValidateNil runs the nil-aware members only, in order.
func (g *group[T]) ValidateNil() error {
	for _, m := range g.members {
		if err := ValidateNil(m); err != nil {
			return err
		}
	}

	return nil
}

// Members returns the validators of the group in evaluation order.
func (g *group[T]) Members() []Validator[T] {
	out := make([]Validator[T], len(g.members))
	copy(out, g.members)

	return out
}

func (g *group[T]) String() string {
	if len(g.members) == 1 {
		return g.members[0].String()
	}

	return "all(" + names(g.members) + ")"
}

func (g *group[T]) Kind() Kind { return KindCombinator }

type not[T any] struct {
	inner Validator[T]
}

func (n *not[T]) Validate(value T) error {
	err := n.inner.Validate(value)

	switch {
	case err == nil:
		return &errors.ValidationError{Validator: n.String(), Value: value}
	case IsValidationFailure(err):
		return nil
	default:
		return err
	}
}

func (n *not[T]) String() string { return "not(" + n.inner.String() + ")" }

func (n *not[T]) Kind() Kind { return KindCombinator }

type nor[T any] struct {
	members []Validator[T]
}

func (n *nor[T]) Validate(value T) error {
	for _, m := range n.members {
		err := m.Validate(value)

		switch {
		case err == nil:
			return &errors.ValidationError{
				Validator: n.String(),
				Message:   fmt.Sprintf("%s accepted %v", m.String(), value),
				Value:     value,
			}
		case !IsValidationFailure(err):
			return err
		}
	}

	return nil
}

func (n *nor[T]) String() string { return "nor(" + names(n.members) + ")" }

func (n *nor[T]) Kind() Kind { return KindCombinator }

type or[T any] struct {
	members []Validator[T]
}

func (o *or[T]) Validate(value T) error {
	if len(o.members) == 0 {
		return &errors.ValidationError{Validator: o.String(), Cause: errors.ErrEmptyCombinator}
	}

	var failures errors.Collection

	for _, m := range o.members {
		err := m.Validate(value)
		if err == nil {
			return nil
		}

		if !IsValidationFailure(err) {
			return err
		}

		failures.Add(err)
	}

	return &errors.ValidationError{
		Validator: o.String(),
		Message:   fmt.Sprintf("none of %d validator(s) accepted %v", failures.Len(), value),
		Value:     value,
		Cause:     failures.GetError(),
	}
}

func (o *or[T]) String() string { return "or(" + names(o.members) + ")" }

func (o *or[T]) Kind() Kind { return KindCombinator }

type xor[T any] struct {
	members []Validator[T]
}

func (x *xor[T]) Validate(value T) error {
	if len(x.members) == 0 {
		return &errors.ValidationError{Validator: x.String(), Cause: errors.ErrEmptyCombinator}
	}

	successes := 0

	for _, m := range x.members {
		err := m.Validate(value)

		switch {
		case err == nil:
			successes++
		case !IsValidationFailure(err):
			return err
		}
	}

	if successes == 1 {
		return nil
	}

	return &errors.ValidationError{
		Validator: x.String(),
		Message:   fmt.Sprintf("%d validator(s) accepted %v, expected exactly one", successes, value),
		Value:     value,
	}
}

func (x *xor[T]) String() string { return "xor(" + names(x.members) + ")" }

func (x *xor[T]) Kind() Kind { return KindCombinator }
