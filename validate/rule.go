package validate

import (
	"fmt"
	"reflect"

	"github.com/amp-labs/amp-paramcheck/assert"
	"github.com/amp-labs/amp-paramcheck/validator"
)

// Rule is one entry of a Validation Map: a parameter name and the validators,
// ANDed in order, that its argument must satisfy.
type Rule struct {
	name     string
	describe string
	typ      reflect.Type
	check    func(value any) error
	checkNil func() error
}

// Map is a Validation Map. Rules are checked in the order they appear.
type Map []Rule

// Arg builds the rule for parameter name. The argument must have type T; any
// other type fails with errors.ErrWrongType before a validator runs.
func Arg[T any](name string, validators ...validator.Validator[T]) Rule {
	group := validator.All(validators...)

	return Rule{
		name:     name,
		describe: group.String(),
		typ:      reflect.TypeFor[T](),
		check: func(value any) error {
			typed, err := assert.Type[T](value)
			if err != nil {
				return fmt.Errorf("argument %q: %w", name, err)
			}

			return validator.Evaluate(group, typed)
		},
		checkNil: func() error {
			return validator.ValidateNil(group)
		},
	}
}

// Type returns the type arguments must have.
func (r Rule) Type() reflect.Type {
	return r.typ
}

// Name returns the parameter the rule applies to.
func (r Rule) Name() string {
	return r.name
}

func (r Rule) String() string {
	return r.name + ": " + r.describe
}

// Names returns the parameter names of the map in order.
func (m Map) Names() []string {
	out := make([]string, len(m))
	for i, r := range m {
		out[i] = r.name
	}

	return out
}
