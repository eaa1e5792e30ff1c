// Package property keeps values that must satisfy validators for as long as
// they are stored.
//
// A Property holds one value. A Set holds the arguments a constructor was
// called with, for the parameters selected by Include or Exclude, and lets
// them be reassigned later under the constructor's own rules:
//
//	v, _ := validate.New(sig, validate.Map{validate.Arg("port", is.Between(1, 65535))})
//	props, _ := property.NewSet(v, property.Exclude("password"))
//	_ = props.Init(ctx, []any{8080, "secret"}, nil)
//	err := props.Assign(ctx, "port", 0) // rejected, 8080 is kept
package property

import (
	"context"
	"sync"

	"github.com/amp-labs/amp-paramcheck/signature"
	"github.com/amp-labs/amp-paramcheck/validate"
	"github.com/amp-labs/amp-paramcheck/validator"
)

// Property is a single validated value. It is safe for concurrent use.
type Property[T any] struct {
	mu         sync.RWMutex
	name       string
	value      T
	validation *validate.Validation
}

// New creates a property whose value must pass every validator, in order.
// The initial value is checked too; New fails when it does not pass.
func New[T any](name string, initial T, validators ...validator.Validator[T]) (*Property[T], error) {
	sig, err := signature.Names(name)
	if err != nil {
		return nil, err
	}

	v, err := validate.New(sig, validate.Map{validate.Arg(name, validators...)},
		validate.WithName("property."+name))
	if err != nil {
		return nil, err
	}

	p := &Property[T]{name: name, validation: v}

	if err := p.Set(context.Background(), initial); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Property[T]) Name() string {
	return p.name
}

// Get returns the current value.
func (p *Property[T]) Get() T {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.value
}

// Set replaces the value when value passes the validators. On failure the
// previous value is kept and the rejection is returned.
func (p *Property[T]) Set(ctx context.Context, value T) error {
	if err := p.validation.CheckValue(ctx, p.name, value); err != nil {
		return err
	}

	p.mu.Lock()
	p.value = value
	p.mu.Unlock()

	return nil
}
