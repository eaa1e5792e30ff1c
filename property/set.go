package property

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"facette.io/natsort"
	"github.com/amp-labs/amp-paramcheck/assert"
	"github.com/amp-labs/amp-paramcheck/errors"
	"github.com/amp-labs/amp-paramcheck/validate"
)

// SetOption selects the parameters a Set stores.
type SetOption func(*sieve)

type sieve struct {
	include []string
	exclude []string
}

// Include stores only the named parameters.
func Include(names ...string) SetOption {
	return func(s *sieve) {
		s.include = append(s.include, names...)
	}
}

// Exclude stores every parameter except the named ones.
func Exclude(names ...string) SetOption {
	return func(s *sieve) {
		s.exclude = append(s.exclude, names...)
	}
}

// Set stores the arguments of a constructor call and validates every later
// assignment with the rule the constructor declares for that parameter.
type Set struct {
	validation *validate.Validation
	names      []string

	mu     sync.RWMutex
	values map[string]any
}

// NewSet builds a Set over the parameters of v's signature. Include and
// Exclude may not be combined, and they may only name declared parameters;
// otherwise NewSet returns an *errors.ConfigurationError.
func NewSet(v *validate.Validation, opts ...SetOption) (*Set, error) {
	if v == nil {
		return nil, &errors.ConfigurationError{Reason: "no validation"}
	}

	var s sieve

	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}

	if len(s.include) > 0 && len(s.exclude) > 0 {
		return nil, &errors.ConfigurationError{
			Function: v.Name(),
			Reason:   "include and exclude cannot be used together",
		}
	}

	sig := v.Signature()

	var unknown []string

	for _, name := range slices.Concat(s.include, s.exclude) {
		if !sig.Has(name) {
			unknown = append(unknown, name)
		}
	}

	if len(unknown) > 0 {
		natsort.Sort(unknown)

		return nil, &errors.ConfigurationError{
			Function: v.Name(),
			Unknown:  unknown,
			Declared: sig.Names(),
		}
	}

	var names []string

	for _, name := range sig.Names() {
		switch {
		case len(s.include) > 0 && !slices.Contains(s.include, name):
		case slices.Contains(s.exclude, name):
		default:
			names = append(names, name)
		}
	}

	return &Set{
		validation: v,
		names:      names,
		values:     make(map[string]any, len(names)),
	}, nil
}

// Names returns the stored parameters in declaration order.
func (s *Set) Names() []string {
	return slices.Clone(s.names)
}

// Init binds the arguments like a call to the constructor would, validates
// them, and stores the selected ones. Nothing is stored when the call is
// rejected.
func (s *Set) Init(ctx context.Context, positional []any, named map[string]any) error {
	bound, err := s.validation.Signature().Bind(positional, named)
	if err != nil {
		return err
	}

	if err := s.validation.Check(ctx, bound); err != nil {
		return err
	}

	values := make(map[string]any, len(s.names))

	for _, name := range s.names {
		value, _ := bound.Value(name)
		values[name] = value
	}

	s.mu.Lock()
	s.values = values
	s.mu.Unlock()

	return nil
}

// Get returns a stored value. The boolean is false for parameters the Set
// does not store or that were never initialized.
func (s *Set) Get(name string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[name]

	return value, ok
}

// Assign validates value with the rule of the named parameter and stores it.
// A rejected value leaves the stored one in place.
func (s *Set) Assign(ctx context.Context, name string, value any) error {
	if !slices.Contains(s.names, name) {
		return fmt.Errorf("%w: %s has no property %q", errors.ErrBinding, s.validation.Name(), name)
	}

	if err := s.validation.CheckValue(ctx, name, value); err != nil {
		return err
	}

	s.mu.Lock()
	s.values[name] = value
	s.mu.Unlock()

	return nil
}

// GetAs returns a stored value as a T.
func GetAs[T any](s *Set, name string) (T, error) {
	value, ok := s.Get(name)
	if !ok {
		var zero T

		return zero, fmt.Errorf("%w: no value for property %q", errors.ErrBinding, name)
	}

	return assert.Type[T](value)
}
