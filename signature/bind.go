package signature

import (
	"fmt"

	"github.com/amp-labs/amp-paramcheck/errors"
)

// Bound holds the arguments of one call, keyed by parameter.
type Bound struct {
	sig     *Signature
	values  []any
	present []bool
}

// Bind assigns positional and named arguments to parameters. Unsupplied
// parameters take their default. It fails, wrapping errors.ErrBinding, when there
// are too many positional arguments, a named argument is unknown or duplicates a
// positional one, or a required parameter is left without a value.
func (s *Signature) Bind(positional []any, named map[string]any) (*Bound, error) {
	if len(positional) > len(s.params) {
		return nil, fmt.Errorf("%w: takes %d argument(s) but %d were given",
			errors.ErrBinding, len(s.params), len(positional))
	}

	bound := &Bound{
		sig:     s,
		values:  make([]any, len(s.params)),
		present: make([]bool, len(s.params)),
	}

	for i, arg := range positional {
		bound.values[i] = arg
		bound.present[i] = true
	}

	for name, arg := range named {
		idx, ok := s.index[name]
		if !ok {
			return nil, fmt.Errorf("%w: unexpected argument %q", errors.ErrBinding, name)
		}

		if bound.present[idx] {
			return nil, fmt.Errorf("%w: multiple values for argument %q", errors.ErrBinding, name)
		}

		bound.values[idx] = arg
		bound.present[idx] = true
	}

	for i, param := range s.params {
		if bound.present[i] {
			continue
		}

		def, ok := param.Default.Get()
		if !ok {
			return nil, fmt.Errorf("%w: missing required argument %q", errors.ErrBinding, param.Name)
		}

		bound.values[i] = def
		bound.present[i] = true
	}

	return bound, nil
}

// Signature returns the signature the arguments were bound against.
func (b *Bound) Signature() *Signature {
	return b.sig
}

// Value returns the bound value of the named parameter. The boolean is false
// for names the signature does not declare.
func (b *Bound) Value(name string) (any, bool) {
	idx, ok := b.sig.index[name]
	if !ok || !b.present[idx] {
		return nil, false
	}

	return b.values[idx], true
}

// Args returns the bound values in declaration order, ready to invoke the callable with.
func (b *Bound) Args() []any {
	out := make([]any, len(b.values))
	copy(out, b.values)

	return out
}
