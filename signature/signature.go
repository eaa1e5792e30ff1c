// Package signature registers the parameter names of a callable and binds call
// arguments to them.
//
// Go cannot recover parameter names from a func value at runtime, so the names
// are declared once, next to the function they describe:
//
//	sig, err := signature.New(signature.Required("a"), signature.WithDefault("b", 0))
//	bound, err := sig.Bind([]any{84}, map[string]any{"b": 82})
//
// Binding mirrors native call semantics: positional arguments fill parameters in
// declaration order, named arguments fill them by name, and defaults fill whatever
// is left.
package signature

import (
	"fmt"
	"strings"

	"github.com/amp-labs/amp-paramcheck/errors"
	"github.com/amp-labs/amp-paramcheck/optional"
)

// Param is one declared parameter.
type Param struct {
	Name    string
	Default optional.Value[any]
}

// Required declares a parameter without a default value.
func Required(name string) Param {
	return Param{Name: name, Default: optional.None[any]()}
}

// WithDefault declares a parameter whose value is used when the caller omits it.
// A nil default is valid and means the parameter is absent unless supplied.
func WithDefault(name string, value any) Param {
	return Param{Name: name, Default: optional.Some(value)}
}

// Signature is an immutable, ordered list of parameters.
type Signature struct {
	params []Param
	index  map[string]int
}

// New builds a signature. Names must be non-empty and unique, and a required
// parameter may not follow a parameter with a default.
func New(params ...Param) (*Signature, error) {
	sig := &Signature{
		params: make([]Param, 0, len(params)),
		index:  make(map[string]int, len(params)),
	}

	seenDefault := false

	for i, param := range params {
		name := strings.TrimSpace(param.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: parameter %d has an empty name", errors.ErrConfiguration, i)
		}

		if _, dup := sig.index[name]; dup {
			return nil, fmt.Errorf("%w: duplicate parameter %q", errors.ErrConfiguration, name)
		}

		if param.Default.NonEmpty() {
			seenDefault = true
		} else if seenDefault {
			return nil, fmt.Errorf("%w: required parameter %q follows a parameter with a default",
				errors.ErrConfiguration, name)
		}

		sig.index[name] = i
		sig.params = append(sig.params, Param{Name: name, Default: param.Default})
	}

	return sig, nil
}

// Names builds a signature where every parameter is required.
func Names(names ...string) (*Signature, error) {
	params := make([]Param, len(names))
	for i, name := range names {
		params[i] = Required(name)
	}

	return New(params...)
}

// Len returns the number of declared parameters.
func (s *Signature) Len() int {
	return len(s.params)
}

// Names returns the parameter names in declaration order.
func (s *Signature) Names() []string {
	names := make([]string, len(s.params))
	for i, p := range s.params {
		names[i] = p.Name
	}

	return names
}

// Params returns a copy of the declared parameters.
func (s *Signature) Params() []Param {
	out := make([]Param, len(s.params))
	copy(out, s.params)

	return out
}

// Has reports whether name is a declared parameter.
func (s *Signature) Has(name string) bool {
	_, ok := s.index[name]

	return ok
}

// Index returns the position of the named parameter.
func (s *Signature) Index(name string) (int, bool) {
	i, ok := s.index[name]

	return i, ok
}

func (s *Signature) String() string {
	parts := make([]string, len(s.params))

	for i, p := range s.params {
		if def, ok := p.Default.Get(); ok {
			parts[i] = fmt.Sprintf("%s=%v", p.Name, def)
		} else {
			parts[i] = p.Name
		}
	}

	return "(" + strings.Join(parts, ", ") + ")"
}
