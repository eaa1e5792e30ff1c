package validate

import (
	"context"
	"fmt"
	"reflect"

	"github.com/amp-labs/amp-paramcheck/errors"
	"github.com/amp-labs/amp-paramcheck/signature"
	"github.com/amp-labs/amp-paramcheck/utils"
)

var errorType = reflect.TypeFor[error]()

// Func is a function decorated with a Validation Map. Calls bind their
// arguments against the signature, run the map, and only invoke the wrapped
// function when every rule passed.
type Func struct {
	fn         reflect.Value
	typ        reflect.Type
	validation *Validation
	trailing   bool
}

// Decorate wraps fn, which may be any non-variadic function whose parameters
// are described by sig. Decoration fails with an *errors.ConfigurationError when
// fn is not a function, its arity differs from sig, or rules name a parameter
// sig does not declare.
func Decorate(fn any, sig *signature.Signature, rules Map, opts ...Option) (*Func, error) {
	o := newOptions(opts)

	value := reflect.ValueOf(fn)
	if !value.IsValid() || value.Kind() != reflect.Func || value.IsNil() {
		return nil, &errors.ConfigurationError{Function: o.name, Reason: fmt.Sprintf("cannot decorate %T", fn)}
	}

	if o.name == "" {
		o.name = functionName(fn)
	}

	typ := value.Type()
	if typ.IsVariadic() {
		return nil, &errors.ConfigurationError{Function: o.name, Reason: "variadic functions are not supported"}
	}

	if sig != nil && typ.NumIn() != sig.Len() {
		return nil, &errors.ConfigurationError{
			Function: o.name,
			Reason:   fmt.Sprintf("function takes %d argument(s) but the signature declares %d", typ.NumIn(), sig.Len()),
		}
	}

	v, err := newValidation(sig, rules, o)
	if err != nil {
		return nil, err
	}

	if err := checkParamTypes(v, typ); err != nil {
		return nil, err
	}

	return &Func{
		fn:         value,
		typ:        typ,
		validation: v,
		trailing:   typ.NumOut() > 0 && typ.Out(typ.NumOut()-1) == errorType,
	}, nil
}

// Call invokes the function with positional arguments.
func (f *Func) Call(ctx context.Context, args ...any) ([]any, error) {
	return f.CallNamed(ctx, args, nil)
}

// CallNamed invokes the function with positional and named arguments. The
// results are returned in order; a trailing error result is returned as the
// error instead. A rejected call returns no results and the rejection.
func (f *Func) CallNamed(ctx context.Context, positional []any, named map[string]any) ([]any, error) {
	bound, err := f.validation.sig.Bind(positional, named)
	if err != nil {
		return nil, err
	}

	if err := f.validation.Check(ctx, bound); err != nil {
		return nil, err
	}

	in, err := f.arguments(bound)
	if err != nil {
		return nil, err
	}

	return f.results(f.fn.Call(in))
}

func (f *Func) arguments(bound *signature.Bound) ([]reflect.Value, error) {
	args := bound.Args()
	names := f.validation.sig.Names()
	in := make([]reflect.Value, len(args))

	for i, arg := range args {
		want := f.typ.In(i)

		if arg == nil {
			if !utils.CanBeNil(want) {
				return nil, fmt.Errorf("%w: argument %q: expected %s, received nil", errors.ErrWrongType, names[i], want)
			}

			in[i] = reflect.Zero(want)

			continue
		}

		value := reflect.ValueOf(arg)
		if !value.Type().AssignableTo(want) {
			return nil, fmt.Errorf("%w: argument %q: expected %s, received %T", errors.ErrWrongType, names[i], want, arg)
		}

		in[i] = value
	}

	return in, nil
}

func (f *Func) results(out []reflect.Value) ([]any, error) {
	var err error

	if f.trailing {
		last := out[len(out)-1]
		out = out[:len(out)-1]

		if !last.IsNil() {
			err, _ = last.Interface().(error)
		}
	}

	results := make([]any, len(out))
	for i, o := range out {
		results[i] = o.Interface()
	}

	return results, err
}

// Name returns the function label.
func (f *Func) Name() string {
	return f.validation.name
}

// Validation returns the compiled Validation Map.
func (f *Func) Validation() *Validation {
	return f.validation
}

func (f *Func) Stats() Stats {
	return f.validation.Stats()
}

func functionName(fn any) string {
	name, ok := utils.ShortFunctionName(fn)
	if !ok || name == "" {
		return anonymous
	}

	return name
}

func reflectNil(fn any) bool {
	value := reflect.ValueOf(fn)

	return value.Kind() == reflect.Func && value.IsNil()
}

// checkParamTypes rejects rules whose type can never hold an argument of the
// parameter they name. Interface parameters are only checked per call, since
// their dynamic type is not known before.
func checkParamTypes(v *Validation, fnType reflect.Type) error {
	for _, r := range v.rules {
		idx, ok := v.sig.Index(r.name)
		if !ok || r.typ == nil {
			continue
		}

		param := fnType.In(idx)
		if param.Kind() == reflect.Interface || param.AssignableTo(r.typ) {
			continue
		}

		return &errors.ConfigurationError{
			Function: v.name,
			Reason:   fmt.Sprintf("rule for parameter %q expects %s, but the function takes %s", r.name, r.typ, param),
		}
	}

	return nil
}
