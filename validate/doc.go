// Package validate attaches per-argument validators to a function and enforces
// them on every call.
//
// A Validation Map (Map) pairs parameter names with validator groups. The names
// are checked against the function's signature once, when the function is
// decorated; a name the function does not declare is a configuration error and
// no decorated function is produced. On each call the arguments are bound to
// names, the groups run in map order, and the first failure is returned without
// the wrapped function ever running.
//
// Nil and absent arguments pass through: only nil-aware validators such as
// validator.NotNil run on them.
//
//	sig, _ := signature.Names("a", "b")
//	f, err := validate.Func2(func(a, b int) (int, error) { return a + b, nil }, sig,
//	    validate.Map{
//	        validate.Arg("a", is.Even[int](), is.Gt(1)),
//	        validate.Arg("b", validator.Or(is.Even[int](), is.Mod(3))),
//	    })
//
// Decorate offers the same over reflection, for any arity and with named
// arguments and defaults.
package validate
