package validate_test

import (
	"context"
	"fmt"

	"github.com/amp-labs/amp-paramcheck/is"
	"github.com/amp-labs/amp-paramcheck/signature"
	"github.com/amp-labs/amp-paramcheck/validate"
	"github.com/amp-labs/amp-paramcheck/validator"
)

// ExampleFunc2 decorates a two-argument function.
func ExampleFunc2() {
	sig, _ := signature.Names("a", "b")

	add, err := validate.Func2(func(a, b int) (int, error) { return a + b, nil }, sig,
		validate.Map{
			validate.Arg("a", is.Even[int](), is.Gt(1)),
			validate.Arg("b", validator.Or(is.Even[int](), is.Mod(3))),
		}, validate.WithName("add"))
	if err != nil {
		fmt.Println(err)

		return
	}

	fmt.Println(add(84, 9))

	_, err = add(0, 0)
	fmt.Println(err)

	_, err = add(2, 7)
	fmt.Println(err)
	// Output:
	// 93 <nil>
	// validation failed: is.Gt(1): x > 1 does not hold for x=0
	// validation failed: or(is.Even, is.Mod(3)): none of 2 validator(s) accepted 7
}

// ExampleDecorate shows that names are checked before a function is produced.
func ExampleDecorate() {
	sig, _ := signature.Names("a", "b")

	_, err := validate.Decorate(func(a, b int) {}, sig, validate.Map{
		validate.Arg[int]("ab"),
	}, validate.WithName("f"))
	fmt.Println(err)
	// Output:
	// invalid configuration for f: unknown parameter(s) ab, declared parameters are [a, b]
}

// ExampleFunc_CallNamed calls through reflection with a default and a named argument.
func ExampleFunc_CallNamed() {
	sig, _ := signature.New(signature.Required("a"), signature.WithDefault("b", 3))

	f, _ := validate.Decorate(func(a, b int) int { return a * b }, sig, validate.Map{
		validate.Arg("b", is.Odd[int]()),
	})

	out, err := f.CallNamed(context.Background(), []any{2}, nil)
	fmt.Println(out, err)

	_, err = f.CallNamed(context.Background(), []any{2}, map[string]any{"b": 4})
	fmt.Println(err)
	// Output:
	// [6] <nil>
	// validation failed: is.Odd: 4 is not odd
}
