package validator_test

import (
	"testing"

	"github.com/amp-labs/amp-paramcheck/errors"
	"github.com/amp-labs/amp-paramcheck/validator"
	testifyAssert "github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counting wraps a validator and records how often it ran.
type counting struct {
	validator.Validator[int]

	calls *int
}

func (c counting) Validate(value int) error {
	*c.calls++

	return c.Validator.Validate(value)
}

func TestAll(t *testing.T) {
	t.Parallel()

	t.Run("succeeds when every member succeeds", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, validator.All(isEven(), isMod(3)).Validate(6))
	})

	t.Run("returns the first failure and stops", func(t *testing.T) {
		t.Parallel()

		calls := 0
		v := validator.All(isEven(), counting{Validator: isMod(3), calls: &calls})

		err := v.Validate(3)
		require.ErrorIs(t, err, errors.ErrValidation)

		var verr *errors.ValidationError
		require.ErrorAs(t, err, &verr)
		testifyAssert.Equal(t, "is_even", verr.Validator)
		testifyAssert.Equal(t, 0, calls)
	})

	t.Run("empty group succeeds", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, validator.All[int]().Validate(1))
	})

	t.Run("names", func(t *testing.T) {
		t.Parallel()

		testifyAssert.Equal(t, "is_even", validator.All(isEven()).String())
		testifyAssert.Equal(t, "all(is_even, is_mod)", validator.All(isEven(), isMod(3)).String())

		members := validator.All(isEven(), nil, isMod(3)).(interface {
			Members() []validator.Validator[int]
		}).Members()
		testifyAssert.Len(t, members, 2)
	})
}

func TestNot(t *testing.T) {
	t.Parallel()

	t.Run("negates a single validator", func(t *testing.T) {
		t.Parallel()

		v := validator.Not(isEven())
		require.NoError(t, v.Validate(11))

		err := v.Validate(84)
		require.ErrorIs(t, err, errors.ErrValidation)
		testifyAssert.Contains(t, err.Error(), "not(is_even)")
	})

	t.Run("negates an AND group", func(t *testing.T) {
		t.Parallel()

		v := validator.Not(isEven(), isMod(3))
		require.NoError(t, v.Validate(3), "odd multiple of 3: the group fails")
		require.NoError(t, v.Validate(4), "even, not a multiple of 3: the group fails")
		require.ErrorIs(t, v.Validate(6), errors.ErrValidation, "the group succeeds")
	})

	t.Run("absorbs domain failures", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, validator.Not(gtEx1()).Validate(0))
	})

	t.Run("does not absorb assertion failures", func(t *testing.T) {
		t.Parallel()

		err := validator.Not(gtAssert2()).Validate(1)
		require.ErrorIs(t, err, errors.ErrAssertion)
	})

	t.Run("does not absorb unrelated errors", func(t *testing.T) {
		t.Parallel()

		err := validator.Not(broken()).Validate(1)
		require.ErrorIs(t, err, errBoom)
	})

	t.Run("double negation", func(t *testing.T) {
		t.Parallel()

		v := validator.Not(validator.Not(isEven()))
		require.NoError(t, v.Validate(2))
		require.ErrorIs(t, v.Validate(3), errors.ErrValidation)
	})
}

func TestNor(t *testing.T) {
	t.Parallel()

	v := validator.Nor(isEven(), isMod(3))

	require.NoError(t, v.Validate(11))
	require.ErrorIs(t, v.Validate(3), errors.ErrValidation)
	require.ErrorIs(t, v.Validate(84), errors.ErrValidation)
	require.ErrorIs(t, validator.Nor(broken()).Validate(1), errBoom)
	require.NoError(t, validator.Nor[int]().Validate(1))
}

func TestOr(t *testing.T) {
	t.Parallel()

	t.Run("succeeds when any member succeeds", func(t *testing.T) {
		t.Parallel()

		v := validator.Or(isEven(), isMod(3))
		require.NoError(t, v.Validate(9))
		require.NoError(t, v.Validate(4))
	})

	t.Run("fails when every member fails", func(t *testing.T) {
		t.Parallel()

		err := validator.Or(isEven(), isMod(3)).Validate(7)
		require.ErrorIs(t, err, errors.ErrValidation)

		var verr *errors.ValidationError
		require.ErrorAs(t, err, &verr)
		testifyAssert.Equal(t, "or(is_even, is_mod)", verr.Validator)
		require.Error(t, verr.Cause)
		testifyAssert.Contains(t, verr.Cause.Error(), "is_even")
		testifyAssert.Contains(t, verr.Cause.Error(), "is_mod")
	})

	t.Run("short-circuits on the first success", func(t *testing.T) {
		t.Parallel()

		calls := 0
		v := validator.Or(isEven(), counting{Validator: isMod(3), calls: &calls})

		require.NoError(t, v.Validate(4))
		testifyAssert.Equal(t, 0, calls)
	})

	t.Run("aborts on an unrelated error", func(t *testing.T) {
		t.Parallel()

		calls := 0
		v := validator.Or(broken(), counting{Validator: isEven(), calls: &calls})

		require.ErrorIs(t, v.Validate(4), errBoom)
		testifyAssert.Equal(t, 0, calls)
	})

	t.Run("aborts on an assertion failure", func(t *testing.T) {
		t.Parallel()

		require.ErrorIs(t, validator.Or(gtAssert2(), isEven()).Validate(0), errors.ErrAssertion)
	})

	t.Run("empty or fails", func(t *testing.T) {
		t.Parallel()

		err := validator.Or[int]().Validate(1)
		require.ErrorIs(t, err, errors.ErrValidation)
		require.ErrorIs(t, err, errors.ErrEmptyCombinator)
	})

	t.Run("nested inside not", func(t *testing.T) {
		t.Parallel()

		v := validator.Not(validator.Or(isEven(), isMod(3)))
		require.NoError(t, v.Validate(7))
		require.ErrorIs(t, v.Validate(3), errors.ErrValidation)
	})
}

func TestXor(t *testing.T) {
	t.Parallel()

	t.Run("succeeds when exactly one member succeeds", func(t *testing.T) {
		t.Parallel()

		v := validator.Xor(isEven(), isMod(3))
		require.NoError(t, v.Validate(9))
		require.NoError(t, v.Validate(4))
	})

	t.Run("fails when more than one succeeds", func(t *testing.T) {
		t.Parallel()

		err := validator.Xor(isEven(), isMod(3)).Validate(6)
		require.ErrorIs(t, err, errors.ErrValidation)
		testifyAssert.Contains(t, err.Error(), "2 validator(s) accepted 6, expected exactly one")
	})

	t.Run("fails when none succeeds", func(t *testing.T) {
		t.Parallel()

		require.ErrorIs(t, validator.Xor(isEven(), isMod(3)).Validate(7), errors.ErrValidation)
	})

	t.Run("evaluates every member", func(t *testing.T) {
		t.Parallel()

		calls := 0
		v := validator.Xor(isEven(), counting{Validator: isMod(3), calls: &calls})

		require.NoError(t, v.Validate(4))
		testifyAssert.Equal(t, 1, calls)
	})

	t.Run("aborts on an unrelated error", func(t *testing.T) {
		t.Parallel()

		require.ErrorIs(t, validator.Xor(isEven(), broken()).Validate(4), errBoom)
	})

	t.Run("empty xor fails", func(t *testing.T) {
		t.Parallel()

		require.ErrorIs(t, validator.Xor[int]().Validate(1), errors.ErrEmptyCombinator)
	})
}

func TestIdempotence(t *testing.T) {
	t.Parallel()

	v := validator.Xor(isEven(), validator.Or(isMod(3), validator.Not(isMod(5))))

	for _, value := range []int{1, 2, 3, 6, 10, 15, 30} {
		first := v.Validate(value)
		for range 3 {
			testifyAssert.Equal(t, first == nil, v.Validate(value) == nil, "value %d", value)
		}
	}
}
