package is

import (
	"regexp"
	"testing"
	"time"

	"github.com/amp-labs/amp-paramcheck/errors"
	"github.com/amp-labs/amp-paramcheck/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type valueCase[T any] struct {
	name  string
	value T
	ok    bool
}

func runCases[T any](t *testing.T, v validator.Validator[T], cases []valueCase[T]) {
	t.Helper()

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := v.Validate(tc.value)
			if tc.ok {
				require.NoError(t, err)

				return
			}

			require.ErrorIs(t, err, errors.ErrValidation)

			var verr *errors.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, v.String(), verr.Validator)
			assert.NotEmpty(t, verr.Message)
		})
	}
}

func TestParity(t *testing.T) {
	t.Parallel()

	runCases(t, Even[int](), []valueCase[int]{
		{"zero", 0, true},
		{"even", 84, true},
		{"odd", 1, false},
		{"negative odd", -3, false},
	})

	runCases(t, Odd[uint8](), []valueCase[uint8]{
		{"odd", 3, true},
		{"even", 4, false},
	})
}

func TestMod(t *testing.T) {
	t.Parallel()

	runCases(t, Mod(3), []valueCase[int]{
		{"multiple", 9, true},
		{"zero", 0, true},
		{"not a multiple", 7, false},
	})

	t.Run("zero modulus is not a validation failure", func(t *testing.T) {
		t.Parallel()

		err := Mod(0).Validate(4)
		require.ErrorIs(t, err, ErrZeroModulus)
		assert.False(t, validator.IsValidationFailure(err))
	})

	assert.Equal(t, "is.Mod(3)", Mod(3).String())
}

func TestOrdering(t *testing.T) {
	t.Parallel()

	runCases(t, Gt(1), []valueCase[int]{
		{"greater", 2, true},
		{"equal", 1, false},
		{"less", 0, false},
	})

	runCases(t, Gte(1.5), []valueCase[float64]{
		{"equal", 1.5, true},
		{"less", 1.4, false},
	})

	runCases(t, Lt("m"), []valueCase[string]{
		{"before", "a", true},
		{"after", "z", false},
	})

	runCases(t, Lte(time.Second), []valueCase[time.Duration]{
		{"equal", time.Second, true},
		{"greater", time.Minute, false},
	})

	runCases(t, Between(1, 10), []valueCase[int]{
		{"low bound", 1, true},
		{"high bound", 10, true},
		{"below", 0, false},
		{"above", 11, false},
	})

	err := Gt(1).Validate(0)
	require.Error(t, err)
	assert.Equal(t, "validation failed: is.Gt(1): x > 1 does not hold for x=0", err.Error())
}

func TestSign(t *testing.T) {
	t.Parallel()

	runCases(t, Positive[int64](), []valueCase[int64]{
		{"positive", 1, true},
		{"zero", 0, false},
		{"negative", -1, false},
	})

	runCases(t, NonZero[float32](), []valueCase[float32]{
		{"negative", -0.5, true},
		{"zero", 0, false},
	})
}

func TestOneOf(t *testing.T) {
	t.Parallel()

	runCases(t, OneOf("json", "yaml"), []valueCase[string]{
		{"member", "yaml", true},
		{"not a member", "toml", false},
	})

	runCases(t, OneOf[int](), []valueCase[int]{
		{"empty choices", 1, false},
	})
}

func TestStrings(t *testing.T) {
	t.Parallel()

	runCases(t, NotEmpty[string](), []valueCase[string]{
		{"non-empty", "a", true},
		{"empty", "", false},
	})

	runCases(t, MinLen[string](2), []valueCase[string]{
		{"counts runes", "éé", true},
		{"too short", "é", false},
	})

	runCases(t, MaxLen[string](2), []valueCase[string]{
		{"counts runes", "éé", true},
		{"too long", "abc", false},
	})

	runCases(t, Matches[string](regexp.MustCompile(`^[a-z_]+$`)), []valueCase[string]{
		{"match", "snake_case", true},
		{"no match", "CamelCase", false},
	})
}

func TestNotNil(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, validator.ValidateNil(NotNil[*int]()), errors.ErrValidation)
	require.NoError(t, validator.ValidateNil(Gt(1)))
}

func TestComposition(t *testing.T) {
	t.Parallel()

	v := validator.All(Gt(0), validator.Or(Even[int](), Mod(3)), validator.Not(Mod(5)))

	require.NoError(t, v.Validate(6))
	require.NoError(t, v.Validate(9))
	require.ErrorIs(t, v.Validate(10), errors.ErrValidation)
	require.ErrorIs(t, v.Validate(7), errors.ErrValidation)
	require.ErrorIs(t, v.Validate(-6), errors.ErrValidation)
}
