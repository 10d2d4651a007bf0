package contract_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contracts/pkg/contract"
)

type celsius float64

type port uint16

func TestRoot(t *testing.T) {
	t.Parallel()
	for _, v := range []any{nil, 0, "", -1, struct{}{}} {
		assert.NoError(t, contract.Root.Check("f", "x", v))
	}
}

func TestPositive(t *testing.T) {
	t.Parallel()
	t.Run("passes for positive int", func(t *testing.T) {
		assert.NoError(t, contract.Positive.Check("f", "n", 5))
	})

	t.Run("fails for zero", func(t *testing.T) {
		err := contract.Positive.Check("f", "n", 0)
		require.Error(t, err)
		v, ok := contract.AsViolation(err)
		require.True(t, ok)
		assert.Equal(t, "positive", v.Constraint)
		assert.Equal(t, "contract.positive", v.TranslationKey)
		assert.Equal(t, "n", v.Param)
		assert.Equal(t, 0, v.Value)
	})

	t.Run("fails for negative int", func(t *testing.T) {
		err := contract.Positive.Check("f", "n", -1)
		require.Error(t, err)
		assert.Equal(t, "[f]: expected n to be positive, got -1", err.Error())
	})

	t.Run("passes for positive float and unsigned values", func(t *testing.T) {
		assert.NoError(t, contract.Positive.Check("f", "n", 0.001))
		assert.NoError(t, contract.Positive.Check("f", "n", uint8(1)))
		assert.NoError(t, contract.Positive.Check("f", "n", celsius(21.5)))
	})

	t.Run("fails for unsigned zero", func(t *testing.T) {
		assert.Error(t, contract.Positive.Check("f", "n", uint(0)))
	})

	t.Run("fails for NaN", func(t *testing.T) {
		err := contract.Positive.Check("f", "n", math.NaN())
		v, ok := contract.AsViolation(err)
		require.True(t, ok)
		assert.Equal(t, "positive", v.Constraint)
	})

	t.Run("reports non-numeric values as not orderable", func(t *testing.T) {
		err := contract.Positive.Check("f", "n", "5")
		v, ok := contract.AsViolation(err)
		require.True(t, ok)
		assert.Equal(t, "orderable", v.Constraint)
		assert.Equal(t, "[f]: expected n to be an orderable number, got 5 (string)", err.Error())
	})

	t.Run("reports nil as not orderable", func(t *testing.T) {
		v, ok := contract.AsViolation(contract.Positive.Check("f", "n", nil))
		require.True(t, ok)
		assert.Equal(t, "orderable", v.Constraint)
	})
}

func TestNegative(t *testing.T) {
	t.Parallel()
	t.Run("passes for negative values", func(t *testing.T) {
		assert.NoError(t, contract.Negative.Check("f", "n", -1))
		assert.NoError(t, contract.Negative.Check("f", "n", int64(math.MinInt64)))
		assert.NoError(t, contract.Negative.Check("f", "n", -0.5))
	})

	t.Run("fails for zero and positive values", func(t *testing.T) {
		err := contract.Negative.Check("f", "n", 0)
		require.Error(t, err)
		assert.Equal(t, "[f]: expected n to be negative, got 0", err.Error())
		assert.Error(t, contract.Negative.Check("f", "n", uint64(math.MaxUint64)))
		assert.Error(t, contract.Negative.Check("f", "n", 2.5))
	})
}

func TestNonEmpty(t *testing.T) {
	t.Parallel()
	t.Run("passes for sized values with elements", func(t *testing.T) {
		assert.NoError(t, contract.NonEmpty.Check("f", "v", "a"))
		assert.NoError(t, contract.NonEmpty.Check("f", "v", []int{1}))
		assert.NoError(t, contract.NonEmpty.Check("f", "v", map[string]int{"a": 1}))
		assert.NoError(t, contract.NonEmpty.Check("f", "v", [1]int{}))
	})

	t.Run("fails for empty values", func(t *testing.T) {
		for _, v := range []any{"", []int{}, []string(nil), map[string]int{}, [0]int{}} {
			err := contract.NonEmpty.Check("f", "v", v)
			violation, ok := contract.AsViolation(err)
			require.True(t, ok)
			assert.Equal(t, "non_empty", violation.Constraint)
			assert.Equal(t, "[f]: expected v to be a non-empty value", err.Error())
		}
	})

	t.Run("reports unsized values", func(t *testing.T) {
		for _, v := range []any{nil, 5, 2.5, struct{}{}} {
			violation, ok := contract.AsViolation(contract.NonEmpty.Check("f", "v", v))
			require.True(t, ok)
			assert.Equal(t, "sized", violation.Constraint)
		}
	})
}

func TestTypeValidators(t *testing.T) {
	t.Parallel()
	t.Run("integer accepts every integer kind", func(t *testing.T) {
		for _, v := range []any{1, int8(1), int64(1), uint(1), uint32(1), port(80)} {
			assert.NoError(t, contract.Integer.Check("f", "n", v))
		}
	})

	t.Run("integer rejects floats, strings and nil", func(t *testing.T) {
		for _, v := range []any{1.0, float32(1), "1", nil, true} {
			assert.Error(t, contract.Integer.Check("f", "n", v))
		}
	})

	t.Run("float accepts named float types", func(t *testing.T) {
		assert.NoError(t, contract.Float.Check("f", "t", celsius(3)))
		assert.NoError(t, contract.Float.Check("f", "t", float32(3)))
		assert.Error(t, contract.Float.Check("f", "t", 3))
	})

	t.Run("string reports the expected and observed type", func(t *testing.T) {
		err := contract.String.Check("f", "s", 42)
		require.Error(t, err)
		assert.Equal(t, "[f]: expected s to be of type string, got 42 (int)", err.Error())
		v, _ := contract.AsViolation(err)
		assert.Equal(t, "string", v.TranslationValues["type"])
	})

	t.Run("TypeOf accepts interface implementations", func(t *testing.T) {
		errType := contract.TypeOf[error]()
		assert.Equal(t, "error", errType.Name())
		assert.NoError(t, errType.Check("f", "err", contract.ErrInvalidRange))
		assert.Error(t, errType.Check("f", "err", "boom"))
	})

	t.Run("TypeOf requires assignability for concrete types", func(t *testing.T) {
		v := contract.TypeOf[port]()
		assert.NoError(t, v.Check("f", "p", port(1)))
		assert.Error(t, v.Check("f", "p", uint16(1)))
	})
}

func TestPositiveInteger(t *testing.T) {
	t.Parallel()
	t.Run("passes for positive integer", func(t *testing.T) {
		assert.NoError(t, contract.PositiveInteger.Check("f", "n", 3))
	})

	t.Run("type check runs before sign check", func(t *testing.T) {
		v, ok := contract.AsViolation(contract.PositiveInteger.Check("f", "n", 3.0))
		require.True(t, ok)
		assert.Equal(t, "type", v.Constraint)

		v, ok = contract.AsViolation(contract.PositiveInteger.Check("f", "n", -3.0))
		require.True(t, ok)
		assert.Equal(t, "type", v.Constraint)
	})

	t.Run("fails sign check for negative integer", func(t *testing.T) {
		v, ok := contract.AsViolation(contract.PositiveInteger.Check("f", "n", -3))
		require.True(t, ok)
		assert.Equal(t, "positive", v.Constraint)
	})
}

func TestCompositeContracts(t *testing.T) {
	t.Parallel()
	assert.NoError(t, contract.NegativeInteger.Check("f", "n", -2))
	assert.Error(t, contract.NegativeInteger.Check("f", "n", 2))
	assert.NoError(t, contract.PositiveFloat.Check("f", "n", 0.5))
	assert.Error(t, contract.PositiveFloat.Check("f", "n", 1))
	assert.NoError(t, contract.NonEmptyString.Check("f", "s", "x"))

	v, ok := contract.AsViolation(contract.NonEmptyString.Check("f", "s", []string{"x"}))
	require.True(t, ok)
	assert.Equal(t, "type", v.Constraint)
}

func TestUUID(t *testing.T) {
	t.Parallel()
	t.Run("passes for canonical UUID", func(t *testing.T) {
		assert.NoError(t, contract.UUID.Check("f", "id", "123e4567-e89b-12d3-a456-426614174000"))
	})

	t.Run("fails for non canonical forms", func(t *testing.T) {
		for _, v := range []string{"", "not-a-uuid", "{123e4567-e89b-12d3-a456-426614174000}", "123e4567e89b12d3a456426614174000"} {
			violation, ok := contract.AsViolation(contract.UUID.Check("f", "id", v))
			require.True(t, ok, v)
			assert.Equal(t, "uuid", violation.Constraint)
		}
	})

	t.Run("fails type check for non strings", func(t *testing.T) {
		violation, ok := contract.AsViolation(contract.UUID.Check("f", "id", 42))
		require.True(t, ok)
		assert.Equal(t, "type", violation.Constraint)
	})
}
