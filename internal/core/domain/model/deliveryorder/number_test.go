package deliveryorder_test

import (
	"testing"

	"dotrack/internal/core/domain/model/deliveryorder"
	"dotrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNumber(t *testing.T) {
	t.Run("should create valid number", func(t *testing.T) {
		number, err := deliveryorder.NewNumber(2025, 1)

		require.NoError(t, err)
		require.NoError(t, number.Validate())
		assert.Equal(t, 2025, number.Year())
		assert.Equal(t, 1, number.Sequence())
		assert.Equal(t, "DO-2025-001", number.String())
	})

	t.Run("should zero-pad sequences below 100", func(t *testing.T) {
		number, err := deliveryorder.NewNumber(2025, 42)
		require.NoError(t, err)
		assert.Equal(t, "DO-2025-042", number.String())
	})

	t.Run("should not truncate sequences above 999", func(t *testing.T) {
		number, err := deliveryorder.NewNumber(2025, 1234)
		require.NoError(t, err)
		assert.Equal(t, "DO-2025-1234", number.String())
	})

	t.Run("should fail with non four-digit year", func(t *testing.T) {
		for _, year := range []int{0, 999, 10000, -2025} {
			_, err := deliveryorder.NewNumber(year, 1)
			require.Error(t, err)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		}
	})

	t.Run("should fail with non-positive sequence", func(t *testing.T) {
		for _, seq := range []int{0, -1} {
			_, err := deliveryorder.NewNumber(2025, seq)
			require.Error(t, err)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		}
	})
}

func TestParseNumber(t *testing.T) {
	t.Run("should parse canonical form", func(t *testing.T) {
		number, err := deliveryorder.ParseNumber("DO-2025-001")

		require.NoError(t, err)
		assert.Equal(t, 2025, number.Year())
		assert.Equal(t, 1, number.Sequence())
	})

	t.Run("should parse long sequences", func(t *testing.T) {
		number, err := deliveryorder.ParseNumber("DO-2025-1234")

		require.NoError(t, err)
		assert.Equal(t, 1234, number.Sequence())
	})

	t.Run("should round-trip through String", func(t *testing.T) {
		original, err := deliveryorder.NewNumber(2024, 317)
		require.NoError(t, err)

		parsed, err := deliveryorder.ParseNumber(original.String())
		require.NoError(t, err)
		assert.True(t, original.IsEqual(parsed))
	})

	t.Run("should reject over-padded sequences", func(t *testing.T) {
		_, err := deliveryorder.ParseNumber("DO-2025-0001")

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
	})

	t.Run("should reject malformed numbers", func(t *testing.T) {
		malformed := []string{
			"",
			"DO-2025",
			"DO-25-001",
			"DO-2025-01",
			"do-2025-001",
			"DO-2025-001-extra",
			"INV-2025-001",
			"DO-2025-00042",
		}

		for _, s := range malformed {
			_, err := deliveryorder.ParseNumber(s)
			require.Error(t, err, "expected %q to be rejected", s)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		}
	})
}

func TestNumber_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var number deliveryorder.Number

		err := number.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "number must be created")
	})
}
