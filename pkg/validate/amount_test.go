package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fundkit/pkg/validate"
)

func TestAmount(t *testing.T) {
	t.Parallel()

	t.Run("valid amounts normalize to two decimals", func(t *testing.T) {
		testCases := []struct {
			raw        string
			normalized string
			cents      int64
		}{
			{"0.50", "0.50", 50},
			{"0.01", "0.01", 1},
			{"5", "5.00", 500},
			{"5.5", "5.50", 550},
			{"10000.00", "10000.00", 1000000},
			{"10000", "10000.00", 1000000},
			{"9999.99", "9999.99", 999999},
			{"123.40", "123.40", 12340},
		}

		for _, tc := range testCases {
			v := validate.Amount(tc.raw)
			require.True(t, v.Valid, "amount should be valid: %q (%s)", tc.raw, v.Message)
			assert.Equal(t, tc.normalized, v.Normalized)
			assert.Equal(t, tc.cents, v.Cents)
		}
	})

	t.Run("empty input is required", func(t *testing.T) {
		for _, raw := range []string{"", "   "} {
			v := validate.Amount(raw)
			require.False(t, v.Valid)
			assert.Equal(t, validate.CodeRequired, v.Code)
		}
	})

	t.Run("negative amounts are out of range", func(t *testing.T) {
		for _, raw := range []string{"-5", "-0.01", "-10000"} {
			v := validate.Amount(raw)
			require.False(t, v.Valid, "amount should be rejected: %q", raw)
			assert.Equal(t, validate.CodeRange, v.Code)
		}
	})

	t.Run("range boundaries", func(t *testing.T) {
		below := validate.Amount("0")
		require.False(t, below.Valid)
		assert.Equal(t, validate.CodeRange, below.Code)

		alsoBelow := validate.Amount("0.00")
		require.False(t, alsoBelow.Valid)
		assert.Equal(t, validate.CodeRange, alsoBelow.Code)

		above := validate.Amount("10000.01")
		require.False(t, above.Valid)
		assert.Equal(t, validate.CodeRange, above.Code)

		wayAbove := validate.Amount("123456789")
		require.False(t, wayAbove.Valid)
		assert.Equal(t, validate.CodeRange, wayAbove.Code)
	})

	t.Run("format violations", func(t *testing.T) {
		badFormats := []string{
			"$5", "1,000", "5.123", "1.2.3", "five", "5 00", ".50", "5.", "+5",
		}
		for _, raw := range badFormats {
			v := validate.Amount(raw)
			require.False(t, v.Valid, "amount should be rejected: %q", raw)
			assert.Equal(t, validate.CodeFormat, v.Code, "raw: %q", raw)
		}
	})

	t.Run("unnecessary leading zeros", func(t *testing.T) {
		for _, raw := range []string{"00.50", "01", "00100", "010.00"} {
			v := validate.Amount(raw)
			require.False(t, v.Valid, "amount should be rejected: %q", raw)
			assert.Equal(t, validate.CodeLeadingZero, v.Code)
		}

		// A single leading zero with a zero whole part is the one allowed shape.
		v := validate.Amount("0.99")
		require.True(t, v.Valid)
		assert.Equal(t, "0.99", v.Normalized)
	})

	t.Run("idempotent on canonical form", func(t *testing.T) {
		first := validate.Amount("7.3")
		require.True(t, first.Valid)

		second := validate.Amount(first.Normalized)
		require.True(t, second.Valid)
		assert.Equal(t, first.Normalized, second.Normalized)
		assert.Equal(t, first.Cents, second.Cents)
	})
}

func TestFormatCents(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0.01", validate.FormatCents(1))
	assert.Equal(t, "0.50", validate.FormatCents(50))
	assert.Equal(t, "12.05", validate.FormatCents(1205))
	assert.Equal(t, "10000.00", validate.FormatCents(1000000))
}
