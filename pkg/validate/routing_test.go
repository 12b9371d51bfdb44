package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fundkit/pkg/validate"
)

func TestRoutingNumber(t *testing.T) {
	t.Parallel()

	t.Run("valid routing numbers", func(t *testing.T) {
		for _, raw := range []string{"021000021", "111000025", "011401533"} {
			v := validate.RoutingNumber(raw)
			require.True(t, v.Valid, "routing number should be valid: %s (%s)", raw, v.Message)
			assert.Equal(t, raw, v.Normalized)
		}
	})

	t.Run("trims surrounding whitespace only", func(t *testing.T) {
		v := validate.RoutingNumber("  021000021  ")
		require.True(t, v.Valid)
		assert.Equal(t, "021000021", v.Normalized)
	})

	t.Run("checksum off by one fails", func(t *testing.T) {
		v := validate.RoutingNumber("021000022")
		require.False(t, v.Valid)
		assert.Equal(t, validate.CodeChecksum, v.Code)
	})

	t.Run("degenerate values rejected despite passing arithmetic", func(t *testing.T) {
		for _, raw := range []string{"000000000", "999999999"} {
			v := validate.RoutingNumber(raw)
			require.False(t, v.Valid, "routing number should be rejected: %s", raw)
			assert.Equal(t, validate.CodeRange, v.Code)
		}
	})

	t.Run("format violations", func(t *testing.T) {
		badFormats := []string{"12345678", "1234567890", "02100002a", "021-000-021"}
		for _, raw := range badFormats {
			v := validate.RoutingNumber(raw)
			require.False(t, v.Valid, "routing number should be rejected: %q", raw)
			assert.Equal(t, validate.CodeFormat, v.Code)
		}
	})

	t.Run("empty input is required", func(t *testing.T) {
		v := validate.RoutingNumber("")
		require.False(t, v.Valid)
		assert.Equal(t, validate.CodeRequired, v.Code)
	})
}
