package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fundkit/pkg/validate"
)

func TestFieldErrors(t *testing.T) {
	t.Parallel()

	t.Run("valid verdicts are not recorded", func(t *testing.T) {
		errs := validate.FieldErrors{}
		errs.Put("state", validate.StateCode("CA"))
		errs.Put("phone", validate.Phone("+12025551234"))

		assert.True(t, errs.IsEmpty())
	})

	t.Run("collects every failing field", func(t *testing.T) {
		errs := validate.FieldErrors{}
		errs.Put("state", validate.StateCode("XX"))
		errs.Put("phone", validate.Phone("911"))
		errs.Put("amount", validate.Amount("0.50").Verdict)

		require.False(t, errs.IsEmpty())
		assert.True(t, errs.Has("state"))
		assert.True(t, errs.Has("phone"))
		assert.False(t, errs.Has("amount"))

		messages := errs.Messages()
		assert.Len(t, messages, 2)
		assert.NotEmpty(t, messages["state"])
	})

	t.Run("error message is stable across calls", func(t *testing.T) {
		build := func() validate.FieldErrors {
			errs := validate.FieldErrors{}
			errs.Put("state", validate.StateCode("XX"))
			errs.Put("phone", validate.Phone("911"))
			errs.Put("password", validate.Password("short"))
			return errs
		}

		first := build().Error()
		for range 20 {
			assert.Equal(t, first, build().Error())
		}
	})
}
