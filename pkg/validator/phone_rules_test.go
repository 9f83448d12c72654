package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/entityvalidator/pkg/phonepattern"
	"github.com/dmitrymomot/entityvalidator/pkg/validator"
)

func TestIsValidPhoneNumber(t *testing.T) {
	t.Parallel()

	phone := func(country phonepattern.CountryCode) func(r *validator.Rule[field]) {
		return func(r *validator.Rule[field]) { r.IsValidPhoneNumber(country) }
	}

	t.Run("formats registered for the country pass", func(t *testing.T) {
		assert.True(t, check("+1 (555) 123-4567", phone(phonepattern.US)).Passed)
	})

	t.Run("other formats fail", func(t *testing.T) {
		for _, v := range []any{"5551234567", "+44 20 7946 0958", "", nil} {
			out := check(v, phone(phonepattern.US))
			assert.False(t, out.Passed, "phone %#v", v)
			assert.Equal(t, "The phone number is not valid.", out.Message)
		}
	})

	t.Run("unknown country fails without panicking", func(t *testing.T) {
		assert.NotPanics(t, func() {
			out := check("+1 (555) 123-4567", phone(phonepattern.CountryCode("ZZ")))
			assert.False(t, out.Passed)
			assert.Equal(t, "The phone number is not valid.", out.Message)
		})
	})
}
