package validator_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/entityvalidator/pkg/validator"
)

func TestIsValidCurrency(t *testing.T) {
	t.Parallel()

	currency := func(r *validator.Rule[field]) { r.IsValidCurrency() }

	for _, v := range []string{"10", "10.50", "0.99", "1000000"} {
		assert.True(t, check(v, currency).Passed, "amount %q", v)
	}

	for _, v := range []any{"10.5", "10.505", "-1.00", "$10", "1,000.00", "", nil} {
		out := check(v, currency)
		assert.False(t, out.Passed, "amount %#v", v)
		assert.Equal(t, "The value is not a valid currency.", out.Message)
	}
}

func TestIsWithinRange(t *testing.T) {
	t.Parallel()

	within := func(r *validator.Rule[field]) {
		r.IsWithinRange(decimal.NewFromInt(10), decimal.NewFromInt(100))
	}

	t.Run("bounds are inclusive", func(t *testing.T) {
		for _, v := range []string{"10", "10.00", "55.55", "100"} {
			assert.True(t, check(decimal.RequireFromString(v), within).Passed, "value %s", v)
		}
	})

	t.Run("outside the bounds", func(t *testing.T) {
		out := check(decimal.RequireFromString("9.99"), within)
		assert.False(t, out.Passed)
		assert.Equal(t, "The value must be between 10 and 100.", out.Message)

		assert.False(t, check(decimal.RequireFromString("100.01"), within).Passed)
	})

	t.Run("only decimals are accepted", func(t *testing.T) {
		for _, v := range []any{50, 50.0, "50", nil} {
			out := check(v, within)
			assert.False(t, out.Passed, "value %#v", v)
			assert.Equal(t, "The value is not a decimal number.", out.Message)
		}
	})
}

func TestHasMinValue(t *testing.T) {
	t.Parallel()

	atLeast := func(r *validator.Rule[field]) { r.HasMinValue(decimal.NewFromInt(5)) }

	t.Run("numeric values of any type are compared", func(t *testing.T) {
		for _, v := range []any{decimal.NewFromInt(5), 5, int64(6), 5.5, "7.25", decimal.RequireFromString("5.0")} {
			assert.True(t, check(v, atLeast).Passed, "value %#v", v)
		}
	})

	t.Run("below minimum", func(t *testing.T) {
		for _, v := range []any{4, "4.99", decimal.NewFromInt(-5)} {
			out := check(v, atLeast)
			assert.False(t, out.Passed, "value %#v", v)
			assert.Equal(t, "The value must be at least 5.", out.Message)
		}
	})

	t.Run("string pointers are parsed as strings", func(t *testing.T) {
		assert.True(t, check(ptr("15"), atLeast).Passed)
		assert.Equal(t, "The value must be at least 5.", check(ptr("4.5"), atLeast).Message)
		assert.Equal(t, "The value is not a decimal number.", check(ptr("n/a"), atLeast).Message)
	})

	t.Run("absent and unparsable values", func(t *testing.T) {
		for _, v := range []any{nil, "abc", true, (*int)(nil), (*string)(nil)} {
			out := check(v, atLeast)
			assert.False(t, out.Passed, "value %#v", v)
			assert.Equal(t, "The value is not a decimal number.", out.Message)
		}
	})
}

func TestHasMaxValue(t *testing.T) {
	t.Parallel()

	atMost := func(r *validator.Rule[field]) { r.HasMaxValue(decimal.NewFromInt(1000)) }

	assert.True(t, check(decimal.NewFromInt(1000), atMost).Passed)
	assert.True(t, check(decimal.NewFromInt(-1), atMost).Passed)

	out := check(decimal.RequireFromString("1000.01"), atMost)
	assert.False(t, out.Passed)
	assert.Equal(t, "The value must not exceed 1000.", out.Message)

	assert.Equal(t, "The value is not a decimal number.", check(999, atMost).Message)
}
