package validator

import (
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"
)

const notDecimalMessage = "The value is not a decimal number."

// Digits with an optional two-digit fraction, e.g. "10" or "10.50".
var currencyRegex = regexp.MustCompile(`^\d+(\.\d{2})?$`)

// IsValidCurrency requires an amount string such as "10" or "10.50".
func (r *Rule[T]) IsValidCurrency() *Rule[T] {
	return r.add(func(value any) (bool, string) {
		if !currencyRegex.MatchString(stringOrEmpty(value)) {
			return false, "The value is not a valid currency."
		}
		return true, ""
	})
}

// IsWithinRange requires a decimal.Decimal within [min, max]. Other types fail,
// including numbers that are not decimals.
func (r *Rule[T]) IsWithinRange(min, max decimal.Decimal) *Rule[T] {
	return r.add(func(value any) (bool, string) {
		d, ok := asDecimal(value)
		if !ok {
			return false, notDecimalMessage
		}
		if d.LessThan(min) || d.GreaterThan(max) {
			return false, fmt.Sprintf("The value must be between %s and %s.", min, max)
		}
		return true, ""
	})
}

// HasMinValue requires a value of at least minValue. Unlike IsWithinRange and HasMaxValue
// it accepts any value whose text form parses as a decimal, so ints, floats and numeric
// strings (including *string) are all compared. Nil and unparsable values fail.
func (r *Rule[T]) HasMinValue(minValue decimal.Decimal) *Rule[T] {
	return r.add(func(value any) (bool, string) {
		text, ok := asString(value)
		if !ok {
			if isNil(value) {
				return false, notDecimalMessage
			}
			text = fmt.Sprint(value)
		}
		d, err := decimal.NewFromString(text)
		if err != nil {
			return false, notDecimalMessage
		}
		if d.LessThan(minValue) {
			return false, fmt.Sprintf("The value must be at least %s.", minValue)
		}
		return true, ""
	})
}

// HasMaxValue requires a decimal.Decimal of at most maxValue. Other types fail.
func (r *Rule[T]) HasMaxValue(maxValue decimal.Decimal) *Rule[T] {
	return r.add(func(value any) (bool, string) {
		d, ok := asDecimal(value)
		if !ok {
			return false, notDecimalMessage
		}
		if d.GreaterThan(maxValue) {
			return false, fmt.Sprintf("The value must not exceed %s.", maxValue)
		}
		return true, ""
	})
}
