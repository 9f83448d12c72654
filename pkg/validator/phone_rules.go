package validator

import "github.com/dmitrymomot/entityvalidator/pkg/phonepattern"

// IsValidPhoneNumber requires a phone number in the format registered for country.
// Absent values are checked as "". Countries without a registered pattern fail every value.
func (r *Rule[T]) IsValidPhoneNumber(country phonepattern.CountryCode) *Rule[T] {
	return r.add(func(value any) (bool, string) {
		if !phonepattern.Match(country, stringOrEmpty(value)) {
			return false, "The phone number is not valid."
		}
		return true, ""
	})
}
