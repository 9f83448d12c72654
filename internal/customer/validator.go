package customer

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dmitrymomot/entityvalidator/pkg/phonepattern"
	"github.com/dmitrymomot/entityvalidator/pkg/validator"
)

var (
	minBirthDate   = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)
	maxCreditLimit = decimal.NewFromInt(1_000_000)
)

// EU VAT identifiers: two-letter country prefix and 8 to 12 alphanumerics.
const vatPattern = `^[A-Z]{2}[0-9A-Z]{8,12}$`

// Rules configures customer validation. Rules that depend on other fields
// (phone format by country, VAT for businesses) are added per entity.
type Rules struct{}

// NewValidator returns the customer validator.
func NewValidator(opts ...validator.Option) *validator.Validator[Customer] {
	return validator.New[Customer](Rules{}, opts...)
}

func (Rules) ConfigureRules(rules *validator.Collection[Customer], c Customer) {
	rules.RuleFor(func(c Customer) any { return c.ID }).
		IsNotEmpty().WithMessage("Customer ID is required.").
		IsValidUUID()

	rules.RuleFor(func(c Customer) any { return c.Name }).
		IsNotEmpty().WithMessage("Name is required.").
		MinLength(2).
		MaxLength(100)

	if c.Handle != "" {
		rules.RuleFor(func(c Customer) any { return c.Handle }).
			IsSeoFriendly().WithMessage("Handle may only contain lowercase letters, digits and dashes.").
			MaxLength(64)
	}

	rules.RuleFor(func(c Customer) any { return c.Email }).
		IsValidEmail()

	rules.RuleFor(func(c Customer) any { return c.Country }).
		Must(func(v any) bool {
			code, ok := v.(phonepattern.CountryCode)
			if !ok {
				return false
			}
			_, ok = phonepattern.Lookup(code)
			return ok
		}).WithMessage("Country is not supported.")

	if c.Phone != "" {
		rules.RuleFor(func(c Customer) any { return c.Phone }).
			IsValidPhoneNumber(c.Country)
	}

	if c.Website != "" {
		rules.RuleFor(func(c Customer) any { return c.Website }).
			IsValidURL()
	}

	if c.Gender != "" {
		rules.RuleFor(func(c Customer) any { return c.Gender }).
			IsValidGender()
	}

	rules.RuleFor(func(c Customer) any { return c.Timezone }).
		IsValidTimezone()

	if !c.BirthDate.IsZero() {
		rules.RuleFor(func(c Customer) any { return c.BirthDate }).
			IsPastDate().WithMessage("Birth date must be in the past.").
			IsDateAfter(minBirthDate)
	}

	rules.RuleFor(func(c Customer) any { return c.Status }).
		IsValidEnum(validator.Members(StatusActive, StatusSuspended, StatusClosed)...).
		WithMessage("Status must be active, suspended or closed.")

	if c.Business {
		rules.RuleFor(func(c Customer) any { return c.VATNumber }).
			IsNotEmpty().WithMessage("VAT number is required for business customers.").
			MatchesPattern(vatPattern).WithMessage("VAT number is not valid.")
	}

	rules.RuleFor(func(c Customer) any { return c.CreditLimit }).
		HasMinValue(decimal.Zero).
		HasMaxValue(maxCreditLimit)
}
