// Package validator provides a fail-fast, per-field validation engine for entities.
//
// A Validator owns a Configurer that, for every entity it validates, builds a fresh
// Collection of rules. Each Rule binds one field selector to an ordered chain of
// field validators added through fluent catalog methods (IsNotEmpty, MinLength,
// IsValidEmail, IsInRange, IsFutureDate, ...). Executing the collection runs the
// validators in insertion order and stops at the first failure anywhere in the
// collection; when nothing fails a single generic success Outcome is returned.
//
// # Architecture
//
// Catalog entries are grouped by family in their own files (`string_rules.go`,
// `format_rules.go`, `numeric_rules.go`, `date_rules.go`, etc.). Every entry checks
// the runtime type of the untyped field value itself and reports a type mismatch
// as an ordinary failed Outcome with a category message such as
// "The value is not a date.". No validator panics on bad input.
//
// Core building blocks:
//   - Outcome: pass/fail flag plus message
//   - Rule: field selector plus ordered validators
//   - Collection: ordered rules with global short-circuit execution
//   - Validator: per-call configuration plus sync and async entry points
//   - Future: pending result of ValidateAsync
//
// # Usage
//
//	v := validator.NewFunc(func(rules *validator.Collection[User], u User) {
//	    rules.RuleFor(func(u User) any { return u.Email }).
//	        IsNotEmpty().WithMessage("email is required").
//	        IsValidEmail()
//	    if u.Business {
//	        rules.RuleFor(func(u User) any { return u.VATNumber }).IsNotEmpty()
//	    }
//	})
//
//	if out := v.Validate(user); !out.Passed {
//	    return out.Err()
//	}
//
// # Messages
//
// WithMessage replaces the failure message of the validator added immediately before
// it and of no other. Successful field checks always report PassedMessage.
//
// # Concurrency
//
// A Validator may be shared between goroutines as long as its Configurer only mutates
// the Collection it receives. ValidateAsync runs configuration and execution as one
// unit on a new goroutine and yields the same Outcome as Validate.
package validator
