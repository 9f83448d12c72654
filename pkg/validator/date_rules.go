package validator

import (
	"fmt"
	"time"
)

const (
	notDateMessage = "The value is not a date."
	dateLayout     = "2006-01-02"
)

// IsDateInRange requires a time.Time within [minDate, maxDate].
func (r *Rule[T]) IsDateInRange(minDate, maxDate time.Time) *Rule[T] {
	return r.add(func(value any) (bool, string) {
		t, ok := asDate(value)
		if !ok {
			return false, notDateMessage
		}
		if t.Before(minDate) || t.After(maxDate) {
			return false, fmt.Sprintf("The date must be between %s and %s.",
				minDate.Format(dateLayout), maxDate.Format(dateLayout))
		}
		return true, ""
	})
}

// IsValidDateRange is an alias for IsDateInRange.
func (r *Rule[T]) IsValidDateRange(minDate, maxDate time.Time) *Rule[T] {
	return r.IsDateInRange(minDate, maxDate)
}

// IsDateBefore requires a time.Time strictly before date.
func (r *Rule[T]) IsDateBefore(date time.Time) *Rule[T] {
	return r.add(func(value any) (bool, string) {
		t, ok := asDate(value)
		if !ok {
			return false, notDateMessage
		}
		if !t.Before(date) {
			return false, fmt.Sprintf("The date must be before %s.", date.Format(dateLayout))
		}
		return true, ""
	})
}

// IsDateAfter requires a time.Time strictly after date.
func (r *Rule[T]) IsDateAfter(date time.Time) *Rule[T] {
	return r.add(func(value any) (bool, string) {
		t, ok := asDate(value)
		if !ok {
			return false, notDateMessage
		}
		if !t.After(date) {
			return false, fmt.Sprintf("The date must be after %s.", date.Format(dateLayout))
		}
		return true, ""
	})
}

// IsFutureDate requires a time.Time strictly after the moment of validation.
func (r *Rule[T]) IsFutureDate() *Rule[T] {
	return r.add(func(value any) (bool, string) {
		t, ok := asDate(value)
		if !ok {
			return false, notDateMessage
		}
		if !t.After(r.now()) {
			return false, "The date must be in the future."
		}
		return true, ""
	})
}

// IsPastDate requires a time.Time strictly before the moment of validation.
func (r *Rule[T]) IsPastDate() *Rule[T] {
	return r.add(func(value any) (bool, string) {
		t, ok := asDate(value)
		if !ok {
			return false, notDateMessage
		}
		if !t.Before(r.now()) {
			return false, "The date must be in the past."
		}
		return true, ""
	})
}
