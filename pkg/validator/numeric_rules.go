package validator

import "fmt"

const notIntegerMessage = "The value is not an integer."

// IsInRange requires an int within [min, max].
func (r *Rule[T]) IsInRange(min, max int) *Rule[T] {
	return r.add(func(value any) (bool, string) {
		n, ok := asInt(value)
		if !ok {
			return false, notIntegerMessage
		}
		if n < min || n > max {
			return false, fmt.Sprintf("The value must be between %d and %d.", min, max)
		}
		return true, ""
	})
}

// IsGreaterThan requires an int strictly greater than min.
func (r *Rule[T]) IsGreaterThan(min int) *Rule[T] {
	return r.add(func(value any) (bool, string) {
		n, ok := asInt(value)
		if !ok {
			return false, notIntegerMessage
		}
		if n <= min {
			return false, fmt.Sprintf("The value must be greater than %d.", min)
		}
		return true, ""
	})
}

// IsLessThan requires an int strictly less than max.
func (r *Rule[T]) IsLessThan(max int) *Rule[T] {
	return r.add(func(value any) (bool, string) {
		n, ok := asInt(value)
		if !ok {
			return false, notIntegerMessage
		}
		if n >= max {
			return false, fmt.Sprintf("The value must be less than %d.", max)
		}
		return true, ""
	})
}
