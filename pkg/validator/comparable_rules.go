package validator

// IsNotNull fails nil values, including typed nil pointers, maps, slices, channels and funcs.
func (r *Rule[T]) IsNotNull() *Rule[T] {
	return r.add(func(value any) (bool, string) {
		if isNil(value) {
			return false, "The value cannot be null."
		}
		return true, ""
	})
}

// IsEqualTo requires the value to equal expected. Types must match exactly:
// int(5) does not equal int64(5).
func (r *Rule[T]) IsEqualTo(expected any) *Rule[T] {
	return r.add(func(value any) (bool, string) {
		if !valuesEqual(value, expected) {
			return false, "The value must be equal to the specified value."
		}
		return true, ""
	})
}

func (r *Rule[T]) IsNotEqualTo(forbidden any) *Rule[T] {
	return r.add(func(value any) (bool, string) {
		if valuesEqual(value, forbidden) {
			return false, "The value must not be equal to the specified value."
		}
		return true, ""
	})
}

// Must fails when condition returns false for the field value.
// A nil condition fails every value.
func (r *Rule[T]) Must(condition func(value any) bool) *Rule[T] {
	return r.add(func(value any) (bool, string) {
		if condition == nil || !condition(value) {
			return false, "The value does not satisfy the condition."
		}
		return true, ""
	})
}
