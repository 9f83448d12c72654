package validator

import (
	"fmt"
	"reflect"
	"slices"
	"time"
	_ "time/tzdata" // timezone checks must not depend on the host's zoneinfo

	"github.com/google/uuid"
)

// Genders accepted by IsValidGender. Matching is case-sensitive.
var Genders = []string{"Male", "Female", "Non-Binary", "Other"}

// IsValidUUID accepts the hyphenated, braced, urn-prefixed and 32-digit UUID forms.
func (r *Rule[T]) IsValidUUID() *Rule[T] {
	return r.add(func(value any) (bool, string) {
		const msg = "The value is not a valid UUID."

		s, ok := asString(value)
		if !ok {
			return false, msg
		}
		if _, err := uuid.Parse(s); err != nil {
			return false, msg
		}
		return true, ""
	})
}

// IsValidEnum requires the value to be one of members. A value also matches a member when
// it is the member's name (the string from its String method) or, for integer-based members,
// the member's underlying integer, whatever the width or signedness of either side.
// Use Members to build the list from typed constants.
func (r *Rule[T]) IsValidEnum(members ...any) *Rule[T] {
	return r.add(func(value any) (bool, string) {
		if isNil(value) {
			return false, "The value is not a valid enum."
		}
		for _, member := range members {
			if enumMatches(member, value) {
				return true, ""
			}
		}
		return false, "The value is not a valid enum."
	})
}

// Members converts typed enum constants into the argument list of IsValidEnum.
func Members[E any](values ...E) []any {
	members := make([]any, len(values))
	for i, v := range values {
		members[i] = v
	}
	return members
}

func enumMatches(member, value any) bool {
	if valuesEqual(member, value) {
		return true
	}

	mv, vv := reflect.ValueOf(member), reflect.ValueOf(value)

	if name, ok := value.(string); ok {
		if s, ok := member.(fmt.Stringer); ok {
			return s.String() == name
		}
		return mv.Kind() == reflect.String && mv.String() == name
	}

	if mi, ok := integerOf(mv); ok {
		vi, ok := integerOf(vv)
		return ok && mi == vi
	}
	return false
}

// integer is an integer of any width and signedness, stored as magnitude and sign.
type integer struct {
	magnitude uint64
	negative  bool
}

func integerOf(v reflect.Value) (integer, bool) {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := v.Int()
		if n < 0 {
			return integer{magnitude: uint64(-(n + 1)) + 1, negative: true}, true
		}
		return integer{magnitude: uint64(n)}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return integer{magnitude: v.Uint()}, true
	default:
		return integer{}, false
	}
}

// IsValidGender requires one of Genders.
func (r *Rule[T]) IsValidGender() *Rule[T] {
	return r.add(func(value any) (bool, string) {
		gender, ok := asString(value)
		if !ok || !slices.Contains(Genders, gender) {
			return false, "The value is not a valid gender."
		}
		return true, ""
	})
}

// IsValidTimezone requires an IANA time zone name such as "Europe/Berlin" or "UTC".
func (r *Rule[T]) IsValidTimezone() *Rule[T] {
	return r.add(func(value any) (bool, string) {
		const msg = "The timezone is not valid."

		name, ok := asString(value)
		// LoadLocation maps "" to UTC and "Local" to the host zone; neither names a zone.
		if !ok || name == "" || name == "Local" {
			return false, msg
		}
		if _, err := time.LoadLocation(name); err != nil {
			return false, msg
		}
		return true, ""
	})
}
