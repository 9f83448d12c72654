package validator

import (
	"reflect"
	"time"

	"github.com/shopspring/decimal"
)

// Field values travel through the rule chain untyped. The helpers below are the only
// places that inspect their runtime type, so every catalog entry applies the same guards.

// asString reports the string held by v. A non-nil *string counts as a string;
// anything else, including nil, is treated as an absent string.
func asString(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case *string:
		if s == nil {
			return "", false
		}
		return *s, true
	default:
		return "", false
	}
}

// stringOrEmpty coerces absent or non-string values to "".
func stringOrEmpty(v any) string {
	s, _ := asString(v)
	return s
}

func asInt(v any) (int, bool) {
	i, ok := v.(int)
	return i, ok
}

func asDate(v any) (time.Time, bool) {
	t, ok := v.(time.Time)
	return t, ok
}

func asDecimal(v any) (decimal.Decimal, bool) {
	d, ok := v.(decimal.Decimal)
	return d, ok
}

// isNil treats untyped nil and nil pointers, maps, slices, channels, funcs and interfaces as null.
func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// valuesEqual compares by value. Null values, typed or not, equal each other and nothing else.
// Decimals compare numerically and times compare as instants; everything else must match
// in type and content.
func valuesEqual(a, b any) bool {
	if isNil(a) || isNil(b) {
		return isNil(a) && isNil(b)
	}
	if da, ok := a.(decimal.Decimal); ok {
		db, ok := b.(decimal.Decimal)
		return ok && da.Equal(db)
	}
	if ta, ok := a.(time.Time); ok {
		tb, ok := b.(time.Time)
		return ok && ta.Equal(tb)
	}
	return reflect.DeepEqual(a, b)
}
