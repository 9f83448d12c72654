package validator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

var seoFriendlyRegex = regexp.MustCompile(`^[a-z0-9-]+$`)

// MinLength fails strings shorter than minLength characters.
// Absent or non-string values pass.
func (r *Rule[T]) MinLength(minLength int) *Rule[T] {
	return r.add(func(value any) (bool, string) {
		s, ok := asString(value)
		if ok && utf8.RuneCountInString(s) < minLength {
			return false, fmt.Sprintf("The value must be at least %d characters long.", minLength)
		}
		return true, ""
	})
}

// MaxLength fails strings longer than maxLength characters.
// Absent or non-string values pass.
func (r *Rule[T]) MaxLength(maxLength int) *Rule[T] {
	return r.add(func(value any) (bool, string) {
		s, ok := asString(value)
		if ok && utf8.RuneCountInString(s) > maxLength {
			return false, fmt.Sprintf("The value must not exceed %d characters.", maxLength)
		}
		return true, ""
	})
}

// IsNotEmpty fails absent, non-string, empty and whitespace-only values.
func (r *Rule[T]) IsNotEmpty() *Rule[T] {
	return r.add(func(value any) (bool, string) {
		s, ok := asString(value)
		if !ok || strings.TrimSpace(s) == "" {
			return false, "The value cannot be empty."
		}
		return true, ""
	})
}

// IsSeoFriendly requires a slug of lowercase letters, digits and hyphens.
func (r *Rule[T]) IsSeoFriendly() *Rule[T] {
	return r.add(func(value any) (bool, string) {
		if !seoFriendlyRegex.MatchString(stringOrEmpty(value)) {
			return false, "The value is not SEO-friendly."
		}
		return true, ""
	})
}
