package validator

import "regexp"

var (
	uppercaseRegex   = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex   = regexp.MustCompile(`[a-z]`)
	digitRegex       = regexp.MustCompile(`\d`)
	specialCharRegex = regexp.MustCompile(`[\W_]`)
)

// IsValidPassword requires at least one uppercase letter, one lowercase letter,
// one digit and one special character. Absent values are checked as "".
func (r *Rule[T]) IsValidPassword() *Rule[T] {
	return r.add(func(value any) (bool, string) {
		password := stringOrEmpty(value)

		if !uppercaseRegex.MatchString(password) ||
			!lowercaseRegex.MatchString(password) ||
			!digitRegex.MatchString(password) ||
			!specialCharRegex.MatchString(password) {
			return false, "The password must contain uppercase, lowercase, numeric, and special characters."
		}
		return true, ""
	})
}
