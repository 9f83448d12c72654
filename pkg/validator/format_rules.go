package validator

import (
	"net/mail"
	"net/url"
	"regexp"
)

var (
	alphanumericRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	alphaRegex        = regexp.MustCompile(`^[a-zA-Z]+$`)
	numericRegex      = regexp.MustCompile(`^\d+$`)
	hexColorRegex     = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

	ipv4Regex = regexp.MustCompile(`^(25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\.` +
		`(25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\.` +
		`(25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\.` +
		`(25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)$`)

	ipv6Regex = regexp.MustCompile(`^(([0-9a-fA-F]{1,4}:){7,7}[0-9a-fA-F]{1,4}|` +
		`([0-9a-fA-F]{1,4}:){1,7}:|([0-9a-fA-F]{1,4}:){1,6}:` +
		`[0-9a-fA-F]{1,4}|([0-9a-fA-F]{1,4}:){1,5}(:[0-9a-fA-F]{1,4}){1,2}|` +
		`([0-9a-fA-F]{1,4}:){1,4}(:[0-9a-fA-F]{1,4}){1,3}|` +
		`([0-9a-fA-F]{1,4}:){1,3}(:[0-9a-fA-F]{1,4}){1,4}|` +
		`([0-9a-fA-F]{1,4}:){1,2}(:[0-9a-fA-F]{1,4}){1,5}|` +
		`[0-9a-fA-F]{1,4}:((:[0-9a-fA-F]{1,4}){1,6})|` +
		`:((:[0-9a-fA-F]{1,4}){1,7}|:)|` +
		`fe80:(:[0-9a-fA-F]{0,4}){0,4}%[0-9a-zA-Z]{1,}|` +
		`::(ffff(:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\.){1,4}` +
		`([0-9a-fA-F]{1,4}|:)|` +
		`([0-9a-fA-F]{1,4}:){1,4}:((25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\.){1,4}` +
		`([0-9a-fA-F]{1,4}|:))$`)
)

// IsValidEmail requires a bare address such as "user@example.com".
// Display-name forms like "User <user@example.com>" are rejected.
func (r *Rule[T]) IsValidEmail() *Rule[T] {
	return r.add(func(value any) (bool, string) {
		const msg = "Email address is not valid."

		email, ok := asString(value)
		if !ok {
			return false, msg
		}

		addr, err := mail.ParseAddress(email)
		if err != nil || addr.Address != email {
			return false, msg
		}
		return true, ""
	})
}

// IsValidURL requires an absolute http or https URL with a host.
func (r *Rule[T]) IsValidURL() *Rule[T] {
	return r.add(func(value any) (bool, string) {
		const msg = "The URL is not valid."

		raw, ok := asString(value)
		if !ok {
			return false, msg
		}

		u, err := url.Parse(raw)
		if err != nil || !u.IsAbs() || u.Host == "" {
			return false, msg
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return false, msg
		}
		return true, ""
	})
}

// IsAlphanumeric fails strings with anything but ASCII letters and digits.
// Absent or non-string values pass; the empty string fails.
func (r *Rule[T]) IsAlphanumeric() *Rule[T] {
	return r.add(func(value any) (bool, string) {
		s, ok := asString(value)
		if ok && !alphanumericRegex.MatchString(s) {
			return false, "The value must be alphanumeric."
		}
		return true, ""
	})
}

// IsAlpha fails strings with anything but ASCII letters.
// Absent or non-string values pass; the empty string fails.
func (r *Rule[T]) IsAlpha() *Rule[T] {
	return r.add(func(value any) (bool, string) {
		s, ok := asString(value)
		if ok && !alphaRegex.MatchString(s) {
			return false, "The value must contain only alphabetic characters."
		}
		return true, ""
	})
}

// IsNumeric fails strings with anything but digits.
// Absent or non-string values pass; the empty string fails.
func (r *Rule[T]) IsNumeric() *Rule[T] {
	return r.add(func(value any) (bool, string) {
		s, ok := asString(value)
		if ok && !numericRegex.MatchString(s) {
			return false, "The value must be numeric."
		}
		return true, ""
	})
}

// IsValidHexColor requires "#" followed by six hex digits.
func (r *Rule[T]) IsValidHexColor() *Rule[T] {
	return r.add(func(value any) (bool, string) {
		if !hexColorRegex.MatchString(stringOrEmpty(value)) {
			return false, "The value is not a valid hex color."
		}
		return true, ""
	})
}

func (r *Rule[T]) IsValidIPv4() *Rule[T] {
	return r.add(func(value any) (bool, string) {
		if !ipv4Regex.MatchString(stringOrEmpty(value)) {
			return false, "The IP address is not a valid IPv4 address."
		}
		return true, ""
	})
}

// IsValidIPv6 accepts full, compressed, link-local with zone and IPv4-embedded forms.
func (r *Rule[T]) IsValidIPv6() *Rule[T] {
	return r.add(func(value any) (bool, string) {
		if !ipv6Regex.MatchString(stringOrEmpty(value)) {
			return false, "The IP address is not a valid IPv6 address."
		}
		return true, ""
	})
}
