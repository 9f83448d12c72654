package validator

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"errors"
	"io"
	"regexp"
	"strings"
)

// MatchesPattern fails strings that do not match pattern. Absent or non-string values pass.
// An invalid pattern fails every string it is applied to.
func (r *Rule[T]) MatchesPattern(pattern string) *Rule[T] {
	re, compileErr := regexp.Compile(pattern)
	return r.add(func(value any) (bool, string) {
		const msg = "The value does not match the specified pattern."

		s, ok := asString(value)
		if !ok {
			return true, ""
		}
		if compileErr != nil || !re.MatchString(s) {
			return false, msg
		}
		return true, ""
	})
}

// IsValidRegex is MatchesPattern with absent values coerced to "", so a pattern that does
// not accept the empty string also fails null input.
func (r *Rule[T]) IsValidRegex(pattern string) *Rule[T] {
	re, compileErr := regexp.Compile(pattern)
	return r.add(func(value any) (bool, string) {
		if compileErr != nil || !re.MatchString(stringOrEmpty(value)) {
			return false, "The value does not match the specified pattern."
		}
		return true, ""
	})
}

// IsValidJSON requires a string holding exactly one well-formed JSON value.
func (r *Rule[T]) IsValidJSON() *Rule[T] {
	return r.add(func(value any) (bool, string) {
		s, ok := asString(value)
		if !ok || !json.Valid([]byte(s)) {
			return false, "The value is not a valid JSON."
		}
		return true, ""
	})
}

// IsValidXML requires a well-formed XML document with exactly one root element.
func (r *Rule[T]) IsValidXML() *Rule[T] {
	return r.add(func(value any) (bool, string) {
		s, ok := asString(value)
		if !ok || !wellFormedXML(s) {
			return false, "The value is not a valid XML."
		}
		return true, ""
	})
}

func wellFormedXML(doc string) bool {
	dec := xml.NewDecoder(strings.NewReader(doc))

	roots, depth := 0, 0
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return false
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if depth == 0 {
				roots++
			}
			depth++
		case xml.EndElement:
			depth--
		case xml.CharData:
			if depth == 0 && len(bytes.TrimSpace(t)) > 0 {
				return false
			}
		}
	}

	return roots == 1 && depth == 0
}
