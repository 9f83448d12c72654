package phonepattern

import (
	"regexp"
	"slices"
	"strings"
)

// CountryCode is an ISO 3166-1 alpha-2 country code.
type CountryCode string

const (
	US CountryCode = "US"
	CA CountryCode = "CA"
	GB CountryCode = "GB"
	DE CountryCode = "DE"
	FR CountryCode = "FR"
	IT CountryCode = "IT"
	ES CountryCode = "ES"
	AU CountryCode = "AU"
	IN CountryCode = "IN"
	CN CountryCode = "CN"
	JP CountryCode = "JP"
	BR CountryCode = "BR"
	MX CountryCode = "MX"
	RU CountryCode = "RU"
	ZA CountryCode = "ZA"
	KR CountryCode = "KR"
	AR CountryCode = "AR"
	CL CountryCode = "CL"
	CO CountryCode = "CO"
	PE CountryCode = "PE"
	VE CountryCode = "VE"
	PH CountryCode = "PH"
	SG CountryCode = "SG"
	MY CountryCode = "MY"
	TH CountryCode = "TH"
	ID CountryCode = "ID"
	PK CountryCode = "PK"
	NG CountryCode = "NG"
	EG CountryCode = "EG"
	SA CountryCode = "SA"
	IL CountryCode = "IL"
	TR CountryCode = "TR"
	UA CountryCode = "UA"
	PL CountryCode = "PL"
	SE CountryCode = "SE"
	NO CountryCode = "NO"
	FI CountryCode = "FI"
	DK CountryCode = "DK"
	BE CountryCode = "BE"
	NL CountryCode = "NL"
	AT CountryCode = "AT"
	CH CountryCode = "CH"
	LI CountryCode = "LI"
	LU CountryCode = "LU"
	MT CountryCode = "MT"
	IS CountryCode = "IS"
	IM CountryCode = "IM"
	JE CountryCode = "JE"
	GG CountryCode = "GG"
)

// patterns is read-only after package initialization.
var patterns = map[CountryCode]string{
	US: `^\+1\s?\(?\d{3}\)?\s?\d{3}-\d{4}$`,
	CA: `^\+1\s?\(?\d{3}\)?\s?\d{3}-\d{4}$`,
	GB: `^\+44\s?\d{4}\s?\d{6}$`,
	DE: `^\+49\s?\d{11}$`,
	FR: `^\+33\s?\d{1}\s?\d{2}\s?\d{2}\s?\d{2}\s?\d{2}$`,
	IT: `^\+39\s?\d{2}\s?\d{6,8}$`,
	ES: `^\+34\s?\d{9}$`,
	AU: `^\+61\s?\d{9}$`,
	IN: `^\+91\s?\d{10}$`,
	CN: `^\+86\s?\d{11}$`,
	JP: `^\+81\s?\d{10}$`,
	BR: `^\+55\s?\d{2}\s?\d{8,9}$`,
	MX: `^\+52\s?\d{10}$`,
	RU: `^\+7\s?\d{10}$`,
	ZA: `^\+27\s?\d{9}$`,
	KR: `^\+82\s?\d{10}$`,
	AR: `^\+54\s?\d{10}$`,
	CL: `^\+56\s?\d{9}$`,
	CO: `^\+57\s?\d{10}$`,
	PE: `^\+51\s?\d{9}$`,
	VE: `^\+58\s?\d{10}$`,
	PH: `^\+63\s?\d{10}$`,
	SG: `^\+65\s?\d{8}$`,
	MY: `^\+60\s?\d{10}$`,
	TH: `^\+66\s?\d{9}$`,
	ID: `^\+62\s?\d{10,13}$`,
	PK: `^\+92\s?\d{10}$`,
	NG: `^\+234\s?\d{10}$`,
	EG: `^\+20\s?\d{10}$`,
	SA: `^\+966\s?\d{9}$`,
	IL: `^\+972\s?\d{9}$`,
	TR: `^\+90\s?\d{10}$`,
	UA: `^\+380\s?\d{9,10}$`,
	PL: `^\+48\s?\d{9}$`,
	SE: `^\+46\s?\d{9}$`,
	NO: `^\+47\s?\d{8}$`,
	FI: `^\+358\s?\d{6,10}$`,
	DK: `^\+45\s?\d{8}$`,
	BE: `^\+32\s?\d{8,9}$`,
	NL: `^\+31\s?\d{9}$`,
	AT: `^\+43\s?\d{4,13}$`,
	CH: `^\+41\s?\d{9}$`,
	LI: `^\+423\s?\d{6,8}$`,
	LU: `^\+352\s?\d{6,8}$`,
	MT: `^\+356\s?\d{8}$`,
	IS: `^\+354\s?\d{6}$`,
	IM: `^\+44\s?1624\s?\d{6}$`,
	JE: `^\+44\s?1534\s?\d{6}$`,
	GG: `^\+44\s?1481\s?\d{6}$`,
}

var compiled = compileAll()

func compileAll() map[CountryCode]*regexp.Regexp {
	m := make(map[CountryCode]*regexp.Regexp, len(patterns))
	for code, pattern := range patterns {
		m[code] = regexp.MustCompile(pattern)
	}
	return m
}

// Lookup returns the phone number pattern for code. The second result is false
// for countries without a registered pattern.
func Lookup(code CountryCode) (string, bool) {
	pattern, ok := patterns[code]
	return pattern, ok
}

// Regexp returns the compiled pattern for code.
func Regexp(code CountryCode) (*regexp.Regexp, bool) {
	re, ok := compiled[code]
	return re, ok
}

// Match reports whether phone matches the pattern for code.
// Unknown country codes never match.
func Match(code CountryCode, phone string) bool {
	re, ok := compiled[code]
	if !ok {
		return false
	}
	return re.MatchString(phone)
}

// Codes returns every supported country code in alphabetical order.
func Codes() []CountryCode {
	codes := make([]CountryCode, 0, len(patterns))
	for code := range patterns {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	return codes
}

// ParseCountryCode resolves a case-insensitive code such as "us" to a supported CountryCode.
func ParseCountryCode(s string) (CountryCode, bool) {
	code := CountryCode(strings.ToUpper(strings.TrimSpace(s)))
	_, ok := patterns[code]
	return code, ok
}
