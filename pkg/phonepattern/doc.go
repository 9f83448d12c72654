// Package phonepattern maps country codes to the regular expressions that phone numbers
// from that country must match.
//
// The table is fixed at compile time and never mutated, so every function is safe for
// concurrent use. Lookups for countries outside the table report a miss instead of
// returning an empty pattern, and Match treats a miss as a non-match.
//
// # Usage
//
//	if phonepattern.Match(phonepattern.US, "+1 (555) 123-4567") {
//	    // valid
//	}
//
//	pattern, ok := phonepattern.Lookup(phonepattern.DE)
package phonepattern
