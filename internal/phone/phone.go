// Package phone canonicalizes phone number strings for comparison.
//
// Numbers entered through the console arrive in every format imaginable:
// "+1 (555) 010-1234", "555.010.1234", "5550101234". Two strings refer to
// the same number iff their normalized forms are byte-equal.
//
// No locale-aware parsing and no country-code inference happen here. A
// number stored with a country code and the same number stored without one
// stay distinct contacts.
package phone

import (
	"strings"
	"unicode"
)

// Normalize strips whitespace, dashes, parentheses, and periods.
// Digits and a leading "+" pass through unchanged.
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if unicode.IsSpace(r) {
			continue
		}
		switch r {
		case '-', '(', ')', '.':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Same reports whether two raw phone strings refer to the same number.
func Same(a, b string) bool {
	return Normalize(a) == Normalize(b)
}
