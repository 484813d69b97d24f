// Package format holds the pure input-shaping helpers used by the directory
// engine and exposed to the presentation layer for live feedback (phone mask
// as the user types, password-policy hint).
package format

import (
	"regexp"
	"strings"
	"unicode"
)

var emailShape = regexp.MustCompile(`\S+@\S+\.\S+`)

// ValidEmail reports whether s contains something shaped like an email
// address: a non-whitespace run, "@", a non-whitespace run, ".", a
// non-whitespace run. Intentionally permissive; it does not attempt full
// RFC syntax or deliverability checks.
func ValidEmail(s string) bool {
	return emailShape.MatchString(s)
}

// Phone strips every non-digit rune from raw and masks the result by digit
// count:
//
//	>= 11 digits  (DD) DDDDD-DDDD   (first 11 digits)
//	    10 digits (DD) DDDD-DDDD
//	     9 digits DDDDD-DDDD
//	     8 digits DDDD-DDDD
//
// Any other count is returned unmasked, which keeps partial input usable
// while the user is still typing. Because the mask characters are not
// digits, applying Phone to an already-masked string yields the same value.
func Phone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	d := b.String()

	switch {
	case len(d) >= 11:
		return "(" + d[0:2] + ") " + d[2:7] + "-" + d[7:11]
	case len(d) == 10:
		return "(" + d[0:2] + ") " + d[2:6] + "-" + d[6:10]
	case len(d) == 9:
		return d[0:5] + "-" + d[5:9]
	case len(d) == 8:
		return d[0:4] + "-" + d[4:8]
	default:
		return d
	}
}

// ValidPassword reports whether pw satisfies the password policy: at least
// five characters, at least one upper-case letter and at least one digit.
func ValidPassword(pw string) bool {
	if len(pw) < 5 {
		return false
	}
	var upper, digit bool
	for _, r := range pw {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return upper && digit
}
