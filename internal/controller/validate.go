package controller

import "regexp"

// emailPattern accepts local@domain.tld shaped addresses: no whitespace or
// extra @ in either part, at least one dot in the domain.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail reports whether s looks like an email address
func ValidateEmail(s string) bool {
	return emailPattern.MatchString(s)
}
