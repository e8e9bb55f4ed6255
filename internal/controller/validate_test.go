package controller

import "testing"

func TestValidateEmail(t *testing.T) {
	cases := []struct {
		email string
		valid bool
	}{
		{"a@b.com", true},
		{"ann.smit@school.example.nl", true},
		{"user+tag@sub.domain.org", true},
		{"", false},
		{"plainaddress", false},
		{"@b.com", false},
		{"a@", false},
		{"a@b", false},             // no dot in domain
		{"a b@c.com", false},       // whitespace in local part
		{"a@b c.com", false},       // whitespace in domain
		{"a@@b.com", false},        // double @
		{" a@b.com", false},        // leading whitespace
		{"a@b.com ", false},        // trailing whitespace
		{"a@b.c om", false},        // whitespace after dot
		{"name@domain.tld", true},
	}

	for _, tc := range cases {
		if got := ValidateEmail(tc.email); got != tc.valid {
			t.Errorf("ValidateEmail(%q) = %v, want %v", tc.email, got, tc.valid)
		}
	}
}
