package utils

import "testing"

func TestValidatePhoneNumber(t *testing.T) {
	cases := []struct {
		number string
		want   bool
	}{
		{"70123456", true},
		{"65432100", true},
		{"56789012", true},
		{"+226 70 12 34 56", true},
		{"22670123456", true},
		{"40123456", false}, // not a mobile prefix
		{"7012345", false},  // too short
		{"701234567", false},
		{"", false},
		{"abcdefgh", false},
	}
	for _, tc := range cases {
		if got := ValidatePhoneNumber(tc.number); got != tc.want {
			t.Errorf("ValidatePhoneNumber(%q) = %v, want %v", tc.number, got, tc.want)
		}
	}
}
