package utils

import (
	"regexp"
	"strings"
)

var nonDigits = regexp.MustCompile(`\D`)

// ValidatePhoneNumber checks for a Burkinabè mobile number: 8 digits
// starting with 5, 6 or 7, with or without the +226 country code.
func ValidatePhoneNumber(phoneNumber string) bool {
	cleaned := nonDigits.ReplaceAllString(phoneNumber, "")
	cleaned = strings.TrimPrefix(cleaned, "226")

	if len(cleaned) != 8 {
		return false
	}

	switch cleaned[0] {
	case '5', '6', '7':
		return true
	}
	return false
}
