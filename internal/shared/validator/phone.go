package validator

import (
	"regexp"
)

var (
	// localPhoneRegex matches Egyptian mobile numbers in local form
	// Operators: 010 Vodafone, 011 Etisalat, 012 Orange, 015 WE
	localPhoneRegex = regexp.MustCompile(`^01[0125][0-9]{8}$`)

	// intlPhoneRegex is the local form with the leading 0 replaced by the 20 country code
	// Format: 201012345678 (no '+')
	intlPhoneRegex = regexp.MustCompile(`^201[0125][0-9]{8}$`)
)

// ValidatePhoneNumber validates an Egyptian mobile phone number,
// either 11 digits in local form or 12 digits with the country code.
func ValidatePhoneNumber(phone *string) bool {
	s, ok := trimmed(phone)
	if !ok || !isDigits(s) {
		return false
	}
	return localPhoneRegex.MatchString(s) || intlPhoneRegex.MatchString(s)
}
