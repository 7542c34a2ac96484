package logger

import "strings"

// Example: john.doe@gmail.com -> j***@gmail.com
func MaskEmail(email string) string {
	if email == "" {
		return ""
	}

	local, domain, found := strings.Cut(email, "@")
	if !found || strings.Contains(domain, "@") {
		return "***@***"
	}

	if local == "" {
		return "***@" + domain
	}

	// Keep only first character of local part
	return local[:1] + "***@" + domain
}

// MaskDigits hides all but the last four bytes of value.
// Example: 29812251234567 -> **********4567
func MaskDigits(value string) string {
	const keep = 4
	if len(value) <= keep {
		return strings.Repeat("*", len(value))
	}
	return strings.Repeat("*", len(value)-keep) + value[len(value)-keep:]
}
