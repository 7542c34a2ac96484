package validator

import "strings"

// trimmed returns the trimmed input and whether anything is left to check.
// A nil pointer is an absent field.
func trimmed(value *string) (string, bool) {
	if value == nil {
		return "", false
	}
	s := strings.TrimSpace(*value)
	return s, s != ""
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
