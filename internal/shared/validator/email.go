package validator

import "regexp"

var (
	// emailRegex: local part, '@', domain labels, then a TLD of two or more letters.
	// Both cases are spelled out; (?i) would also fold in U+212A and U+017F.
	emailRegex = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
)

// ValidateEmail reports whether email is a syntactically acceptable address.
func ValidateEmail(email *string) bool {
	s, ok := trimmed(email)
	if !ok {
		return false
	}
	return emailRegex.MatchString(s)
}
