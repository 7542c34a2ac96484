package validator

import "regexp"

var usernameRegex = regexp.MustCompile(`^[A-Za-z0-9_]{3,20}$`)

// ValidateUsername accepts 3 to 20 letters, digits or underscores.
func ValidateUsername(username *string) bool {
	s, ok := trimmed(username)
	if !ok {
		return false
	}
	return usernameRegex.MatchString(s)
}
