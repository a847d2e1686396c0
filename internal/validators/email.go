package validators

import (
	"regexp"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const (
	emailMinLen = 4
	emailMaxLen = 35
)

// IsEmail applies the clinic's account email rule.
func IsEmail(email string) bool {
	if len(email) < emailMinLen || len(email) > emailMaxLen {
		return false
	}
	return emailPattern.MatchString(email)
}
