package validation

import (
	"regexp"
	"strings"

	"github.com/devevent/devevent-api/apperror"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// NormalizeEmail trims and lowercases an email address and checks it
// against the booking email format.
func NormalizeEmail(raw string) (string, *apperror.Error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if !emailRe.MatchString(email) {
		return "", apperror.Validation("please provide a valid email address")
	}
	return email, nil
}
