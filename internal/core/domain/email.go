package domain

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const EmailMaxLength = 254

var emailPattern = regexp.MustCompile(`^[\w.+-]+@([\w-]+\.)+[\w-]{2,4}$`)

// Email is a trimmed, lower-cased address in local@domain form.
type Email struct {
	value string
}

// NewEmail normalizes value and validates it. Rules are checked in order:
// blank, length, format.
func NewEmail(value string) (Email, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))

	if normalized == "" {
		return Email{}, invalidArgument("Email must not be blank")
	}
	if utf8.RuneCountInString(normalized) > EmailMaxLength {
		return Email{}, invalidArgument("Email cannot exceed %d characters", EmailMaxLength)
	}
	if !emailPattern.MatchString(normalized) {
		return Email{}, invalidArgument("Email format is invalid")
	}
	return Email{value: normalized}, nil
}

func (e Email) String() string { return e.value }
