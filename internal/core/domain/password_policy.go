package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	PasswordMinLength = 8
	PasswordMaxLength = 128

	// PasswordSpecialCharacters lists the accepted special characters.
	PasswordSpecialCharacters = `!@#$%^&*()_+-=[]{}|;':",./<>?`
)

// PasswordPolicy validates plaintext passwords. The zero value is ready to use.
type PasswordPolicy struct{}

// Validate checks raw against the rules in a fixed order and reports only the
// first rule that fails.
func (PasswordPolicy) Validate(raw string) error {
	if raw == "" {
		return invalidArgument("rawPassword must not be empty")
	}
	if strings.IndexFunc(raw, unicode.IsSpace) >= 0 {
		return invalidArgument("rawPassword must not contain spaces")
	}

	length := utf8.RuneCountInString(raw)
	if length < PasswordMinLength {
		return invalidArgument("rawPassword must be at least %d characters", PasswordMinLength)
	}
	if length > PasswordMaxLength {
		return invalidArgument("rawPassword must be at most %d characters", PasswordMaxLength)
	}

	if strings.IndexFunc(raw, unicode.IsLower) < 0 {
		return invalidArgument("rawPassword must contain at least one lowercase letter")
	}
	if strings.IndexFunc(raw, unicode.IsUpper) < 0 {
		return invalidArgument("rawPassword must contain at least one uppercase letter")
	}
	if strings.IndexFunc(raw, unicode.IsDigit) < 0 {
		return invalidArgument("rawPassword must contain at least one digit")
	}
	if !strings.ContainsAny(raw, PasswordSpecialCharacters) {
		return invalidArgument("rawPassword must contain at least one special character")
	}
	return nil
}
