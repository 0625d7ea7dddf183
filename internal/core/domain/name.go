package domain

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const NameMaxLength = 128

var namePattern = regexp.MustCompile(`^[\p{L}\s'-]+$`)

// Name is a first or last name made of letters, spaces, hyphens and
// apostrophes.
type Name struct {
	value string
}

// NewName trims value and validates it. Length is checked before blankness so
// an oversized value always reports "too long".
func NewName(value string) (Name, error) {
	trimmed := strings.TrimSpace(value)

	if utf8.RuneCountInString(trimmed) > NameMaxLength {
		return Name{}, invalidArgument("Name is too long")
	}
	if trimmed == "" {
		return Name{}, invalidArgument("Name must not be blank")
	}
	if !namePattern.MatchString(trimmed) {
		return Name{}, invalidArgument("Name format is invalid")
	}
	return Name{value: trimmed}, nil
}

func (n Name) String() string { return n.value }

// Capitalized title-cases the first letter of every whitespace separated part
// and joins the parts with single spaces: "hugo      boSs" becomes "Hugo BoSs".
func (n Name) Capitalized() string {
	parts := strings.Fields(n.value)
	for i, p := range parts {
		r, size := utf8.DecodeRuneInString(p)
		if unicode.IsLower(r) {
			parts[i] = string(unicode.ToTitle(r)) + p[size:]
		}
	}
	return strings.Join(parts, " ")
}
