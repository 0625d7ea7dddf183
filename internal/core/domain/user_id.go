package domain

import (
	"strings"

	"github.com/google/uuid"
)

// UserID identifies a User. The zero value is not a valid id.
type UserID struct {
	value string
}

// NewUserID wraps an existing identifier.
func NewUserID(value string) (UserID, error) {
	if strings.TrimSpace(value) == "" {
		return UserID{}, invalidArgument("UserId must not be blank")
	}
	return UserID{value: value}, nil
}

// GenerateUserID returns a fresh random (v4) identifier.
func GenerateUserID() UserID {
	return UserID{value: uuid.NewString()}
}

func (id UserID) String() string { return id.value }
