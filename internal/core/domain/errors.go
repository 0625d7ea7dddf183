package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument marks a value that failed validation. Value type
// constructors and the password policy return errors matching it.
var ErrInvalidArgument = errors.New("invalid argument")

// argumentError carries the exact rule message while still matching
// ErrInvalidArgument through errors.Is.
type argumentError struct {
	msg string
}

func (e *argumentError) Error() string { return e.msg }

func (e *argumentError) Unwrap() error { return ErrInvalidArgument }

func invalidArgument(format string, args ...any) error {
	return &argumentError{msg: fmt.Sprintf(format, args...)}
}

// Kind is the closed set of failures a use case can report.
type Kind int

const (
	KindUnknown Kind = iota
	KindAlreadyExists
	KindNotFound
	KindInvalidData
)

func (k Kind) String() string {
	switch k {
	case KindAlreadyExists:
		return "already_exists"
	case KindNotFound:
		return "not_found"
	case KindInvalidData:
		return "invalid_data"
	default:
		return "unknown"
	}
}

// Sentinels matching a UserError of the same kind, for errors.Is checks at
// the transport layer.
var (
	ErrUserExists      = &UserError{Kind: KindAlreadyExists}
	ErrUserNotFound    = &UserError{Kind: KindNotFound}
	ErrInvalidUserData = &UserError{Kind: KindInvalidData}
	ErrUnknown         = &UserError{Kind: KindUnknown}
)

// UserError is the only error type a use case returns. Email is set for
// KindAlreadyExists, ID for KindNotFound, Err for KindInvalidData and
// KindUnknown.
type UserError struct {
	Kind  Kind
	Email Email
	ID    string
	Err   error
}

// AlreadyExists reports an attempt to create a second user with email.
func AlreadyExists(email Email) *UserError {
	return &UserError{Kind: KindAlreadyExists, Email: email}
}

// NotFound reports a missing user. id is kept exactly as the caller sent it.
func NotFound(id string) *UserError {
	return &UserError{Kind: KindNotFound, ID: id}
}

// InvalidData wraps a validation failure.
func InvalidData(cause error) *UserError {
	return &UserError{Kind: KindInvalidData, Err: cause}
}

// Unknown wraps anything that could not be classified, typically a store or
// hasher failure.
func Unknown(cause error) *UserError {
	return &UserError{Kind: KindUnknown, Err: cause}
}

func (e *UserError) Error() string {
	switch e.Kind {
	case KindAlreadyExists:
		return "user already exists with email " + e.Email.String()
	case KindNotFound:
		return "user not found with id " + e.ID
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.String()
}

func (e *UserError) Unwrap() error { return e.Err }

// Is matches any UserError of the same kind, so errors.Is(err, ErrUserNotFound)
// works regardless of the carried id.
func (e *UserError) Is(target error) bool {
	t, ok := target.(*UserError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Classify maps any failure raised inside a use case onto the taxonomy:
// UserErrors pass through, bad arguments become InvalidData, the rest Unknown.
func Classify(err error) *UserError {
	if err == nil {
		return nil
	}

	var ue *UserError
	if errors.As(err, &ue) {
		return ue
	}
	if errors.Is(err, ErrInvalidArgument) {
		return InvalidData(err)
	}
	return Unknown(err)
}
