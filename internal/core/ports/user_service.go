package ports

import (
	"context"
	"time"
)

// CreateUserCommand carries the data needed to register a user.
type CreateUserCommand struct {
	Email       string
	Age         int
	RawPassword string
	FirstName   string
	LastName    string
}

// GetUserCommand identifies the user to retrieve.
type GetUserCommand struct {
	ID string
}

// UpdateUserCommand carries a partial update. Nil fields are left unchanged;
// RawPassword is only hashed when present.
type UpdateUserCommand struct {
	ID          string
	Email       *string
	Age         *int
	RawPassword *string
	FirstName   *string
	LastName    *string
}

// UserResult is the projection returned by every use case. It never carries
// the password hash.
type UserResult struct {
	ID        string
	Email     string
	Age       int
	FirstName string
	LastName  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// The use cases below return either a result and a nil error, or a nil result
// and a *domain.UserError.

type CreateUserUseCase interface {
	Execute(ctx context.Context, cmd CreateUserCommand) (*UserResult, error)
}

type GetUserUseCase interface {
	Execute(ctx context.Context, cmd GetUserCommand) (*UserResult, error)
}

type UpdateUserUseCase interface {
	Execute(ctx context.Context, cmd UpdateUserCommand) (*UserResult, error)
}
