package ports

import (
	"context"
	"time"

	"github.com/99minutos/identity-service/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	ExistsByEmail(ctx context.Context, email domain.Email) (bool, error)
	// Save inserts the user or replaces the stored one with the same id, and
	// returns the user as persisted. Implementations that enforce email
	// uniqueness report a collision as domain.AlreadyExists.
	Save(ctx context.Context, user domain.User) (domain.User, error)
	// FindByID returns nil and no error when no user has the given id.
	FindByID(ctx context.Context, id domain.UserID) (*domain.User, error)
}

// UserCache is a best-effort lookaside cache keyed by user id.
type UserCache interface {
	// Get reports false on a miss.
	Get(ctx context.Context, id domain.UserID) (*domain.User, bool, error)
	Set(ctx context.Context, user domain.User, ttl time.Duration) error
	Delete(ctx context.Context, id domain.UserID) error
}
