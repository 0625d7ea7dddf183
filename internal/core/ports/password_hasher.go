package ports

import (
	"context"

	"github.com/99minutos/identity-service/internal/core/domain"
)

// PasswordHasher turns a plaintext password into an opaque hash.
type PasswordHasher interface {
	HashPassword(ctx context.Context, plaintext string) (domain.PasswordHash, error)
}
