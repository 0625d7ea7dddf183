package security

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/99minutos/identity-service/internal/core/domain"
	"github.com/99minutos/identity-service/internal/core/ports"
)

// bcryptMaxInput is the number of bytes bcrypt accepts. Longer passwords are
// reduced to a base64 SHA-256 digest before hashing.
const bcryptMaxInput = 72

// BcryptHasher implements ports.PasswordHasher with bcrypt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher using cost, or bcrypt.DefaultCost when cost
// is outside bcrypt's accepted range.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) HashPassword(_ context.Context, plaintext string) (domain.PasswordHash, error) {
	b, err := bcrypt.GenerateFromPassword(prepare(plaintext), h.cost)
	if err != nil {
		return domain.PasswordHash{}, fmt.Errorf("hash password: %w", err)
	}
	return domain.NewPasswordHash(string(b))
}

// Matches reports whether plaintext corresponds to hash.
func Matches(hash domain.PasswordHash, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash.Value()), prepare(plaintext)) == nil
}

func prepare(plaintext string) []byte {
	if len(plaintext) <= bcryptMaxInput {
		return []byte(plaintext)
	}
	sum := sha256.Sum256([]byte(plaintext))
	return []byte(base64.StdEncoding.EncodeToString(sum[:]))
}

var _ ports.PasswordHasher = (*BcryptHasher)(nil)
