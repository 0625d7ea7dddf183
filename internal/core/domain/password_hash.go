package domain

import "strings"

// PasswordHash is an opaque hash produced by a PasswordHasher. It never holds
// plaintext.
type PasswordHash struct {
	value string
}

func NewPasswordHash(hash string) (PasswordHash, error) {
	if strings.TrimSpace(hash) == "" {
		return PasswordHash{}, invalidArgument("Password must not be blank")
	}
	return PasswordHash{value: hash}, nil
}

// Value returns the raw hash for persistence and verification.
func (p PasswordHash) Value() string { return p.value }

// String is redacted so hashes never end up in logs.
func (p PasswordHash) String() string { return "PasswordHash(***)" }
