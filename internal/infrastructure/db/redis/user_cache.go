package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/99minutos/identity-service/internal/core/domain"
	"github.com/99minutos/identity-service/internal/core/ports"
)

// DefaultCacheTTL applies when Set is called with a non-positive ttl.
const DefaultCacheTTL = 5 * time.Minute

// UserCache stores users as JSON under user:<id>.
type UserCache struct {
	client *redis.Client
}

// NewUserCache creates a UserCache wrapping the given Redis client.
func NewUserCache(client *redis.Client) *UserCache {
	return &UserCache{client: client}
}

type cachedUser struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Age          int       `json:"age"`
	PasswordHash string    `json:"password_hash"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Get returns the cached user. A miss is (nil, false, nil).
func (c *UserCache) Get(ctx context.Context, id domain.UserID) (*domain.User, bool, error) {
	raw, err := c.client.Get(ctx, cacheKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("cache get: %w", err)
	}

	user, err := decodeUser(raw)
	if err != nil {
		return nil, false, err
	}
	return &user, true, nil
}

func (c *UserCache) Set(ctx context.Context, user domain.User, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	raw, err := encodeUser(user)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, cacheKey(user.ID()), raw, ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

func (c *UserCache) Delete(ctx context.Context, id domain.UserID) error {
	if err := c.client.Del(ctx, cacheKey(id)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

func cacheKey(id domain.UserID) string {
	return "user:" + id.String()
}

func encodeUser(u domain.User) ([]byte, error) {
	raw, err := json.Marshal(cachedUser{
		ID:           u.ID().String(),
		Email:        u.Email().String(),
		Age:          u.Age().Int(),
		PasswordHash: u.PasswordHash().Value(),
		FirstName:    u.FirstName().String(),
		LastName:     u.LastName().String(),
		CreatedAt:    u.CreatedAt(),
		UpdatedAt:    u.UpdatedAt(),
	})
	if err != nil {
		return nil, fmt.Errorf("encode cached user: %w", err)
	}
	return raw, nil
}

func decodeUser(raw []byte) (domain.User, error) {
	var c cachedUser
	if err := json.Unmarshal(raw, &c); err != nil {
		return domain.User{}, fmt.Errorf("decode cached user: %w", err)
	}

	id, err := domain.NewUserID(c.ID)
	if err != nil {
		return domain.User{}, stale(err)
	}
	first, err := domain.NewName(c.FirstName)
	if err != nil {
		return domain.User{}, stale(err)
	}
	last, err := domain.NewName(c.LastName)
	if err != nil {
		return domain.User{}, stale(err)
	}
	email, err := domain.NewEmail(c.Email)
	if err != nil {
		return domain.User{}, stale(err)
	}
	age, err := domain.NewAge(c.Age)
	if err != nil {
		return domain.User{}, stale(err)
	}
	hash, err := domain.NewPasswordHash(c.PasswordHash)
	if err != nil {
		return domain.User{}, stale(err)
	}
	return domain.RestoreUser(id, first, last, email, age, hash, c.CreatedAt.UTC(), c.UpdatedAt.UTC()), nil
}

func stale(err error) error {
	return fmt.Errorf("cached user is invalid: %v", err)
}

var _ ports.UserCache = (*UserCache)(nil)
