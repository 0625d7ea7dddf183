package redis

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/identity-service/internal/core/domain"
	"github.com/99minutos/identity-service/internal/core/ports"
)

// CachedUserRepository reads FindByID through a UserCache and refreshes the
// entry on every successful Save. Cache failures are logged and never fail
// the call; the wrapped store stays authoritative.
type CachedUserRepository struct {
	next  ports.UserRepository
	cache ports.UserCache
	ttl   time.Duration
	log   zerolog.Logger
}

func NewCachedUserRepository(next ports.UserRepository, cache ports.UserCache, ttl time.Duration, log zerolog.Logger) *CachedUserRepository {
	return &CachedUserRepository{next: next, cache: cache, ttl: ttl, log: log}
}

func (r *CachedUserRepository) ExistsByEmail(ctx context.Context, email domain.Email) (bool, error) {
	return r.next.ExistsByEmail(ctx, email)
}

func (r *CachedUserRepository) Save(ctx context.Context, user domain.User) (domain.User, error) {
	saved, err := r.next.Save(ctx, user)
	if err != nil {
		// the store may or may not hold the write; drop the entry either way
		if derr := r.cache.Delete(ctx, user.ID()); derr != nil {
			r.log.Warn().Err(derr).Str("user_id", user.ID().String()).Msg("cache invalidation failed")
		}
		return domain.User{}, err
	}

	if err := r.cache.Set(ctx, saved, r.ttl); err != nil {
		r.log.Warn().Err(err).Str("user_id", saved.ID().String()).Msg("cache refresh failed")
	}
	return saved, nil
}

func (r *CachedUserRepository) FindByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	cached, ok, err := r.cache.Get(ctx, id)
	switch {
	case err != nil:
		r.log.Warn().Err(err).Str("user_id", id.String()).Msg("cache read failed")
	case ok:
		return cached, nil
	}

	user, err := r.next.FindByID(ctx, id)
	if err != nil || user == nil {
		return user, err
	}

	if err := r.cache.Set(ctx, *user, r.ttl); err != nil {
		r.log.Warn().Err(err).Str("user_id", id.String()).Msg("cache fill failed")
	}
	return user, nil
}

var _ ports.UserRepository = (*CachedUserRepository)(nil)
