// Package app wires configuration, storage adapters and use cases into the
// pieces each binary needs.
package app

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	gomongo "go.mongodb.org/mongo-driver/mongo"

	"github.com/99minutos/identity-service/internal/api/handler"
	"github.com/99minutos/identity-service/internal/core/ports"
	"github.com/99minutos/identity-service/internal/core/service"
	"github.com/99minutos/identity-service/internal/infrastructure/config"
	"github.com/99minutos/identity-service/internal/infrastructure/db/mongo"
	"github.com/99minutos/identity-service/internal/infrastructure/db/redis"
	"github.com/99minutos/identity-service/internal/infrastructure/security"
)

const appName = "identity-service"

// App holds the connected dependencies and the three user use cases.
type App struct {
	Create ports.CreateUserUseCase
	Get    ports.GetUserUseCase
	Update ports.UpdateUserUseCase

	// Readiness lists the probes for every connected dependency.
	Readiness map[string]handler.Pinger

	mongoClient *gomongo.Client
	redisClient *goredis.Client
}

// New connects to MongoDB (and Redis when enabled), ensures indexes and builds
// the use cases on top of them.
func New(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*App, error) {
	client, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		AppName:  appName,
		Timeout:  cfg.Mongo.Timeout,
	})
	if err != nil {
		return nil, err
	}

	store := mongo.NewUserRepository(db)
	if err := store.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ensure user indexes: %w", err)
	}

	a := &App{
		mongoClient: client,
		Readiness:   map[string]handler.Pinger{"mongodb": handler.MongoPinger(db)},
	}

	var repo ports.UserRepository = store
	if cfg.Redis.Enabled {
		rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
		a.redisClient = rdb
		a.Readiness["redis"] = handler.RedisPinger(rdb)
		repo = redis.NewCachedUserRepository(store, redis.NewUserCache(rdb), cfg.Redis.CacheTTL,
			log.With().Str("component", "user_cache").Logger())
	}

	hasher := security.NewBcryptHasher(cfg.BcryptCost)
	svcLog := log.With().Str("component", "user_service").Logger()

	a.Create = service.NewCreateUserUseCase(repo, hasher, svcLog)
	a.Get = service.NewGetUserUseCase(repo, svcLog)
	a.Update = service.NewUpdateUserUseCase(repo, hasher, svcLog)

	return a, nil
}

// Close releases the Redis and MongoDB connections.
func (a *App) Close(ctx context.Context) error {
	if a.redisClient != nil {
		_ = a.redisClient.Close()
	}
	return a.mongoClient.Disconnect(ctx)
}
