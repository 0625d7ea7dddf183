package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port       string `env:"PORT,        default=8080"`
	Env        string `env:"ENV,         default=development"`
	LogLevel   string `env:"LOG_LEVEL,   default=info"`
	JWTSecret  string `env:"JWT_SECRET"`
	BcryptCost int    `env:"BCRYPT_COST, default=10"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string        `env:"MONGO_URI,     default=mongodb://localhost:27017"`
	Database string        `env:"MONGO_DB,      default=identity"`
	Timeout  time.Duration `env:"MONGO_TIMEOUT, default=10s"`
}

type RedisConfig struct {
	Enabled  bool          `env:"REDIS_ENABLED, default=true"`
	Addr     string        `env:"REDIS_ADDR,    default=localhost:6379"`
	DB       int           `env:"REDIS_DB,      default=0"`
	CacheTTL time.Duration `env:"CACHE_TTL,     default=5m"`
}

// IsDevelopment reports whether pretty console logs should be used.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development" || c.Env == "local"
}

// AuthEnabled reports whether the update route requires a bearer token.
func (c *Config) AuthEnabled() bool {
	return c.JWTSecret != ""
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return LoadWith(ctx, envconfig.OsLookuper())
}

// LoadWith reads configuration from an arbitrary lookuper, used by tests.
func LoadWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.BcryptCost < 4 || cfg.BcryptCost > 31 {
		return nil, fmt.Errorf("config: BCRYPT_COST must be between 4 and 31, got %d", cfg.BcryptCost)
	}
	return &cfg, nil
}
