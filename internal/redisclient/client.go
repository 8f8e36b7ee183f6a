package redisclient

import (
	"github.com/redis/go-redis/v9"

	"github.com/minte-atnafu/Developer-Activity-Dashboard/internal/config"
)

// New creates a Redis client from configuration.
func New(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Username: cfg.Username,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}
