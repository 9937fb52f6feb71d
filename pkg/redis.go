package pkg

import (
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/edustack/classroom-service/internal/config"
)

// NewRedisClient builds a client from the configured URL. The caller decides
// whether a failure here is fatal; the service degrades without a cache.
func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}
	return redis.NewClient(opts), nil
}
