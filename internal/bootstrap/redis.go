package bootstrap

import (
	"context"

	"github.com/redis/go-redis/v9"

	infralogger "github.com/growlocal360/maxx-energy/infrastructure/logger"
	infraredis "github.com/growlocal360/maxx-energy/infrastructure/redis"
	"github.com/growlocal360/maxx-energy/internal/config"
)

// SetupRedis connects to Redis when it is enabled. It returns nil when Redis
// is disabled or unreachable; the page cache and event stream then turn
// into no-ops.
func SetupRedis(ctx context.Context, cfg *config.Config, log infralogger.Logger) *redis.Client {
	if !cfg.Redis.Enabled {
		log.Info("Redis disabled, page cache and content events are off")
		return nil
	}

	client, err := infraredis.NewClient(ctx, infraredis.Config{
		Address:  cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Warn("Redis not available, page cache and content events disabled",
			infralogger.Error(err),
		)
		return nil
	}

	log.Info("Redis connected",
		infralogger.String("redis_address", cfg.Redis.Address),
		infralogger.Duration("cache_ttl", cfg.Redis.CacheTTL),
	)
	return client
}
