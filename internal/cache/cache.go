// Package cache stores rendered public API responses in Redis, keyed by
// entity so admin writes can drop every page of that entity at once.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	infralogger "github.com/growlocal360/maxx-energy/infrastructure/logger"
)

const (
	keyPrefix = "maxx:public:"
	scanCount = 100
)

// PageCache is safe to use as a nil pointer; every call then misses.
type PageCache struct {
	client *redis.Client
	ttl    time.Duration
	log    infralogger.Logger
}

// New returns nil when client is nil.
func New(client *redis.Client, ttl time.Duration, log infralogger.Logger) *PageCache {
	if client == nil {
		return nil
	}
	if log == nil {
		log = infralogger.NewNop()
	}
	return &PageCache{client: client, ttl: ttl, log: log}
}

func (c *PageCache) key(entity, key string) string {
	return keyPrefix + entity + ":" + key
}

// Get returns the cached bytes for entity/key. Redis errors count as a miss.
func (c *PageCache) Get(ctx context.Context, entity, key string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}

	data, err := c.client.Get(ctx, c.key(entity, key)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn("Page cache read failed",
				infralogger.String("entity", entity),
				infralogger.String("key", key),
				infralogger.Error(err),
			)
		}
		return nil, false
	}
	return data, true
}

// Set stores value for the configured TTL. Failures are logged only.
func (c *PageCache) Set(ctx context.Context, entity, key string, value []byte) {
	if c == nil {
		return
	}

	if err := c.client.Set(ctx, c.key(entity, key), value, c.ttl).Err(); err != nil {
		c.log.Warn("Page cache write failed",
			infralogger.String("entity", entity),
			infralogger.String("key", key),
			infralogger.Error(err),
		)
	}
}

// Invalidate deletes every cached page of the given entities.
func (c *PageCache) Invalidate(ctx context.Context, entities ...string) error {
	if c == nil {
		return nil
	}

	var errs []error
	for _, entity := range entities {
		deleted, err := c.invalidateEntity(ctx, entity)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		c.log.Debug("Page cache invalidated",
			infralogger.String("entity", entity),
			infralogger.Int("keys", deleted),
		)
	}
	return errors.Join(errs...)
}

func (c *PageCache) invalidateEntity(ctx context.Context, entity string) (int, error) {
	pattern := keyPrefix + entity + ":*"
	deleted := 0

	iter := c.client.Scan(ctx, 0, pattern, scanCount).Iterator()
	batch := make([]string, 0, scanCount)
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == scanCount {
			if err := c.client.Del(ctx, batch...).Err(); err != nil {
				return deleted, fmt.Errorf("delete %s pages: %w", entity, err)
			}
			deleted += len(batch)
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return deleted, fmt.Errorf("scan %s pages: %w", entity, err)
	}

	if len(batch) > 0 {
		if err := c.client.Del(ctx, batch...).Err(); err != nil {
			return deleted, fmt.Errorf("delete %s pages: %w", entity, err)
		}
		deleted += len(batch)
	}
	return deleted, nil
}
