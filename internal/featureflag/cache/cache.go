package cache

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "flag:"

// Cache keeps flag evaluations in redis for a bounded TTL. A nil client
// disables caching and every lookup misses.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// GetEnabled reports the cached evaluation for key. Redis errors are treated
// as misses so evaluation can fall back to the database.
func (c *Cache) GetEnabled(ctx context.Context, key string) (enabled, found bool) {
	if c == nil || c.client == nil {
		return false, false
	}

	val, err := c.client.Get(ctx, keyPrefix+key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logRedisError("get", key, err)
		}
		return false, false
	}

	return val == "1", true
}

func (c *Cache) SetEnabled(ctx context.Context, key string, enabled bool) {
	if c == nil || c.client == nil {
		return
	}

	val := "0"
	if enabled {
		val = "1"
	}
	if err := c.client.Set(ctx, keyPrefix+key, val, c.ttl).Err(); err != nil {
		logRedisError("set", key, err)
	}
}

func (c *Cache) Invalidate(ctx context.Context, key string) {
	if c == nil || c.client == nil {
		return
	}

	if err := c.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		logRedisError("del", key, err)
	}
}

func logRedisError(op, key string, err error) {
	log.Printf("warn: flag cache %s for %q failed: %v", op, key, err)
}
