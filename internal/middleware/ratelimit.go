package middleware

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// RateLimiter applies a fixed-window per-IP limit backed by redis. With a nil
// client, or when redis is unreachable, requests pass through unthrottled.
type RateLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

func NewRateLimiter(client *redis.Client, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{client: client, limit: limit, window: window}
}

func (rl *RateLimiter) Limit(name string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if rl == nil || rl.client == nil {
			return c.Next()
		}

		ctx := c.Context()
		key := fmt.Sprintf("ratelimit:%s:%s", name, c.IP())

		count, err := rl.client.Incr(ctx, key).Result()
		if err != nil {
			log.Printf("warn: rate limit incr for %s failed: %v", key, err)
			return c.Next()
		}
		if count == 1 {
			if err := rl.client.Expire(ctx, key, rl.window).Err(); err != nil {
				log.Printf("warn: rate limit expire for %s failed: %v", key, err)
			}
		}

		if count > int64(rl.limit) {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "too many requests"})
		}

		return c.Next()
	}
}
