package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// BetCache implements ports.BetCache using Redis. It is the fast path
// of the two-layer bet idempotency check; the bet_logs table is the
// durable one.
type BetCache struct {
	client *goredis.Client
	prefix string
}

// NewBetCache creates a new Redis-backed bet cache.
func NewBetCache(client *goredis.Client) *BetCache {
	return &BetCache{
		client: client,
		prefix: "bet:",
	}
}

// Get retrieves a cached bet response by key.
// Returns nil, nil if the key does not exist.
func (c *BetCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis bet get: %w", err)
	}
	return val, nil
}

// Set stores a bet response in the cache with TTL.
func (c *BetCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := c.client.Set(ctx, c.prefix+key, value, ttl).Err()
	if err != nil {
		return fmt.Errorf("redis bet set: %w", err)
	}
	return nil
}
