package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const cacheTTL = time.Hour

// ResultCache stores validated analysis artifacts in Redis so identical
// reports replay the prior artifact instead of re-billing the model.
// Key format: analysis:<kind>:<report_digest>
type ResultCache struct {
	client *redis.Client
}

// NewResultCache creates a ResultCache wrapping the given Redis client.
func NewResultCache(client *redis.Client) *ResultCache {
	return &ResultCache{client: client}
}

// Get returns the cached artifact, or (nil, nil) on a miss.
func (c *ResultCache) Get(ctx context.Context, kind, digest string) ([]byte, error) {
	payload, err := c.client.Get(ctx, c.key(kind, digest)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}
	return payload, nil
}

// Set records the artifact (expires after cacheTTL).
func (c *ResultCache) Set(ctx context.Context, kind, digest string, payload []byte) error {
	return c.client.Set(ctx, c.key(kind, digest), payload, cacheTTL).Err()
}

func (c *ResultCache) key(kind, digest string) string {
	return fmt.Sprintf("analysis:%s:%s", kind, digest)
}
