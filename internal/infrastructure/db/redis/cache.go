package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultCacheTTL = 5 * time.Minute

// ListCache stores JSON-encoded list results.
// Key format: cache:<namespace>:<generation>:<key>
//
// Each namespace has a generation counter at cache:<namespace>:gen. Bumping it
// orphans every entry of the previous generation; orphans age out via TTL.
type ListCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewListCache creates a ListCache wrapping the given Redis client.
func NewListCache(client *redis.Client, ttl time.Duration) *ListCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &ListCache{client: client, ttl: ttl}
}

// Load decodes the cached value into dst and reports whether it was present,
// along with the generation of namespace it read from.
func (c *ListCache) Load(ctx context.Context, namespace, key string, dst any) (bool, int64, error) {
	gen, err := c.generation(ctx, namespace)
	if err != nil {
		return false, 0, err
	}

	b, err := c.client.Get(ctx, entryKey(namespace, gen, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, gen, nil
	}
	if err != nil {
		return false, gen, fmt.Errorf("cache get: %w", err)
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return false, gen, fmt.Errorf("cache decode: %w", err)
	}
	return true, gen, nil
}

// Store caches value under generation gen of namespace, as returned by Load.
// A value stored under a superseded generation is never read back.
func (c *ListCache) Store(ctx context.Context, namespace string, gen int64, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	if err := c.client.Set(ctx, entryKey(namespace, gen, key), b, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Invalidate starts a new generation for namespace.
func (c *ListCache) Invalidate(ctx context.Context, namespace string) error {
	if err := c.client.Incr(ctx, generationKey(namespace)).Err(); err != nil {
		return fmt.Errorf("cache invalidate: %w", err)
	}
	return nil
}

func (c *ListCache) generation(ctx context.Context, namespace string) (int64, error) {
	gen, err := c.client.Get(ctx, generationKey(namespace)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("cache generation: %w", err)
	}
	return gen, nil
}

func generationKey(namespace string) string {
	return fmt.Sprintf("cache:%s:gen", namespace)
}

func entryKey(namespace string, gen int64, key string) string {
	return fmt.Sprintf("cache:%s:%d:%s", namespace, gen, key)
}
