package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultDialTimeout = 5 * time.Second
	defaultPoolSize    = 10
)

// Config describes the list cache backend.
type Config struct {
	Addr     string
	Password string
	DB       int
	// PoolSize caps open connections; zero means defaultPoolSize.
	PoolSize int
	// DialTimeout bounds both dialing and the start-up ping.
	DialTimeout time.Duration
}

func (c Config) options() *redis.Options {
	dial := c.DialTimeout
	if dial <= 0 {
		dial = defaultDialTimeout
	}
	pool := c.PoolSize
	if pool <= 0 {
		pool = defaultPoolSize
	}
	return &redis.Options{
		Addr:        c.Addr,
		Password:    c.Password,
		DB:          c.DB,
		PoolSize:    pool,
		DialTimeout: dial,
	}
}

// Connect opens the cache client and pings it once. The client is closed
// again when the ping fails, so callers only own a healthy handle.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	opts := cfg.options()
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, opts.DialTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s (db %d): %w", opts.Addr, opts.DB, err)
	}
	return client, nil
}
