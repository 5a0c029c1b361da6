package redis

import (
	"context"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"
)

// Cache implements ports.VerdictCache using Redis.
// Each namespace is one hash mapping words to "1" (accepted) or "0".
type Cache struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Cache)

// WithTTL sets the expiration of a namespace, refreshed on every Put.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		c.ttl = ttl
	}
}

// WithPrefix sets the key prefix for namespaces.
func WithPrefix(prefix string) Option {
	return func(c *Cache) {
		c.prefix = prefix
	}
}

// New creates a new Redis cache with options.
func New(address, password string, db int, opts ...Option) *Cache {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis cache from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Cache {
	cache := &Cache{
		client: client,
		prefix: "automata:verdicts:",
		ttl:    0, // No expiration by default
	}

	for _, opt := range opts {
		opt(cache)
	}

	return cache
}

func (c *Cache) key(namespace string) string {
	return c.prefix + namespace
}

// Get returns the cached verdict for word.
func (c *Cache) Get(ctx context.Context, namespace, word string) (bool, bool, error) {
	val, err := c.client.HGet(ctx, c.key(namespace), word).Result()
	if err != nil {
		if err == backend.Nil {
			return false, false, nil
		}
		return false, false, fmt.Errorf("failed to get verdict from redis: %w", err)
	}
	return val == "1", true, nil
}

// Put stores the verdict for word.
func (c *Cache) Put(ctx context.Context, namespace, word string, accepted bool) error {
	val := "0"
	if accepted {
		val = "1"
	}

	pipe := c.client.Pipeline()
	pipe.HSet(ctx, c.key(namespace), word, val)
	if c.ttl > 0 {
		pipe.Expire(ctx, c.key(namespace), c.ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save verdict to redis: %w", err)
	}
	return nil
}

// Purge drops every verdict of namespace.
func (c *Cache) Purge(ctx context.Context, namespace string) error {
	if err := c.client.Del(ctx, c.key(namespace)).Err(); err != nil {
		return fmt.Errorf("failed to purge verdicts: %w", err)
	}
	return nil
}

// Ping checks connectivity.
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the redis client.
func (c *Cache) Close() error {
	return c.client.Close()
}
