package redis

import (
	"context"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"
)

const (
	acceptedValue = "1"
	rejectedValue = "0"
)

// Cache implements ports.DecisionCache using Redis.
type Cache struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Cache)

// WithTTL sets the expiration for cached decisions.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		c.ttl = ttl
	}
}

// WithPrefix sets the key prefix for cached decisions.
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

// NewFromURL creates a cache from a redis:// URL.
func NewFromURL(url string, opts ...Option) (*Cache, error) {
	options, err := backend.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	return NewFromClient(backend.NewClient(options), opts...), nil
}

// NewFromClient creates a new Redis cache from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Cache {
	cache := &Cache{
		client: client,
		prefix: "fsa:decision:",
		ttl:    0, // No expiration by default
	}

	for _, opt := range opts {
		opt(cache)
	}

	return cache
}

func (c *Cache) key(k string) string {
	return c.prefix + k
}

// Get retrieves a decision from Redis.
func (c *Cache) Get(ctx context.Context, key string) (bool, bool, error) {
	val, err := c.client.Get(ctx, c.key(key)).Result()
	if err != nil {
		if err == backend.Nil {
			return false, false, nil
		}
		return false, false, fmt.Errorf("failed to get from redis: %w", err)
	}

	switch val {
	case acceptedValue:
		return true, true, nil
	case rejectedValue:
		return false, true, nil
	default:
		return false, false, fmt.Errorf("unexpected cached value %q for %s", val, key)
	}
}

// Set persists a decision to Redis.
func (c *Cache) Set(ctx context.Context, key string, accepted bool) error {
	val := rejectedValue
	if accepted {
		val = acceptedValue
	}
	if err := c.client.Set(ctx, c.key(key), val, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
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
