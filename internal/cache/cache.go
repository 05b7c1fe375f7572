// Package cache is a fail-safe Redis wrapper. A nil *Client is valid and
// behaves like an always-empty cache, which is how the API runs without Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/franciscosanchezn/bistro-boss-api/internal/metrics"
)

// Keys of the cached public listings
const (
	MenuKey    = "bistro:menu"
	ReviewsKey = "bistro:reviews"
)

// Client wraps redis.Client but fails safe by swallowing connectivity errors.
type Client struct {
	client *redis.Client
	ttl    time.Duration
	log    *logrus.Logger
}

// New creates a new Redis backed cache with the given entry TTL
func New(addr, password string, db int, ttl time.Duration, log *logrus.Logger) *Client {
	opts := &redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Client{client: redis.NewClient(opts), ttl: ttl, log: log}
}

// Ping reports whether redis is reachable
func (c *Client) Ping(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Ping(ctx).Err()
}

// Close releases the connection pool
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// Get returns value or nil if missing or redis unavailable.
func (c *Client) Get(ctx context.Context, key string) []byte {
	if c == nil || c.client == nil {
		return nil
	}
	res, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.WithError(err).WithField("key", key).Warn("Cache read failed, treating as miss")
		}
		return nil
	}
	return res
}

// Set stores value with the configured TTL, ignoring redis errors.
func (c *Client) Set(ctx context.Context, key string, value []byte) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Set(ctx, key, value, c.ttl).Err(); err != nil {
		c.log.WithError(err).WithField("key", key).Warn("Cache write failed")
	}
}

// Delete removes keys, ignoring redis errors.
func (c *Client) Delete(ctx context.Context, keys ...string) {
	if c == nil || c.client == nil || len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.log.WithError(err).WithField("keys", keys).Warn("Cache invalidation failed")
	}
}

// Remember returns the cached JSON value under key decoded into T, or calls
// load, caches its JSON encoding and returns it.
func Remember[T any](ctx context.Context, c *Client, key string, load func(context.Context) (T, error)) (T, error) {
	if raw := c.Get(ctx, key); raw != nil {
		var cached T
		if err := json.Unmarshal(raw, &cached); err == nil {
			metrics.ObserveCache(key, true)
			return cached, nil
		}
	}
	if c != nil && c.client != nil {
		metrics.ObserveCache(key, false)
	}

	value, err := load(ctx)
	if err != nil {
		return value, err
	}
	if c != nil && c.client != nil {
		if raw, err := json.Marshal(value); err == nil {
			c.Set(ctx, key, raw)
		}
	}
	return value, nil
}
