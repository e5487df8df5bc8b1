// Package cache keeps fetched products in Redis using the cache-aside pattern.
// A nil *ProductCache is valid and behaves as an always-missing cache.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tair/product-catalog/internal/catalog/domain"
)

// DefaultTTL is used when no TTL is configured
const DefaultTTL = 5 * time.Minute

// ProductCache stores product records keyed by product id
type ProductCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// New creates a product cache on top of an existing client. A nil client
// yields a nil cache.
func New(client *redis.Client, prefix string, ttl time.Duration) *ProductCache {
	if client == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &ProductCache{client: client, prefix: prefix, ttl: ttl}
}

// Connect dials addr and verifies the connection. An empty addr disables
// caching and returns a nil cache without error.
func Connect(ctx context.Context, addr string, ttl time.Duration) (*ProductCache, error) {
	if addr == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	return New(client, "catalog:", ttl), nil
}

// versionTTL bounds how long an untouched version counter is kept. It only
// has to outlive the read that sampled it.
const versionTTL = 24 * time.Hour

func (c *ProductCache) key(id uint) string {
	return fmt.Sprintf("%sproduct:%d", c.prefix, id)
}

func (c *ProductCache) versionKey(id uint) string {
	return fmt.Sprintf("%sproduct:%d:version", c.prefix, id)
}

// Get returns the cached product and true on a hit
func (c *ProductCache) Get(ctx context.Context, id uint) (*domain.Product, bool, error) {
	if c == nil {
		return nil, false, nil
	}

	data, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("cache get error: %w", err)
	}

	var product domain.Product
	if err := json.Unmarshal(data, &product); err != nil {
		return nil, false, fmt.Errorf("cache unmarshal error: %w", err)
	}
	return &product, true, nil
}

// Version returns the invalidation counter of id. A product never
// invalidated is at version 0.
func (c *ProductCache) Version(ctx context.Context, id uint) (int64, error) {
	if c == nil {
		return 0, nil
	}

	version, err := c.client.Get(ctx, c.versionKey(id)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("cache version error: %w", err)
	}
	return version, nil
}

// SetIfVersion stores product only while its invalidation counter still
// equals version, so a copy read before an edit or delete is never written
// back. It reports whether the entry was stored.
func (c *ProductCache) SetIfVersion(ctx context.Context, product *domain.Product, version int64) (bool, error) {
	if c == nil || product == nil {
		return false, nil
	}

	data, err := json.Marshal(product)
	if err != nil {
		return false, fmt.Errorf("cache marshal error: %w", err)
	}

	versionKey := c.versionKey(product.ID)
	stored := false
	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, versionKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != version {
			return nil
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, c.key(product.ID), data, c.ttl)
			return nil
		})
		if err == nil {
			stored = true
		}
		return err
	}, versionKey)
	if err != nil {
		if errors.Is(err, redis.TxFailedErr) {
			return false, nil
		}
		return false, fmt.Errorf("cache set error: %w", err)
	}
	return stored, nil
}

// Invalidate drops the cached entry for id and bumps its version so
// in-flight reads cannot repopulate it.
func (c *ProductCache) Invalidate(ctx context.Context, id uint) error {
	if c == nil {
		return nil
	}

	versionKey := c.versionKey(id)
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, c.key(id))
		pipe.Incr(ctx, versionKey)
		pipe.Expire(ctx, versionKey, versionTTL)
		return nil
	})
	if err != nil {
		return fmt.Errorf("cache delete error: %w", err)
	}
	return nil
}

// Ping checks the Redis connection
func (c *ProductCache) Ping(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.client.Ping(ctx).Err()
}

// Close closes the underlying client
func (c *ProductCache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
