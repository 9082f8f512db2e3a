// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cache stores rendered blueprints in redis, keyed by engine and
// input digest. Generation is deterministic, so a hit is always identical
// to a fresh result and entries never need invalidation beyond their TTL.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pdiddy/blueprint-engine/pkg/types"
)

const keyPrefix = "blueprint"

// kv is the subset of the redis client the cache uses.
type kv interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Ping(ctx context.Context) *redis.StatusCmd
	Close() error
}

// Cache is a redis-backed blueprint cache.
type Cache struct {
	client kv
	ttl    time.Duration
}

// New connects to cfg.Addr and verifies the connection.
func New(ctx context.Context, cfg types.CacheConfig) (*Cache, error) {
	if cfg.Addr == "" {
		return nil, errors.New("cache address is empty")
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  3 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("pinging redis at %s: %w", cfg.Addr, err)
	}

	return newCache(rdb, cfg.TTL), nil
}

func newCache(client kv, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// Key returns the redis key for a blueprint.
func Key(engine types.Engine, digest string) string {
	return keyPrefix + ":" + string(engine) + ":" + digest
}

// Lookup decodes the cached blueprint into dst. It reports false on a miss.
func (c *Cache) Lookup(ctx context.Context, engine types.Engine, digest string, dst any) (bool, error) {
	data, err := c.client.Get(ctx, Key(engine, digest)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading cache: %w", err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("decoding cached %s blueprint: %w", engine, err)
	}
	return true, nil
}

// Store caches bp under engine and digest for the configured TTL. A zero
// TTL keeps the entry until redis evicts it.
func (c *Cache) Store(ctx context.Context, engine types.Engine, digest string, bp any) error {
	data, err := json.Marshal(bp)
	if err != nil {
		return fmt.Errorf("encoding blueprint: %w", err)
	}
	if err := c.client.Set(ctx, Key(engine, digest), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("writing cache: %w", err)
	}
	return nil
}

// Ping checks the redis connection.
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close releases the redis connection.
func (c *Cache) Close() error {
	return c.client.Close()
}
