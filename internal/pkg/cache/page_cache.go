// Package cache provides a short-lived, keyed page-fragment cache for
// read-heavy feed views. Entries are JSON snapshots of the assembled
// page stored in Redis under a view-derived key; nothing invalidates
// them on writes, staleness up to the TTL is accepted.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/artemn/yatube/internal/pkg/logger"
)

// PageCache is a cache-aside wrapper around a Redis client. A nil
// *PageCache is valid and disables caching.
type PageCache struct {
	client *redis.Client
	ttl    time.Duration
}

// New creates a PageCache with the given TTL. Returns nil when client
// is nil so callers can treat a missing Redis as "cache disabled".
func New(client *redis.Client, ttl time.Duration) *PageCache {
	if client == nil {
		return nil
	}
	return &PageCache{client: client, ttl: ttl}
}

// Key builds a cache key from a view name and its parts, e.g.
// Key("feed:group", "grp", "page", "2") -> "feed:group:grp:page:2".
func Key(view string, parts ...string) string {
	if len(parts) == 0 {
		return view
	}
	return view + ":" + strings.Join(parts, ":")
}

// Get loads a cached page into dest. The second return value reports
// a cache hit. Redis failures count as misses and are logged at warn.
func (c *PageCache) Get(ctx context.Context, key string, dest interface{}) bool {
	if c == nil {
		return false
	}
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Warn().Err(err).Str("key", key).Msg("Page cache read failed")
		}
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("Page cache entry corrupt")
		return false
	}
	return true
}

// Set stores a page snapshot under key for the configured TTL.
// Failures are logged and otherwise ignored; the page was already
// served from the database.
func (c *PageCache) Set(ctx context.Context, key string, value interface{}) {
	if c == nil {
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("Page cache marshal failed")
		return
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("Page cache write failed")
	}
}

// NewRedisClient connects to Redis and verifies the connection.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	return client, nil
}
