package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Cache key names for the hot read-mostly payloads.
const (
	CacheKeySiteSettings = "page:site-settings"
	CacheKeyLandingBg    = "page:landing-bg"
)

const pageCacheTTL = 60 * time.Second

// PageCache is a read-through cache for small JSON payloads that change
// rarely but are fetched on every page load. A nil redis client degrades
// every lookup to a miss, so the cache is safe to run without redis.
type PageCache struct {
	client *redis.Client
	log    *logrus.Logger
}

func NewPageCache(client *redis.Client, log *logrus.Logger) *PageCache {
	return &PageCache{client: client, log: log}
}

// Get unmarshals the cached payload into dest and reports whether it was a
// hit. Errors other than a plain miss are logged and treated as misses.
func (c *PageCache) Get(ctx context.Context, key string, dest interface{}) bool {
	if c.client == nil {
		return false
	}
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warnf("Cache read for %s failed: %v", key, err)
		}
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		c.log.Warnf("Cache payload for %s is corrupt, dropping it: %v", key, err)
		c.client.Del(ctx, key)
		return false
	}
	return true
}

// Set stores value under key with the page TTL. Failures are logged only.
func (c *PageCache) Set(ctx context.Context, key string, value interface{}) {
	if c.client == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		c.log.Warnf("Cache encode for %s failed: %v", key, err)
		return
	}
	if err := c.client.Set(ctx, key, data, pageCacheTTL).Err(); err != nil {
		c.log.Warnf("Cache write for %s failed: %v", key, err)
	}
}

// Invalidate removes keys after a write so the next read sees fresh data.
func (c *PageCache) Invalidate(ctx context.Context, keys ...string) {
	if c.client == nil || len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.log.Warnf("Cache invalidation for %v failed: %v", keys, err)
	}
}
