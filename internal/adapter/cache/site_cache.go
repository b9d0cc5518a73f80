// Package cache holds the redis-backed cache of generated sites. The
// generator is deterministic, so a content hash fully identifies its
// output; the cache only ever saves a regeneration, never correctness.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"portfolio-builder/pkg/generator"
)

const defaultTTL = 24 * time.Hour

type SiteCache struct {
	rdb *redis.Client
	ttl time.Duration
	log *logrus.Entry
}

// New connects to redis from a URL. An empty URL returns a disabled
// cache that misses on every lookup.
func New(url string) (*SiteCache, error) {
	c := &SiteCache{ttl: defaultTTL, log: logrus.WithField("component", "site-cache")}
	if url == "" {
		return c, nil
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	c.rdb = redis.NewClient(opts)
	return c, nil
}

func (c *SiteCache) Get(ctx context.Context, key string) (generator.FileMap, bool) {
	if c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.WithError(err).Warn("cache get failed")
		}
		return nil, false
	}

	var files generator.FileMap
	if err := json.Unmarshal(raw, &files); err != nil {
		c.log.WithError(err).Warn("cache entry corrupt, ignoring")
		return nil, false
	}
	return files, true
}

func (c *SiteCache) Set(ctx context.Context, key string, files generator.FileMap) {
	if c.rdb == nil {
		return
	}

	raw, err := json.Marshal(files)
	if err != nil {
		c.log.WithError(err).Warn("cache encode failed")
		return
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.log.WithError(err).Warn("cache set failed")
	}
}

// Close releases the redis connection when one was opened.
func (c *SiteCache) Close() error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}
