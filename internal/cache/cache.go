// Package cache provides a Redis-backed read-through cache for translation
// results. Lookups dominate traffic and terms change rarely, so a short TTL
// plus explicit invalidation on writes keeps responses fresh enough.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Mukesh-219/indian-local-guide-api/internal/slang"
)

// DefaultTTL bounds staleness when an invalidation is missed.
const DefaultTTL = 5 * time.Minute

const translationPrefix = "translation:"

// TranslationCache caches TranslationResult values in Redis. All operations
// fail open: a Redis error reads as a cache miss and writes are dropped, so
// an outage degrades latency but never availability.
type TranslationCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewTranslationCache creates a cache with the given TTL. A zero ttl uses
// DefaultTTL. logger may be nil to disable error logging.
func NewTranslationCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *TranslationCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TranslationCache{client: client, ttl: ttl, logger: logger}
}

// Key builds the cache key for a translation request. Text is normalized the
// same way lookups are, so "Jugaad " and "jugaad" share an entry.
func Key(text, language, region string) string {
	return translationPrefix + slang.Normalize(text) + ":" + strings.ToLower(language) + ":" + strings.ToLower(region)
}

// Get returns the cached result for the key, or (nil, false) on a miss.
func (c *TranslationCache) Get(ctx context.Context, key string) (*slang.TranslationResult, bool) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("translation cache read failed", "error", err)
		}
		return nil, false
	}

	var result slang.TranslationResult
	if err := json.Unmarshal(payload, &result); err != nil {
		c.logger.Warn("translation cache entry corrupt, dropping", "key", key, "error", err)
		c.client.Del(ctx, key)
		return nil, false
	}
	return &result, true
}

// Set stores the result under the key with the configured TTL.
func (c *TranslationCache) Set(ctx context.Context, key string, result *slang.TranslationResult) {
	payload, err := json.Marshal(result)
	if err != nil {
		c.logger.Warn("translation cache encode failed", "error", err)
		return
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.logger.Warn("translation cache write failed", "error", err)
	}
}

// Invalidate removes every cached translation. Called after term writes;
// entries are few and short-lived, so a full sweep beats tracking which
// queries a changed term could have answered.
func (c *TranslationCache) Invalidate(ctx context.Context) {
	iter := c.client.Scan(ctx, 0, translationPrefix+"*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		c.logger.Warn("translation cache scan failed", "error", err)
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warn("translation cache invalidation failed", "error", err)
	}
}
