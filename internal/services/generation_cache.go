package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const GenerationCacheKeyPrefix = "generation:"

// GenerationCache stores finished generator output by input hash.
type GenerationCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string)
}

// GenerationCacheKey hashes the generator inputs into a cache key.
func GenerationCacheKey(kind string, parts ...string) string {
	sum := sha256.Sum256([]byte(strings.Join(parts, "\x00")))
	return GenerationCacheKeyPrefix + kind + ":" + hex.EncodeToString(sum[:])
}

// RedisGenerationCache keeps results in Redis with a TTL. Redis errors are
// logged and treated as misses.
type RedisGenerationCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

func NewRedisGenerationCache(client *redis.Client, ttl time.Duration, log *zap.Logger) *RedisGenerationCache {
	if log == nil {
		log = zap.NewNop()
	}
	return &RedisGenerationCache{client: client, ttl: ttl, log: log}
}

func (c *RedisGenerationCache) Get(ctx context.Context, key string) (string, bool) {
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		c.log.Warn("Generation cache read failed", zap.String("key", key), zap.Error(err))
		return "", false
	}
	return val, true
}

func (c *RedisGenerationCache) Set(ctx context.Context, key, value string) {
	if err := c.client.Set(ctx, key, value, c.ttl).Err(); err != nil {
		c.log.Warn("Generation cache write failed", zap.String("key", key), zap.Error(err))
	}
}

type noopGenerationCache struct{}

func (noopGenerationCache) Get(context.Context, string) (string, bool) { return "", false }
func (noopGenerationCache) Set(context.Context, string, string)        {}

// NoopGenerationCache is used when Redis is not configured.
var NoopGenerationCache GenerationCache = noopGenerationCache{}

// cachedProducer serves key from cache, or runs generate and stores a
// successful result.
func cachedProducer(cache GenerationCache, key string, generate func() (string, error)) Producer {
	return func(ctx context.Context) (string, error) {
		if v, ok := cache.Get(ctx, key); ok {
			return v, nil
		}
		out, err := generate()
		if err != nil {
			return "", err
		}
		cache.Set(ctx, key, out)
		return out, nil
	}
}
