package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerationCacheKey(t *testing.T) {
	a := GenerationCacheKey(JobKindEnhance, "prompt", "GPT-4")
	b := GenerationCacheKey(JobKindEnhance, "prompt", "GPT-4")
	c := GenerationCacheKey(JobKindEnhance, "promptGPT-4")
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.True(t, strings.HasPrefix(a, "generation:enhance:"))
}

func TestRedisGenerationCache(t *testing.T) {
	mr, client := setupTestRedis(t)
	cache := NewRedisGenerationCache(client, time.Minute, nil)
	ctx := context.Background()

	_, ok := cache.Get(ctx, "generation:diagram:x")
	assert.False(t, ok)

	cache.Set(ctx, "generation:diagram:x", "flowchart TD")
	val, ok := cache.Get(ctx, "generation:diagram:x")
	assert.True(t, ok)
	assert.Equal(t, "flowchart TD", val)
	assert.True(t, mr.TTL("generation:diagram:x") > 0)

	mr.FastForward(2 * time.Minute)
	_, ok = cache.Get(ctx, "generation:diagram:x")
	assert.False(t, ok)
}

func TestRedisGenerationCacheErrorsAreMisses(t *testing.T) {
	mr, client := setupTestRedis(t)
	cache := NewRedisGenerationCache(client, time.Minute, nil)
	mr.Close()

	cache.Set(context.Background(), "k", "v")
	_, ok := cache.Get(context.Background(), "k")
	assert.False(t, ok)
}

func TestCachedProducer(t *testing.T) {
	_, client := setupTestRedis(t)
	cache := NewRedisGenerationCache(client, time.Minute, nil)
	ctx := context.Background()

	calls := 0
	produce := cachedProducer(cache, "generation:test:1", func() (string, error) {
		calls++
		return "result", nil
	})

	// 1. Miss runs the generator
	out, err := produce(ctx)
	require.NoError(t, err)
	assert.Equal(t, "result", out)

	// 2. Hit skips it
	out, err = produce(ctx)
	require.NoError(t, err)
	assert.Equal(t, "result", out)
	assert.Equal(t, 1, calls)

	// 3. Errors are not cached
	failing := cachedProducer(cache, "generation:test:2", func() (string, error) {
		return "", errors.New("nope")
	})
	_, err = failing(ctx)
	assert.Error(t, err)
	_, ok := cache.Get(ctx, "generation:test:2")
	assert.False(t, ok)
}
