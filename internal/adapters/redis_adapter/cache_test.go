package redis_a_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redis_a "github.com/maraval/boutique-be/internal/adapters/redis_adapter"
	"github.com/maraval/boutique-be/internal/core/ports"
	"github.com/maraval/boutique-be/test/helpers"
)

func newTestCache(t *testing.T) (ports.CacheRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return redis_a.NewCache(client, 5*time.Minute, helpers.TestLogger()), mr
}

func TestCache_SetAndGet(t *testing.T) {
	ctx := context.Background()
	cache, _ := newTestCache(t)

	tests := []struct {
		name  string
		key   string
		value interface{}
	}{
		{
			name:  "stores_and_retrieves_string",
			key:   "test:string",
			value: "test value",
		},
		{
			name: "stores_and_retrieves_struct",
			key:  "test:struct",
			value: struct {
				ID   string `json:"id"`
				Name string `json:"name"`
			}{ID: "123", Name: "Robe longue"},
		},
		{
			name:  "stores_and_retrieves_slice",
			key:   "test:slice",
			value: []string{"36", "38", "40"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cache.Set(ctx, tt.key, tt.value)
			require.NoError(t, err)

			exists, err := cache.Exists(ctx, tt.key)
			require.NoError(t, err)
			assert.True(t, exists)
		})
	}
}

func TestCache_GetMiss(t *testing.T) {
	ctx := context.Background()
	cache, _ := newTestCache(t)

	var dest string
	err := cache.Get(ctx, "missing:key", &dest)
	assert.ErrorIs(t, err, redis_a.ErrCacheMiss)
}

func TestCache_GetOrSet(t *testing.T) {
	ctx := context.Background()
	cache, _ := newTestCache(t)

	calls := 0
	fetch := func() (interface{}, error) {
		calls++
		return map[string]int{"units": 42}, nil
	}

	var first map[string]int
	err := cache.GetOrSet(ctx, "dash:summary", &first, fetch, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 42, first["units"])
	assert.Equal(t, 1, calls)

	// second read is served from cache
	var second map[string]int
	err = cache.GetOrSet(ctx, "dash:summary", &second, fetch, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 42, second["units"])
	assert.Equal(t, 1, calls)
}

func TestCache_DeletePattern(t *testing.T) {
	ctx := context.Background()
	cache, _ := newTestCache(t)

	require.NoError(t, cache.Set(ctx, "report:2026-01", "a"))
	require.NoError(t, cache.Set(ctx, "report:2026-02", "b"))
	require.NoError(t, cache.Set(ctx, "dash:summary", "c"))

	require.NoError(t, cache.DeletePattern(ctx, "report:*"))

	exists, err := cache.Exists(ctx, "report:2026-01")
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = cache.Exists(ctx, "dash:summary")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestCache_TTLExpiry(t *testing.T) {
	ctx := context.Background()
	cache, mr := newTestCache(t)

	require.NoError(t, cache.SetWithTTL(ctx, "ttl:key", "value", time.Minute))

	ttl, err := cache.TTL(ctx, "ttl:key")
	require.NoError(t, err)
	assert.Equal(t, time.Minute, ttl)

	mr.FastForward(2 * time.Minute)

	var dest string
	err = cache.Get(ctx, "ttl:key", &dest)
	assert.ErrorIs(t, err, redis_a.ErrCacheMiss)
}

func TestCache_SetNX(t *testing.T) {
	ctx := context.Background()
	cache, _ := newTestCache(t)

	ok, err := cache.SetNX(ctx, "lock:register-1", "held", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = cache.SetNX(ctx, "lock:register-1", "held", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBuildKey(t *testing.T) {
	key := redis_a.BuildKey(redis_a.PrefixReport, "2026-08", "xlsx")
	assert.Equal(t, "report:2026-08:xlsx", key)
}
