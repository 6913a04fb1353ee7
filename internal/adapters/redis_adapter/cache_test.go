package redis_a_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redis_a "github.com/Nojorono/meta-service-sub001/internal/adapters/redis_adapter"
	"github.com/Nojorono/meta-service-sub001/test/helpers"
)

func setupCache(t *testing.T) (*miniredis.Miniredis, *redis.Client, func() context.Context) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client, context.Background
}

func TestCache_SetAndGet(t *testing.T) {
	mr, client, ctxFn := setupCache(t)
	_ = mr
	ctx := ctxFn()
	cache := redis_a.NewCache(client, 5*time.Minute, helpers.TestLogger())

	type payload struct {
		ItemCode string  `json:"item_code"`
		Quantity float64 `json:"quantity"`
	}

	err := cache.Set(ctx, "onhand:item:ITM-0001", payload{ItemCode: "ITM-0001", Quantity: 1440})
	require.NoError(t, err)

	var got payload
	err = cache.Get(ctx, "onhand:item:ITM-0001", &got)
	require.NoError(t, err)
	assert.Equal(t, "ITM-0001", got.ItemCode)
	assert.Equal(t, 1440.0, got.Quantity)
}

func TestCache_Get_Miss(t *testing.T) {
	_, client, ctxFn := setupCache(t)
	cache := redis_a.NewCache(client, 5*time.Minute, helpers.TestLogger())

	var dest string
	err := cache.Get(ctxFn(), "missing:key", &dest)
	assert.ErrorIs(t, err, redis_a.ErrCacheMiss)
}

func TestCache_SetWithTTL_Expires(t *testing.T) {
	mr, client, ctxFn := setupCache(t)
	ctx := ctxFn()
	cache := redis_a.NewCache(client, 5*time.Minute, helpers.TestLogger())

	err := cache.SetWithTTL(ctx, "ttl:test", "value", 100*time.Millisecond)
	require.NoError(t, err)

	var dest string
	require.NoError(t, cache.Get(ctx, "ttl:test", &dest))
	assert.Equal(t, "value", dest)

	mr.FastForward(200 * time.Millisecond)

	err = cache.Get(ctx, "ttl:test", &dest)
	assert.ErrorIs(t, err, redis_a.ErrCacheMiss)
}

func TestCache_DeletePattern(t *testing.T) {
	_, client, ctxFn := setupCache(t)
	ctx := ctxFn()
	cache := redis_a.NewCache(client, 5*time.Minute, helpers.TestLogger())

	require.NoError(t, cache.Set(ctx, "onhand:item:A", "1"))
	require.NoError(t, cache.Set(ctx, "onhand:item:B", "2"))
	require.NoError(t, cache.Set(ctx, "customer:code:C", "3"))

	require.NoError(t, cache.DeletePattern(ctx, "onhand:*"))

	var dest string
	assert.ErrorIs(t, cache.Get(ctx, "onhand:item:A", &dest), redis_a.ErrCacheMiss)
	assert.ErrorIs(t, cache.Get(ctx, "onhand:item:B", &dest), redis_a.ErrCacheMiss)

	// Other namespaces survive
	require.NoError(t, cache.Get(ctx, "customer:code:C", &dest))
	assert.Equal(t, "3", dest)
}

func TestCache_Exists(t *testing.T) {
	_, client, ctxFn := setupCache(t)
	ctx := ctxFn()
	cache := redis_a.NewCache(client, 5*time.Minute, helpers.TestLogger())

	require.NoError(t, cache.Set(ctx, "exists:key", "v"))

	ok, err := cache.Exists(ctx, "exists:key")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = cache.Exists(ctx, "missing:key")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCache_GetOrSet_MissFetchesAndStores(t *testing.T) {
	_, client, ctxFn := setupCache(t)
	ctx := ctxFn()
	cache := redis_a.NewCache(client, 5*time.Minute, helpers.TestLogger())

	fetchCalls := 0
	fetch := func() (interface{}, error) {
		fetchCalls++
		return []string{"SUB001", "SUB002"}, nil
	}

	var dest []string
	err := cache.GetOrSet(ctx, "onhand:subs:all", &dest, fetch, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, []string{"SUB001", "SUB002"}, dest)
	assert.Equal(t, 1, fetchCalls)

	// Second read is a hit, fetch is not called again
	var dest2 []string
	err = cache.GetOrSet(ctx, "onhand:subs:all", &dest2, fetch, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, dest, dest2)
	assert.Equal(t, 1, fetchCalls)
}

func TestCache_GetOrSet_FetchErrorPropagates(t *testing.T) {
	_, client, ctxFn := setupCache(t)
	cache := redis_a.NewCache(client, 5*time.Minute, helpers.TestLogger())

	fetchErr := errors.New("view unavailable")
	var dest []string
	err := cache.GetOrSet(ctxFn(), "onhand:bad", &dest, func() (interface{}, error) {
		return nil, fetchErr
	}, time.Minute)
	assert.ErrorIs(t, err, fetchErr)
}

func TestCache_GetOrSet_RedisDownFallsBackToFetch(t *testing.T) {
	mr, client, ctxFn := setupCache(t)
	ctx := ctxFn()
	cache := redis_a.NewCache(client, 5*time.Minute, helpers.TestLogger())

	mr.Close()

	fetchCalls := 0
	var dest string
	err := cache.GetOrSet(ctx, "onhand:down", &dest, func() (interface{}, error) {
		fetchCalls++
		return "from-db", nil
	}, time.Minute)

	// Cache errors degrade to a direct fetch, never a request failure
	require.NoError(t, err)
	assert.Equal(t, "from-db", dest)
	assert.Equal(t, 1, fetchCalls)
}

func TestCache_Ping(t *testing.T) {
	mr, client, ctxFn := setupCache(t)
	ctx := ctxFn()
	cache := redis_a.NewCache(client, 5*time.Minute, helpers.TestLogger())

	require.NoError(t, cache.Ping(ctx))

	mr.Close()
	assert.Error(t, cache.Ping(ctx))
}
