package cache_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	infralogger "github.com/growlocal360/maxx-energy/infrastructure/logger"
	"github.com/growlocal360/maxx-energy/internal/cache"
)

func newCache(t *testing.T) (*cache.PageCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return cache.New(client, time.Minute, infralogger.NewNop()), mr
}

func TestPageCache_GetSet(t *testing.T) {
	t.Parallel()

	c, mr := newCache(t)
	ctx := context.Background()

	_, ok := c.Get(ctx, "markets", "list")
	assert.False(t, ok)

	c.Set(ctx, "markets", "list", []byte(`[{"name":"Upstream"}]`))

	data, ok := c.Get(ctx, "markets", "list")
	require.True(t, ok)
	assert.JSONEq(t, `[{"name":"Upstream"}]`, string(data))
	assert.True(t, mr.Exists("maxx:public:markets:list"))
	assert.Equal(t, time.Minute, mr.TTL("maxx:public:markets:list"))

	mr.FastForward(2 * time.Minute)
	_, ok = c.Get(ctx, "markets", "list")
	assert.False(t, ok)
}

func TestPageCache_Invalidate(t *testing.T) {
	t.Parallel()

	c, mr := newCache(t)
	ctx := context.Background()

	for i := range 250 {
		c.Set(ctx, "news", fmt.Sprintf("detail:%d", i), []byte("{}"))
	}
	c.Set(ctx, "products", "list", []byte("[]"))
	c.Set(ctx, "projects", "list", []byte("[]"))

	require.NoError(t, c.Invalidate(ctx, "news", "products"))

	keys := mr.Keys()
	assert.Equal(t, []string{"maxx:public:projects:list"}, keys)
}

func TestPageCache_Nil(t *testing.T) {
	t.Parallel()

	c := cache.New(nil, time.Minute, nil)
	assert.Nil(t, c)

	ctx := context.Background()
	c.Set(ctx, "news", "list", []byte("[]"))
	_, ok := c.Get(ctx, "news", "list")
	assert.False(t, ok)
	assert.NoError(t, c.Invalidate(ctx, "news"))
}

func TestPageCache_RedisDown(t *testing.T) {
	t.Parallel()

	c, mr := newCache(t)
	mr.Close()

	ctx := context.Background()
	c.Set(ctx, "news", "list", []byte("[]"))
	_, ok := c.Get(ctx, "news", "list")
	assert.False(t, ok)
	assert.Error(t, c.Invalidate(ctx, "news"))
}
