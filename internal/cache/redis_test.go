package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewFromClient(client), mr
}

func TestCacheSetGet(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "key", "value", time.Minute))

	got, err := c.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, "value", got)
}

func TestCacheMiss(t *testing.T) {
	c, _ := newTestCache(t)

	_, err := c.Get(context.Background(), "absent")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestCacheDelete(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "key", "value", time.Minute))
	require.NoError(t, c.Delete(ctx, "key"))

	_, err := c.Get(ctx, "key")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestCacheTTL(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "key", "value", time.Minute))
	mr.FastForward(2 * time.Minute)

	_, err := c.Get(ctx, "key")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestNewRedisUnavailable(t *testing.T) {
	// Недоступный адрес: приложение должно работать без кэша
	c := NewRedis("127.0.0.1:1", "", 0)
	assert.Nil(t, c)
}
