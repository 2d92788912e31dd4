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

type snapshot struct {
	Title string `json:"title"`
	Count int    `json:"count"`
}

func newTestCache(t *testing.T, ttl time.Duration) (*PageCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return New(client, ttl), mr
}

func TestKey(t *testing.T) {
	assert.Equal(t, "feed:index", Key("feed:index"))
	assert.Equal(t, "feed:index:page:2", Key("feed:index", "page", "2"))
	assert.Equal(t, "feed:group:cats:page:1", Key("feed:group", "cats", "page", "1"))
}

func TestPageCacheHitAndMiss(t *testing.T) {
	c, _ := newTestCache(t, 20*time.Second)
	ctx := context.Background()

	var out snapshot
	require.False(t, c.Get(ctx, "feed:index:page:1", &out))

	c.Set(ctx, "feed:index:page:1", snapshot{Title: "index", Count: 14})

	require.True(t, c.Get(ctx, "feed:index:page:1", &out))
	assert.Equal(t, "index", out.Title)
	assert.Equal(t, 14, out.Count)
}

func TestPageCacheExpiry(t *testing.T) {
	c, mr := newTestCache(t, 20*time.Second)
	ctx := context.Background()

	c.Set(ctx, "feed:index:page:1", snapshot{Title: "index"})

	mr.FastForward(21 * time.Second)

	var out snapshot
	assert.False(t, c.Get(ctx, "feed:index:page:1", &out))
}

func TestPageCacheCorruptEntry(t *testing.T) {
	c, mr := newTestCache(t, 20*time.Second)
	require.NoError(t, mr.Set("feed:index:page:1", "{not json"))

	var out snapshot
	assert.False(t, c.Get(context.Background(), "feed:index:page:1", &out))
}

func TestNilPageCacheIsDisabled(t *testing.T) {
	var c *PageCache
	ctx := context.Background()

	// Neither call may panic.
	c.Set(ctx, "k", snapshot{})
	var out snapshot
	assert.False(t, c.Get(ctx, "k", &out))

	assert.Nil(t, New(nil, time.Second))
}
