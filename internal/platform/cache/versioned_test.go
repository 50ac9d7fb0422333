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

func newTestCache(t *testing.T) *Versioned {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewVersioned(client, time.Minute)
}

func TestFetchJSONCachesLoaderResult(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	key, err := c.BuildKey(ctx, "dashboard", "overview", "10/03/2025")
	require.NoError(t, err)

	calls := 0
	loader := func(context.Context) (interface{}, error) {
		calls++
		return map[string]float64{"total": 1250}, nil
	}

	var first map[string]float64
	require.NoError(t, c.FetchJSON(ctx, key, &first, loader))
	var second map[string]float64
	require.NoError(t, c.FetchJSON(ctx, key, &second, loader))

	assert.Equal(t, 1, calls)
	assert.Equal(t, first, second)
}

func TestBumpChangesKeys(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	before, err := c.BuildKey(ctx, "dashboard", "overview")
	require.NoError(t, err)

	require.NoError(t, c.Bump(ctx))

	after, err := c.BuildKey(ctx, "dashboard", "overview")
	require.NoError(t, err)
	assert.NotEqual(t, before, after)
}

func TestNilCacheDegradesToLoader(t *testing.T) {
	var c *Versioned
	ctx := context.Background()

	calls := 0
	loader := func(context.Context) (interface{}, error) {
		calls++
		return 42, nil
	}

	var out int
	require.NoError(t, c.FetchJSON(ctx, "any", &out, loader))
	require.NoError(t, c.FetchJSON(ctx, "any", &out, loader))
	assert.Equal(t, 2, calls)
	assert.Equal(t, 42, out)
	assert.NoError(t, c.Bump(ctx))
}
