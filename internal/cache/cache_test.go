package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilClientIsSafe(t *testing.T) {
	var c *Client
	ctx := context.Background()

	assert.Nil(t, c.Get(ctx, MenuKey))
	c.Set(ctx, MenuKey, []byte("x"))
	c.Delete(ctx, MenuKey)
	assert.NoError(t, c.Ping(ctx))
	assert.NoError(t, c.Close())
}

func TestRememberWithoutRedisAlwaysLoads(t *testing.T) {
	var c *Client
	calls := 0
	load := func(context.Context) ([]string, error) {
		calls++
		return []string{"pizza"}, nil
	}

	for i := 0; i < 2; i++ {
		got, err := Remember(context.Background(), c, MenuKey, load)
		require.NoError(t, err)
		assert.Equal(t, []string{"pizza"}, got)
	}
	assert.Equal(t, 2, calls)
}

func TestRememberPropagatesLoadError(t *testing.T) {
	boom := errors.New("store down")
	_, err := Remember(context.Background(), (*Client)(nil), ReviewsKey, func(context.Context) ([]int, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestUnreachableRedisFallsBackToLoad(t *testing.T) {
	// nothing listens on port 1, every redis call fails fast
	c := New("127.0.0.1:1", "", 0, time.Minute, nil)
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	got, err := Remember(ctx, c, MenuKey, func(context.Context) (int, error) { return 7, nil })
	require.NoError(t, err)
	assert.Equal(t, 7, got)
	assert.Error(t, c.Ping(ctx))
}
