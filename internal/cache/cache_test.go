package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c := New(mr.Addr(), "", 0)
	t.Cleanup(func() { c.Close() })
	require.NoError(t, c.Ping(context.Background()))
	return c, mr
}

func TestNilClientIsAlwaysMiss(t *testing.T) {
	var c *Client
	ctx := context.Background()

	data, err := c.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Nil(t, data)
	assert.NoError(t, c.Ping(ctx))
	assert.NoError(t, c.Close())

	v, err := c.Version(ctx, "k:version")
	assert.NoError(t, err)
	assert.Empty(t, v)

	stored, err := c.SetJSONIfVersion(ctx, "k", "k:version", "", map[string]string{"a": "b"}, time.Minute)
	assert.NoError(t, err)
	assert.False(t, stored)

	var dst map[string]string
	assert.False(t, c.GetJSON(ctx, "k", &dst))
	assert.NoError(t, c.Invalidate(ctx, "k", "k:version"))
}

func TestSetIfVersion(t *testing.T) {
	c, mr := newTestClient(t)
	ctx := context.Background()

	v, err := c.Version(ctx, "user:1:version")
	require.NoError(t, err)
	assert.Empty(t, v)

	stored, err := c.SetJSONIfVersion(ctx, "user:1", "user:1:version", v, map[string]string{"Email": "a@b.c"}, time.Minute)
	require.NoError(t, err)
	assert.True(t, stored)
	assert.Equal(t, time.Minute, mr.TTL("user:1"))

	var got map[string]string
	require.True(t, c.GetJSON(ctx, "user:1", &got))
	assert.Equal(t, "a@b.c", got["Email"])
}

func TestInvalidateBlocksOlderReaders(t *testing.T) {
	c, mr := newTestClient(t)
	ctx := context.Background()

	seen, err := c.Version(ctx, "user:1:version")
	require.NoError(t, err)

	require.NoError(t, c.Invalidate(ctx, "user:1", "user:1:version"))
	assert.Equal(t, VersionTTL, mr.TTL("user:1:version"))

	stored, err := c.SetIfVersion(ctx, "user:1", "user:1:version", seen, []byte(`{}`), time.Minute)
	require.NoError(t, err)
	assert.False(t, stored)
	assert.False(t, mr.Exists("user:1"))

	current, err := c.Version(ctx, "user:1:version")
	require.NoError(t, err)
	assert.Equal(t, "1", current)
	stored, err = c.SetIfVersion(ctx, "user:1", "user:1:version", current, []byte(`{}`), time.Minute)
	require.NoError(t, err)
	assert.True(t, stored)
}

func TestInvalidateDeletesEntry(t *testing.T) {
	c, mr := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, mr.Set("user:2", `{"UserID":2}`))
	require.NoError(t, c.Invalidate(ctx, "user:2", "user:2:version"))
	assert.False(t, mr.Exists("user:2"))
}

func TestInvalidateReportsErrors(t *testing.T) {
	c, mr := newTestClient(t)
	mr.SetError("ERR store unavailable")
	defer mr.SetError("")

	assert.Error(t, c.Invalidate(context.Background(), "user:1", "user:1:version"))
}

func TestUnreachableRedisFailsSafe(t *testing.T) {
	c := New("127.0.0.1:1", "", 0)
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	assert.Error(t, c.Ping(ctx))

	data, err := c.Get(ctx, "user:1")
	assert.NoError(t, err)
	assert.Nil(t, data)

	_, err = c.Version(ctx, "user:1:version")
	assert.Error(t, err)
	assert.Error(t, c.Invalidate(ctx, "user:1", "user:1:version"))
}

func TestSetJSONIfVersionRejectsUnencodable(t *testing.T) {
	var c *Client
	_, err := c.SetJSONIfVersion(context.Background(), "k", "k:version", "", make(chan int), time.Minute)
	assert.Error(t, err)
}
