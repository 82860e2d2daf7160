package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) *RedisCache {
	t.Helper()
	mr := miniredis.RunT(t)
	return NewRedisCache(mr.Addr(), "", 0)
}

func TestSetAndGetRoundTrip(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	type payload struct {
		Title string `json:"title"`
		Count int    `json:"count"`
	}

	err := c.Set(ctx, "catalog:books", payload{Title: "Dune", Count: 12}, time.Minute)
	require.NoError(t, err)

	var got payload
	found, err := c.Get(ctx, "catalog:books", &got)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Dune", got.Title)
	assert.Equal(t, 12, got.Count)
}

func TestGetMissingKeyIsNotAnError(t *testing.T) {
	c := newTestCache(t)

	var got map[string]string
	found, err := c.Get(context.Background(), "nope", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestDeleteRemovesKeys(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "a", "1", time.Minute))
	require.NoError(t, c.Set(ctx, "b", "2", time.Minute))

	require.NoError(t, c.Delete(ctx, "a", "b"))

	var got string
	found, err := c.Get(ctx, "a", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestDeleteWithNoKeysIsNoop(t *testing.T) {
	c := newTestCache(t)
	assert.NoError(t, c.Delete(context.Background()))
}

func TestPing(t *testing.T) {
	c := newTestCache(t)
	assert.NoError(t, c.Ping(context.Background()))
}
