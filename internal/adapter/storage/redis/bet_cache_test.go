package redis_test

import (
	"context"
	"testing"
	"time"

	"wager-arena/internal/adapter/storage/redis"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBetCache_SetAndGet(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()

	cache := redis.NewBetCache(client)
	ctx := context.Background()
	key := "player-id:MINES:REF-001"
	payload := []byte(`{"state":"PLAYING","stake":100}`)

	err := cache.Set(ctx, key, payload, 24*time.Hour)
	require.NoError(t, err)

	got, err := cache.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestBetCache_Get_Missing(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()

	cache := redis.NewBetCache(client)

	got, err := cache.Get(context.Background(), "nonexistent")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestBetCache_TTLExpiry(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()

	cache := redis.NewBetCache(client)
	ctx := context.Background()
	key := "player-id:SLOTS:REF-002"

	err := cache.Set(ctx, key, []byte(`{}`), time.Hour)
	require.NoError(t, err)

	mr.FastForward(time.Hour + time.Second)

	got, err := cache.Get(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, got)
}
