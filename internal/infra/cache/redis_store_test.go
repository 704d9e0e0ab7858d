package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*redisStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return &redisStore{client: client}, mr
}

func TestRedisStore_SetGetDelete(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "dashboard:overview:farm-1", `{"missing":2}`, time.Minute))

	value, found, err := store.Get(ctx, "dashboard:overview:farm-1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"missing":2}`, value)

	require.NoError(t, store.Delete(ctx, "dashboard:overview:farm-1"))

	_, found, err = store.Get(ctx, "dashboard:overview:farm-1")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisStore_GetMiss(t *testing.T) {
	store, _ := newTestStore(t)

	_, found, err := store.Get(context.Background(), "no-such-key")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisStore_DeleteMissingKeysIsNoError(t *testing.T) {
	store, _ := newTestStore(t)

	assert.NoError(t, store.Delete(context.Background(), "a", "b", "c"))
}

func TestRedisStore_DeleteNoKeys(t *testing.T) {
	store, _ := newTestStore(t)

	assert.NoError(t, store.Delete(context.Background()))
}

func TestRedisStore_ErrorWhenServerDown(t *testing.T) {
	store, mr := newTestStore(t)
	mr.Close()

	err := store.Set(context.Background(), "k", "v", time.Minute)
	assert.Error(t, err)
}
