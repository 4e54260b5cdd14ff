package redis_test

import (
	"log/slog"
	"testing"
	"time"

	redisadapter "parcels/internal/adapters/out/redis"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*redisadapter.CacheStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return redisadapter.NewCacheStore(client, slog.New(slog.DiscardHandler)), mr
}

func TestCacheStore_SetAndGet(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := t.Context()

	store.Set(ctx, "currency:usd_to_rub", "92.5", time.Hour)

	value, ok := store.Get(ctx, "currency:usd_to_rub")
	require.True(t, ok)
	assert.Equal(t, "92.5", value)
}

func TestCacheStore_Get_MissingKey_ReportsMiss(t *testing.T) {
	store, _ := newTestStore(t)

	_, ok := store.Get(t.Context(), "currency:usd_to_rub")
	assert.False(t, ok)
}

func TestCacheStore_Get_ExpiredKey_ReportsMiss(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := t.Context()

	store.Set(ctx, "currency:usd_to_rub", "92.5", time.Second)
	mr.FastForward(2 * time.Second)

	_, ok := store.Get(ctx, "currency:usd_to_rub")
	assert.False(t, ok)
}

func TestCacheStore_Delete_RemovesKey(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := t.Context()

	store.Set(ctx, "currency:usd_to_rub", "92.5", time.Hour)
	store.Delete(ctx, "currency:usd_to_rub")

	_, ok := store.Get(ctx, "currency:usd_to_rub")
	assert.False(t, ok)
}

func TestCacheStore_Get_ServerDown_ReportsMiss(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := t.Context()

	store.Set(ctx, "currency:usd_to_rub", "92.5", time.Hour)
	mr.Close()

	_, ok := store.Get(ctx, "currency:usd_to_rub")
	assert.False(t, ok)
}
