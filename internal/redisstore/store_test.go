package redisstore_test

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/rpggio/shielddash/internal/redisstore"
	"github.com/rpggio/shielddash/internal/repository"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *redisstore.Store {
	t.Helper()

	addr := os.Getenv("SHIELDDASH_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("SHIELDDASH_TEST_REDIS_ADDR not set")
	}

	store := redisstore.New(addr, "", 0)
	t.Cleanup(func() {
		store.Close()
	})
	require.NoError(t, store.Ping(context.Background()))
	return store
}

func TestStore_SetGetDelete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	key := "shielddash-test:" + uuid.NewString()

	_, err := store.Get(ctx, key)
	require.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, store.Set(ctx, key, []byte(`{"read":true}`)))
	value, err := store.Get(ctx, key)
	require.NoError(t, err)
	require.Equal(t, `{"read":true}`, string(value))

	require.NoError(t, store.Delete(ctx, key))
	_, err = store.Get(ctx, key)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestStore_PingUnreachable(t *testing.T) {
	store := redisstore.New("127.0.0.1:1", "", 0)
	defer store.Close()

	err := store.Ping(context.Background())
	require.ErrorIs(t, err, repository.ErrUnavailable)
}
