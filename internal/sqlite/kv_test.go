package sqlite

import (
	"context"
	"testing"

	"github.com/rpggio/shielddash/internal/repository"
	"github.com/stretchr/testify/require"
)

func TestKeyValueStore_SetGet(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	store := NewKeyValueStore(db)

	require.NoError(t, store.Set(ctx, "projects", []byte(`[{"id":"project-1"}]`)))

	value, err := store.Get(ctx, "projects")
	require.NoError(t, err)
	require.JSONEq(t, `[{"id":"project-1"}]`, string(value))
}

func TestKeyValueStore_Overwrite(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	store := NewKeyValueStore(db)

	require.NoError(t, store.Set(ctx, "user", []byte(`{"name":"a"}`)))
	require.NoError(t, store.Set(ctx, "user", []byte(`{"name":"b"}`)))

	value, err := store.Get(ctx, "user")
	require.NoError(t, err)
	require.Equal(t, `{"name":"b"}`, string(value))

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM kv_store`).Scan(&count))
	require.Equal(t, 1, count)
}

func TestKeyValueStore_MissingAndDelete(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	store := NewKeyValueStore(db)

	_, err := store.Get(ctx, "missing")
	require.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, store.Set(ctx, "documents", []byte(`[]`)))
	require.NoError(t, store.Delete(ctx, "documents"))
	require.NoError(t, store.Delete(ctx, "documents"))

	_, err = store.Get(ctx, "documents")
	require.ErrorIs(t, err, repository.ErrNotFound)
}
