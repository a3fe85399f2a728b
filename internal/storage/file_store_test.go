package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"comanda_manager/internal/apperrors"
)

type record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	saved := []record{{ID: "1", Name: "Mesa 1"}, {ID: "2", Name: "Mesa 2"}}
	require.NoError(t, store.Save(CollectionOpenOrders, saved))

	var loaded []record
	require.NoError(t, store.Load(CollectionOpenOrders, &loaded))
	assert.Equal(t, saved, loaded)
}

func TestFileStoreMissingCollectionIsEmpty(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	var loaded []record
	require.NoError(t, store.Load(CollectionOrderHistory, &loaded))
	assert.Empty(t, loaded)
}

func TestFileStoreCorruptCollectionFailsClosed(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, CollectionProducts+".json"), []byte("{broken"), 0o644))

	var loaded []record
	err = store.Load(CollectionProducts, &loaded)
	assert.True(t, apperrors.IsCorruptState(err))
	assert.Empty(t, loaded)
}

func TestFileStoreSaveAll(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.SaveAll(map[string]interface{}{
		CollectionOpenOrders:   []record{{ID: "1", Name: "Mesa 1"}},
		CollectionOrderHistory: []record{},
	}))

	var open, history []record
	require.NoError(t, store.Load(CollectionOpenOrders, &open))
	require.NoError(t, store.Load(CollectionOrderHistory, &history))
	assert.Len(t, open, 1)
	assert.Empty(t, history)
}

func TestMemoryStoreMatchesFileStoreBehavior(t *testing.T) {
	store := NewMemoryStore()

	var loaded []record
	require.NoError(t, store.Load(CollectionOpenOrders, &loaded))
	assert.Empty(t, loaded)

	require.NoError(t, store.Save(CollectionOpenOrders, []record{{ID: "1", Name: "Mesa 1"}}))
	require.NoError(t, store.Load(CollectionOpenOrders, &loaded))
	assert.Len(t, loaded, 1)

	store.Seed(CollectionOpenOrders, []byte("not json"))
	var corrupt []record
	err := store.Load(CollectionOpenOrders, &corrupt)
	assert.True(t, apperrors.IsCorruptState(err))
	assert.Empty(t, corrupt)
}
