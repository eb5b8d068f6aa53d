package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStores(t *testing.T) map[string]Store {
	t.Helper()
	dir := t.TempDir()
	sqliteStore, err := NewSQLiteStore(filepath.Join(dir, "sessions.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqliteStore.Close() })
	return map[string]Store{
		"memory": NewMemoryStore(),
		"file":   NewFileStore(filepath.Join(dir, "sessions.json")),
		"sqlite": sqliteStore,
	}
}

func TestStore_Lifecycle(t *testing.T) {
	ctx := context.Background()
	for name, aStore := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			_, ok, err := aStore.Get(ctx, "missing")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, aStore.Set(ctx, "b", []byte(`{"uid":"2"}`)))
			require.NoError(t, aStore.Set(ctx, "a", []byte(`{"uid":"1"}`)))
			require.NoError(t, aStore.Set(ctx, "a", []byte(`{"uid":"3"}`)))

			value, ok, err := aStore.Get(ctx, "a")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.JSONEq(t, `{"uid":"3"}`, string(value))

			keys, err := aStore.Keys(ctx)
			require.NoError(t, err)
			assert.Equal(t, []string{"a", "b"}, keys)

			require.NoError(t, aStore.Delete(ctx, "a"))
			require.NoError(t, aStore.Delete(ctx, "a"))
			_, ok, err = aStore.Get(ctx, "a")
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestFileStore_SurvivesRestart(t *testing.T) {
	ctx := context.Background()
	URL := filepath.Join(t.TempDir(), "nested", "sessions.json")
	first := NewFileStore(URL)
	require.NoError(t, first.Set(ctx, "sts:authUser:key:app", []byte(`{"uid":"u1"}`)))

	second := NewFileStore(URL)
	value, ok, err := second.Get(ctx, "sts:authUser:key:app")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"uid":"u1"}`, string(value))

	assert.Error(t, second.Set(ctx, "bad", []byte("not json")))
}

func TestFileStore_ReplacesSnapshot(t *testing.T) {
	ctx := context.Background()
	URL := filepath.Join(t.TempDir(), "sessions.json")
	aStore := NewFileStore(URL)
	require.NoError(t, aStore.Set(ctx, "a", []byte(`{"uid":"1"}`)))
	require.NoError(t, aStore.Set(ctx, "b", []byte(`{"uid":"2"}`)))

	_, err := os.Stat(URL + ".tmp")
	assert.True(t, os.IsNotExist(err))
	data, err := os.ReadFile(URL)
	require.NoError(t, err)
	snapshot := fileSnapshot{}
	require.NoError(t, json.Unmarshal(data, &snapshot))
	assert.Len(t, snapshot.Sessions, 2)
}

func TestSQLiteStore_SurvivesRestart(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "sessions.db")
	first, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "k", []byte(`{"uid":"u1"}`)))
	require.NoError(t, first.Close())

	second, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	defer second.Close()
	value, ok, err := second.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"uid":"u1"}`, string(value))
}

func TestNew(t *testing.T) {
	dir := t.TempDir()
	aStore, err := New("")
	require.NoError(t, err)
	assert.IsType(t, &memoryStore{}, aStore)

	aStore, err = New(filepath.Join(dir, "sessions.json"))
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, aStore)

	aStore, err = New(filepath.Join(dir, "sessions.db"))
	require.NoError(t, err)
	assert.IsType(t, &SQLiteStore{}, aStore)
	_ = aStore.(*SQLiteStore).Close()
}
