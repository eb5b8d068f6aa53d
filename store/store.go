package store

import (
	"context"

	"github.com/viant/sts/internal/collection"
)

// Store is a pluggable persistence layer for session records.
// Values are JSON documents keyed by session key.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
}

type memoryStore struct {
	records *collection.SyncMap[string, []byte]
}

func (m *memoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	value, ok := m.records.Get(key)
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), value...), true, nil
}

func (m *memoryStore) Set(_ context.Context, key string, value []byte) error {
	m.records.Put(key, append([]byte(nil), value...))
	return nil
}

func (m *memoryStore) Delete(_ context.Context, key string) error {
	m.records.Delete(key)
	return nil
}

func (m *memoryStore) Keys(_ context.Context) ([]string, error) {
	return collection.SortedKeys(m.records), nil
}

// NewMemoryStore creates an in-memory store.
func NewMemoryStore() Store {
	return &memoryStore{records: collection.NewSyncMap[string, []byte]()}
}
