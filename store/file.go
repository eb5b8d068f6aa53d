package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/viant/afs"
	"github.com/viant/sts/internal/collection"
)

// FileStore persists records to a JSON snapshot at an afs URL (file path,
// file://, mem://, ...). It is a lightweight way to survive process restarts in
// CLI or single-host services.
type FileStore struct {
	mu      sync.Mutex
	URL     string
	fs      afs.Service
	records *collection.SyncMap[string, json.RawMessage]
	loaded  bool
}

type fileSnapshot struct {
	Sessions map[string]json.RawMessage `json:"sessions"`
}

// NewFileStore creates a Store that persists records at URL.
func NewFileStore(URL string) *FileStore {
	return &FileStore{
		URL:     URL,
		fs:      afs.New(),
		records: collection.NewSyncMap[string, json.RawMessage](),
	}
}

func (f *FileStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := f.ensureLoaded(ctx); err != nil {
		return nil, false, err
	}
	value, ok := f.records.Get(key)
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), value...), true, nil
}

func (f *FileStore) Set(ctx context.Context, key string, value []byte) error {
	if !json.Valid(value) {
		return fmt.Errorf("invalid session record %v: not a JSON document", key)
	}
	if err := f.ensureLoaded(ctx); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records.Put(key, append(json.RawMessage(nil), value...))
	return f.save(ctx)
}

func (f *FileStore) Delete(ctx context.Context, key string) error {
	if err := f.ensureLoaded(ctx); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.records.Delete(key) {
		return nil
	}
	return f.save(ctx)
}

func (f *FileStore) Keys(ctx context.Context) ([]string, error) {
	if err := f.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return collection.SortedKeys(f.records), nil
}

// ---- persistence ----

func (f *FileStore) ensureLoaded(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loaded {
		return nil
	}
	if err := f.load(ctx); err != nil {
		return err
	}
	f.loaded = true
	return nil
}

func (f *FileStore) save(ctx context.Context) error {
	snap := fileSnapshot{Sessions: map[string]json.RawMessage{}}
	f.records.Range(func(key string, value json.RawMessage) bool {
		snap.Sessions[key] = value
		return true
	})
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	tmp := f.URL + ".tmp"
	if err = f.fs.Upload(ctx, tmp, 0o600, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write session store %v: %w", tmp, err)
	}
	if err = f.fs.Move(ctx, tmp, f.URL); err != nil {
		return fmt.Errorf("failed to replace session store %v: %w", f.URL, err)
	}
	return nil
}

func (f *FileStore) load(ctx context.Context) error {
	exists, err := f.fs.Exists(ctx, f.URL)
	if err != nil {
		return err
	}
	if !exists {
		return nil
	}
	data, err := f.fs.DownloadWithURL(ctx, f.URL)
	if err != nil {
		return fmt.Errorf("failed to read session store %v: %w", f.URL, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	var snap fileSnapshot
	if err = json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("failed to parse session store %v: %w", f.URL, err)
	}
	for key, value := range snap.Sessions {
		f.records.Put(key, value)
	}
	return nil
}
