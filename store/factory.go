package store

import (
	"path"
	"strings"
)

// New creates a store for URL: empty for memory, *.db or *.sqlite for SQLite,
// any other afs URL for a JSON snapshot file.
func New(URL string) (Store, error) {
	if URL == "" {
		return NewMemoryStore(), nil
	}
	switch strings.ToLower(path.Ext(URL)) {
	case ".db", ".sqlite", ".sqlite3":
		return NewSQLiteStore(strings.TrimPrefix(URL, "file://"))
	}
	return NewFileStore(URL), nil
}
