package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

// LoadFile reads a JSON array of entries as written by the aggregation
// service.
func LoadFile(path string) ([]Entry, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path comes from trusted config
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decoding catalog %s: %w", path, err)
	}
	return entries, nil
}

// Store holds the current catalog snapshot. Snapshots are replaced whole and
// never modified, so readers may keep using an old snapshot after a reload.
type Store struct {
	mu       sync.RWMutex
	entries  []Entry
	loadedAt time.Time
}

// NewStore creates a store holding entries.
func NewStore(entries []Entry) *Store {
	s := &Store{}
	s.Replace(entries)
	return s
}

// Replace swaps in a new snapshot.
func (s *Store) Replace(entries []Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = entries
	s.loadedAt = time.Now().UTC()
}

// Snapshot returns the current entries. Callers must not modify them.
func (s *Store) Snapshot() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries
}

// LoadedAt returns when the current snapshot was installed.
func (s *Store) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}

// Reload reads path and replaces the snapshot. On error the previous
// snapshot is kept.
func (s *Store) Reload(path string) (int, error) {
	entries, err := LoadFile(path)
	if err != nil {
		return 0, err
	}
	s.Replace(entries)
	return len(entries), nil
}
