// Package settings persists the user's display preferences: the catalog
// filter/sort selection and the last provider chosen for URL lookups.
package settings

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sydlexius/crossref/internal/catalog"
	"github.com/sydlexius/crossref/internal/provider"
)

const (
	keyFilters  = "display.filters"
	keyProvider = "display.provider"
)

// Service reads and writes preferences in the settings key-value table.
type Service struct {
	db *sql.DB
}

// NewService creates a settings service backed by db. The settings table
// must already exist (see database.Migrate).
func NewService(db *sql.DB) *Service {
	return &Service{db: db}
}

// GetFilterData returns the stored filter selection. When nothing is stored
// the catalog defaults are returned with ok set to false.
func (s *Service) GetFilterData(ctx context.Context) (catalog.FilterData, bool, error) {
	raw, ok, err := s.get(ctx, keyFilters)
	if err != nil || !ok {
		return catalog.DefaultOptions(), false, err
	}
	var fd catalog.FilterData
	if err := json.Unmarshal([]byte(raw), &fd); err != nil {
		return catalog.DefaultOptions(), false, fmt.Errorf("decoding %s: %w", keyFilters, err)
	}
	return fd.Normalize(), true, nil
}

// SetFilterData stores fd after normalizing it.
func (s *Service) SetFilterData(ctx context.Context, fd catalog.FilterData) error {
	data, err := json.Marshal(fd.Normalize())
	if err != nil {
		return fmt.Errorf("encoding %s: %w", keyFilters, err)
	}
	return s.set(ctx, keyFilters, string(data))
}

// GetLastProvider returns the last provider the user picked, or "" when none
// is stored.
func (s *Service) GetLastProvider(ctx context.Context) (provider.ProviderName, error) {
	raw, ok, err := s.get(ctx, keyProvider)
	if err != nil || !ok {
		return "", err
	}
	name := provider.ProviderName(raw)
	if !name.Valid() {
		return "", nil
	}
	return name, nil
}

// SetLastProvider stores name. An empty name clears the stored value.
func (s *Service) SetLastProvider(ctx context.Context, name provider.ProviderName) error {
	if name == "" {
		return s.delete(ctx, keyProvider)
	}
	if !name.Valid() {
		return &provider.ErrUnknownProvider{Provider: name}
	}
	return s.set(ctx, keyProvider, string(name))
}

// Reset removes every stored preference.
func (s *Service) Reset(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback is a no-op after commit
	for _, key := range []string{keyFilters, keyProvider} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM settings WHERE key = ?", key); err != nil {
			return fmt.Errorf("deleting %s: %w", key, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing reset: %w", err)
	}
	return nil
}

func (s *Service) get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading %s: %w", key, err)
	}
	return value, true, nil
}

func (s *Service) set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = ?, updated_at = datetime('now')",
		key, value, value,
	)
	if err != nil {
		return fmt.Errorf("storing %s: %w", key, err)
	}
	return nil
}

func (s *Service) delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM settings WHERE key = ?", key); err != nil {
		return fmt.Errorf("deleting %s: %w", key, err)
	}
	return nil
}
