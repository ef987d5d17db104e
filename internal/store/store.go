// Package store persists the board's collections in a key-value backend.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Collection keys. They match the keys the browser version of the board
// used, so exported collections can be imported unchanged.
const (
	KeyUsers        = "sj_users"
	KeyJobs         = "sj_jobs"
	KeyApplications = "sj_applications"
)

// ErrNotFound is returned by Get when a key has no value.
var ErrNotFound = errors.New("store: key not found")

// Store is a minimal byte-oriented key-value store.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// LoadJSON reads a JSON array stored under key. A missing key yields an empty slice.
func LoadJSON[T any](ctx context.Context, s Store, key string) ([]T, error) {
	data, err := s.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// SaveJSON writes items as a JSON array under key.
func SaveJSON[T any](ctx context.Context, s Store, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := s.Set(ctx, key, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}
