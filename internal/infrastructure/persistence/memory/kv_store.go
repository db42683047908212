// Package memory provides process-local repository implementations.
package memory

import (
	"context"
	"maps"
	"sync"

	"github.com/bnema/crumbtrail/internal/domain/repository"
)

// KeyValueStore is a map-backed repository.KeyValueStore.
// The replay command and tests use it when nothing must outlive the process.
type KeyValueStore struct {
	mu     sync.RWMutex
	values map[string]string
}

var _ repository.KeyValueStore = (*KeyValueStore)(nil)

// NewKeyValueStore creates a store seeded with a copy of initial.
func NewKeyValueStore(initial map[string]string) *KeyValueStore {
	values := make(map[string]string, len(initial))
	maps.Copy(values, initial)
	return &KeyValueStore{values: values}
}

func (s *KeyValueStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *KeyValueStore) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *KeyValueStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

// Snapshot returns a copy of every stored pair.
func (s *KeyValueStore) Snapshot() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.values)
}
