package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bnema/crumbtrail/internal/application/port"
	"github.com/bnema/crumbtrail/internal/domain/repository"
	"github.com/bnema/crumbtrail/internal/logging"
)

type kvStore struct {
	provider port.DatabaseProvider
}

// NewKeyValueStore creates a SQLite-backed key-value store.
// The database is resolved through provider on every call.
func NewKeyValueStore(provider port.DatabaseProvider) repository.KeyValueStore {
	return &kvStore{provider: provider}
}

func (s *kvStore) Get(ctx context.Context, key string) (string, bool, error) {
	db, err := s.provider.DB(ctx)
	if err != nil {
		return "", false, err
	}

	value, err := newQueries(db).GetValue(ctx, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return value, true, nil
}

func (s *kvStore) Set(ctx context.Context, key, value string) error {
	db, err := s.provider.DB(ctx)
	if err != nil {
		return err
	}

	logging.FromContext(ctx).Trace().Str("key", key).Int("bytes", len(value)).Msg("kv set")

	if err := newQueries(db).UpsertValue(ctx, upsertValueParams{Key: key, Value: value}); err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

func (s *kvStore) Delete(ctx context.Context, key string) error {
	db, err := s.provider.DB(ctx)
	if err != nil {
		return err
	}

	if err := newQueries(db).DeleteValue(ctx, key); err != nil {
		return fmt.Errorf("failed to delete key %q: %w", key, err)
	}
	return nil
}
