package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/bnema/crumbtrail/internal/domain/entity"
	"github.com/bnema/crumbtrail/internal/domain/repository"
	"github.com/bnema/crumbtrail/internal/logging"
)

// HistoryStore keeps the bounded list of recently visited files.
//
// The list is persisted as JSON under a single key and every Record is a
// write-through read-modify-write. Store failures are logged, never returned.
type HistoryStore struct {
	store    repository.KeyValueStore
	key      string
	capacity int
	mu       sync.Mutex
}

// NewHistoryStore creates a history store backed by a key-value store.
// Empty key and non-positive capacity fall back to the defaults.
func NewHistoryStore(store repository.KeyValueStore, key string, capacity int) *HistoryStore {
	if key == "" {
		key = entity.HistoryStorageKey
	}
	if capacity <= 0 {
		capacity = entity.DefaultHistoryCapacity
	}
	return &HistoryStore{
		store:    store,
		key:      key,
		capacity: capacity,
	}
}

// Capacity returns the maximum number of entries kept.
func (s *HistoryStore) Capacity() int {
	return s.capacity
}

// Record moves entry to the most recent position, dropping any previous
// entry for the same file and evicting the oldest entries over capacity.
func (s *HistoryStore) Record(ctx context.Context, entry entity.HistoryEntry) {
	log := logging.FromContext(ctx)
	if entry.FilePath() == "" {
		log.Debug().Msg("ignoring history entry without file path")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load(ctx)
	if err != nil {
		log.Warn().Err(err).Str("file", entry.FilePath()).Msg("history unavailable, entry not recorded")
		return
	}

	entries = appendHistory(entries, entry, s.capacity)
	if err := s.save(ctx, entries); err != nil {
		log.Warn().Err(err).Str("file", entry.FilePath()).Msg("failed to persist history")
		return
	}

	log.Debug().Str("file", entry.FilePath()).Int("entries", len(entries)).Msg("history recorded")
}

// All returns the stored entries, oldest first.
func (s *HistoryStore) All(ctx context.Context) []entity.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load(ctx)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("history unavailable")
		return []entity.HistoryEntry{}
	}
	return entries
}

// ByPath returns the stored entries keyed by file path.
func (s *HistoryStore) ByPath(ctx context.Context) map[string]entity.HistoryEntry {
	entries := s.All(ctx)
	byPath := make(map[string]entity.HistoryEntry, len(entries))
	for _, e := range entries {
		byPath[e.FilePath()] = e
	}
	return byPath
}

// Lookup returns the stored entry for filePath.
func (s *HistoryStore) Lookup(ctx context.Context, filePath string) (entity.HistoryEntry, bool) {
	entry, ok := s.ByPath(ctx)[filePath]
	return entry, ok
}

// Clear removes every stored entry.
func (s *HistoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

// load must be called with s.mu held.
func (s *HistoryStore) load(ctx context.Context) ([]entity.HistoryEntry, error) {
	raw, ok, err := s.store.Get(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", s.key, err)
	}
	if !ok || raw == "" {
		return []entity.HistoryEntry{}, nil
	}

	log := logging.FromContext(ctx)

	var items []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		// A corrupt list is replaced on the next write.
		log.Warn().Err(err).Str("key", s.key).Msg("discarding unreadable history")
		return []entity.HistoryEntry{}, nil
	}

	entries := make([]entity.HistoryEntry, 0, len(items))
	for i, item := range items {
		var entry entity.HistoryEntry
		if err := json.Unmarshal(item, &entry); err != nil {
			log.Warn().Err(err).Str("key", s.key).Int("index", i).Msg("skipping unreadable history entry")
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// save must be called with s.mu held.
func (s *HistoryStore) save(ctx context.Context, entries []entity.HistoryEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	if err := s.store.Set(ctx, s.key, string(data)); err != nil {
		return fmt.Errorf("write %q: %w", s.key, err)
	}
	return nil
}

// appendHistory removes entries for the same path, appends entry and trims
// from the front until at most capacity entries remain.
func appendHistory(entries []entity.HistoryEntry, entry entity.HistoryEntry, capacity int) []entity.HistoryEntry {
	out := make([]entity.HistoryEntry, 0, len(entries)+1)
	for _, e := range entries {
		if e.FilePath() != entry.FilePath() {
			out = append(out, e)
		}
	}
	out = append(out, entry)
	if over := len(out) - capacity; over > 0 {
		out = out[over:]
	}
	return out
}
