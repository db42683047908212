package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/crumbtrail/internal/application/usecase"
	"github.com/bnema/crumbtrail/internal/domain/entity"
	repomocks "github.com/bnema/crumbtrail/internal/domain/repository/mocks"
)

func historyEntry(path string, start, end int) entity.HistoryEntry {
	loc := entity.Location{FilePath: path, Selection: entity.NewSelection(start, end)}
	return entity.NewHistoryEntry(loc, fmt.Sprintf("/?%s#%d,%d", path, start, end))
}

func paths(entries []entity.HistoryEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.FilePath())
	}
	return out
}

func TestHistoryStore_RecordKeepsBoundAndUniquePaths(t *testing.T) {
	ctx := testContext()
	store := usecase.NewHistoryStore(newMemoryKV(), "", 0)
	require.Equal(t, entity.DefaultHistoryCapacity, store.Capacity())

	// Revisit a small pool of files in a shuffled order.
	order := []int{0, 3, 1, 4, 9, 2, 0, 7, 5, 11, 3, 6, 8, 10, 1, 12, 4, 0}
	for i, n := range order {
		store.Record(ctx, historyEntry(fmt.Sprintf("/p/f%d.go", n), i, i))

		all := store.All(ctx)
		assert.LessOrEqual(t, len(all), entity.DefaultHistoryCapacity)

		seen := make(map[string]bool)
		for _, e := range all {
			assert.False(t, seen[e.FilePath()], "duplicate %s", e.FilePath())
			seen[e.FilePath()] = true
		}
		assert.Equal(t, fmt.Sprintf("/p/f%d.go", n), all[len(all)-1].FilePath(), "last recorded is newest")
	}

	assert.Equal(t, []string{
		"/p/f3.go", "/p/f6.go", "/p/f8.go", "/p/f10.go",
		"/p/f1.go", "/p/f12.go", "/p/f4.go", "/p/f0.go",
	}, paths(store.All(ctx)))
}

func TestHistoryStore_RerecordMovesToMostRecent(t *testing.T) {
	ctx := testContext()
	store := usecase.NewHistoryStore(newMemoryKV(), entity.HistoryStorageKey, 8)

	store.Record(ctx, historyEntry("/a.js", 0, 0))
	store.Record(ctx, historyEntry("/b.js", 0, 0))
	store.Record(ctx, historyEntry("/c.js", 0, 0))
	store.Record(ctx, historyEntry("/a.js", 5, 9))

	all := store.All(ctx)
	assert.Equal(t, []string{"/b.js", "/c.js", "/a.js"}, paths(all))
	require.NotNil(t, all[2].Location.Selection)
	assert.Equal(t, entity.Selection{Start: 5, End: 9}, *all[2].Location.Selection)

	entry, ok := store.Lookup(ctx, "/a.js")
	require.True(t, ok)
	assert.Equal(t, "/?/a.js#5,9", entry.URL)

	_, ok = store.Lookup(ctx, "/missing.js")
	assert.False(t, ok)
	assert.Len(t, store.ByPath(ctx), 3)
}

func TestHistoryStore_EvictsOldestFirst(t *testing.T) {
	ctx := testContext()
	store := usecase.NewHistoryStore(newMemoryKV(), entity.HistoryStorageKey, 3)

	for _, p := range []string{"/1", "/2", "/3", "/4", "/5"} {
		store.Record(ctx, historyEntry(p, 0, 0))
	}

	assert.Equal(t, []string{"/3", "/4", "/5"}, paths(store.All(ctx)))
}

func TestHistoryStore_PersistsWireFormat(t *testing.T) {
	ctx := testContext()
	kv := newMemoryKV()
	store := usecase.NewHistoryStore(kv, entity.HistoryStorageKey, 8)

	store.Record(ctx, historyEntry("/project/a.js", 10, 20))

	raw, ok, err := kv.Get(ctx, entity.HistoryStorageKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[{"filename":"a.js","filepath":"/project/a.js","range":[10,20],"position":0,"url":"/?/project/a.js#10,20"}]`, raw)

	reopened := usecase.NewHistoryStore(kv, entity.HistoryStorageKey, 8)
	assert.Equal(t, []string{"/project/a.js"}, paths(reopened.All(ctx)))
}

func TestHistoryStore_IgnoresEntryWithoutPath(t *testing.T) {
	ctx := testContext()
	kv := repomocks.NewMockKeyValueStore(t)
	store := usecase.NewHistoryStore(kv, entity.HistoryStorageKey, 8)

	store.Record(ctx, entity.HistoryEntry{})
	// No store calls expected.
}

func TestHistoryStore_ReadFailureSkipsWrite(t *testing.T) {
	ctx := testContext()
	kv := repomocks.NewMockKeyValueStore(t)
	store := usecase.NewHistoryStore(kv, entity.HistoryStorageKey, 8)

	kv.EXPECT().Get(mock.Anything, entity.HistoryStorageKey).Return("", false, errors.New("quota exceeded"))

	assert.NotPanics(t, func() {
		store.Record(ctx, historyEntry("/a.js", 0, 0))
	})
	kv.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
}

func TestHistoryStore_WriteFailureIsSwallowed(t *testing.T) {
	ctx := testContext()
	kv := repomocks.NewMockKeyValueStore(t)
	store := usecase.NewHistoryStore(kv, entity.HistoryStorageKey, 8)

	kv.EXPECT().Get(mock.Anything, entity.HistoryStorageKey).Return("[]", true, nil)
	kv.EXPECT().Set(mock.Anything, entity.HistoryStorageKey, mock.AnythingOfType("string")).
		Return(errors.New("storage disabled"))

	assert.NotPanics(t, func() {
		store.Record(ctx, historyEntry("/a.js", 0, 0))
	})
}

func TestHistoryStore_CorruptValueIsReplaced(t *testing.T) {
	ctx := testContext()
	kv := newMemoryKV()
	require.NoError(t, kv.Set(ctx, entity.HistoryStorageKey, "{not json"))

	store := usecase.NewHistoryStore(kv, entity.HistoryStorageKey, 8)
	assert.Empty(t, store.All(ctx))

	store.Record(ctx, historyEntry("/a.js", 1, 2))
	assert.Equal(t, []string{"/a.js"}, paths(store.All(ctx)))
}

func TestHistoryStore_BadEntryIsSkipped(t *testing.T) {
	ctx := testContext()
	kv := newMemoryKV()
	raw := `[
		{"filename":"a.js","filepath":"/a.js","range":[1,2],"position":0,"url":"/?/a.js#1,2"},
		{"filename":"bad.js","filepath":"/bad.js","range":[1,2,3],"position":0,"url":"/?/bad.js"},
		{"filename":"b.js","filepath":"/b.js","position":0,"url":"/?/b.js"}
	]`
	require.NoError(t, kv.Set(ctx, entity.HistoryStorageKey, raw))

	store := usecase.NewHistoryStore(kv, entity.HistoryStorageKey, 8)
	assert.Equal(t, []string{"/a.js", "/b.js"}, paths(store.All(ctx)))

	store.Record(ctx, historyEntry("/c.js", 0, 1))

	reopened := usecase.NewHistoryStore(kv, entity.HistoryStorageKey, 8)
	assert.Equal(t, []string{"/a.js", "/b.js", "/c.js"}, paths(reopened.All(ctx)))
}

func TestHistoryStore_AllOnReadFailureIsEmpty(t *testing.T) {
	kv := repomocks.NewMockKeyValueStore(t)
	kv.EXPECT().Get(mock.Anything, "k").Return("", false, context.DeadlineExceeded)

	store := usecase.NewHistoryStore(kv, "k", 8)
	all := store.All(testContext())
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestHistoryStore_Clear(t *testing.T) {
	ctx := testContext()

	t.Run("removes entries", func(t *testing.T) {
		store := usecase.NewHistoryStore(newMemoryKV(), entity.HistoryStorageKey, 8)
		store.Record(ctx, historyEntry("/a.js", 0, 0))
		require.NoError(t, store.Clear(ctx))
		assert.Empty(t, store.All(ctx))
	})

	t.Run("wraps store error", func(t *testing.T) {
		kv := repomocks.NewMockKeyValueStore(t)
		kv.EXPECT().Delete(mock.Anything, entity.HistoryStorageKey).Return(errors.New("locked"))

		store := usecase.NewHistoryStore(kv, entity.HistoryStorageKey, 8)
		err := store.Clear(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to clear history")
	})
}
