package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/crumbtrail/internal/application/usecase"
	"github.com/bnema/crumbtrail/internal/domain/entity"
)

func newSearchFixture(t *testing.T, paths ...string) *usecase.SearchHistoryUseCase {
	t.Helper()
	ctx := testContext()
	store := usecase.NewHistoryStore(newMemoryKV(), entity.HistoryStorageKey, 8)
	for _, p := range paths {
		store.Record(ctx, entity.NewHistoryEntry(entity.Location{FilePath: p}, "/?"+p))
	}
	return usecase.NewSearchHistoryUseCase(store)
}

func matchPaths(out *usecase.SearchOutput) []string {
	paths := make([]string, len(out.Matches))
	for i, m := range out.Matches {
		paths[i] = m.Entry.FilePath()
	}
	return paths
}

func TestSearchHistoryUseCase_RecentIsNewestFirst(t *testing.T) {
	uc := newSearchFixture(t, "/p/a.txt", "/p/b.txt", "/p/c.txt")

	recent := uc.Recent(testContext())

	require.Len(t, recent, 3)
	assert.Equal(t, "/p/c.txt", recent[0].FilePath())
	assert.Equal(t, "/p/a.txt", recent[2].FilePath())
}

func TestSearchHistoryUseCase_EmptyQueryMatchesAll(t *testing.T) {
	uc := newSearchFixture(t, "/p/a.txt", "/p/b.txt")

	out := uc.Search(testContext(), usecase.SearchInput{Query: "  "})

	assert.Equal(t, []string{"/p/b.txt", "/p/a.txt"}, matchPaths(out))
}

func TestSearchHistoryUseCase_FuzzyQuery(t *testing.T) {
	uc := newSearchFixture(t, "/p/a.txt", "/p/b.txt", "/q/a.txt")

	out := uc.Search(testContext(), usecase.SearchInput{Query: "A.TXT"})

	assert.Equal(t, []string{"/q/a.txt", "/p/a.txt"}, matchPaths(out))
}

func TestSearchHistoryUseCase_CloserMatchRanksFirst(t *testing.T) {
	uc := newSearchFixture(t, "/p/a.txt", "/project/src/alpha.txt")

	out := uc.Search(testContext(), usecase.SearchInput{Query: "a.txt"})

	require.Len(t, out.Matches, 2)
	assert.Equal(t, "/p/a.txt", out.Matches[0].Entry.FilePath())
	assert.Less(t, out.Matches[0].Distance, out.Matches[1].Distance)
}

func TestSearchHistoryUseCase_Limit(t *testing.T) {
	uc := newSearchFixture(t, "/p/a.txt", "/p/b.txt", "/p/c.txt")

	out := uc.Search(testContext(), usecase.SearchInput{Limit: 2})

	assert.Equal(t, []string{"/p/c.txt", "/p/b.txt"}, matchPaths(out))
}

func TestSearchHistoryUseCase_NoMatch(t *testing.T) {
	uc := newSearchFixture(t, "/p/a.txt")

	out := uc.Search(testContext(), usecase.SearchInput{Query: "zzz"})

	assert.Empty(t, out.Matches)
}

func TestSearchHistoryUseCase_Clear(t *testing.T) {
	uc := newSearchFixture(t, "/p/a.txt")

	require.NoError(t, uc.Clear(testContext()))

	assert.Empty(t, uc.Recent(testContext()))
}
