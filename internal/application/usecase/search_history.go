package usecase

import (
	"context"
	"slices"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/bnema/crumbtrail/internal/domain/entity"
	"github.com/bnema/crumbtrail/internal/logging"
)

// SearchHistoryUseCase lists and filters the recent-file history.
type SearchHistoryUseCase struct {
	history *HistoryStore
}

// NewSearchHistoryUseCase creates a new history search use case.
func NewSearchHistoryUseCase(history *HistoryStore) *SearchHistoryUseCase {
	return &SearchHistoryUseCase{history: history}
}

// SearchInput contains search parameters.
// An empty Query matches every entry; Limit <= 0 means no limit.
type SearchInput struct {
	Query string
	Limit int
}

// HistoryMatch is an entry matched by a query. Lower Distance ranks higher.
type HistoryMatch struct {
	Entry    entity.HistoryEntry
	Distance int
}

// SearchOutput contains search results, best match first.
type SearchOutput struct {
	Matches []HistoryMatch
}

// Recent returns the stored entries, newest first.
func (uc *SearchHistoryUseCase) Recent(ctx context.Context) []entity.HistoryEntry {
	entries := uc.history.All(ctx)
	slices.Reverse(entries)
	return entries
}

// Search ranks entries against a fuzzy query over the file path.
// Ties keep recency order.
func (uc *SearchHistoryUseCase) Search(ctx context.Context, input SearchInput) *SearchOutput {
	recent := uc.Recent(ctx)
	query := strings.TrimSpace(input.Query)

	var matches []HistoryMatch
	if query == "" {
		matches = make([]HistoryMatch, len(recent))
		for i, e := range recent {
			matches[i] = HistoryMatch{Entry: e}
		}
	} else {
		matches = rankEntries(recent, query)
	}

	if input.Limit > 0 && len(matches) > input.Limit {
		matches = matches[:input.Limit]
	}

	logging.FromContext(ctx).Debug().
		Str("query", query).
		Int("matches", len(matches)).
		Msg("history search completed")

	return &SearchOutput{Matches: matches}
}

// Clear removes every stored entry.
func (uc *SearchHistoryUseCase) Clear(ctx context.Context) error {
	return uc.history.Clear(ctx)
}

func rankEntries(entries []entity.HistoryEntry, query string) []HistoryMatch {
	paths := make([]string, len(entries))
	for i, e := range entries {
		paths[i] = e.FilePath()
	}

	ranks := fuzzy.RankFindNormalizedFold(query, paths)
	slices.SortStableFunc(ranks, func(a, b fuzzy.Rank) int {
		if a.Distance != b.Distance {
			return a.Distance - b.Distance
		}
		return a.OriginalIndex - b.OriginalIndex
	})

	matches := make([]HistoryMatch, len(ranks))
	for i, r := range ranks {
		matches[i] = HistoryMatch{Entry: entries[r.OriginalIndex], Distance: r.Distance}
	}
	return matches
}
