package headless

import (
	"context"
	"sync"

	"github.com/bnema/crumbtrail/internal/application/port"
	"github.com/bnema/crumbtrail/internal/domain/entity"
)

// PopFunc receives the record that became current after Back or Forward.
type PopFunc func(ctx context.Context, record entity.BrowserHistoryRecord, mods entity.Modifiers) bool

// SessionEntry is one slot of the session history.
type SessionEntry struct {
	Record entity.BrowserHistoryRecord
	Title  string
	URL    string
}

// SessionHistory is a back/forward stack implementing port.SessionHistory.
type SessionHistory struct {
	mu      sync.Mutex
	entries []SessionEntry
	current int // -1 when empty
	onPop   PopFunc
}

var _ port.SessionHistory = (*SessionHistory)(nil)

// NewSessionHistory creates an empty session history.
func NewSessionHistory() *SessionHistory {
	return &SessionHistory{current: -1}
}

// OnPop registers the handler invoked by Back and Forward.
func (s *SessionHistory) OnPop(fn PopFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onPop = fn
}

// PushState drops any forward entries and appends a new current entry.
func (s *SessionHistory) PushState(ctx context.Context, record entity.BrowserHistoryRecord, title, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries[:s.current+1], SessionEntry{Record: record, Title: title, URL: url})
	s.current = len(s.entries) - 1
	return nil
}

// ReplaceState rewrites the current entry, creating one if the stack is empty.
func (s *SessionHistory) ReplaceState(ctx context.Context, record entity.BrowserHistoryRecord, title, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := SessionEntry{Record: record, Title: title, URL: url}
	if s.current < 0 {
		s.entries = []SessionEntry{entry}
		s.current = 0
		return nil
	}
	s.entries[s.current] = entry
	return nil
}

// Back moves one entry back and pops it. It reports false at the start.
func (s *SessionHistory) Back(ctx context.Context, mods entity.Modifiers) bool {
	return s.move(ctx, -1, mods)
}

// Forward moves one entry forward and pops it. It reports false at the end.
func (s *SessionHistory) Forward(ctx context.Context, mods entity.Modifiers) bool {
	return s.move(ctx, 1, mods)
}

func (s *SessionHistory) move(ctx context.Context, step int, mods entity.Modifiers) bool {
	s.mu.Lock()
	next := s.current + step
	if next < 0 || next >= len(s.entries) {
		s.mu.Unlock()
		return false
	}
	s.current = next
	record, onPop := s.entries[next].Record, s.onPop
	s.mu.Unlock()

	if onPop != nil {
		onPop(ctx, record, mods)
	}
	return true
}

// Current returns the current entry.
func (s *SessionHistory) Current() (SessionEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current < 0 {
		return SessionEntry{}, false
	}
	return s.entries[s.current], true
}

// Entries returns a copy of the stack and the current index.
func (s *SessionHistory) Entries() ([]SessionEntry, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]SessionEntry(nil), s.entries...), s.current
}
