package usecase

import (
	"context"
	"sync"

	"github.com/bnema/crumbtrail/internal/application/port"
	"github.com/bnema/crumbtrail/internal/domain/entity"
	"github.com/bnema/crumbtrail/internal/logging"
)

// PopHandler receives a session-history record together with the pane target
// resolved from the pop event's modifiers.
type PopHandler func(ctx context.Context, record entity.BrowserHistoryRecord, target entity.NavigationTarget)

// BrowserStateBridge mirrors main-pane navigation into the session history and
// maps session-history pops back onto navigation requests.
type BrowserStateBridge struct {
	history  port.SessionHistory
	resolver *TargetResolver

	mu       sync.RWMutex
	onPop    PopHandler
	disabled func() bool
}

// NewBrowserStateBridge creates a bridge over the session history.
func NewBrowserStateBridge(history port.SessionHistory, resolver *TargetResolver) *BrowserStateBridge {
	if resolver == nil {
		resolver = NewTargetResolver()
	}
	return &BrowserStateBridge{
		history:  history,
		resolver: resolver,
	}
}

// Push adds a session-history entry for entry. Failures are logged only.
func (b *BrowserStateBridge) Push(ctx context.Context, entry entity.HistoryEntry) {
	b.store(ctx, entry, false)
}

// Replace rewrites the current session-history entry. Failures are logged only.
func (b *BrowserStateBridge) Replace(ctx context.Context, entry entity.HistoryEntry) {
	b.store(ctx, entry, true)
}

func (b *BrowserStateBridge) store(ctx context.Context, entry entity.HistoryEntry, replace bool) {
	log := logging.FromContext(ctx)
	record := entity.NewBrowserHistoryRecord(entry)

	var err error
	if replace {
		err = b.history.ReplaceState(ctx, record, entry.DisplayName, entry.URL)
	} else {
		err = b.history.PushState(ctx, record, entry.DisplayName, entry.URL)
	}
	if err != nil {
		log.Warn().
			Err(err).
			Bool("replace", replace).
			Str("url", entry.URL).
			Msg("failed to store browser state")
		return
	}

	log.Debug().Bool("replace", replace).Str("url", entry.URL).Msg("browser state stored")
}

// OnPop registers the handler invoked for pops that carry a file path.
// A later call replaces the previous handler.
func (b *BrowserStateBridge) OnPop(handler PopHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.onPop = handler
}

// SetSubNavigationGuard registers the check reporting whether secondary-pane
// navigation is currently disabled.
func (b *BrowserStateBridge) SetSubNavigationGuard(disabled func() bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.disabled = disabled
}

// HandlePop dispatches a session-history pop. It returns false when the record
// does not describe a file, leaving the pop to the default behavior.
func (b *BrowserStateBridge) HandlePop(ctx context.Context, record entity.BrowserHistoryRecord, mods entity.Modifiers) bool {
	if !record.HasFilePath() {
		logging.FromContext(ctx).Debug().Msg("pop without file path, ignoring")
		return false
	}

	b.mu.RLock()
	handler := b.onPop
	disabled := b.disabled
	b.mu.RUnlock()

	subNavDisabled := disabled != nil && disabled()
	target := b.resolver.Resolve(mods, nil, subNavDisabled)

	logging.FromContext(ctx).Debug().
		Str("file", record.Entry.FilePath()).
		Str("target", target.String()).
		Msg("session history pop")

	if handler != nil {
		handler(ctx, record, target)
	}
	return true
}
