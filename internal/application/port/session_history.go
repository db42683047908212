package port

import (
	"context"

	"github.com/bnema/crumbtrail/internal/domain/entity"
)

// SessionHistory is the browser's session-history stack.
type SessionHistory interface {
	// PushState adds a new session-history entry.
	PushState(ctx context.Context, record entity.BrowserHistoryRecord, title, url string) error
	// ReplaceState rewrites the current session-history entry.
	ReplaceState(ctx context.Context, record entity.BrowserHistoryRecord, title, url string) error
}

// WindowOpener opens a new browsing context.
type WindowOpener interface {
	OpenWindow(ctx context.Context, url string) error
}
