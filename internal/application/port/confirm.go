package port

import (
	"context"

	"github.com/bnema/crumbtrail/internal/domain/entity"
)

// Confirmer decides whether unsaved changes in a pane may be discarded.
// Production asks the user; tests script the answer.
type Confirmer interface {
	ConfirmDiscard(ctx context.Context, pane entity.PaneID, filePath string) (bool, error)
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(ctx context.Context, pane entity.PaneID, filePath string) (bool, error)

// ConfirmDiscard implements Confirmer.
func (f ConfirmFunc) ConfirmDiscard(ctx context.Context, pane entity.PaneID, filePath string) (bool, error) {
	return f(ctx, pane, filePath)
}

// Notifier shows a short message to the user.
type Notifier interface {
	Notify(ctx context.Context, message string)
}
