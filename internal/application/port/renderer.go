package port

import (
	"context"

	"github.com/bnema/crumbtrail/internal/domain/entity"
)

// NavigationRenderer draws breadcrumbs and the recent-file menu.
// It only receives data; layout is its own business.
type NavigationRenderer interface {
	RenderBreadcrumbs(ctx context.Context, crumbs entity.Breadcrumbs)
	RenderHistoryMenu(ctx context.Context, items []entity.MenuItem)
}

// FileTree is the optional file navigator shown next to the editors.
type FileTree interface {
	// Ready reports whether the tree model has been loaded.
	Ready() bool
	// Highlight marks filePath as the current file.
	Highlight(ctx context.Context, filePath string)
}
