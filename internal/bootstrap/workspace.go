// Package bootstrap assembles the navigation core with its adapters.
package bootstrap

import (
	"context"

	"github.com/bnema/crumbtrail/internal/application/port"
	"github.com/bnema/crumbtrail/internal/application/usecase"
	"github.com/bnema/crumbtrail/internal/domain/repository"
	"github.com/bnema/crumbtrail/internal/infrastructure/cache"
	"github.com/bnema/crumbtrail/internal/infrastructure/config"
	"github.com/bnema/crumbtrail/internal/infrastructure/headless"
	"github.com/bnema/crumbtrail/internal/infrastructure/persistence/memory"
	"github.com/bnema/crumbtrail/internal/logging"
)

// WorkspaceInput holds what a headless workspace is built from.
type WorkspaceInput struct {
	Config *config.Config
	// Store persists the recent-file list. Nil keeps it in memory.
	Store repository.KeyValueStore
	// Files answers binary checks and directory listings. Nil skips both.
	Files port.FileInfo
	// Source supplies editor contents.
	Source headless.Source
	// DiscardUnsaved is the answer given to discard prompts.
	DiscardUnsaved bool
}

// Workspace is a navigation controller wired to headless adapters.
type Workspace struct {
	Controller *usecase.NavigationController
	Panes      *usecase.PaneManager
	History    *usecase.HistoryStore
	Bridge     *usecase.BrowserStateBridge

	Host          *headless.Host
	Session       *headless.SessionHistory
	Layout        *headless.Layout
	Renderer      *headless.Renderer
	Tree          *headless.FileTree
	Scheduler     *headless.Scheduler
	Windows       *headless.Windows
	Notifications *headless.Notifications
	Confirmer     *headless.Confirmer
}

// NewWorkspace builds a workspace. Session pops are routed through the bridge.
func NewWorkspace(ctx context.Context, in WorkspaceInput) *Workspace {
	timer := NewPhaseTimer()
	cfg := in.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	store := in.Store
	if store == nil {
		store = memory.NewKeyValueStore(nil)
	}
	files := in.Files
	if files != nil {
		files = cache.NewFileInfo(files, cache.DefaultBinaryCacheSize, cache.DefaultBinaryCacheTTL)
	}

	ws := &Workspace{
		Host:          headless.NewHost(in.Source),
		Session:       headless.NewSessionHistory(),
		Layout:        headless.NewLayout(headless.DefaultSidePanelWidth),
		Renderer:      &headless.Renderer{},
		Tree:          headless.NewFileTree(true),
		Scheduler:     &headless.Scheduler{},
		Windows:       &headless.Windows{},
		Notifications: &headless.Notifications{},
		Confirmer:     headless.NewConfirmer(in.DiscardUnsaved),
	}

	timer.Mark("adapters")

	resolver := usecase.NewTargetResolver()
	ws.Panes = usecase.NewPaneManager(ws.Layout)
	ws.History = usecase.NewHistoryStore(store, cfg.History.StorageKey, cfg.History.MaxEntries)
	ws.Bridge = usecase.NewBrowserStateBridge(ws.Session, resolver)
	ws.Session.OnPop(ws.Bridge.HandlePop)

	nav := cfg.NavigationSettings()
	ws.Controller = usecase.NewNavigationController(usecase.NavigationDeps{
		Panes:       ws.Panes,
		History:     ws.History,
		Bridge:      ws.Bridge,
		Resolver:    resolver,
		Breadcrumbs: usecase.NewBreadcrumbsUseCase(files, cfg.Navigation.Root, nav.BasePath),
		Host:        ws.Host,
		Files:       files,
		Confirmer:   ws.Confirmer,
		Notifier:    ws.Notifications,
		Renderer:    ws.Renderer,
		FileTree:    ws.Tree,
		Windows:     ws.Windows,
		Scheduler:   ws.Scheduler,
	}, nav)

	timer.Mark("controller")
	timer.LogDebug(ctx, "workspace timing")

	logging.FromContext(ctx).Debug().
		Int("history_capacity", ws.History.Capacity()).
		Str("base_path", nav.BasePath).
		Bool("file_info", files != nil).
		Msg("workspace ready")
	return ws
}

// Settle runs deferred focus changes.
func (w *Workspace) Settle() {
	w.Scheduler.RunPending()
}
