package usecase

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/bnema/crumbtrail/internal/application/port"
	"github.com/bnema/crumbtrail/internal/domain/entity"
	"github.com/bnema/crumbtrail/internal/logging"
)

// PaneState is the tracked state of one pane.
type PaneState struct {
	Status   entity.PaneStatus
	Editor   port.Editor
	FilePath string
}

// IsBound reports whether the pane holds a loaded editor.
func (s PaneState) IsBound() bool {
	return s.Status == entity.PaneBound && s.Editor != nil
}

// Dirty reads the unsaved flag live from the bound editor.
func (s PaneState) Dirty() bool {
	return s.IsBound() && s.Editor.IsDirty()
}

type paneSlot struct {
	state PaneState
	guard *semaphore.Weighted
}

// PaneManager owns the main and secondary pane states.
//
// Side-panel visibility is derived from the secondary pane: it is open
// whenever the secondary state is not Empty. Layout calls are made after the
// internal lock is released.
type PaneManager struct {
	layout port.Layout

	mu          sync.Mutex
	panes       map[entity.PaneID]*paneSlot
	mainVisible bool
	marginRight int
}

// NewPaneManager creates a pane manager with both panes empty.
func NewPaneManager(layout port.Layout) *PaneManager {
	m := &PaneManager{
		layout: layout,
		panes:  make(map[entity.PaneID]*paneSlot, len(entity.PaneIDs)),
	}
	for _, id := range entity.PaneIDs {
		m.panes[id] = &paneSlot{
			state: PaneState{Status: entity.PaneEmpty},
			guard: semaphore.NewWeighted(1),
		}
	}
	return m
}

// Get returns a copy of the pane state.
func (m *PaneManager) Get(id entity.PaneID) PaneState {
	m.mu.Lock()
	defer m.mu.Unlock()
	if slot, ok := m.panes[id]; ok {
		return slot.state
	}
	return PaneState{Status: entity.PaneEmpty}
}

// Editor returns the bound editor of a pane, or nil.
func (m *PaneManager) Editor(id entity.PaneID) port.Editor {
	state := m.Get(id)
	if !state.IsBound() {
		return nil
	}
	return state.Editor
}

// IsOpen reports whether a pane is not Empty. For the secondary pane this is
// the side-panel visibility.
func (m *PaneManager) IsOpen(id entity.PaneID) bool {
	return m.Get(id).Status != entity.PaneEmpty
}

// SidePanelVisible reports whether the side panel is shown.
func (m *PaneManager) SidePanelVisible() bool {
	return m.IsOpen(entity.PaneSecondary)
}

// MainMarginRight returns the margin last applied to the main container.
func (m *PaneManager) MainMarginRight() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.marginRight
}

// MainVisible reports whether the main container is shown.
func (m *PaneManager) MainVisible() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mainVisible
}

// TryAcquire claims the single-flight guard of a pane. It returns false when
// another navigation against the pane is still in flight.
func (m *PaneManager) TryAcquire(id entity.PaneID) (release func(), ok bool) {
	m.mu.Lock()
	slot, found := m.panes[id]
	m.mu.Unlock()
	if !found || !slot.guard.TryAcquire(1) {
		return func() {}, false
	}
	return func() { slot.guard.Release(1) }, true
}

// BeginLoad moves a pane to Loading for filePath and returns the editor it
// held, which the caller is expected to destroy.
func (m *PaneManager) BeginLoad(ctx context.Context, id entity.PaneID, filePath string) port.Editor {
	m.mu.Lock()
	slot := m.panes[id]
	previous := slot.state
	slot.state = PaneState{Status: entity.PaneLoading, FilePath: filePath}
	m.mu.Unlock()

	logging.FromContext(ctx).Debug().
		Str("pane", string(id)).
		Str("file", filePath).
		Str("from", previous.Status.String()).
		Msg("pane loading")

	if id == entity.PaneSecondary && previous.Status == entity.PaneEmpty {
		m.openSidePanel(ctx)
	}
	return previous.Editor
}

// Bind records editor as the pane's loaded editor for filePath.
func (m *PaneManager) Bind(ctx context.Context, id entity.PaneID, editor port.Editor, filePath string) {
	m.mu.Lock()
	slot := m.panes[id]
	previous := slot.state
	slot.state = PaneState{Status: entity.PaneBound, Editor: editor, FilePath: filePath}
	m.mu.Unlock()

	logging.FromContext(ctx).Debug().
		Str("pane", string(id)).
		Str("file", filePath).
		Msg("pane bound")

	if id == entity.PaneSecondary && previous.Status == entity.PaneEmpty {
		m.openSidePanel(ctx)
	}
}

// Unbind empties a pane and returns the editor it held. Emptying the
// secondary pane closes the side panel.
func (m *PaneManager) Unbind(ctx context.Context, id entity.PaneID) port.Editor {
	m.mu.Lock()
	slot := m.panes[id]
	previous := slot.state
	slot.state = PaneState{Status: entity.PaneEmpty}
	m.mu.Unlock()

	logging.FromContext(ctx).Debug().
		Str("pane", string(id)).
		Str("file", previous.FilePath).
		Msg("pane unbound")

	if id == entity.PaneSecondary && previous.Status != entity.PaneEmpty {
		m.closeSidePanel(ctx)
	}
	return previous.Editor
}

// ShowMain makes the main container visible.
func (m *PaneManager) ShowMain() {
	m.setMainVisible(true)
}

// HideMain hides the main container.
func (m *PaneManager) HideMain() {
	m.setMainVisible(false)
}

func (m *PaneManager) setMainVisible(visible bool) {
	m.mu.Lock()
	changed := m.mainVisible != visible
	m.mainVisible = visible
	m.mu.Unlock()

	if changed && m.layout != nil {
		m.layout.SetMainVisible(visible)
	}
}

func (m *PaneManager) openSidePanel(ctx context.Context) {
	width := 0
	if m.layout != nil {
		width = m.layout.ShowSidePanel()
		m.layout.SetMainMarginRight(width)
	}
	m.mu.Lock()
	m.marginRight = width
	m.mu.Unlock()
	logging.FromContext(ctx).Debug().Int("width", width).Msg("side panel opened")
}

func (m *PaneManager) closeSidePanel(ctx context.Context) {
	if m.layout != nil {
		m.layout.HideSidePanel()
		m.layout.SetMainMarginRight(0)
	}
	m.mu.Lock()
	m.marginRight = 0
	m.mu.Unlock()
	logging.FromContext(ctx).Debug().Msg("side panel closed")
}
