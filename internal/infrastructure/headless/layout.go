package headless

import (
	"sync"

	"github.com/bnema/crumbtrail/internal/application/port"
)

// DefaultSidePanelWidth is the side panel width reported by ShowSidePanel.
const DefaultSidePanelWidth = 400

// LayoutState is a snapshot of the containers.
type LayoutState struct {
	SidePanelVisible bool
	MainMarginRight  int
	MainVisible      bool
}

// Layout records container changes instead of drawing them.
type Layout struct {
	width int

	mu    sync.Mutex
	state LayoutState
}

var _ port.Layout = (*Layout)(nil)

// NewLayout creates a layout whose side panel is width pixels wide.
func NewLayout(width int) *Layout {
	if width <= 0 {
		width = DefaultSidePanelWidth
	}
	return &Layout{width: width, state: LayoutState{MainVisible: true}}
}

func (l *Layout) ShowSidePanel() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state.SidePanelVisible = true
	return l.width
}

func (l *Layout) HideSidePanel() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state.SidePanelVisible = false
}

func (l *Layout) SetMainMarginRight(px int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state.MainMarginRight = px
}

func (l *Layout) SetMainVisible(visible bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state.MainVisible = visible
}

// State returns the current layout.
func (l *Layout) State() LayoutState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}
