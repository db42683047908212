package replay

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/crumbtrail/internal/bootstrap"
	"github.com/bnema/crumbtrail/internal/domain/entity"
	"github.com/bnema/crumbtrail/internal/infrastructure/headless"
)

// PaneView describes one pane.
type PaneView struct {
	Pane      entity.PaneID
	Status    entity.PaneStatus
	FilePath  string
	Selection entity.Selection
	TopLine   int
	Dirty     bool
	Focused   bool
}

// State is a point-in-time view of a workspace.
type State struct {
	Panes                 []PaneView
	Layout                headless.LayoutState
	SubNavigationDisabled bool
	History               []entity.HistoryEntry // oldest first
	Session               []headless.SessionEntry
	SessionIndex          int
	Breadcrumbs           entity.Breadcrumbs
	Tabs                  []string
	Notifications         []string
}

// Snapshot captures the workspace state.
func Snapshot(ctx context.Context, ws *bootstrap.Workspace) State {
	st := State{
		Layout:                ws.Layout.State(),
		SubNavigationDisabled: ws.Controller.SubNavigationDisabled(),
		History:               ws.History.All(ctx),
		Breadcrumbs:           ws.Renderer.Breadcrumbs(),
		Tabs:                  ws.Windows.Opened(),
		Notifications:         ws.Notifications.Messages(),
	}
	st.Session, st.SessionIndex = ws.Session.Entries()

	for _, id := range entity.PaneIDs {
		p := ws.Panes.Get(id)
		view := PaneView{Pane: id, Status: p.Status, FilePath: p.FilePath}
		if p.Editor != nil {
			view.Selection = p.Editor.Selection()
			view.TopLine = p.Editor.ScrollTop() / headless.LineHeight
			view.Dirty = p.Editor.IsDirty()
			view.Focused = p.Editor.HasFocus()
		}
		st.Panes = append(st.Panes, view)
	}
	return st
}

// Pane returns the view of id.
func (s State) Pane(id entity.PaneID) PaneView {
	for _, p := range s.Panes {
		if p.Pane == id {
			return p
		}
	}
	return PaneView{Pane: id}
}

// RenderPlain formats s as aligned plain text.
func RenderPlain(s State) string {
	var b strings.Builder
	for _, p := range s.Panes {
		fmt.Fprintf(&b, "%-10s %s\n", p.Pane, DescribePane(p))
	}
	fmt.Fprintf(&b, "%-10s visible=%t margin=%d main_visible=%t\n",
		"panel", s.Layout.SidePanelVisible, s.Layout.MainMarginRight, s.Layout.MainVisible)
	if s.SubNavigationDisabled {
		fmt.Fprintf(&b, "%-10s sub-navigation disabled\n", "warning")
	}

	names := make([]string, 0, len(s.History))
	for _, e := range s.History {
		names = append(names, e.DisplayName)
	}
	fmt.Fprintf(&b, "%-10s %s\n", "history", strings.Join(names, " "))

	if len(s.Session) > 0 {
		fmt.Fprintf(&b, "%-10s %d/%d %s\n", "session", s.SessionIndex+1, len(s.Session), s.Session[s.SessionIndex].URL)
	}
	if len(s.Breadcrumbs.Crumbs) > 0 {
		labels := make([]string, 0, len(s.Breadcrumbs.Crumbs))
		for _, c := range s.Breadcrumbs.Crumbs {
			labels = append(labels, c.Label)
		}
		fmt.Fprintf(&b, "%-10s %s\n", "crumbs", strings.Join(labels, " > "))
	}
	for _, url := range s.Tabs {
		fmt.Fprintf(&b, "%-10s %s\n", "tab", url)
	}
	return b.String()
}

// DescribePane renders a pane on one line.
func DescribePane(p PaneView) string {
	if p.Status != entity.PaneBound {
		return "(" + p.Status.String() + ")"
	}
	var flags []string
	if p.Dirty {
		flags = append(flags, "dirty")
	}
	if p.Focused {
		flags = append(flags, "focus")
	}
	out := fmt.Sprintf("%s [%d,%d] top=%d", p.FilePath, p.Selection.Start, p.Selection.End, p.TopLine)
	if len(flags) > 0 {
		out += " " + strings.Join(flags, " ")
	}
	return out
}
