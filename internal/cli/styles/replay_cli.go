package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/crumbtrail/internal/domain/entity"
	"github.com/bnema/crumbtrail/internal/replay"
)

// ReplayRenderer renders workspace snapshots taken by the replay runner.
type ReplayRenderer struct {
	theme *Theme
}

// NewReplayRenderer creates a replay renderer with the given theme.
func NewReplayRenderer(theme *Theme) *ReplayRenderer {
	return &ReplayRenderer{theme: theme}
}

// RenderState renders both panes side by side followed by history and session lines.
func (r *ReplayRenderer) RenderState(s replay.State) string {
	main := r.renderPane(s.Pane(entity.PaneMain), s.Layout.MainVisible)
	secondary := r.renderPane(s.Pane(entity.PaneSecondary), s.Layout.SidePanelVisible)
	panes := lipgloss.JoinHorizontal(lipgloss.Top, main, " ", secondary)

	labelStyle := r.theme.Subtle.Width(10)
	var sb strings.Builder
	sb.WriteString(panes)
	sb.WriteString("\n")

	if s.SubNavigationDisabled {
		sb.WriteString(fmt.Sprintf("%s %s\n",
			r.theme.WarningStyle.Render(IconWarning),
			r.theme.WarningStyle.Render("sub-navigation disabled"),
		))
	}

	names := make([]string, 0, len(s.History))
	for _, e := range s.History {
		names = append(names, e.DisplayName)
	}
	sb.WriteString(labelStyle.Render("history") + r.theme.Normal.Render(strings.Join(names, " ")) + "\n")

	if len(s.Session) > 0 {
		pos := fmt.Sprintf("%d/%d ", s.SessionIndex+1, len(s.Session))
		sb.WriteString(labelStyle.Render("session") + r.theme.Highlight.Render(pos) +
			r.theme.Normal.Render(s.Session[s.SessionIndex].URL) + "\n")
	}
	for _, url := range s.Tabs {
		sb.WriteString(labelStyle.Render("tab") + r.theme.Normal.Render(url) + "\n")
	}
	for _, msg := range s.Notifications {
		sb.WriteString(r.theme.WarningStyle.Render(IconInfo+" "+msg) + "\n")
	}
	return sb.String()
}

func (r *ReplayRenderer) renderPane(p replay.PaneView, visible bool) string {
	border := r.theme.Box.Padding(0, 1)
	if p.Focused {
		border = border.BorderForeground(r.theme.Accent)
	}
	if !visible {
		border = border.BorderForeground(r.theme.Muted).Faint(true)
	}

	title := r.theme.Title.Render(string(p.Pane))
	return border.Render(lipgloss.JoinVertical(lipgloss.Left, title, replay.DescribePane(p)))
}
