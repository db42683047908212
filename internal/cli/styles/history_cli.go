package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/crumbtrail/internal/domain/entity"
)

// HistoryRenderer renders the recent-file list for non-interactive output.
type HistoryRenderer struct {
	theme *Theme
}

// NewHistoryRenderer creates a history renderer with the given theme.
func NewHistoryRenderer(theme *Theme) *HistoryRenderer {
	return &HistoryRenderer{theme: theme}
}

// RenderEntries renders entries in the order given, one per line.
func (r *HistoryRenderer) RenderEntries(entries []entity.HistoryEntry) string {
	if len(entries) == 0 {
		return r.RenderEmpty()
	}

	nameWidth := 0
	for _, e := range entries {
		nameWidth = max(nameWidth, lipgloss.Width(e.DisplayName))
	}
	nameStyle := r.theme.Highlight.Width(nameWidth)
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	var sb strings.Builder
	sb.WriteString("\n")
	for _, e := range entries {
		item := HistoryItem{Entry: e}
		line := fmt.Sprintf("  %s %s  %s",
			iconStyle.Render(IconFile),
			nameStyle.Render(e.DisplayName),
			r.theme.Subtle.Render(e.FilePath()),
		)
		if rng := item.RangeLabel(); rng != "" {
			line += " " + r.theme.MutedBadge(rng)
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderEmpty renders the message shown when no entries match.
func (r *HistoryRenderer) RenderEmpty() string {
	return fmt.Sprintf("\n  %s %s\n",
		lipgloss.NewStyle().Foreground(r.theme.Muted).Render(IconInfo),
		r.theme.Subtle.Render("No recent files."),
	)
}

// RenderCleared renders the confirmation after the history was cleared.
func (r *HistoryRenderer) RenderCleared(count int) string {
	return fmt.Sprintf("\n  %s Cleared %s\n",
		lipgloss.NewStyle().Foreground(r.theme.Success).Render(IconTrash),
		r.theme.Highlight.Render(fmt.Sprintf("%d entries", count)),
	)
}

// PlainEntries renders entries as tab-separated "path<TAB>link" lines.
func PlainEntries(entries []entity.HistoryEntry) string {
	var sb strings.Builder
	for _, e := range entries {
		sb.WriteString(e.FilePath())
		sb.WriteByte('\t')
		sb.WriteString(e.URL)
		sb.WriteByte('\n')
	}
	return sb.String()
}
