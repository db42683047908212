package styles

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/crumbtrail/internal/domain/entity"
)

const (
	maxNameLength  = 60
	maxPathLength  = 70
	ellipsisLength = 3
)

// HistoryItem represents a recent file for the list.
type HistoryItem struct {
	Entry entity.HistoryEntry
}

// FilterValue implements list.Item.
func (i HistoryItem) FilterValue() string {
	return i.Entry.FilePath()
}

// RangeLabel formats the stored selection, or "" when there is none.
func (i HistoryItem) RangeLabel() string {
	sel := i.Entry.Location.Selection
	if sel == nil {
		return ""
	}
	return fmt.Sprintf("%d-%d", sel.Start, sel.End)
}

// HistoryDelegate renders history items with theme styling.
type HistoryDelegate struct {
	Theme *Theme
}

// Height returns the height of each item.
func (d HistoryDelegate) Height() int { return 2 }

// Spacing returns the spacing between items.
func (d HistoryDelegate) Spacing() int { return 0 }

// Update handles item-level events.
func (d HistoryDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

// Render renders a single list item.
func (d HistoryDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	hi, ok := item.(HistoryItem)
	if !ok {
		return
	}

	t := d.Theme
	isSelected := index == m.Index()

	name := truncate(hi.Entry.DisplayName, maxNameLength)
	path := truncate(hi.Entry.FilePath(), maxPathLength)

	cursor := cursorEmpty
	titleStyle := t.ListItemTitle
	pathStyle := t.ListItemDesc
	if isSelected {
		cursor = cursorSelected
		titleStyle = titleStyle.Foreground(t.Accent).Bold(true)
		pathStyle = pathStyle.Foreground(t.Text)
	}

	line1 := lipgloss.JoinHorizontal(
		lipgloss.Left,
		t.Highlight.Render(cursor),
		titleStyle.Render(name),
	)

	line2 := lipgloss.JoinHorizontal(
		lipgloss.Left,
		strings.Repeat(" ", len(cursorEmpty)),
		pathStyle.Render(path),
	)
	if r := hi.RangeLabel(); r != "" {
		line2 = lipgloss.JoinHorizontal(lipgloss.Left, line2, " ", t.MutedBadge(r))
	}

	_, _ = fmt.Fprintf(w, "%s\n%s", line1, line2)
}

// NewHistoryList creates a themed list for history items.
func NewHistoryList(theme *Theme, items []HistoryItem, width, height int) list.Model {
	listItems := make([]list.Item, len(items))
	for i, item := range items {
		listItems[i] = item
	}

	l := list.New(listItems, HistoryDelegate{Theme: theme}, width, height)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowFilter(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.SetShowPagination(true)

	l.Styles.PaginationStyle = lipgloss.NewStyle().Foreground(theme.Muted)
	l.Styles.ActivePaginationDot = lipgloss.NewStyle().Foreground(theme.Accent)
	l.Styles.InactivePaginationDot = lipgloss.NewStyle().Foreground(theme.Muted)

	return l
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-ellipsisLength]) + "..."
}
