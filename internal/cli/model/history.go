// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/crumbtrail/internal/application/usecase"
	"github.com/bnema/crumbtrail/internal/cli/styles"
	"github.com/bnema/crumbtrail/internal/logging"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	chromeHeight  = 6
	minListHeight = 4
)

// HistoryModel is the Bubble Tea model for the interactive recent-file browser.
type HistoryModel struct {
	list   list.Model
	filter textinput.Model
	help   help.Model
	keys   styles.HistoryKeyMap

	matches      []usecase.HistoryMatch
	filterMode   bool
	confirmClear bool
	showHelp     bool
	width        int
	height       int
	selected     string
	err          error

	ctx       context.Context
	historyUC *usecase.SearchHistoryUseCase
	theme     *styles.Theme
}

// NewHistoryModel creates a history browser model pre-filtered with query.
func NewHistoryModel(
	ctx context.Context,
	theme *styles.Theme,
	historyUC *usecase.SearchHistoryUseCase,
	query string,
) HistoryModel {
	logging.FromContext(ctx).Debug().Str("query", query).Msg("creating history model")

	filter := styles.NewFilterInput(theme)
	filter.SetValue(query)

	m := HistoryModel{
		filter:    filter,
		help:      styles.NewStyledHelp(theme),
		keys:      styles.DefaultHistoryKeyMap(),
		ctx:       ctx,
		historyUC: historyUC,
		theme:     theme,
		width:     defaultWidth,
		height:    defaultHeight,
	}
	m.updateList()
	return m
}

// historyLoadedMsg carries the matches for the current filter.
type historyLoadedMsg struct {
	matches []usecase.HistoryMatch
}

// historyClearedMsg is sent when the history was cleared.
type historyClearedMsg struct {
	err error
}

// Init implements tea.Model.
func (m HistoryModel) Init() tea.Cmd {
	return m.search(m.filter.Value())
}

// Selected returns the deep link chosen with enter, or "".
func (m HistoryModel) Selected() string {
	return m.selected
}

// Err returns the last error reported by a command.
func (m HistoryModel) Err() error {
	return m.err
}

// Update implements tea.Model.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateList()
		return m, nil

	case tea.KeyMsg:
		switch {
		case m.confirmClear:
			return m.handleConfirmKey(msg)
		case m.filterMode:
			return m.handleFilterKey(msg)
		default:
			return m.handleNormalKey(msg)
		}

	case historyLoadedMsg:
		m.matches = msg.matches
		m.updateList()
		return m, nil

	case historyClearedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		return m, m.search(m.filter.Value())
	}

	return m, nil
}

func (m HistoryModel) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.confirmClear = false
	if msg.String() == "y" {
		return m, m.clearHistory()
	}
	return m, nil
}

func (m HistoryModel) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.filterMode = false
		m.filter.Blur()
		return m, nil
	}

	before := m.filter.Value()
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	if m.filter.Value() != before {
		return m, tea.Batch(cmd, m.search(m.filter.Value()))
	}
	return m, cmd
}

func (m HistoryModel) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	case key.Matches(msg, m.keys.Filter):
		m.filterMode = true
		m.filter.Focus()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Clear):
		if len(m.matches) > 0 {
			m.confirmClear = true
		}
		return m, nil
	case key.Matches(msg, m.keys.Open):
		if hi, ok := m.list.SelectedItem().(styles.HistoryItem); ok {
			m.selected = hi.Entry.URL
			return m, tea.Quit
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m HistoryModel) search(query string) tea.Cmd {
	ctx, uc := m.ctx, m.historyUC
	return func() tea.Msg {
		out := uc.Search(ctx, usecase.SearchInput{Query: query})
		return historyLoadedMsg{matches: out.Matches}
	}
}

func (m HistoryModel) clearHistory() tea.Cmd {
	ctx, uc := m.ctx, m.historyUC
	return func() tea.Msg {
		err := uc.Clear(ctx)
		if err != nil {
			logging.FromContext(ctx).Error().Err(err).Msg("failed to clear history")
		}
		return historyClearedMsg{err: err}
	}
}

func (m *HistoryModel) updateList() {
	items := make([]styles.HistoryItem, len(m.matches))
	for i, match := range m.matches {
		items[i] = styles.HistoryItem{Entry: match.Entry}
	}

	listHeight := max(m.height-chromeHeight, minListHeight)
	m.list = styles.NewHistoryList(m.theme, items, m.width, listHeight)
}

// View implements tea.Model.
func (m HistoryModel) View() string {
	t := m.theme

	header := t.Title.Render("Recent files") + " " + t.MutedBadge(strconv.Itoa(len(m.matches)))

	var filterBar string
	switch {
	case m.confirmClear:
		filterBar = t.WarningStyle.Render("Clear all recent files? (y/N)")
	case m.filterMode:
		filterBar = t.InputFocused.Render(m.filter.View())
	case m.filter.Value() != "":
		filterBar = t.Subtle.Render("Filter: ") + t.Highlight.Render(m.filter.Value())
	default:
		filterBar = t.Subtle.Render("Press / to filter, enter to print the link")
	}

	body := m.list.View()
	if len(m.matches) == 0 {
		body = t.Subtle.Render("No recent files.")
	}
	if m.err != nil {
		body = t.ErrorStyle.Render("Error: " + m.err.Error())
	}

	helpView := t.Subtle.Render("? for help • q to quit")
	if m.showHelp {
		helpView = m.help.View(m.keys)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, filterBar, "", body, "", helpView)
}
