package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/reversi-tui/internal/storage"
)

// maxHistoryRows limits how many matches are loaded into the table.
const maxHistoryRows = 100

// HistoryKeyMap defines the key bindings for the history screen.
type HistoryKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Back, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for the match history screen.
type HistoryModel struct {
	store    *storage.Store
	table    table.Model
	help     help.Model
	keys     HistoryKeyMap
	tally    storage.Tally
	width    int
	height   int
	quitting bool
	goBack   bool // True if user pressed back (not quit)
}

// NewHistoryModel creates a history model and loads recent matches.
func NewHistoryModel(store *storage.Store, width, height int) HistoryModel {
	h := help.New()
	h.ShowAll = false

	m := HistoryModel{
		store:  store,
		keys:   DefaultHistoryKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}

	m.table = m.createTable()
	m.reload()

	return m
}

// createTable creates the match table with appropriate columns.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Date", Width: 16},
		{Title: "Mode", Width: 6},
		{Title: "Result", Width: 10},
		{Title: "Score", Width: 9},
		{Title: "Moves", Width: 6},
		{Title: "End", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(historyTableHeight(m.height)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// historyTableHeight leaves room for title, tally, help and margins.
func historyTableHeight(screenH int) int {
	h := screenH - 8
	if h < 3 {
		h = 3
	}
	return h
}

// reload refreshes matches and tally from the store.
func (m *HistoryModel) reload() {
	if m.store == nil {
		m.table.SetRows(nil)
		m.tally = storage.Tally{}
		return
	}

	entries, err := m.store.RecentMatches(maxHistoryRows)
	if err != nil {
		entries = nil
	}
	if tally, err := m.store.MatchTally(); err == nil {
		m.tally = tally
	}

	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rows[i] = table.Row{
			e.CreatedAt.Format("Jan 02 15:04"),
			e.Mode,
			e.Result,
			fmt.Sprintf("%d-%d", e.WhiteScore, e.BlackScore),
			fmt.Sprintf("%d", e.Moves),
			e.EndReason,
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init implements tea.Model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goBack = true
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(historyTableHeight(msg.Height))
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// IsQuitting reports whether the user quit from this screen.
func (m HistoryModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack reports and consumes the back request.
func (m *HistoryModel) WantsBack() bool {
	if !m.goBack {
		return false
	}
	m.goBack = false
	return true
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	title := lipgloss.NewStyle().Bold(true).Render("Match History")

	tallyLine := fmt.Sprintf("completed: %d   white wins: %d   black wins: %d   draws: %d",
		m.tally.Total, m.tally.WhiteWins, m.tally.BlackWins, m.tally.Draws)

	body := m.table.View()
	if len(m.table.Rows()) == 0 {
		body = "No matches recorded yet."
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		tallyLine,
		"",
		body,
		"",
		m.help.View(m.keys),
	)
}
