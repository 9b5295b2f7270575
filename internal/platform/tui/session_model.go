package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/reversi-tui/internal/config"
	"github.com/vovakirdan/reversi-tui/internal/core"
	"github.com/vovakirdan/reversi-tui/internal/match"
	"github.com/vovakirdan/reversi-tui/internal/storage"
)

// sessionScreen identifies which screen a session is showing.
type sessionScreen int

const (
	screenGame sessionScreen = iota
	screenHistory
)

// SessionModel is the top-level model for one player session, local or
// remote. It owns the game screen and the match history screen and
// switches between them.
type SessionModel struct {
	game    GameModel
	history HistoryModel
	active  sessionScreen

	store  *storage.Store
	width  int
	height int
}

// NewSessionModel creates a session showing a fresh game.
func NewSessionModel(cfg core.RuntimeConfig, appCfg config.ReversiConfig, store *storage.Store, mode match.Mode, session string) SessionModel {
	return SessionModel{
		game:   NewGameModel(cfg, appCfg, NewStoreSaver(store), mode, session),
		store:  store,
		active: screenGame,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
	}
}

// Init implements tea.Model.
func (m SessionModel) Init() tea.Cmd {
	return m.game.Init()
}

// Update routes messages to the active screen and handles transitions.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
	}

	switch m.active {
	case screenHistory:
		next, cmd := m.history.Update(msg)
		hist, ok := next.(HistoryModel)
		if !ok {
			return m, cmd
		}
		m.history = hist
		if m.history.IsQuitting() {
			// The game screen records its pending result on quit;
			// do the same when the quit comes from here.
			m.game.finishGame()
			return m, cmd
		}
		if m.history.WantsBack() {
			m.active = screenGame
		}
		return m, cmd

	default:
		next, cmd := m.game.Update(msg)
		game, ok := next.(GameModel)
		if !ok {
			return m, cmd
		}
		m.game = game
		if m.game.WantsHistory() {
			m.history = NewHistoryModel(m.store, m.width, m.height)
			m.active = screenHistory
		}
		return m, cmd
	}
}

// Run starts a local session and blocks until the player quits.
func Run(cfg core.RuntimeConfig, appCfg config.ReversiConfig, store *storage.Store) error {
	session := match.NewSessionID("local")
	model := NewSessionModel(cfg, appCfg, store, match.ModeLocal, string(session))

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Clicking a cell places a piece
	)

	_, err := p.Run()
	return err
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.active == screenHistory {
		return m.history.View()
	}
	return m.game.View()
}
