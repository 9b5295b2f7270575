package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/reversi-tui/internal/config"
	"github.com/vovakirdan/reversi-tui/internal/core"
	"github.com/vovakirdan/reversi-tui/internal/games/reversi"
	"github.com/vovakirdan/reversi-tui/internal/match"
)

// GameModel is the Bubble Tea model for one game of reversi. It owns the
// engine aggregate exclusively and feeds it resolved inputs one at a time:
// a click or cursor placement runs the full move chain, a pass or reset
// signal runs its own short chain.
type GameModel struct {
	game     *reversi.GameState
	track    *match.Match
	saver    match.Saver
	view     BoardView
	screen   *core.Screen
	layout   BoardLayout
	keys     *KeyMapper
	config   core.RuntimeConfig
	behavior config.BehaviorConfig
	mode     match.Mode
	session  string

	cursorRow int
	cursorCol int

	wantsHistory bool // Set when the user asks for the history screen
	quitting     bool
	resultSaved  bool // Whether the current game's result has been recorded
}

// NewGameModel creates a model for a fresh game.
func NewGameModel(cfg core.RuntimeConfig, appCfg config.ReversiConfig, saver match.Saver, mode match.Mode, session string) GameModel {
	return GameModel{
		game:      reversi.New(),
		track:     match.New(mode, session),
		saver:     saver,
		view:      NewBoardView(appCfg.Theme),
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		layout:    NewBoardLayout(cfg.ScreenW, cfg.ScreenH, appCfg.Theme.ShowCoordinates),
		keys:      NewKeyMapper(),
		config:    cfg,
		behavior:  appCfg.Behavior,
		mode:      mode,
		session:   session,
		cursorRow: reversi.BoardSize / 2,
		cursorCol: reversi.BoardSize / 2,
	}
}

// Init implements tea.Model.
func (m GameModel) Init() tea.Cmd {
	return nil
}

// WantsHistory reports and consumes a pending history-screen request.
func (m *GameModel) WantsHistory() bool {
	if !m.wantsHistory {
		return false
	}
	m.wantsHistory = false
	return true
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.finishGame()
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionUp:
		m.cursorRow = core.Clamp(m.cursorRow-1, 0, reversi.BoardSize-1)
	case core.ActionDown:
		m.cursorRow = core.Clamp(m.cursorRow+1, 0, reversi.BoardSize-1)
	case core.ActionLeft:
		m.cursorCol = core.Clamp(m.cursorCol-1, 0, reversi.BoardSize-1)
	case core.ActionRight:
		m.cursorCol = core.Clamp(m.cursorCol+1, 0, reversi.BoardSize-1)
	case core.ActionPlace:
		m.placeAt(m.cursorRow, m.cursorCol)
	case core.ActionPass:
		m.game.HandlePass()
	case core.ActionNewGame:
		m.newGame()
	case core.ActionHistory:
		m.wantsHistory = true
	}

	return m, nil
}

// handleMouse resolves left clicks to board cells.
func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	// Clicks outside the grid never reach the engine.
	row, col, ok := m.layout.CellAt(msg.X, msg.Y)
	if !ok {
		return m, nil
	}

	m.cursorRow, m.cursorCol = row, col
	m.placeAt(row, col)
	return m, nil
}

// handleResize processes window resize events. The game state survives a
// resize; only the layout is recomputed.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.layout = NewBoardLayout(msg.Width, msg.Height, m.layout.ShowCoords)
	return m, nil
}

// placeAt runs the click chain for one resolved cell.
func (m *GameModel) placeAt(row, col int) {
	if m.behavior.FreezeOnGameOver && m.game.GameOver() {
		return
	}

	if !m.game.HandleCellClick(row, col) {
		// Illegal move: silent no-op, the player just tries another cell.
		return
	}

	m.track.RecordMove()
	if m.game.GameOver() {
		m.saveResult(true)
	}
}

// newGame records the current game and resets the engine.
func (m *GameModel) newGame() {
	m.finishGame()
	m.game.HandleReset()
	m.track = match.New(m.mode, m.session)
	m.resultSaved = false
}

// finishGame records the result of the game in progress, if any.
func (m *GameModel) finishGame() {
	m.saveResult(m.game.GameOver())
}

// saveResult records the game once. Games without a single accepted move
// are not worth recording.
func (m *GameModel) saveResult(completed bool) {
	if m.resultSaved || m.saver == nil || m.track.Moves() == 0 {
		return
	}

	white, black := m.game.Scores()
	//nolint:errcheck // Best-effort save, play continues regardless
	m.saver.SaveResult(m.track.Finish(white, black, completed))
	m.resultSaved = true
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.view.Draw(m.screen, m.game, m.layout, m.cursorRow, m.cursorCol)
	return RenderScreen(m.screen)
}
