package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/reversi-tui/internal/config"
	"github.com/vovakirdan/reversi-tui/internal/core"
	"github.com/vovakirdan/reversi-tui/internal/match"
)

type recordingSaver struct {
	results []match.Result
}

func (s *recordingSaver) SaveResult(res match.Result) error {
	s.results = append(s.results, res)
	return nil
}

// newHistorySession builds a session sitting on the history screen with a
// game in the given state behind it.
func newHistorySession(saver match.Saver, moves int) SessionModel {
	cfg := core.DefaultConfig()
	game := NewGameModel(cfg, config.DefaultReversiConfig(), saver, match.ModeLocal, "")
	if moves > 0 {
		game.placeAt(2, 4) // Accepted opening move for white
	}

	return SessionModel{
		game:    game,
		history: NewHistoryModel(nil, cfg.ScreenW, cfg.ScreenH),
		active:  screenHistory,
		width:   cfg.ScreenW,
		height:  cfg.ScreenH,
	}
}

func TestQuitFromHistoryRecordsAbandonedGame(t *testing.T) {
	saver := &recordingSaver{}
	sm := newHistorySession(saver, 1)

	next, _ := sm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if _, ok := next.(SessionModel); !ok {
		t.Fatalf("Update returned %T, want SessionModel", next)
	}

	if len(saver.results) != 1 {
		t.Fatalf("got %d saved results, want 1", len(saver.results))
	}
	res := saver.results[0]
	if res.EndReason != match.EndAbandoned {
		t.Errorf("EndReason = %q, want %q", res.EndReason, match.EndAbandoned)
	}
	if res.Moves != 1 {
		t.Errorf("Moves = %d, want 1", res.Moves)
	}
}

func TestQuitFromHistorySkipsUntouchedGame(t *testing.T) {
	saver := &recordingSaver{}
	sm := newHistorySession(saver, 0)

	sm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	if len(saver.results) != 0 {
		t.Errorf("got %d saved results, want 0 for a game without moves", len(saver.results))
	}
}

func TestBackFromHistoryReturnsToGame(t *testing.T) {
	saver := &recordingSaver{}
	sm := newHistorySession(saver, 1)

	next, _ := sm.Update(tea.KeyMsg{Type: tea.KeyEsc})
	got, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T, want SessionModel", next)
	}

	if got.active != screenGame {
		t.Errorf("active screen = %v, want game screen", got.active)
	}
	if len(saver.results) != 0 {
		t.Errorf("got %d saved results, want 0 when returning to the game", len(saver.results))
	}
}
