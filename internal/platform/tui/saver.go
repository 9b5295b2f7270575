package tui

import (
	"github.com/vovakirdan/reversi-tui/internal/match"
	"github.com/vovakirdan/reversi-tui/internal/storage"
)

// storeSaver adapts storage.Store to the match.Saver interface.
type storeSaver struct {
	store *storage.Store
}

// NewStoreSaver wraps a store as a match result saver.
// Returns nil for a nil store so callers can treat "no database" uniformly.
func NewStoreSaver(store *storage.Store) match.Saver {
	if store == nil {
		return nil
	}
	return storeSaver{store: store}
}

// SaveResult persists one finished match.
func (s storeSaver) SaveResult(res match.Result) error {
	_, err := s.store.SaveMatch(storage.MatchRecord{
		Mode:         string(res.Mode),
		Session:      res.Session,
		WhiteScore:   res.WhiteScore,
		BlackScore:   res.BlackScore,
		Result:       res.Outcome,
		EndReason:    res.EndReason,
		Moves:        res.Moves,
		DurationSecs: res.DurationSecs,
	})
	return err
}
