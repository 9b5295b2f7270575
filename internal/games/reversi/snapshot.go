package reversi

// Snapshot is a value copy of everything observable about a game. Used by
// tests to compare states cell-for-cell and by the platform to hand the
// board to renderers without aliasing the live aggregate.
type Snapshot struct {
	Board      Board
	Turn       Player
	WhiteScore uint8
	BlackScore uint8
	GameOver   bool
}

// Snapshot returns the current game snapshot.
func (g *GameState) Snapshot() Snapshot {
	return Snapshot{
		Board:      g.Board,
		Turn:       g.Turn,
		WhiteScore: g.WhiteScore,
		BlackScore: g.BlackScore,
		GameOver:   g.GameOver(),
	}
}
