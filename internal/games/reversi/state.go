package reversi

// GameState is the single mutable aggregate for one game: the board, the
// active player, and per-player piece counts. The counts are derived and
// can always be recomputed from the board via Recount.
//
// A GameState is owned by exactly one caller (a TUI model or a match) and
// must not be shared across goroutines without external serialization:
// AttemptMove is a multi-step scan-then-mutate and is not safe under
// interleaved writes.
type GameState struct {
	Board      Board
	Turn       Player
	WhiteScore uint8
	BlackScore uint8
}

// New creates a game in the standard starting position.
func New() *GameState {
	g := &GameState{}
	g.Reset()
	return g
}

// Reset overwrites every cell, puts the four center pieces down, sets both
// scores to 2 and hands the turn to White. Called at startup and on every
// new-game signal; calling it twice in a row is the same as calling it once.
func (g *GameState) Reset() {
	g.Board = Board{}
	g.WhiteScore = 2
	g.BlackScore = 2
	g.Turn = PlayerWhite
	g.Board[3][3] = White
	g.Board[4][4] = White
	g.Board[3][4] = Black
	g.Board[4][3] = Black
}

// Cell returns the occupancy of a single cell. Out-of-range coordinates
// read as Empty.
func (g *GameState) Cell(row, col int) CellState {
	if !inBounds(row, col) {
		return Empty
	}
	return g.Board[row][col]
}

// Scores returns the white and black piece counts.
func (g *GameState) Scores() (white, black uint8) {
	return g.WhiteScore, g.BlackScore
}

// Recount scans the board and overwrites both score fields. Idempotent;
// runs after every successful move and after every reset.
func (g *GameState) Recount() {
	var white, black uint8
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			switch g.Board[row][col] {
			case White:
				white++
			case Black:
				black++
			}
		}
	}
	g.WhiteScore = white
	g.BlackScore = black
}

// GameOver reports whether the game has ended: one color is absent from
// the board, or no empty cell remains. It is purely observational; the
// engine keeps accepting moves after it turns true, and the caller decides
// what to display or block.
func (g *GameState) GameOver() bool {
	existWhite := false
	existBlack := false
	full := true
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			switch g.Board[row][col] {
			case White:
				existWhite = true
			case Black:
				existBlack = true
			default:
				full = false
			}
		}
	}
	return !existWhite || !existBlack || full
}

// Winner returns the player with the higher score and true, or false on a
// tie. Layered on top of the scores; the core event chain never calls it.
func (g *GameState) Winner() (Player, bool) {
	switch {
	case g.WhiteScore > g.BlackScore:
		return PlayerWhite, true
	case g.BlackScore > g.WhiteScore:
		return PlayerBlack, true
	default:
		return PlayerWhite, false
	}
}

// AdvanceTurn hands the turn to the other player after a successful move.
func (g *GameState) AdvanceTurn() {
	g.Turn = g.Turn.Opponent()
}

// SkipTurn toggles the active player on an explicit pass signal. It is
// behaviorally identical to AdvanceTurn but invoked from a distinct
// external trigger.
func (g *GameState) SkipTurn() {
	g.Turn = g.Turn.Opponent()
}

// HandleCellClick runs the full chain for one resolved click: attempt the
// move, and on success advance the turn and recount. Returns whether a
// move occurred. Illegal clicks are silent no-ops.
func (g *GameState) HandleCellClick(row, col int) bool {
	if !g.AttemptMove(row, col) {
		return false
	}
	g.AdvanceTurn()
	g.Recount()
	return true
}

// HandleReset runs the new-game chain: reset and recount.
func (g *GameState) HandleReset() {
	g.Reset()
	g.Recount()
}

// HandlePass runs the skip-turn chain.
func (g *GameState) HandlePass() {
	g.SkipTurn()
}
