// Package reversi implements the Othello/Reversi rules engine.
// The engine is pure logic with no external dependencies (especially no
// Bubble Tea): the platform layer feeds it resolved cell coordinates and
// key signals, and reads cells and scores back for display.
package reversi

// BoardSize is the side length of the playing grid.
const BoardSize = 8

// CellState is the occupancy of a single board cell.
type CellState int8

const (
	Empty CellState = iota
	White
	Black
)

// String returns a human-readable name for the cell state.
func (c CellState) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "Empty"
	}
}

// Player identifies one of the two sides. It is deliberately a separate
// type from CellState: a turn indicator can never be "empty".
type Player int8

const (
	PlayerWhite Player = iota
	PlayerBlack
)

// Cell maps a player to the cell state their pieces occupy.
func (p Player) Cell() CellState {
	if p == PlayerBlack {
		return Black
	}
	return White
}

// Opponent returns the other player.
func (p Player) Opponent() Player {
	if p == PlayerWhite {
		return PlayerBlack
	}
	return PlayerWhite
}

// String returns a human-readable name for the player.
func (p Player) String() string {
	if p == PlayerBlack {
		return "Black"
	}
	return "White"
}

// Board is the fixed 8x8 grid, addressed as [row][col].
// It is a value type: copies are deep and boards compare with ==.
type Board [BoardSize][BoardSize]CellState

func inBounds(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}
