package reversi

// AttemptMove tries to place the active player's piece at (row, col).
//
// For each of the eight directions a ray is walked outward from the target.
// The first stepped-to cell must hold the opponent's color or the ray is
// abandoned; once the walk has locked on to an opponent piece it keeps
// going until it reaches one of the active player's pieces (the ray
// "ignites") or leaves the board. Every cell strictly between an ignition
// cell and the target is flipped to the active player's color, and the
// target itself is placed if at least one ray ignited.
//
// Returns false with the board untouched when the target is occupied,
// out of range, or no ray ignites. Turn advancement is the caller's
// responsibility.
func (g *GameState) AttemptMove(row, col int) bool {
	if !inBounds(row, col) {
		return false
	}
	if g.Board[row][col] != Empty {
		return false
	}

	current := g.Turn.Cell()
	target := g.Turn.Opponent().Cell()

	found := false
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}

			r, c := row, col
			lockOn := false
			ignite := false
			for {
				r += dr
				c += dc
				if !inBounds(r, c) {
					break
				}
				if !lockOn && g.Board[r][c] != target {
					break
				}
				lockOn = true
				if g.Board[r][c] == current {
					ignite = true
					found = true
					break
				}
			}

			if ignite {
				// Walk back from the ignition cell, flipping everything up
				// to (but excluding) the target cell.
				for r != row || c != col {
					g.Board[r][c] = current
					r -= dr
					c -= dc
				}
			}
		}
	}

	if !found {
		return false
	}
	g.Board[row][col] = current
	return true
}
