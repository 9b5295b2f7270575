package reversi

import "testing"

func TestOpeningMoveRejected(t *testing.T) {
	// From the start position White has no flanking run through (2,3):
	// the ray straight down hits White's own (3,3) immediately.
	g := New()
	if g.AttemptMove(2, 3) {
		t.Fatal("AttemptMove(2,3) should be illegal for White")
	}
	if g.Board != New().Board {
		t.Error("rejected move mutated the board")
	}
	if g.Turn != PlayerWhite {
		t.Error("rejected move changed the turn")
	}
}

func TestOpeningMoveAccepted(t *testing.T) {
	// (2,4) flanks Black's (3,4) against White's (4,4) straight down.
	g := New()
	if !g.HandleCellClick(2, 4) {
		t.Fatal("AttemptMove(2,4) should be legal for White")
	}

	if g.Cell(2, 4) != White {
		t.Error("target cell not placed")
	}
	if g.Cell(3, 4) != White {
		t.Error("flanked piece (3,4) not flipped")
	}
	if g.Cell(4, 3) != Black {
		t.Error("(4,3) lies on no igniting ray and must stay Black")
	}

	white, black := g.Scores()
	if white != 4 || black != 1 {
		t.Errorf("Scores() = (%d,%d), want (4,1)", white, black)
	}
	if g.Turn != PlayerBlack {
		t.Errorf("Turn = %v, want Black", g.Turn)
	}
}

func TestOccupiedTargetRejected(t *testing.T) {
	g := New()
	for _, pos := range [][2]int{{3, 3}, {3, 4}, {4, 3}, {4, 4}} {
		before := g.Board
		if g.AttemptMove(pos[0], pos[1]) {
			t.Errorf("AttemptMove(%d,%d) on occupied cell succeeded", pos[0], pos[1])
		}
		if g.Board != before {
			t.Errorf("AttemptMove(%d,%d) mutated the board", pos[0], pos[1])
		}
	}
}

func TestOutOfRangeRejected(t *testing.T) {
	g := New()
	before := g.Board
	for _, pos := range [][2]int{{-1, 4}, {8, 4}, {4, -1}, {4, 8}, {100, 100}} {
		if g.AttemptMove(pos[0], pos[1]) {
			t.Errorf("AttemptMove(%d,%d) out of range succeeded", pos[0], pos[1])
		}
	}
	if g.Board != before {
		t.Error("out-of-range attempts mutated the board")
	}
}

func TestNoMutationWhenNoRayIgnites(t *testing.T) {
	// A lone opponent run with no own piece behind it: rays get walked but
	// nothing may change.
	g := New()
	g.Board = Board{}
	g.Board[0][1] = Black
	g.Board[0][2] = Black
	g.Turn = PlayerWhite

	before := g.Board
	if g.AttemptMove(0, 0) {
		t.Fatal("move with no terminating own piece should be illegal")
	}
	if g.Board != before {
		t.Error("walked-but-unignited rays mutated the board")
	}
}

func TestMultipleRaysFlipTogether(t *testing.T) {
	// White at (2,2) ignites two rays at once: right through (2,3) into
	// (2,4), and diagonally through (3,3) into (4,4).
	g := New()
	if !g.HandleCellClick(2, 4) { // White
		t.Fatal("setup move 1 failed")
	}
	if !g.HandleCellClick(2, 3) { // Black
		t.Fatal("setup move 2 failed")
	}

	if !g.AttemptMove(2, 2) {
		t.Fatal("AttemptMove(2,2) should be legal for White")
	}
	for _, pos := range [][2]int{{2, 2}, {2, 3}, {2, 4}, {3, 3}} {
		if got := g.Cell(pos[0], pos[1]); got != White {
			t.Errorf("Cell(%d,%d) = %v, want White", pos[0], pos[1], got)
		}
	}
	if g.Cell(4, 3) != Black {
		t.Error("(4,3) lies on no igniting ray and must stay Black")
	}
}

func TestRayAbandonedOnFirstNonOpponentCell(t *testing.T) {
	tests := []struct {
		name  string
		first CellState // contents of the first stepped-to cell
	}{
		{"empty neighbor", Empty},
		{"own-color neighbor", White},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New()
			g.Board = Board{}
			g.Board[4][5] = tt.first
			g.Board[4][6] = Black
			g.Board[4][7] = White
			g.Turn = PlayerWhite

			before := g.Board
			if g.AttemptMove(4, 4) {
				t.Fatal("ray must be abandoned before any opponent cell is seen")
			}
			if g.Board != before {
				t.Error("abandoned ray mutated the board")
			}
		})
	}
}

func TestLockedOnWalkContinuesPastGap(t *testing.T) {
	// Once the walk has locked on to an opponent piece it keeps going until
	// it finds an own piece, even across empty cells; the walk-back then
	// claims the whole stretch.
	g := New()
	g.Board = Board{}
	g.Board[0][1] = Black
	g.Board[0][2] = Empty
	g.Board[0][3] = White
	g.Turn = PlayerWhite

	if !g.AttemptMove(0, 0) {
		t.Fatal("locked-on walk should ignite at (0,3)")
	}
	for col := 0; col <= 3; col++ {
		if got := g.Cell(0, col); got != White {
			t.Errorf("Cell(0,%d) = %v, want White", col, got)
		}
	}
}

func TestEdgeRunWithoutTerminatorRejected(t *testing.T) {
	// Opponent run straight into the board edge: lock-on, no ignition.
	g := New()
	g.Board = Board{}
	g.Board[0][0] = White // keep both colors on the board
	g.Board[7][5] = Black
	g.Board[7][6] = Black
	g.Board[7][7] = Black
	g.Turn = PlayerWhite

	before := g.Board
	if g.AttemptMove(7, 4) {
		t.Fatal("run exiting the board must not ignite")
	}
	if g.Board != before {
		t.Error("rejected edge run mutated the board")
	}
}

func TestLongRunFlips(t *testing.T) {
	g := New()
	g.Board = Board{}
	for col := 1; col <= 6; col++ {
		g.Board[5][col] = Black
	}
	g.Board[5][7] = White
	g.Turn = PlayerWhite

	if !g.AttemptMove(5, 0) {
		t.Fatal("full-row flank should be legal")
	}
	for col := 0; col <= 7; col++ {
		if got := g.Cell(5, col); got != White {
			t.Errorf("Cell(5,%d) = %v, want White", col, got)
		}
	}
}

func TestMoveDoesNotAdvanceTurn(t *testing.T) {
	// AttemptMove alone leaves the turn where it was; only the composed
	// click chain advances it.
	g := New()
	if !g.AttemptMove(2, 4) {
		t.Fatal("AttemptMove(2,4) should be legal")
	}
	if g.Turn != PlayerWhite {
		t.Errorf("AttemptMove advanced the turn to %v", g.Turn)
	}
}

func TestBlackReply(t *testing.T) {
	g := New()
	if !g.HandleCellClick(2, 4) {
		t.Fatal("White opening failed")
	}
	if !g.HandleCellClick(2, 3) {
		t.Fatal("Black reply (2,3) should be legal")
	}

	if g.Cell(3, 3) != Black {
		t.Error("(3,3) should be flipped to Black")
	}
	white, black := g.Scores()
	if white != 3 || black != 3 {
		t.Errorf("Scores() = (%d,%d), want (3,3)", white, black)
	}
	if g.Turn != PlayerWhite {
		t.Errorf("Turn = %v, want White", g.Turn)
	}
}
