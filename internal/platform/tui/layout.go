package tui

import (
	"github.com/vovakirdan/reversi-tui/internal/core"
	"github.com/vovakirdan/reversi-tui/internal/games/reversi"
)

// Cell dimensions in screen characters.
const (
	cellWidth  = 4
	cellHeight = 2
)

// BoardLayout maps between screen coordinates and board cells. It owns the
// pointer-to-grid conversion: clicks outside the grid are filtered here and
// never reach the rules engine.
type BoardLayout struct {
	X, Y       int  // Top-left of the grid interior
	ShowCoords bool // Whether coordinate labels are drawn
}

// NewBoardLayout centers the board in the given screen dimensions.
func NewBoardLayout(screenW, screenH int, showCoords bool) BoardLayout {
	w := reversi.BoardSize * cellWidth
	h := reversi.BoardSize * cellHeight
	return BoardLayout{
		X:          (screenW - w) / 2,
		Y:          core.Max((screenH-h)/2, hudHeight),
		ShowCoords: showCoords,
	}
}

// GridRect returns the screen region covered by the cell grid.
func (l BoardLayout) GridRect() core.Rect {
	return core.NewRect(l.X, l.Y, reversi.BoardSize*cellWidth, reversi.BoardSize*cellHeight)
}

// BorderRect returns the region of the board's outer box.
func (l BoardLayout) BorderRect() core.Rect {
	return core.NewRect(l.X-1, l.Y-1, reversi.BoardSize*cellWidth+2, reversi.BoardSize*cellHeight+2)
}

// CellAt resolves a screen position to board coordinates.
// Returns false for positions outside the grid; only in-bounds (row, col)
// pairs are ever produced.
func (l BoardLayout) CellAt(x, y int) (row, col int, ok bool) {
	if !l.GridRect().Contains(x, y) {
		return 0, 0, false
	}
	col = (x - l.X) / cellWidth
	row = (y - l.Y) / cellHeight
	return row, col, true
}

// CellCenter returns the screen position of a cell's piece glyph.
func (l BoardLayout) CellCenter(row, col int) (x, y int) {
	return l.X + col*cellWidth + cellWidth/2, l.Y + row*cellHeight + cellHeight/2
}

// FitsIn reports whether the board (with chrome) fits the screen.
func (l BoardLayout) FitsIn(screenW, screenH int) bool {
	b := l.BorderRect()
	return b.X >= 0 && b.Y >= 1 && b.Right() <= screenW && b.Bottom()+footerHeight <= screenH
}
