package tui

import (
	"fmt"

	"github.com/vovakirdan/reversi-tui/internal/config"
	"github.com/vovakirdan/reversi-tui/internal/core"
	"github.com/vovakirdan/reversi-tui/internal/games/reversi"
)

// Vertical chrome around the board.
const (
	hudHeight    = 3
	footerHeight = 2
)

// BoardView draws a game into a screen buffer. It reads the engine only
// through its cell and score queries, never reaching into the board
// directly: the view is a collaborator, not an owner.
type BoardView struct {
	theme config.ThemeConfig
}

// NewBoardView creates a view with the given theme.
func NewBoardView(theme config.ThemeConfig) BoardView {
	return BoardView{theme: theme}
}

// Draw renders the whole frame: HUD, board, cursor and footer.
func (v BoardView) Draw(dst *core.Screen, g *reversi.GameState, layout BoardLayout, cursorRow, cursorCol int) {
	dst.Clear()

	if !layout.FitsIn(dst.Width(), dst.Height()) {
		v.drawTooSmall(dst)
		return
	}

	v.drawHUD(dst, g, layout)
	v.drawBoard(dst, g, layout)
	v.drawCursor(dst, layout, cursorRow, cursorCol)
	if layout.ShowCoords {
		v.drawCoordinates(dst, layout)
	}
	v.drawFooter(dst, g)
}

func (v BoardView) drawTooSmall(dst *core.Screen) {
	dst.DrawTextCentered(dst.Height()/2, "Window too small")
	dst.DrawTextCentered(dst.Height()/2+1, "Please resize terminal")
}

func (v BoardView) drawHUD(dst *core.Screen, g *reversi.GameState, layout BoardLayout) {
	border := layout.BorderRect()

	dst.DrawTextCentered(0, "Reversi")

	white, black := g.Scores()
	whiteLabel := fmt.Sprintf("white: %d", white)
	blackLabel := fmt.Sprintf("black: %d", black)
	dst.DrawTextColored(border.X, 1, whiteLabel, core.ColorBrightWhite)
	dst.DrawTextColored(border.Right()-len(blackLabel), 1, blackLabel, core.ColorGray)

	turnLabel := fmt.Sprintf("turn: %s", g.Turn)
	dst.DrawTextColored((dst.Width()-len(turnLabel))/2, 1, turnLabel, core.ColorYellow)
}

func (v BoardView) drawBoard(dst *core.Screen, g *reversi.GameState, layout BoardLayout) {
	dst.DrawBox(layout.BorderRect(), core.ColorGreen)

	for row := 0; row < reversi.BoardSize; row++ {
		for col := 0; col < reversi.BoardSize; col++ {
			x, y := layout.CellCenter(row, col)
			r, c := v.cellGlyph(g.Cell(row, col))
			dst.SetCell(x, y, r, c)
		}
	}
}

// cellGlyph maps a cell state to its glyph and color.
func (v BoardView) cellGlyph(state reversi.CellState) (rune, core.Color) {
	switch state {
	case reversi.White:
		return v.theme.WhiteRune(), core.ColorBrightWhite
	case reversi.Black:
		return v.theme.BlackRune(), core.ColorGray
	default:
		return v.theme.EmptyRune(), core.ColorGreen
	}
}

func (v BoardView) drawCursor(dst *core.Screen, layout BoardLayout, row, col int) {
	x, y := layout.CellCenter(row, col)
	dst.SetCell(x-1, y, '[', core.ColorYellow)
	dst.SetCell(x+1, y, ']', core.ColorYellow)
}

func (v BoardView) drawCoordinates(dst *core.Screen, layout BoardLayout) {
	border := layout.BorderRect()
	for col := 0; col < reversi.BoardSize; col++ {
		x, _ := layout.CellCenter(0, col)
		dst.SetCell(x, border.Y-1, rune('a'+col), core.ColorGray)
	}
	for row := 0; row < reversi.BoardSize; row++ {
		_, y := layout.CellCenter(row, 0)
		dst.SetCell(border.X-2, y, rune('1'+row), core.ColorGray)
	}
}

func (v BoardView) drawFooter(dst *core.Screen, g *reversi.GameState) {
	y := dst.Height() - 1

	if g.GameOver() {
		banner := "Game Over - draw"
		if winner, decided := g.Winner(); decided {
			banner = fmt.Sprintf("Game Over - %s wins", winner)
		}
		dst.DrawTextColored((dst.Width()-len(banner))/2, y-1, banner, core.ColorRed)
	}

	help := "click/enter: place  p: pass  n: new game  t: history  q: quit"
	dst.DrawTextColored((dst.Width()-len(help))/2, y, help, core.ColorGray)
}
