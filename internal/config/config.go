// Package config provides YAML-based configuration loading for the
// reversi platform: board theme and platform behavior knobs.
package config

// ReversiConfig contains all user-tunable configuration.
type ReversiConfig struct {
	Theme    ThemeConfig    `yaml:"theme"`
	Behavior BehaviorConfig `yaml:"behavior"`
}

// ThemeConfig defines how the board and pieces are drawn.
type ThemeConfig struct {
	WhitePiece      string `yaml:"white_piece"`      // Glyph for white pieces
	BlackPiece      string `yaml:"black_piece"`      // Glyph for black pieces
	EmptyCell       string `yaml:"empty_cell"`       // Glyph for empty cells
	ShowCoordinates bool   `yaml:"show_coordinates"` // Draw row/column labels around the board
}

// BehaviorConfig defines platform behavior around the rules engine.
type BehaviorConfig struct {
	// FreezeOnGameOver stops feeding clicks to the engine once the game is
	// over. Off by default: the engine itself never blocks moves, and the
	// permissive behavior is kept unless explicitly asked for.
	FreezeOnGameOver bool `yaml:"freeze_on_game_over"`
}

// WhiteRune returns the configured white piece glyph.
func (t ThemeConfig) WhiteRune() rune {
	return firstRune(t.WhitePiece, '○')
}

// BlackRune returns the configured black piece glyph.
func (t ThemeConfig) BlackRune() rune {
	return firstRune(t.BlackPiece, '●')
}

// EmptyRune returns the configured empty cell glyph.
func (t ThemeConfig) EmptyRune() rune {
	return firstRune(t.EmptyCell, '·')
}

func firstRune(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}
