package config

import (
	_ "embed"
)

//go:embed defaults/reversi.yaml
var defaultReversiYAML []byte

// DefaultReversiConfig returns the default configuration.
// Kept in sync with defaults/reversi.yaml.
func DefaultReversiConfig() ReversiConfig {
	return ReversiConfig{
		Theme: ThemeConfig{
			WhitePiece:      "○",
			BlackPiece:      "●",
			EmptyCell:       "·",
			ShowCoordinates: true,
		},
		Behavior: BehaviorConfig{
			FreezeOnGameOver: false,
		},
	}
}
