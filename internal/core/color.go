package core

// Color represents a foreground color for a screen cell.
// The terminal layer maps these to ANSI colors.
type Color uint8

// Predefined colors for the board, pieces and chrome.
const (
	ColorDefault Color = iota
	ColorGreen
	ColorBrightGreen
	ColorWhite
	ColorBrightWhite
	ColorBlack
	ColorYellow
	ColorRed
	ColorCyan
	ColorGray
)
