package core

// Color represents a screen colour.
// Uses ANSI 256-color codes for terminal compatibility; the platform maps
// each value to a lipgloss style.
type Color uint8

// Predefined colors for game elements and backgrounds.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorWhite
	ColorBrightGreen
	ColorBrightYellow
	ColorOrange
	ColorGray
	ColorBlack
	ColorSlate
)
