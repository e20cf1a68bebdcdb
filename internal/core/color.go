package core

// Color is the foreground colour of a screen cell.
// Frontends map it to ANSI codes (terminal) or RGBA (window).
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightYellow
	ColorGray
)
