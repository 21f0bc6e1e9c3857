package core

// Color represents a foreground color for a screen cell.
// Values are mapped to ANSI 256-color codes by the platform layer.
type Color uint8

// Predefined colors for game elements. Seasons, events, and entity kinds
// each pick from this palette in the renderer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)
