package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
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

// PieceColors maps block color ids (1..7, catalog order I J L O S T Z) to screen colors.
// Index 0 is the empty cell.
var PieceColors = [8]Color{
	ColorDefault,
	ColorCyan,
	ColorBlue,
	ColorOrange,
	ColorYellow,
	ColorGreen,
	ColorMagenta,
	ColorRed,
}

// PieceColor returns the screen color for a block color id.
// Unknown ids render in gray.
func PieceColor(id uint8) Color {
	if int(id) >= len(PieceColors) {
		return ColorGray
	}
	return PieceColors[id]
}
