package core

// Color represents a foreground color for a screen cell.
// The platform maps each one to an ANSI 256-color code.
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
	ColorDarkGray // floor
	ColorBrown    // bricks
)

// Bright returns the bright variant of a basic color, or c itself.
func (c Color) Bright() Color {
	if c >= ColorRed && c <= ColorWhite {
		return c + ColorBrightRed - ColorRed
	}
	return c
}
