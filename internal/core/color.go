package core

// Color is the foreground color of a screen cell. The renderer maps each
// value to an ANSI 256-color code.
type Color uint8

// Palette. Fries are yellow, each item kind has its own color, frames are gray.
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
