package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/frytris/internal/core"
	"github.com/vovakirdan/frytris/internal/engine"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// itemColors gives every item kind its own color.
var itemColors = map[engine.ItemKind]core.Color{
	engine.ItemBurger:  core.ColorOrange,
	engine.ItemPotato:  core.ColorWhite,
	engine.ItemKetchup: core.ColorBrightRed,
	engine.ItemMustard: core.ColorBrightYellow,
	engine.ItemDonut:   core.ColorBrightMagenta,
	engine.ItemOnion:   core.ColorBrightCyan,
}

// cellWidth is how many screen columns one board cell takes.
const cellWidth = 2

// cellAppearance returns the two runes and the color used to draw a board cell.
func cellAppearance(c engine.Cell) ([cellWidth]rune, core.Color) {
	switch {
	case c.IsFiller():
		return [cellWidth]rune{'█', '█'}, core.ColorYellow
	case c.IsItem():
		kind, _ := c.Kind()
		g := c.Glyph()
		return [cellWidth]rune{g, g}, itemColors[kind]
	default:
		return [cellWidth]rune{' ', '·'}, core.ColorGray
	}
}

// drawCell paints one board cell with its top-left corner at (x, y).
func drawCell(s *core.Screen, x, y int, c engine.Cell) {
	runes, color := cellAppearance(c)
	for i, r := range runes {
		s.SetCell(x+i, y, r, color)
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
