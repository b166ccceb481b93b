// Package engine implements the falling-block game core: board, piece catalog,
// movement and rotation, lock-and-clear scoring, level progression and the
// play/pause/game-over state machine.
//
// The package has no external dependencies and performs no I/O. Hosts drive it
// through Session.OnDropTick, Session.OnLevelTick and Session.OnInput (or through
// a Scheduler) and must serialize those calls.
package engine

import "strings"

// ItemKind identifies a decorative item cell.
type ItemKind uint8

const (
	ItemBurger ItemKind = iota
	ItemPotato
	ItemKetchup
	ItemMustard
	ItemDonut
	ItemOnion

	numItemKinds
)

var itemNames = [numItemKinds]string{"burger", "potato", "ketchup", "mustard", "donut", "onion"}

// ItemKinds returns every item kind in declaration order.
func ItemKinds() []ItemKind {
	kinds := make([]ItemKind, numItemKinds)
	for i := range kinds {
		kinds[i] = ItemKind(i)
	}
	return kinds
}

// Valid reports whether k is one of the declared kinds.
func (k ItemKind) Valid() bool {
	return k < numItemKinds
}

// String returns the lower-case item name.
func (k ItemKind) String() string {
	if !k.Valid() {
		return "unknown"
	}
	return itemNames[k]
}

// ParseItemKind resolves an item name (case-insensitive).
func ParseItemKind(s string) (ItemKind, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range itemNames {
		if name == s {
			return ItemKind(i), true
		}
	}
	return 0, false
}

// Cell is the value held by one grid cell: Empty, Filler or Item(kind).
// Two cells are equal only if they carry the same tag and, for items, the same kind.
type Cell uint8

const (
	Empty Cell = iota
	Filler

	itemBase
)

// Item returns the cell value for an item of the given kind.
func Item(k ItemKind) Cell {
	if !k.Valid() {
		panic("engine: invalid item kind")
	}
	return itemBase + Cell(k)
}

// IsEmpty reports whether the cell holds nothing.
func (c Cell) IsEmpty() bool {
	return c == Empty
}

// IsFiller reports whether the cell holds filler.
func (c Cell) IsFiller() bool {
	return c == Filler
}

// IsItem reports whether the cell holds an item.
func (c Cell) IsItem() bool {
	return c >= itemBase && c < itemBase+Cell(numItemKinds)
}

// Kind returns the item kind for item cells.
func (c Cell) Kind() (ItemKind, bool) {
	if !c.IsItem() {
		return 0, false
	}
	return ItemKind(c - itemBase), true
}

// String returns a short human-readable name.
func (c Cell) String() string {
	switch {
	case c == Empty:
		return "empty"
	case c == Filler:
		return "filler"
	case c.IsItem():
		k, _ := c.Kind()
		return k.String()
	default:
		return "invalid"
	}
}

// Glyph rows are used to describe shapes and boards compactly:
//
//	'.' empty, '#' filler, 'B' burger, 'P' potato, 'K' ketchup,
//	'M' mustard, 'D' donut, 'O' onion.
var itemGlyphs = [numItemKinds]rune{'B', 'P', 'K', 'M', 'D', 'O'}

// Glyph returns the rune used for the cell in glyph rows.
func (c Cell) Glyph() rune {
	switch {
	case c == Empty:
		return '.'
	case c == Filler:
		return '#'
	case c.IsItem():
		k, _ := c.Kind()
		return itemGlyphs[k]
	default:
		return '?'
	}
}

// CellFromGlyph is the inverse of Glyph.
func CellFromGlyph(r rune) (Cell, bool) {
	switch r {
	case '.', ' ':
		return Empty, true
	case '#':
		return Filler, true
	}
	for i, g := range itemGlyphs {
		if g == r || g+('a'-'A') == r {
			return Item(ItemKind(i)), true
		}
	}
	return Empty, false
}
