package engine

import "strings"

// Board dimensions.
const (
	BoardWidth  = 10
	BoardHeight = 20
)

// Point is a (row, col) coordinate. Row 0 is the top (spawn) row.
type Point struct {
	Row, Col int
}

// Board is a fixed-size grid of cells.
type Board struct {
	width  int
	height int
	cells  [][]Cell
}

// NewBoard creates an empty BoardHeight x BoardWidth board.
func NewBoard() *Board {
	b := &Board{width: BoardWidth, height: BoardHeight}
	b.cells = make([][]Cell, b.height)
	for y := range b.cells {
		b.cells[y] = make([]Cell, b.width)
	}
	return b
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// At returns the cell at (row, col), or Empty when out of bounds.
func (b *Board) At(row, col int) Cell {
	if row < 0 || row >= b.height || col < 0 || col >= b.width {
		return Empty
	}
	return b.cells[row][col]
}

// set writes a single cell; out-of-bounds writes are ignored.
func (b *Board) set(row, col int, c Cell) {
	if row < 0 || row >= b.height || col < 0 || col >= b.width {
		return
	}
	b.cells[row][col] = c
}

// IsOccupiable reports whether shape can rest with its top-left at anchor.
// Cells above row 0 are allowed; cells past the floor or either wall, or over a
// non-empty board cell, collide.
func (b *Board) IsOccupiable(shape Shape, anchor Point) bool {
	for r := 0; r < shape.Rows(); r++ {
		for c := 0; c < shape.Cols(); c++ {
			if shape.At(r, c).IsEmpty() {
				continue
			}
			row, col := anchor.Row+r, anchor.Col+c
			if row >= b.height || col < 0 || col >= b.width {
				return false
			}
			if row >= 0 && !b.cells[row][col].IsEmpty() {
				return false
			}
		}
	}
	return true
}

// Place writes every non-empty shape cell into the board. Only empty board
// cells are overwritten and cells above row 0 are dropped.
func (b *Board) Place(shape Shape, anchor Point) {
	for r := 0; r < shape.Rows(); r++ {
		for c := 0; c < shape.Cols(); c++ {
			v := shape.At(r, c)
			if v.IsEmpty() {
				continue
			}
			row, col := anchor.Row+r, anchor.Col+c
			if b.At(row, col).IsEmpty() {
				b.set(row, col, v)
			}
		}
	}
}

// RemoveRows deletes the given rows in one pass and inserts the same number of
// empty rows at the top. Duplicate and out-of-range indices are ignored.
func (b *Board) RemoveRows(indices []int) {
	drop := indexSet(indices, b.height)
	if len(drop) == 0 {
		return
	}
	kept := make([][]Cell, 0, b.height)
	for y, row := range b.cells {
		if !drop[y] {
			kept = append(kept, row)
		}
	}
	rebuilt := make([][]Cell, 0, b.height)
	for len(rebuilt)+len(kept) < b.height {
		rebuilt = append(rebuilt, make([]Cell, b.width))
	}
	b.cells = append(rebuilt, kept...)
}

// RemoveColumns deletes the given columns in one pass and inserts the same
// number of empty columns at the left edge.
func (b *Board) RemoveColumns(indices []int) {
	drop := indexSet(indices, b.width)
	if len(drop) == 0 {
		return
	}
	for y, row := range b.cells {
		rebuilt := make([]Cell, len(drop), b.width)
		for x, c := range row {
			if !drop[x] {
				rebuilt = append(rebuilt, c)
			}
		}
		b.cells[y] = rebuilt
	}
}

func indexSet(indices []int, limit int) map[int]bool {
	set := make(map[int]bool, len(indices))
	for _, i := range indices {
		if i >= 0 && i < limit {
			set[i] = true
		}
	}
	return set
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	out := &Board{width: b.width, height: b.height, cells: b.Cells()}
	return out
}

// Cells returns a copy of the grid.
func (b *Board) Cells() [][]Cell {
	out := make([][]Cell, b.height)
	for y, row := range b.cells {
		out[y] = make([]Cell, b.width)
		copy(out[y], row)
	}
	return out
}

// Row returns a copy of a single row, or nil when out of range.
func (b *Board) Row(y int) []Cell {
	if y < 0 || y >= b.height {
		return nil
	}
	out := make([]Cell, b.width)
	copy(out, b.cells[y])
	return out
}

// Column returns a copy of a single column, or nil when out of range.
func (b *Board) Column(x int) []Cell {
	if x < 0 || x >= b.width {
		return nil
	}
	out := make([]Cell, b.height)
	for y := range b.cells {
		out[y] = b.cells[y][x]
	}
	return out
}

// IsEmpty reports whether every cell is empty.
func (b *Board) IsEmpty() bool {
	for _, row := range b.cells {
		for _, c := range row {
			if !c.IsEmpty() {
				return false
			}
		}
	}
	return true
}

// String renders the board as glyph rows.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((b.width + 1) * b.height)
	for y, row := range b.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range row {
			sb.WriteRune(c.Glyph())
		}
	}
	return sb.String()
}
