package engine

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyShape is returned for shapes with zero dimensions or no occupied cell.
	ErrEmptyShape = errors.New("engine: shape has no occupied cells")
	// ErrRaggedShape is returned when shape rows differ in length.
	ErrRaggedShape = errors.New("engine: shape rows differ in length")
	// ErrShapeTooLarge is returned by NewCatalog for shapes that do not fit the board.
	ErrShapeTooLarge = errors.New("engine: shape does not fit the board")
)

// Shape is an immutable rows x cols matrix of cells with at least one
// non-empty cell. Rotation returns a new Shape.
type Shape struct {
	rows  int
	cols  int
	cells []Cell // row-major
}

// NewShape builds a shape from a matrix. The matrix is copied.
func NewShape(matrix [][]Cell) (Shape, error) {
	if len(matrix) == 0 || len(matrix[0]) == 0 {
		return Shape{}, ErrEmptyShape
	}
	rows, cols := len(matrix), len(matrix[0])
	cells := make([]Cell, 0, rows*cols)
	occupied := false
	for _, row := range matrix {
		if len(row) != cols {
			return Shape{}, ErrRaggedShape
		}
		for _, c := range row {
			if !c.IsEmpty() {
				occupied = true
			}
			cells = append(cells, c)
		}
	}
	if !occupied {
		return Shape{}, ErrEmptyShape
	}
	return Shape{rows: rows, cols: cols, cells: cells}, nil
}

// ParseShape builds a shape from glyph rows such as "#..", "###".
func ParseShape(lines []string) (Shape, error) {
	matrix := make([][]Cell, len(lines))
	for y, line := range lines {
		for _, r := range line {
			c, ok := CellFromGlyph(r)
			if !ok {
				return Shape{}, fmt.Errorf("engine: unknown glyph %q in row %d", r, y)
			}
			matrix[y] = append(matrix[y], c)
		}
	}
	return NewShape(matrix)
}

// MustShape is like ParseShape but panics on malformed input.
// Used for compiled-in catalogs where a bad shape is a programming error.
func MustShape(lines ...string) Shape {
	s, err := ParseShape(lines)
	if err != nil {
		panic(fmt.Sprintf("engine: bad shape %q: %v", lines, err))
	}
	return s
}

// Rows returns the number of rows.
func (s Shape) Rows() int { return s.rows }

// Cols returns the number of columns.
func (s Shape) Cols() int { return s.cols }

// At returns the cell at (row, col) or Empty when out of range.
func (s Shape) At(row, col int) Cell {
	if row < 0 || row >= s.rows || col < 0 || col >= s.cols {
		return Empty
	}
	return s.cells[row*s.cols+col]
}

// Size returns the number of occupied cells.
func (s Shape) Size() int {
	n := 0
	for _, c := range s.cells {
		if !c.IsEmpty() {
			n++
		}
	}
	return n
}

// IsZero reports whether s is the zero Shape (never a valid piece).
func (s Shape) IsZero() bool {
	return s.rows == 0
}

// IsSingleCell reports whether the shape is a 1x1 matrix.
func (s Shape) IsSingleCell() bool {
	return s.rows == 1 && s.cols == 1
}

// IsUniformBlock reports whether the shape is square and every cell holds the
// same non-empty value. Such shapes look identical after rotation.
func (s Shape) IsUniformBlock() bool {
	if s.rows != s.cols {
		return false
	}
	first := s.cells[0]
	if first.IsEmpty() {
		return false
	}
	for _, c := range s.cells {
		if c != first {
			return false
		}
	}
	return true
}

// RotationInvariant reports whether rotating the shape is a no-op.
func (s Shape) RotationInvariant() bool {
	return s.IsSingleCell() || s.IsUniformBlock()
}

// Rotate returns the shape turned 90 degrees clockwise.
// Row i of the result is column i of s read bottom to top.
func (s Shape) Rotate() Shape {
	out := Shape{rows: s.cols, cols: s.rows, cells: make([]Cell, len(s.cells))}
	for r := 0; r < out.rows; r++ {
		for c := 0; c < out.cols; c++ {
			out.cells[r*out.cols+c] = s.At(s.rows-1-c, r)
		}
	}
	return out
}

// Matrix returns a copy of the cells as a row slice.
func (s Shape) Matrix() [][]Cell {
	m := make([][]Cell, s.rows)
	for r := range m {
		m[r] = make([]Cell, s.cols)
		copy(m[r], s.cells[r*s.cols:(r+1)*s.cols])
	}
	return m
}

// Equal reports whether two shapes have the same dimensions and cells.
func (s Shape) Equal(other Shape) bool {
	if s.rows != other.rows || s.cols != other.cols {
		return false
	}
	for i := range s.cells {
		if s.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// String renders the shape as glyph rows separated by newlines.
func (s Shape) String() string {
	var sb strings.Builder
	for r := 0; r < s.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < s.cols; c++ {
			sb.WriteRune(s.At(r, c).Glyph())
		}
	}
	return sb.String()
}
