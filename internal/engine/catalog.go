package engine

import (
	"errors"
	"fmt"
	"math/rand"
)

// Piece is a shape positioned on the board. Kind is Filler or Item(kind).
type Piece struct {
	Name   string
	Shape  Shape
	Kind   Cell
	Anchor Point
}

// Cells returns the absolute board coordinates of the piece's occupied cells.
func (p Piece) Cells() []Point {
	pts := make([]Point, 0, p.Shape.Size())
	for r := 0; r < p.Shape.Rows(); r++ {
		for c := 0; c < p.Shape.Cols(); c++ {
			if !p.Shape.At(r, c).IsEmpty() {
				pts = append(pts, Point{Row: p.Anchor.Row + r, Col: p.Anchor.Col + c})
			}
		}
	}
	return pts
}

// Category groups piece definitions for weighted drawing.
type Category int

const (
	CategoryFiller Category = iota
	CategorySingleItem
	CategoryMultiItem
)

func (c Category) String() string {
	switch c {
	case CategoryFiller:
		return "filler"
	case CategorySingleItem:
		return "single_item"
	case CategoryMultiItem:
		return "multi_item"
	default:
		return "unknown"
	}
}

// PieceDef is a catalog entry.
type PieceDef struct {
	Name  string
	Shape Shape
}

// Kind returns Filler for all-filler shapes, or the single item kind the shape
// is made of. Mixed shapes are rejected by NewCatalog.
func (d PieceDef) Kind() (Cell, error) {
	var kind Cell
	for r := 0; r < d.Shape.Rows(); r++ {
		for c := 0; c < d.Shape.Cols(); c++ {
			v := d.Shape.At(r, c)
			if v.IsEmpty() {
				continue
			}
			if kind != Empty && v != kind {
				return Empty, fmt.Errorf("engine: piece %q mixes %s and %s", d.Name, kind, v)
			}
			kind = v
		}
	}
	if kind == Empty {
		return Empty, ErrEmptyShape
	}
	return kind, nil
}

// Category classifies the definition.
func (d PieceDef) Category() Category {
	kind, _ := d.Kind()
	switch {
	case kind.IsFiller():
		return CategoryFiller
	case d.Shape.Size() == 1:
		return CategorySingleItem
	default:
		return CategoryMultiItem
	}
}

// Weights are relative draw weights per category.
type Weights struct {
	Filler     int
	SingleItem int
	MultiItem  int
}

// DefaultWeights is the 50/25/25 split.
func DefaultWeights() Weights {
	return Weights{Filler: 50, SingleItem: 25, MultiItem: 25}
}

func (w Weights) of(c Category) int {
	switch c {
	case CategoryFiller:
		return w.Filler
	case CategorySingleItem:
		return w.SingleItem
	case CategoryMultiItem:
		return w.MultiItem
	}
	return 0
}

// RandSource is the randomness used by a Catalog. *rand.Rand satisfies it.
type RandSource interface {
	Intn(n int) int
}

// Catalog holds piece definitions and draws new pieces from a weighted
// distribution over categories, then uniformly within the category.
type Catalog struct {
	groups  [3][]PieceDef
	weights Weights
	total   int
	rng     RandSource
}

var errNoWeight = errors.New("engine: catalog weights select no pieces")

// NewCatalog validates defs and returns a catalog. A nil rng uses a
// math/rand source seeded with 1.
func NewCatalog(defs []PieceDef, weights Weights, rng RandSource) (*Catalog, error) {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	c := &Catalog{weights: weights, rng: rng}
	for _, d := range defs {
		if d.Shape.IsZero() {
			return nil, fmt.Errorf("engine: piece %q: %w", d.Name, ErrEmptyShape)
		}
		if d.Shape.Cols() > BoardWidth || d.Shape.Rows() > BoardHeight {
			return nil, fmt.Errorf("engine: piece %q is %dx%d: %w", d.Name, d.Shape.Rows(), d.Shape.Cols(), ErrShapeTooLarge)
		}
		if _, err := d.Kind(); err != nil {
			return nil, err
		}
		cat := d.Category()
		c.groups[cat] = append(c.groups[cat], d)
	}
	for cat, group := range c.groups {
		w := weights.of(Category(cat))
		if w < 0 {
			return nil, fmt.Errorf("engine: negative weight for %s", Category(cat))
		}
		if len(group) > 0 {
			c.total += w
		}
	}
	if c.total == 0 {
		return nil, errNoWeight
	}
	return c, nil
}

// DefaultCatalog returns the built-in catalog.
func DefaultCatalog(rng RandSource) *Catalog {
	c, err := NewCatalog(DefaultPieces(), DefaultWeights(), rng)
	if err != nil {
		panic(err)
	}
	return c
}

// Definitions returns the definitions in the given category.
func (c *Catalog) Definitions(cat Category) []PieceDef {
	out := make([]PieceDef, len(c.groups[cat]))
	copy(out, c.groups[cat])
	return out
}

// Next draws a piece and positions it at the spawn anchor.
func (c *Catalog) Next() Piece {
	roll := c.rng.Intn(c.total)
	for cat, group := range c.groups {
		if len(group) == 0 {
			continue
		}
		w := c.weights.of(Category(cat))
		if roll < w {
			return Spawn(group[c.rng.Intn(len(group))])
		}
		roll -= w
	}
	// Unreachable while total is the sum of reachable weights.
	panic("engine: weighted draw out of range")
}

// Spawn places a definition at row 0, horizontally centered.
func Spawn(d PieceDef) Piece {
	kind, _ := d.Kind()
	return Piece{
		Name:   d.Name,
		Shape:  d.Shape,
		Kind:   kind,
		Anchor: Point{Row: 0, Col: BoardWidth/2 - d.Shape.Cols()/2},
	}
}

// DefaultPieces returns the seven filler tetrominoes and the item pieces.
func DefaultPieces() []PieceDef {
	return []PieceDef{
		{Name: "I", Shape: MustShape("####")},
		{Name: "L", Shape: MustShape("#..", "###")},
		{Name: "J", Shape: MustShape("..#", "###")},
		{Name: "O", Shape: MustShape("##", "##")},
		{Name: "S", Shape: MustShape(".##", "##.")},
		{Name: "T", Shape: MustShape(".#.", "###")},
		{Name: "Z", Shape: MustShape("##.", ".##")},

		{Name: "burger", Shape: MustShape("B")},
		{Name: "potato", Shape: MustShape("P")},
		{Name: "ketchup", Shape: MustShape("K")},
		{Name: "mustard", Shape: MustShape("M")},
		{Name: "donut", Shape: MustShape("D")},
		{Name: "onion", Shape: MustShape("O")},

		{Name: "double burger", Shape: MustShape("BB")},
		{Name: "potato sack", Shape: MustShape("P", "P")},
		{Name: "ketchup bend", Shape: MustShape("K.", "KK")},
		{Name: "donut box", Shape: MustShape("DD", "DD")},
		{Name: "onion rings", Shape: MustShape("OO")},
	}
}
