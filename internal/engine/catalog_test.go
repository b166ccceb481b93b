package engine

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPiecesCategories(t *testing.T) {
	cat := DefaultCatalog(&seqRand{})

	fillers := cat.Definitions(CategoryFiller)
	require.Len(t, fillers, 7)
	for _, d := range fillers {
		assert.Equal(t, 4, d.Shape.Size(), d.Name)
	}
	assert.Len(t, cat.Definitions(CategorySingleItem), int(numItemKinds))
	assert.NotEmpty(t, cat.Definitions(CategoryMultiItem))
}

func TestCatalogNextSpawnAnchor(t *testing.T) {
	tests := []struct {
		name   string
		rolls  []int
		piece  string
		anchor Point
	}{
		{"first filler", []int{0, 0}, "I", Point{Row: 0, Col: 3}},
		{"filler boundary", []int{49, 3}, "O", Point{Row: 0, Col: 4}},
		{"single item", []int{50, 2}, "ketchup", Point{Row: 0, Col: 5}},
		{"multi item", []int{99, 0}, "double burger", Point{Row: 0, Col: 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat := DefaultCatalog(&seqRand{vals: tt.rolls})
			p := cat.Next()
			assert.Equal(t, tt.piece, p.Name)
			assert.Equal(t, tt.anchor, p.Anchor)
		})
	}
}

func TestCatalogPieceKind(t *testing.T) {
	cat := DefaultCatalog(&seqRand{vals: []int{50, 0}})
	p := cat.Next()
	assert.Equal(t, Item(ItemBurger), p.Kind)
	assert.Equal(t, []Point{{Row: 0, Col: 5}}, p.Cells())
}

func TestCatalogDistribution(t *testing.T) {
	cat := DefaultCatalog(rand.New(rand.NewSource(7)))
	counts := map[Category]int{}
	const draws = 20000
	for i := 0; i < draws; i++ {
		p := cat.Next()
		counts[PieceDef{Name: p.Name, Shape: p.Shape}.Category()]++
	}

	assert.InDelta(t, 0.50, float64(counts[CategoryFiller])/draws, 0.03)
	assert.InDelta(t, 0.25, float64(counts[CategorySingleItem])/draws, 0.03)
	assert.InDelta(t, 0.25, float64(counts[CategoryMultiItem])/draws, 0.03)
}

func TestCatalogSkipsEmptyCategories(t *testing.T) {
	defs := []PieceDef{{Name: "dot", Shape: MustShape("#")}}
	cat, err := NewCatalog(defs, DefaultWeights(), &seqRand{vals: []int{49}})
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		assert.Equal(t, "dot", cat.Next().Name)
	}
}

func TestNewCatalogErrors(t *testing.T) {
	_, err := NewCatalog([]PieceDef{{Name: "blank"}}, DefaultWeights(), nil)
	assert.ErrorIs(t, err, ErrEmptyShape)

	_, err = NewCatalog([]PieceDef{{Name: "mixed", Shape: MustShape("BP")}}, DefaultWeights(), nil)
	assert.Error(t, err)

	_, err = NewCatalog(DefaultPieces(), Weights{}, nil)
	assert.ErrorIs(t, err, errNoWeight)

	_, err = NewCatalog([]PieceDef{{Name: "wide", Shape: MustShape(strings.Repeat("#", BoardWidth+1))}}, DefaultWeights(), nil)
	assert.ErrorIs(t, err, ErrShapeTooLarge)

	tall := make([]string, BoardHeight+1)
	for i := range tall {
		tall[i] = "#"
	}
	_, err = NewCatalog([]PieceDef{{Name: "tall", Shape: MustShape(tall...)}}, DefaultWeights(), nil)
	assert.ErrorIs(t, err, ErrShapeTooLarge)

	_, err = NewCatalog([]PieceDef{{Name: "full", Shape: MustShape(strings.Repeat("#", BoardWidth))}}, DefaultWeights(), nil)
	assert.NoError(t, err)

	_, err = NewCatalog(DefaultPieces(), Weights{Filler: -1, SingleItem: 1}, nil)
	assert.Error(t, err)

	onlyItems := []PieceDef{{Name: "burger", Shape: MustShape("B")}}
	_, err = NewCatalog(onlyItems, Weights{Filler: 10}, nil)
	assert.ErrorIs(t, err, errNoWeight)
}
