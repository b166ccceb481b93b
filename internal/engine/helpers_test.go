package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// seqRand replays a fixed sequence of Intn results, wrapping modulo n.
type seqRand struct {
	vals []int
	i    int
}

func (r *seqRand) Intn(n int) int {
	if len(r.vals) == 0 {
		return 0
	}
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v % n
}

// boardFromRows builds a board whose bottom rows are the given glyph rows.
func boardFromRows(t *testing.T, lines ...string) *Board {
	t.Helper()
	b := NewBoard()
	offset := b.Height() - len(lines)
	require.GreaterOrEqual(t, offset, 0)
	for y, line := range lines {
		require.Len(t, line, b.Width(), "row %d", y)
		for x, r := range line {
			c, ok := CellFromGlyph(r)
			require.True(t, ok, "glyph %q", r)
			b.set(offset+y, x, c)
		}
	}
	return b
}

// dotCatalog always yields a single filler cell.
func dotCatalog(t *testing.T) *Catalog {
	t.Helper()
	cat, err := NewCatalog([]PieceDef{{Name: "dot", Shape: MustShape("#")}}, Weights{Filler: 1}, &seqRand{})
	require.NoError(t, err)
	return cat
}

// catalogOf yields the given shape forever.
func catalogOf(t *testing.T, name string, lines ...string) *Catalog {
	t.Helper()
	def := PieceDef{Name: name, Shape: MustShape(lines...)}
	cat, err := NewCatalog([]PieceDef{def}, Weights{Filler: 1, SingleItem: 1, MultiItem: 1}, &seqRand{})
	require.NoError(t, err)
	return cat
}

// newPlaying returns a started session drawing from cat.
func newPlaying(t *testing.T, cat *Catalog) *Session {
	t.Helper()
	opts := DefaultOptions()
	opts.Catalog = cat
	s, err := NewSession(opts)
	require.NoError(t, err)
	require.True(t, s.Start())
	return s
}

func eventTypes(events []Event) []EventType {
	out := make([]EventType, len(events))
	for i, e := range events {
		out[i] = e.Type
	}
	return out
}
