package engine

import "time"

// Snapshot is a read-only copy of session state for rendering.
type Snapshot struct {
	Board            [][]Cell
	Active           Piece
	Next             Piece
	HasPiece         bool
	Score            int
	HighScore        int
	Level            int
	CountdownSeconds int
	DropInterval     time.Duration
	State            State
	Difficulty       Difficulty
	Rule             string
	Stats            Stats
}

// Snapshot copies the current state. highScore is supplied by the caller,
// which owns persistence.
func (s *Session) Snapshot(highScore int) Snapshot {
	return Snapshot{
		Board:            s.board.Cells(),
		Active:           s.active,
		Next:             s.next,
		HasPiece:         s.state == StatePlaying || s.state == StatePaused,
		Score:            s.score,
		HighScore:        max(highScore, s.score),
		Level:            s.clock.Level(),
		CountdownSeconds: s.clock.RemainingSeconds(),
		DropInterval:     s.clock.Interval(),
		State:            s.state,
		Difficulty:       s.clock.Difficulty(),
		Rule:             s.rule.Name(),
		Stats:            s.stats,
	}
}

// Composite returns a copy of the board with the active piece drawn over it.
// Cells above row 0 are dropped.
func (snap Snapshot) Composite() [][]Cell {
	out := make([][]Cell, len(snap.Board))
	for y, row := range snap.Board {
		out[y] = make([]Cell, len(row))
		copy(out[y], row)
	}
	if !snap.HasPiece {
		return out
	}
	shape, anchor := snap.Active.Shape, snap.Active.Anchor
	for r := 0; r < shape.Rows(); r++ {
		for c := 0; c < shape.Cols(); c++ {
			cell := shape.At(r, c)
			y, x := anchor.Row+r, anchor.Col+c
			if cell.IsEmpty() || y < 0 || y >= len(out) || x < 0 || x >= len(out[y]) {
				continue
			}
			out[y][x] = cell
		}
	}
	return out
}

// Ghost returns where the active piece would land on a hard drop.
func (snap Snapshot) Ghost() Piece {
	ghost := snap.Active
	if !snap.HasPiece {
		return ghost
	}
	b := &Board{width: BoardWidth, height: len(snap.Board), cells: snap.Board}
	for {
		next := ghost.Anchor
		next.Row++
		if !b.IsOccupiable(ghost.Shape, next) {
			return ghost
		}
		ghost.Anchor = next
	}
}
