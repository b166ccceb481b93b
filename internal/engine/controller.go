package engine

// translate shifts the active piece horizontally by dx if the target is free.
func (s *Session) translate(dx int) bool {
	anchor := s.active.Anchor
	anchor.Col += dx
	if !s.board.IsOccupiable(s.active.Shape, anchor) {
		return false
	}
	s.active.Anchor = anchor
	return true
}

// softDropStep moves the active piece down one row, or locks it in place.
func (s *Session) softDropStep() bool {
	anchor := s.active.Anchor
	anchor.Row++
	if s.board.IsOccupiable(s.active.Shape, anchor) {
		s.active.Anchor = anchor
		return true
	}
	s.lockAndClear()
	return false
}

// hardDrop drops the active piece as far as it goes and locks it.
func (s *Session) hardDrop() {
	for {
		anchor := s.active.Anchor
		anchor.Row++
		if !s.board.IsOccupiable(s.active.Shape, anchor) {
			break
		}
		s.active.Anchor = anchor
	}
	s.lockAndClear()
}

// rotate turns the active piece clockwise, searching horizontal kicks when the
// in-place rotation collides.
func (s *Session) rotate() bool {
	shape := s.active.Shape
	if shape.RotationInvariant() {
		return false
	}
	rotated := shape.Rotate()
	anchor, ok := kick(s.board, rotated, s.active.Anchor)
	if !ok {
		return false
	}
	s.active.Shape = rotated
	s.active.Anchor = anchor
	s.emit(Event{Type: EventRotated})
	return true
}

// kick finds a free anchor for shape near start. Successive steps of +1, -2,
// +3, -4, ... columns visit start+1, start-1, start+2, start-2, ... and the
// search gives up once the displacement would exceed the shape width plus one.
func kick(b *Board, shape Shape, start Point) (Point, bool) {
	if b.IsOccupiable(shape, start) {
		return start, true
	}
	limit := shape.Cols() + 1
	anchor := start
	step := 1
	for {
		anchor.Col += step
		if abs(anchor.Col-start.Col) > limit {
			return start, false
		}
		if b.IsOccupiable(shape, anchor) {
			return anchor, true
		}
		if step > 0 {
			step = -(step + 1)
		} else {
			step = -step + 1
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
