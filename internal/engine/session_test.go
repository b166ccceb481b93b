package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStartsIdle(t *testing.T) {
	s, err := NewSession(DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, StateIdle, s.State())
	s.OnDropTick()
	s.OnLevelTick()
	s.OnInput(CmdHardDrop)
	s.OnInput(CmdTogglePause)
	assert.Equal(t, StateIdle, s.State())
	assert.Empty(t, s.Events())
}

func TestNewSessionRejectsZeroDifficulty(t *testing.T) {
	_, err := NewSession(Options{})
	assert.Error(t, err)
}

func TestSessionStart(t *testing.T) {
	s := newPlaying(t, DefaultCatalog(&seqRand{vals: []int{0, 0, 50, 0}}))

	assert.Equal(t, StatePlaying, s.State())
	assert.Equal(t, "I", s.active.Name)
	assert.Equal(t, "burger", s.next.Name)
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, 1, s.Level())
	assert.Equal(t, uint64(1), s.Epoch())
	assert.True(t, s.board.IsEmpty())

	assert.False(t, s.Start(), "start while playing")
}

func TestTranslate(t *testing.T) {
	s := newPlaying(t, dotCatalog(t))
	require.Equal(t, Point{Row: 0, Col: 5}, s.active.Anchor)

	s.OnInput(CmdMoveLeft)
	assert.Equal(t, 4, s.active.Anchor.Col)

	for i := 0; i < 10; i++ {
		s.OnInput(CmdMoveRight)
	}
	assert.Equal(t, BoardWidth-1, s.active.Anchor.Col)
	assert.Empty(t, s.Events())

	s.board.set(0, 8, Filler)
	s.OnInput(CmdMoveLeft)
	assert.Equal(t, BoardWidth-1, s.active.Anchor.Col)
}

func TestSoftDropLocksAtFloor(t *testing.T) {
	s := newPlaying(t, dotCatalog(t))
	s.active.Anchor = Point{Row: 18, Col: 2}

	assert.True(t, s.softDropStep())
	assert.Equal(t, 19, s.active.Anchor.Row)
	assert.Empty(t, s.Events())

	assert.False(t, s.softDropStep())
	assert.Equal(t, Filler, s.board.At(19, 2))
	assert.Equal(t, Point{Row: 0, Col: 5}, s.active.Anchor)
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, []EventType{EventLocked}, eventTypes(s.Events()))
	assert.Equal(t, 1, s.Stats().Pieces)
}

func TestHardDropLocksImmediately(t *testing.T) {
	s := newPlaying(t, catalogOf(t, "I", "####"))
	s.board = boardFromRows(t, "....#.....")

	s.OnInput(CmdHardDrop)

	// Column 4 blocks the bar at row 19, so it rests on row 18.
	assert.Equal(t, "...####...", string(glyphs(s.board.Row(18))))
	assert.Equal(t, []EventType{EventLocked}, eventTypes(s.Events()))
	assert.Equal(t, StatePlaying, s.State())
}

func TestFillerRowClearScenario(t *testing.T) {
	s := newPlaying(t, dotCatalog(t))
	s.board = boardFromRows(t, "#####.####")
	s.active.Anchor = Point{Row: 19, Col: 5}

	s.OnDropTick()

	assert.Equal(t, 100, s.Score())
	assert.Equal(t, "..........", string(glyphs(s.board.Row(19))))
	assert.True(t, s.board.IsEmpty())
	events := s.Events()
	require.Equal(t, []EventType{EventLocked, EventCleared}, eventTypes(events))
	assert.Equal(t, 1, events[1].Lines)
	assert.Equal(t, 100, events[1].Points)
	assert.Equal(t, 1, s.Stats().Lines)
}

func TestBurgerComboScenario(t *testing.T) {
	s := newPlaying(t, catalogOf(t, "burger", "B"))
	s.board = boardFromRows(t, "BB.#P#K#M#")
	for i := 0; i < 3; i++ {
		s.OnInput(CmdMoveLeft)
	}
	require.Equal(t, 2, s.active.Anchor.Col)

	s.OnInput(CmdHardDrop)

	assert.Equal(t, 250, s.Score())
	assert.True(t, s.board.IsEmpty())
	events := s.Events()
	require.Len(t, events, 2)
	assert.Equal(t, EventCleared, events[1].Type)
	assert.Equal(t, 1, events[1].Combos)
	assert.Equal(t, 1, s.Stats().Combos)
}

func TestClearEventOncePerPass(t *testing.T) {
	s := newPlaying(t, catalogOf(t, "I", "#", "#", "#", "#"))
	s.board = boardFromRows(t,
		"#########.",
		"#########.",
		"#########.",
		"#########.",
	)
	for i := 0; i < 5; i++ {
		s.OnInput(CmdMoveRight)
	}
	s.OnInput(CmdHardDrop)

	assert.Equal(t, 1600, s.Score())
	assert.True(t, s.board.IsEmpty())
	assert.Equal(t, []EventType{EventLocked, EventCleared}, eventTypes(s.Events()))
}

func TestSpawnCollisionGameOver(t *testing.T) {
	s := newPlaying(t, dotCatalog(t))
	s.board.set(1, 5, Filler)

	s.OnDropTick()

	assert.Equal(t, StateGameOver, s.State())
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, Filler, s.board.At(0, 5))
	assert.Equal(t, Filler, s.board.At(1, 5))
	events := s.Events()
	assert.Equal(t, []EventType{EventLocked, EventGameOver}, eventTypes(events))

	before := s.board.Cells()
	s.OnInput(CmdMoveLeft)
	s.OnDropTick()
	s.OnLevelTick()
	assert.Equal(t, before, s.board.Cells())
	assert.Empty(t, s.Events())

	require.True(t, s.Start())
	assert.Equal(t, StatePlaying, s.State())
	assert.True(t, s.board.IsEmpty())
	assert.Equal(t, uint64(2), s.Epoch())
}

func TestRotateInvariantShapes(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
	}{
		{"single cell", []string{"B"}},
		{"filler square", []string{"##", "##"}},
		{"item square", []string{"DD", "DD"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newPlaying(t, catalogOf(t, tt.name, tt.lines...))
			before := s.active

			s.OnInput(CmdRotate)

			assert.True(t, before.Shape.Equal(s.active.Shape))
			assert.Equal(t, before.Anchor, s.active.Anchor)
			assert.Empty(t, s.Events())
		})
	}
}

func TestRotateInPlace(t *testing.T) {
	s := newPlaying(t, catalogOf(t, "I", "####"))
	s.active.Anchor = Point{Row: 5, Col: 3}

	s.OnInput(CmdRotate)

	assert.True(t, s.active.Shape.Equal(MustShape("#", "#", "#", "#")))
	assert.Equal(t, Point{Row: 5, Col: 3}, s.active.Anchor)
	assert.Equal(t, []EventType{EventRotated}, eventTypes(s.Events()))
}

func TestRotateKicksOffWall(t *testing.T) {
	s := newPlaying(t, catalogOf(t, "I", "#", "#", "#", "#"))
	s.active.Anchor = Point{Row: 5, Col: 9}

	s.OnInput(CmdRotate)

	assert.True(t, s.active.Shape.Equal(MustShape("####")))
	assert.Equal(t, Point{Row: 5, Col: 6}, s.active.Anchor)
	assert.Equal(t, []EventType{EventRotated}, eventTypes(s.Events()))
}

func TestRotateKickFallsBackLeft(t *testing.T) {
	s := newPlaying(t, catalogOf(t, "I", "#", "#", "#", "#"))
	s.active.Anchor = Point{Row: 5, Col: 2}
	s.board.set(5, 5, Filler)

	// In place the bar covers columns 2..5 and one step right still reaches 5.
	s.OnInput(CmdRotate)

	assert.Equal(t, Point{Row: 5, Col: 1}, s.active.Anchor)
	assert.True(t, s.active.Shape.Equal(MustShape("####")))
}

func TestRotateAbandonedWithoutRoom(t *testing.T) {
	s := newPlaying(t, catalogOf(t, "I", "#", "#", "#", "#"))
	for x := 1; x < BoardWidth; x++ {
		s.board.set(0, x, Filler)
	}
	s.active.Anchor = Point{Row: 0, Col: 0}
	before := s.active

	s.OnInput(CmdRotate)

	assert.True(t, before.Shape.Equal(s.active.Shape))
	assert.Equal(t, before.Anchor, s.active.Anchor)
	assert.Empty(t, s.Events())
}

func TestKickSearchOrder(t *testing.T) {
	b := NewBoard()
	bar := MustShape("###")
	// Block everything except the anchor two columns left of start.
	for x := 0; x < BoardWidth; x++ {
		if x < 2 || x > 4 {
			b.set(10, x, Filler)
		}
	}
	got, ok := kick(b, bar, Point{Row: 10, Col: 4})
	require.True(t, ok)
	assert.Equal(t, Point{Row: 10, Col: 2}, got)

	_, ok = kick(b, MustShape("####"), Point{Row: 10, Col: 4})
	assert.False(t, ok)
}

func TestKickBoundary(t *testing.T) {
	// A 3-wide bar may shift at most 4 columns either way.
	tests := []struct {
		name   string
		start  int
		free   int // leftmost free column; the free run is 3 wide
		want   int
		wantOK bool
	}{
		{"right by width+1", 1, 5, 5, true},
		{"left by width+1", 7, 3, 3, true},
		{"right by width+2", 0, 5, 0, false},
		{"left by width+2", 7, 2, 7, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard()
			for x := 0; x < BoardWidth; x++ {
				if x < tt.free || x >= tt.free+3 {
					b.set(10, x, Filler)
				}
			}
			got, ok := kick(b, MustShape("###"), Point{Row: 10, Col: tt.start})
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, Point{Row: 10, Col: tt.want}, got)
		})
	}
}

func TestPauseResume(t *testing.T) {
	s := newPlaying(t, dotCatalog(t))

	s.OnInput(CmdTogglePause)
	assert.Equal(t, StatePaused, s.State())

	s.OnDropTick()
	s.OnInput(CmdMoveLeft)
	s.OnLevelTick()
	assert.Equal(t, Point{Row: 0, Col: 5}, s.active.Anchor)
	assert.Equal(t, 20, s.clock.RemainingSeconds())

	s.OnInput(CmdTogglePause)
	assert.Equal(t, StatePlaying, s.State())
	s.OnDropTick()
	assert.Equal(t, 1, s.active.Anchor.Row)

	assert.False(t, s.Resume())
}

func TestLevelUpEvent(t *testing.T) {
	s := newPlaying(t, dotCatalog(t))
	for i := 0; i < 40; i++ {
		s.OnLevelTick()
	}
	assert.Equal(t, 3, s.Level())
	assert.Equal(t, Normal.Interval(3), s.DropInterval())

	events := s.Events()
	require.Len(t, events, 2)
	assert.Equal(t, EventLevelUp, events[0].Type)
	assert.Equal(t, 2, events[0].Level)
	assert.Equal(t, 3, events[1].Level)
}

func TestSetDifficultyOnlyWhenStopped(t *testing.T) {
	s, err := NewSession(DefaultOptions())
	require.NoError(t, err)

	assert.True(t, s.SetDifficulty(Hard))
	assert.Equal(t, Hard, s.Difficulty())

	require.True(t, s.Start())
	assert.False(t, s.SetDifficulty(Easy))
	s.Pause()
	assert.False(t, s.SetDifficulty(Easy))
	assert.Equal(t, Hard, s.Difficulty())
	assert.Equal(t, Hard.InitialInterval, s.DropInterval())
}

func TestReset(t *testing.T) {
	s := newPlaying(t, dotCatalog(t))
	s.board.set(19, 0, Filler)
	s.score = 300
	s.OnLevelTick()

	s.Reset()

	assert.Equal(t, StateIdle, s.State())
	assert.Equal(t, 0, s.Score())
	assert.True(t, s.board.IsEmpty())
	assert.Equal(t, 20, s.clock.RemainingSeconds())
}
