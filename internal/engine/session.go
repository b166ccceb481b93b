package engine

import (
	"fmt"
	"math/rand"
	"time"
)

// State is the top-level game state.
type State int

const (
	StateIdle State = iota
	StatePlaying
	StatePaused
	StateGameOver
)

// String returns a lower-case state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Command is a discrete input delivered by the host.
type Command int

const (
	CmdMoveLeft Command = iota
	CmdMoveRight
	CmdSoftDrop
	CmdHardDrop
	CmdRotate
	CmdTogglePause
)

// String returns a lower-case command name.
func (c Command) String() string {
	switch c {
	case CmdMoveLeft:
		return "move_left"
	case CmdMoveRight:
		return "move_right"
	case CmdSoftDrop:
		return "soft_drop"
	case CmdHardDrop:
		return "hard_drop"
	case CmdRotate:
		return "rotate"
	case CmdTogglePause:
		return "toggle_pause"
	default:
		return "unknown"
	}
}

// Options configure a new session.
type Options struct {
	Difficulty    Difficulty
	LevelDuration time.Duration
	Rule          ClearRule
	Scoring       Scoring
	// Catalog draws pieces. When nil a default catalog seeded with Seed is used.
	Catalog *Catalog
	Seed    int64
}

// DefaultOptions returns Normal difficulty, the classic rule and default scoring.
func DefaultOptions() Options {
	return Options{
		Difficulty:    Normal,
		LevelDuration: DefaultLevelDuration,
		Rule:          ClassicRule{},
		Scoring:       DefaultScoring(),
	}
}

// Stats are per-game counters.
type Stats struct {
	Lines  int
	Pieces int
	Combos int
}

// Session owns the board, pieces, score, level clock and state. Its methods
// run to completion synchronously and must not be called concurrently.
type Session struct {
	board   *Board
	catalog *Catalog
	rule    ClearRule
	scoring Scoring
	clock   *LevelClock

	active Piece
	next   Piece
	score  int
	stats  Stats
	state  State
	epoch  uint64

	events []Event
}

// NewSession creates an Idle session.
func NewSession(opts Options) (*Session, error) {
	if opts.Difficulty.InitialInterval <= 0 {
		return nil, fmt.Errorf("engine: difficulty %q has no initial interval", opts.Difficulty.Name)
	}
	if opts.Rule == nil {
		opts.Rule = ClassicRule{}
	}
	if opts.Scoring == (Scoring{}) {
		opts.Scoring = DefaultScoring()
	}
	if opts.Catalog == nil {
		opts.Catalog = DefaultCatalog(rand.New(rand.NewSource(opts.Seed)))
	}
	return &Session{
		board:   NewBoard(),
		catalog: opts.Catalog,
		rule:    opts.Rule,
		scoring: opts.Scoring,
		clock:   NewLevelClock(opts.Difficulty, opts.LevelDuration),
		state:   StateIdle,
	}, nil
}

// State returns the current state.
func (s *Session) State() State { return s.state }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Level returns the current level.
func (s *Session) Level() int { return s.clock.Level() }

// DropInterval returns the current drop interval.
func (s *Session) DropInterval() time.Duration { return s.clock.Interval() }

// Difficulty returns the active difficulty.
func (s *Session) Difficulty() Difficulty { return s.clock.Difficulty() }

// Rule returns the active clear rule.
func (s *Session) Rule() ClearRule { return s.rule }

// Stats returns the per-game counters.
func (s *Session) Stats() Stats { return s.stats }

// Epoch increments every time a game starts. Schedulers use it to notice restarts.
func (s *Session) Epoch() uint64 { return s.epoch }

// Events returns and clears the events emitted since the last call.
func (s *Session) Events() []Event {
	out := s.events
	s.events = nil
	return out
}

func (s *Session) emit(e Event) {
	s.events = append(s.events, e)
}

// SetDifficulty changes the difficulty. Only allowed in Idle or GameOver;
// returns whether the change was applied.
func (s *Session) SetDifficulty(d Difficulty) bool {
	if s.state != StateIdle && s.state != StateGameOver {
		return false
	}
	if d.InitialInterval <= 0 {
		return false
	}
	s.clock.SetDifficulty(d)
	return true
}

// Start begins a new game from Idle or GameOver. It clears the board, resets
// score, level and countdown, and draws the active and next pieces.
func (s *Session) Start() bool {
	if s.state != StateIdle && s.state != StateGameOver {
		return false
	}
	s.board = NewBoard()
	s.score = 0
	s.stats = Stats{}
	s.clock.Reset()
	s.active = s.catalog.Next()
	s.next = s.catalog.Next()
	s.events = nil
	s.state = StatePlaying
	s.epoch++
	return true
}

// Reset returns the session to Idle from any state.
func (s *Session) Reset() {
	s.board = NewBoard()
	s.score = 0
	s.stats = Stats{}
	s.clock.Reset()
	s.active = Piece{}
	s.next = Piece{}
	s.events = nil
	s.state = StateIdle
}

// Pause suspends a playing game.
func (s *Session) Pause() bool {
	if s.state != StatePlaying {
		return false
	}
	s.state = StatePaused
	return true
}

// Resume continues a paused game.
func (s *Session) Resume() bool {
	if s.state != StatePaused {
		return false
	}
	s.state = StatePlaying
	return true
}

// TogglePause flips between Playing and Paused.
func (s *Session) TogglePause() bool {
	if s.state == StatePaused {
		return s.Resume()
	}
	return s.Pause()
}

// OnDropTick advances the active piece one row, locking it when it cannot move.
func (s *Session) OnDropTick() {
	if s.state != StatePlaying {
		return
	}
	s.softDropStep()
}

// OnLevelTick consumes one second of the level countdown.
func (s *Session) OnLevelTick() {
	if s.state != StatePlaying {
		return
	}
	if s.clock.Tick() {
		s.emit(Event{Type: EventLevelUp, Level: s.clock.Level()})
	}
}

// OnInput applies a command. Commands that are not legal in the current state
// or that would collide are ignored.
func (s *Session) OnInput(cmd Command) {
	if cmd == CmdTogglePause {
		s.TogglePause()
		return
	}
	if s.state != StatePlaying {
		return
	}
	switch cmd {
	case CmdMoveLeft:
		s.translate(-1)
	case CmdMoveRight:
		s.translate(1)
	case CmdSoftDrop:
		s.softDropStep()
	case CmdHardDrop:
		s.hardDrop()
	case CmdRotate:
		s.rotate()
	}
}

// lockAndClear is the atomic lock sequence: place the piece, promote the next
// piece, draw a new next piece, run the clear pass, then check for game over.
func (s *Session) lockAndClear() {
	s.board.Place(s.active.Shape, s.active.Anchor)
	s.stats.Pieces++
	s.emit(Event{Type: EventLocked})

	s.active = s.next
	s.next = s.catalog.Next()

	res := runClearPass(s.board, s.rule, s.scoring)
	if n := len(res.Lines); n > 0 {
		s.score += res.Points
		s.stats.Lines += n
		s.stats.Combos += res.Combos()
		s.emit(Event{Type: EventCleared, Lines: n, Combos: res.Combos(), Points: res.Points})
	}

	if !s.board.IsOccupiable(s.active.Shape, s.active.Anchor) {
		s.state = StateGameOver
		s.emit(Event{Type: EventGameOver, Score: s.score})
	}
}
