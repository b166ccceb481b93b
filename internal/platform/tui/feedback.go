package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/frytris/internal/engine"
)

// Cue is a sound-worthy game moment.
type Cue int

const (
	CueNone Cue = iota
	CueRotate
	CueLock
	CueClear
	CueCombo
	CueLevelUp
	CueGameOver
)

func (c Cue) String() string {
	switch c {
	case CueRotate:
		return "rotate"
	case CueLock:
		return "lock"
	case CueClear:
		return "clear"
	case CueCombo:
		return "combo"
	case CueLevelUp:
		return "level_up"
	case CueGameOver:
		return "game_over"
	default:
		return "none"
	}
}

// cueFor maps an engine event to its cue.
func cueFor(e engine.Event) Cue {
	switch e.Type {
	case engine.EventRotated:
		return CueRotate
	case engine.EventLocked:
		return CueLock
	case engine.EventCleared:
		if e.Combos > 0 {
			return CueCombo
		}
		return CueClear
	case engine.EventLevelUp:
		return CueLevelUp
	case engine.EventGameOver:
		return CueGameOver
	}
	return CueNone
}

// Feedback turns cues into program commands. Play runs on the update loop
// and must not block; any output goes through the returned command so it
// reaches the terminal via the renderer.
type Feedback interface {
	Play(Cue) tea.Cmd
}

// bellMsg asks the model to ring the terminal bell.
type bellMsg struct{}

// Bell rings the terminal bell for the big moments. Rotations and locks are
// too frequent to ring for.
type Bell struct{}

// Play implements Feedback.
func (Bell) Play(c Cue) tea.Cmd {
	switch c {
	case CueClear, CueCombo, CueLevelUp, CueGameOver:
		return func() tea.Msg { return bellMsg{} }
	}
	return nil
}

// Silent discards every cue.
type Silent struct{}

// Play implements Feedback.
func (Silent) Play(Cue) tea.Cmd { return nil }
