package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/frytris/internal/engine"
)

// recorder collects every cue it is asked to play.
type recorder struct {
	cues []Cue
}

func (r *recorder) Play(c Cue) tea.Cmd {
	r.cues = append(r.cues, c)
	return nil
}

func TestCueForEvent(t *testing.T) {
	tests := []struct {
		event engine.Event
		want  Cue
	}{
		{engine.Event{Type: engine.EventRotated}, CueRotate},
		{engine.Event{Type: engine.EventLocked}, CueLock},
		{engine.Event{Type: engine.EventCleared, Lines: 1}, CueClear},
		{engine.Event{Type: engine.EventCleared, Lines: 1, Combos: 1}, CueCombo},
		{engine.Event{Type: engine.EventLevelUp, Level: 2}, CueLevelUp},
		{engine.Event{Type: engine.EventGameOver}, CueGameOver},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, cueFor(tt.event))
		})
	}
}

func TestBellRingsForBigMoments(t *testing.T) {
	bell := Bell{}

	assert.Nil(t, bell.Play(CueRotate))
	assert.Nil(t, bell.Play(CueLock))
	assert.Nil(t, Silent{}.Play(CueGameOver))

	for _, c := range []Cue{CueClear, CueCombo, CueLevelUp, CueGameOver} {
		cmd := bell.Play(c)
		require.NotNil(t, cmd, c.String())
		assert.Equal(t, bellMsg{}, cmd())
	}
}
