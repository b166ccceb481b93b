package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/frytris/internal/engine"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapCommand(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want engine.Command
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, engine.CmdMoveLeft},
		{"a", runeKey('a'), engine.CmdMoveLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, engine.CmdMoveRight},
		{"d", runeKey('d'), engine.CmdMoveRight},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, engine.CmdSoftDrop},
		{"space", runeKey(' '), engine.CmdHardDrop},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, engine.CmdRotate},
		{"x", runeKey('x'), engine.CmdRotate},
		{"p", runeKey('p'), engine.CmdTogglePause},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, engine.CmdTogglePause},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, ok := keys.Command(tt.msg)
			assert.True(t, ok)
			assert.Equal(t, tt.want, cmd)
		})
	}
}

func TestKeyMapIgnoresOtherKeys(t *testing.T) {
	keys := DefaultKeyMap()
	for _, msg := range []tea.KeyMsg{runeKey('m'), runeKey('q'), {Type: tea.KeyEnter}} {
		_, ok := keys.Command(msg)
		assert.False(t, ok, msg.String())
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()
	assert.NotEmpty(t, keys.ShortHelp())
	total := 0
	for _, col := range keys.FullHelp() {
		total += len(col)
	}
	assert.Equal(t, 12, total)
}
