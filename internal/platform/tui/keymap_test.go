package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		want   core.Action
		isQuit bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"h", runeKey('h'), core.ActionLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"l", runeKey('l'), core.ActionRight, false},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{"s", runeKey('s'), core.ActionDown, false},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionRotate, false},
		{"x", runeKey('x'), core.ActionRotate, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionDrop, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, isQuit := keys.MapKey(tc.msg)
			assert.Equal(t, tc.want, action)
			assert.Equal(t, tc.isQuit, isQuit)
		})
	}
}

func TestMapKeyToFrameKeepsOrder(t *testing.T) {
	keys := DefaultKeyMap()
	frame := core.NewInputFrame()

	assert.False(t, keys.MapKeyToFrame(runeKey('a'), &frame))
	assert.False(t, keys.MapKeyToFrame(runeKey('a'), &frame))
	assert.False(t, keys.MapKeyToFrame(runeKey('w'), &frame))
	assert.False(t, keys.MapKeyToFrame(runeKey('z'), &frame))
	assert.True(t, keys.MapKeyToFrame(runeKey('q'), &frame))

	assert.Equal(t, []core.Action{core.ActionLeft, core.ActionLeft, core.ActionRotate}, frame.Actions)
}

func TestMapKeyToMenuAction(t *testing.T) {
	keys := DefaultMenuKeyMap()

	assert.Equal(t, MenuActionUp, keys.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyUp}))
	assert.Equal(t, MenuActionDown, keys.MapKeyToMenuAction(runeKey('j')))
	assert.Equal(t, MenuActionSelect, keys.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, MenuActionScoreboard, keys.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyTab}))
	assert.Equal(t, MenuActionBack, keys.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyEsc}))
	assert.Equal(t, MenuActionQuit, keys.MapKeyToMenuAction(runeKey('q')))
	assert.Equal(t, MenuActionNone, keys.MapKeyToMenuAction(runeKey('z')))
}
