package tui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// isolate keeps games from reading the developer's config.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
}

func menuUpdate(t *testing.T, m MenuModel, msg tea.Msg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	got, ok := next.(MenuModel)
	require.True(t, ok)
	return got
}

func TestMenuListsModesWithBest(t *testing.T) {
	store := openStore(t)
	_, err := store.SaveRun(storage.Run{GameID: "tetris", Score: 4200, Level: 5, Lines: 40})
	require.NoError(t, err)

	m := NewMenuModel(store, core80x24())

	require.Len(t, m.items, 2)
	assert.Equal(t, "tetris", m.items[0].GameID)
	assert.Equal(t, 4200, m.items[0].Best)
	assert.Equal(t, "tetris_fixed", m.items[1].GameID)
	assert.Zero(t, m.items[1].Best)

	view := m.View()
	assert.Contains(t, view, "T E T R I S")
	assert.Contains(t, view, "Tetris (Fixed Speed)")
	assert.Contains(t, view, "best 4200")
}

func TestMenuNavigationAndSelect(t *testing.T) {
	m := NewMenuModel(nil, core80x24())

	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.cursor, "cursor stays on the first item")

	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.cursor, "cursor stops on the last item")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)
	require.NotNil(t, m.Selected())
	assert.Equal(t, "tetris_fixed", m.Selected().GameID)
	assert.NotNil(t, cmd)
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := menuUpdate(t, NewMenuModel(nil, core80x24()), tea.KeyMsg{Type: tea.KeyTab})
	assert.True(t, m.WantsScoreboard())
	assert.False(t, m.IsQuitting())

	m = menuUpdate(t, NewMenuModel(nil, core80x24()), tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, m.IsQuitting())
	assert.Empty(t, m.View())
}

func TestMenuResizeUpdatesConfig(t *testing.T) {
	m := menuUpdate(t, NewMenuModel(nil, core80x24()), tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Equal(t, 120, m.Config().ScreenW)
	assert.Equal(t, 40, m.Config().ScreenH)
}

func TestCenterText(t *testing.T) {
	assert.Equal(t, "   abcd", centerText("abcd", 10))
	assert.Equal(t, "abcdef", centerText("abcdef", 4))
}

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	got, ok := next.(SessionModel)
	require.True(t, ok)
	return got
}

func TestSessionMenuGameMenu(t *testing.T) {
	isolate(t)
	logger := log.New(io.Discard)
	store := openStore(t)

	m := NewSessionModel(store, core80x24(), "alice", logger)
	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, m.gameModel)
	assert.Equal(t, "tetris", m.gameModel.game.ID())

	m = sessionUpdate(t, m, TickMsg{})
	assert.Contains(t, m.View(), "NEXT")

	// Esc pauses first, then leaves to the menu.
	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m = sessionUpdate(t, m, TickMsg{})
	require.True(t, m.gameModel.gameState.Paused)
	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Nil(t, m.gameModel)
	assert.False(t, m.quitting)
	assert.Contains(t, m.View(), "T E T R I S")
}

func TestSessionScoreboardRoundTrip(t *testing.T) {
	isolate(t)
	m := NewSessionModel(nil, core80x24(), "bob", log.New(io.Discard))

	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.NotNil(t, m.scoreboard)

	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, m.scoreboard)
	assert.False(t, m.menu.WantsScoreboard())
}

func TestSessionQuitFromGame(t *testing.T) {
	isolate(t)
	m := NewSessionModel(nil, core80x24(), "carol", log.New(io.Discard))
	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, m.gameModel)

	next, cmd := m.Update(runeKey('q'))
	m = next.(SessionModel)

	assert.True(t, m.quitting)
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())
}
