package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/storage"
)

func boardUpdate(t *testing.T, m ScoreboardModel, msg tea.Msg) ScoreboardModel {
	t.Helper()
	next, _ := m.Update(msg)
	got, ok := next.(ScoreboardModel)
	require.True(t, ok)
	return got
}

func TestScoreboardLoadsModeScores(t *testing.T) {
	store := openStore(t)
	for _, r := range []storage.Run{
		{GameID: "tetris", Score: 800, Level: 2, Lines: 12},
		{GameID: "tetris", Score: 2400, Level: 4, Lines: 33},
		{GameID: "tetris_fixed", Score: 100, Level: 1, Lines: 1},
	} {
		_, err := store.SaveRun(r)
		require.NoError(t, err)
	}

	m := NewScoreboardModel(store, 80, 24)
	require.Equal(t, "tetris", m.mode())
	require.Len(t, m.scores, 2)
	assert.Equal(t, 2400, m.scores[0].Score)

	rows := m.table.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"#1", "2400", "4", "33"}, []string(rows[0][:4]))

	view := m.View()
	assert.Contains(t, view, "HIGH SCORES")
	assert.Contains(t, view, "2 games")
	assert.Contains(t, view, "max level 4")

	m = boardUpdate(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "tetris_fixed", m.mode())
	assert.Len(t, m.scores, 1)

	m = boardUpdate(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "tetris", m.mode(), "modes wrap around")

	m = boardUpdate(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, "tetris_fixed", m.mode())
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)

	assert.Empty(t, m.scores)
	assert.Contains(t, m.View(), "No scores recorded yet")
	assert.Contains(t, m.View(), "no games played")
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := boardUpdate(t, NewScoreboardModel(nil, 80, 24), tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, m.IsGoingBack())
	assert.False(t, m.IsQuitting())
	assert.Empty(t, m.View())

	m = boardUpdate(t, NewScoreboardModel(nil, 80, 24), runeKey('q'))
	assert.True(t, m.IsQuitting())
}

func TestScoreboardResize(t *testing.T) {
	m := boardUpdate(t, NewScoreboardModel(nil, 80, 24), tea.WindowSizeMsg{Width: 50, Height: 40})

	assert.Equal(t, 50, m.width)
	assert.Equal(t, 40, m.height)
	assert.Equal(t, 12, m.table.Columns()[4].Width, "narrow terminals get a short date column")
}
