package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesNestedFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file should exist in nested directory")
}

func TestStoreOpenExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.tetris/scores.db")
	require.NoError(t, err)
	defer store.Close()

	assert.FileExists(t, filepath.Join(home, ".tetris", "scores.db"))
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{100, 50, 200} {
		_, err := store.SaveScore("tetris", s)
		require.NoError(t, err)
	}
	_, err := store.SaveScore("tetris_fixed", 500)
	require.NoError(t, err)

	scores, err := store.TopScores("tetris", 10)
	require.NoError(t, err)
	require.Len(t, scores, 3)
	assert.Equal(t, 200, scores[0].Score)
	assert.Equal(t, 100, scores[1].Score)
	assert.Equal(t, 50, scores[2].Score)
	assert.False(t, scores[0].CreatedAt.IsZero())

	fixed, err := store.TopScores("tetris_fixed", 10)
	require.NoError(t, err)
	assert.Len(t, fixed, 1)
}

func TestStoreSaveRunKeepsLevelAndLines(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveRun(Run{GameID: "tetris", Score: 1200, Level: 3, Lines: 24})
	require.NoError(t, err)
	_, err = store.SaveRun(Run{GameID: "tetris", Score: 0})
	require.NoError(t, err)

	scores, err := store.AllScores("tetris")
	require.NoError(t, err)
	require.Len(t, scores, 2)
	assert.Equal(t, 3, scores[0].Level)
	assert.Equal(t, 24, scores[0].Lines)
	assert.Equal(t, 1, scores[1].Level, "level is at least 1")
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)
	for i := range 5 {
		store.SaveScore("tetris", (i+1)*100)
	}

	scores, err := store.TopScores("tetris", 3)
	require.NoError(t, err)
	require.Len(t, scores, 3)
	assert.Equal(t, []int{500, 400, 300}, []int{scores[0].Score, scores[1].Score, scores[2].Score})

	def, err := store.TopScores("tetris", 0)
	require.NoError(t, err)
	assert.Len(t, def, 5, "non-positive limit falls back to 10")
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("tetris")
	require.NoError(t, err)
	assert.Zero(t, high)

	store.SaveScore("tetris", 100)
	store.SaveScore("tetris", 300)
	store.SaveScore("tetris", 200)

	high, err = store.HighScore("tetris")
	require.NoError(t, err)
	assert.Equal(t, 300, high)
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)
	store.SaveScore("tetris", 100)
	store.SaveScore("tetris", 200)
	store.SaveScore("tetris_fixed", 300)

	require.NoError(t, store.ClearScores("tetris"))

	cleared, _ := store.TopScores("tetris", 10)
	assert.Empty(t, cleared)
	kept, _ := store.TopScores("tetris_fixed", 10)
	assert.Len(t, kept, 1)
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)
	for i := range 20 {
		store.SaveScore("tetris", i*10)
	}

	scores, err := store.AllScores("tetris")
	require.NoError(t, err)
	assert.Len(t, scores, 20)
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("tetris")
	require.NoError(t, err)
	assert.Zero(t, empty.GamesCount)
	assert.True(t, empty.LastPlayed.IsZero())

	store.SaveRun(Run{GameID: "tetris", Score: 100, Level: 1, Lines: 4})
	store.SaveRun(Run{GameID: "tetris", Score: 300, Level: 2, Lines: 12})
	store.SaveRun(Run{GameID: "tetris_fixed", Score: 50, Level: 1, Lines: 1})

	st, err := store.GetGameStats("tetris")
	require.NoError(t, err)
	assert.Equal(t, 2, st.GamesCount)
	assert.Equal(t, 300, st.HighScore)
	assert.InDelta(t, 200.0, st.AvgScore, 0.001)
	assert.Equal(t, int64(400), st.TotalScore)
	assert.Equal(t, 2, st.MaxLevel)
	assert.Equal(t, int64(16), st.TotalLines)
	assert.False(t, st.LastPlayed.IsZero())

	all, err := store.GetAllGamesStats()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, 50, all["tetris_fixed"].HighScore)
}
