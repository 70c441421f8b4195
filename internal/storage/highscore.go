package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// FileHighScore keeps a single best score as decimal text in a file.
// It implements engine.HighScoreStore.
type FileHighScore struct {
	Path   string
	Logger *log.Logger // optional; receives save failures
}

// NewFileHighScore returns a file-backed store, expanding a leading ~.
func NewFileHighScore(path string, logger *log.Logger) *FileHighScore {
	if strings.HasPrefix(path, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[1:])
		}
	}
	return &FileHighScore{Path: path, Logger: logger}
}

// LoadHighScore reads the stored score. A missing, unreadable or malformed
// file reads as 0.
func (f *FileHighScore) LoadHighScore() int {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// Save writes the score through a temporary file and a rename, so a crash
// never leaves a truncated record.
func (f *FileHighScore) Save(score int) error {
	dir := filepath.Dir(f.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".highscore-*")
	if err != nil {
		return fmt.Errorf("storage: cannot create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if _, err := tmp.WriteString(strconv.Itoa(score)); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: cannot write high score: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: cannot write high score: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.Path); err != nil {
		return fmt.Errorf("storage: cannot replace %s: %w", f.Path, err)
	}
	return nil
}

// SaveHighScore implements engine.HighScoreStore. Failures are logged, not returned.
func (f *FileHighScore) SaveHighScore(score int) {
	if err := f.Save(score); err != nil && f.Logger != nil {
		f.Logger.Warn("high score not saved", "path", f.Path, "err", err)
	}
}

// GameHighScore reads the best score of one game from the scores table.
// It implements engine.HighScoreStore.
type GameHighScore struct {
	Store  *Store
	GameID string
	Logger *log.Logger // optional
}

// LoadHighScore returns MAX(score) for the game, or 0 on any error.
func (g *GameHighScore) LoadHighScore() int {
	n, err := g.Store.HighScore(g.GameID)
	if err != nil {
		if g.Logger != nil {
			g.Logger.Warn("high score not loaded", "game", g.GameID, "err", err)
		}
		return 0
	}
	return n
}

// SaveHighScore records score only when it beats the stored best. Finished
// games are recorded by the platform, so this rarely inserts anything.
func (g *GameHighScore) SaveHighScore(score int) {
	best, err := g.Store.HighScore(g.GameID)
	if err == nil && score <= best {
		return
	}
	if err == nil {
		_, err = g.Store.SaveScore(g.GameID, score)
	}
	if err != nil && g.Logger != nil {
		g.Logger.Warn("high score not saved", "game", g.GameID, "err", err)
	}
}
