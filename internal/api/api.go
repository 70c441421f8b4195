// Package api serves a read-only JSON leaderboard over HTTP.
package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

// ScoreSource is the part of the score store the API reads.
type ScoreSource interface {
	TopScores(gameID string, limit int) ([]storage.ScoreEntry, error)
	GetGameStats(gameID string) (*storage.GameStats, error)
	GetAllGamesStats() (map[string]*storage.GameStats, error)
}

// scoreJSON is the wire form of one leaderboard row.
type scoreJSON struct {
	Rank      int       `json:"rank"`
	Score     int       `json:"score"`
	Level     int       `json:"level"`
	Lines     int       `json:"lines"`
	CreatedAt time.Time `json:"created_at"`
}

// NewRouter builds the gin engine with all leaderboard routes.
func NewRouter(scores ScoreSource, logger *log.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	group := router.Group("/api")
	group.GET("/games", ListGames())
	group.GET("/scores/:game", TopScores(scores))
	group.GET("/stats", AllStats(scores))
	group.GET("/stats/:game", GameStats(scores))

	return router
}

// requestLogger logs each request through charmbracelet/log.
func requestLogger(logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		if logger == nil {
			return
		}
		logger.Debug("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"took", time.Since(start),
		)
	}
}

// ListGames returns the registered games.
func ListGames() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"games": registry.List()})
	}
}

// knownGame writes a 404 and returns false for unregistered games.
func knownGame(c *gin.Context) (string, bool) {
	id := c.Param("game")
	if !registry.Exists(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown game " + strconv.Quote(id)})
		return "", false
	}
	return id, true
}

// parseLimit reads ?limit=N, clamped to 1..maxLimit.
func parseLimit(c *gin.Context) (int, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return defaultLimit, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
		return 0, false
	}
	return min(n, maxLimit), true
}

// TopScores returns the best scores of one game.
func TopScores(scores ScoreSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := knownGame(c)
		if !ok {
			return
		}
		limit, ok := parseLimit(c)
		if !ok {
			return
		}

		entries, err := scores.TopScores(id, limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load scores"})
			return
		}

		out := make([]scoreJSON, 0, len(entries))
		for i, e := range entries {
			out = append(out, scoreJSON{
				Rank:      i + 1,
				Score:     e.Score,
				Level:     e.Level,
				Lines:     e.Lines,
				CreatedAt: e.CreatedAt,
			})
		}
		c.JSON(http.StatusOK, gin.H{"game": id, "scores": out})
	}
}

// GameStats returns aggregated statistics for one game.
func GameStats(scores ScoreSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := knownGame(c)
		if !ok {
			return
		}
		stats, err := scores.GetGameStats(id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load stats"})
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}

// AllStats returns statistics for every game that has recorded scores.
func AllStats(scores ScoreSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := scores.GetAllGamesStats()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load stats"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"stats": stats})
	}
}

// Server runs the router until its context is cancelled.
type Server struct {
	srv    *http.Server
	logger *log.Logger
}

// NewServer creates an HTTP server for the leaderboard on addr.
func NewServer(addr string, scores ScoreSource, logger *log.Logger) *Server {
	return &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           NewRouter(scores, logger),
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
	}
}

// Run serves until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if s.logger != nil {
			s.logger.Info("starting leaderboard server", "addr", s.srv.Addr)
		}
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if s.logger != nil {
		s.logger.Info("stopping leaderboard server")
	}
	return s.srv.Shutdown(shutdownCtx)
}
