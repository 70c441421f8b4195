// Package snapshot exports a frozen board as a PNG image or plain text.
package snapshot

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

// DefaultCell is the PNG cell size in pixels.
const DefaultCell = 24

// ErrCellSize is returned for a non-positive cell size.
var ErrCellSize = errors.New("snapshot: cell size must be positive")

// rgb is a color with 0..1 channels, as gg expects.
type rgb struct{ r, g, b float64 }

// palette indexes block color ids (catalog order I J L O S T Z).
var palette = [...]rgb{
	{0.08, 0.08, 0.10}, // empty
	{0, 1, 1},          // cyan
	{0, 0, 1},          // blue
	{1, 0.65, 0},       // orange
	{1, 1, 0},          // yellow
	{0, 1, 0},          // green
	{1, 0, 1},          // magenta
	{1, 0, 0},          // red
}

func colorOf(id uint8) rgb {
	if int(id) >= len(palette) {
		return rgb{0.5, 0.5, 0.5}
	}
	return palette[id]
}

// Render draws the well into a new gg context, cell pixels per block.
func Render(snap engine.Snapshot, cell int) (*gg.Context, error) {
	if cell <= 0 {
		return nil, ErrCellSize
	}
	w, h := engine.Width*cell, engine.Height*cell
	dc := gg.NewContext(w, h)

	bg := colorOf(engine.Empty)
	dc.SetRGB(bg.r, bg.g, bg.b)
	dc.Clear()

	block := func(x, y int, c rgb) {
		dc.SetRGB(c.r, c.g, c.b)
		dc.DrawRectangle(float64(x*cell)+1, float64(y*cell)+1, float64(cell)-2, float64(cell)-2)
		dc.Fill()
	}

	for y := 0; y < engine.Height; y++ {
		for x := 0; x < engine.Width; x++ {
			if id := snap.Grid[y][x]; id != engine.Empty {
				block(x, y, colorOf(id))
			}
		}
	}

	if snap.Phase != engine.PhaseGameOver {
		c := colorOf(snap.Current.Color())
		for _, p := range snap.CurrentCells {
			if p.Y >= 0 {
				block(p.X, p.Y, c)
			}
		}
	}

	renderGrid(dc, w, h, cell)
	return dc, nil
}

// renderGrid strokes thin lines between cells.
func renderGrid(dc *gg.Context, width, height, cell int) {
	dc.SetRGB(0.25, 0.25, 0.28)
	dc.SetLineWidth(1)
	for x := 0; x <= width; x += cell {
		dc.DrawLine(float64(x), 0, float64(x), float64(height))
		dc.Stroke()
	}
	for y := 0; y <= height; y += cell {
		dc.DrawLine(0, float64(y), float64(width), float64(y))
		dc.Stroke()
	}
}

// WritePNG encodes the board as PNG to w.
func WritePNG(w io.Writer, snap engine.Snapshot, cell int) error {
	dc, err := Render(snap, cell)
	if err != nil {
		return err
	}
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("snapshot: cannot encode png: %w", err)
	}
	return nil
}

// SavePNG writes the board to path, creating parent directories.
func SavePNG(path string, snap engine.Snapshot, cell int) error {
	dc, err := Render(snap, cell)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("snapshot: cannot create directory: %w", err)
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("snapshot: cannot save %s: %w", path, err)
	}
	return nil
}

// Text renders the board as ASCII: '#' locked, '@' falling, '.' empty.
func Text(snap engine.Snapshot) string {
	var grid [engine.Height][engine.Width]byte
	for y := range grid {
		for x := range grid[y] {
			grid[y][x] = '.'
			if snap.Grid[y][x] != engine.Empty {
				grid[y][x] = '#'
			}
		}
	}
	if snap.Phase != engine.PhaseGameOver {
		for _, p := range snap.CurrentCells {
			if p.Y >= 0 && p.Y < engine.Height && p.X >= 0 && p.X < engine.Width {
				grid[p.Y][p.X] = '@'
			}
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "score %d  level %d  lines %d  best %d  %s\n",
		snap.Score, snap.Level, snap.Lines, max(snap.HighScore, snap.Score), snap.Phase)
	for y := range grid {
		sb.WriteByte('|')
		sb.Write(grid[y][:])
		sb.WriteString("|\n")
	}
	sb.WriteByte('+')
	sb.WriteString(strings.Repeat("-", engine.Width))
	sb.WriteString("+\n")
	return sb.String()
}
