package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

// Visual characters for rendering
const (
	BlockChar = '█'
	GhostChar = '░'
	EmptyChar = '·'
)

// Render draws the well, the side panel and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall || g.eng == nil {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", minW, minH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	snap := g.eng.Snapshot()
	well := g.wellRect(dst)

	g.renderWell(dst, well, snap)
	g.renderPanel(dst, core.NewRect(well.Right()+2, well.Y, panelW, wellH), snap)
	g.renderOverlay(dst, well, snap)
}

// wellRect returns the bordered well, centering well and panel together.
func (g *Game) wellRect(dst *core.Screen) core.Rect {
	area := dst.Bounds().Centered(minW, minH)
	return core.NewRect(area.X, area.Y, wellW, wellH)
}

// drawBlock paints one board cell (two characters) inside the well.
func drawBlock(dst *core.Screen, well core.Rect, x, y int, r rune, c core.Color) {
	sx := well.X + 1 + x*cellW
	sy := well.Y + 1 + y
	dst.SetColored(sx, sy, r, c)
	dst.SetColored(sx+1, sy, r, c)
}

// renderWell draws the border, locked cells, ghost and falling piece.
func (g *Game) renderWell(dst *core.Screen, well core.Rect, snap engine.Snapshot) {
	dst.DrawBox(well, core.ColorGray)

	for y := 0; y < engine.Height; y++ {
		for x := 0; x < engine.Width; x++ {
			id := snap.Grid[y][x]
			if id == engine.Empty {
				dst.SetColored(well.X+1+x*cellW+1, well.Y+1+y, EmptyChar, core.ColorGray)
				continue
			}
			drawBlock(dst, well, x, y, BlockChar, core.PieceColor(id))
		}
	}

	if snap.Phase == engine.PhaseGameOver {
		return
	}

	color := core.PieceColor(snap.Current.Color())
	if dy := snap.GhostY - snap.Current.Y; dy > 0 {
		for _, p := range snap.CurrentCells {
			if p.Y+dy >= 0 {
				drawBlock(dst, well, p.X, p.Y+dy, GhostChar, color)
			}
		}
	}
	for _, p := range snap.CurrentCells {
		if p.Y >= 0 {
			drawBlock(dst, well, p.X, p.Y, BlockChar, color)
		}
	}
}

// renderPanel draws the next-piece preview and the HUD.
func (g *Game) renderPanel(dst *core.Screen, panel core.Rect, snap engine.Snapshot) {
	preview := core.NewRect(panel.X, panel.Y, panelW, 6)
	dst.DrawBox(preview, core.ColorGray)
	dst.DrawText(preview.X+2, preview.Y, " NEXT ")

	next := snap.Next.Shape
	color := core.PieceColor(snap.Next.Color())
	offX := preview.X + (panelW-next.Size()*cellW)/2
	for r := 0; r < next.Size(); r++ {
		for c := 0; c < next.Size(); c++ {
			if next.At(r, c) {
				dst.SetColored(offX+c*cellW, preview.Y+1+r, BlockChar, color)
				dst.SetColored(offX+c*cellW+1, preview.Y+1+r, BlockChar, color)
			}
		}
	}

	y := preview.Bottom() + 1
	stats := []struct {
		label string
		value int
	}{
		{"SCORE", snap.Score},
		{"LEVEL", snap.Level},
		{"LINES", snap.Lines},
		{"BEST", max(snap.HighScore, snap.Score)},
	}
	for _, s := range stats {
		dst.DrawTextColored(panel.X+1, y, s.label, core.ColorGray)
		dst.DrawTextColored(panel.X+1, y+1, fmt.Sprintf("%d", s.value), core.ColorBrightWhite)
		y += 3
	}

	if g.mode == ModeFixed {
		dst.DrawTextColored(panel.X+1, y, "fixed speed", core.ColorGray)
	}
}

// renderOverlay draws the pause and game over boxes over the well.
func (g *Game) renderOverlay(dst *core.Screen, well core.Rect, snap engine.Snapshot) {
	switch snap.Phase {
	case engine.PhasePaused:
		drawCenteredBox(dst, well, "PAUSED", "P to resume", core.ColorYellow)
	case engine.PhaseGameOver:
		drawCenteredBox(dst, well, "GAME OVER", "R to restart", core.ColorRed)
	}
}

// drawCenteredBox draws a message box centered inside area.
func drawCenteredBox(dst *core.Screen, area core.Rect, title, subtitle string, c core.Color) {
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	box := area.Centered(boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, c)

	dst.DrawTextColored(box.X+(boxW-len(title))/2, box.Y+1, title, c)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}
