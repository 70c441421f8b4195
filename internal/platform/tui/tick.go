// Package tui runs games in a terminal with Bubble Tea: local play, the
// mode picker, the scoreboard and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Bounds for --fps.
const (
	minTickRate = 1
	maxTickRate = 240
)

// TickMsg triggers one simulation step.
type TickMsg time.Time

// clampTickRate bounds a requested rate; zero or less means the default.
func clampTickRate(rate, fallback int) int {
	if rate <= 0 {
		rate = fallback
	}
	return min(max(rate, minTickRate), maxTickRate)
}

// tickCmd schedules the next tick at the given rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
