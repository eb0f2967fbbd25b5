// Package tui runs games in the terminal with Bubble Tea. It owns the frame
// loop, maps keys and the mouse to game input and draws the screen buffer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	minTickRate = 10
	maxTickRate = 240
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// ClampTickRate keeps rate within the range the loop supports.
func ClampTickRate(rate int) int {
	return max(minTickRate, min(rate, maxTickRate))
}

// tickInterval is the time between two ticks at rate.
func tickInterval(rate int) time.Duration {
	return time.Second / time.Duration(ClampTickRate(rate))
}

// tickCmd schedules the next tick.
func tickCmd(rate int) tea.Cmd {
	return tea.Tick(tickInterval(rate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
