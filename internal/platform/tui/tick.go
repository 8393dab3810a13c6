// Package tui runs the stickman scene under Bubble Tea, locally or over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to advance the scene by one frame.
type TickMsg time.Time

// tickCmd returns a command that fires one TickMsg after a frame interval.
func tickCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 1
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
