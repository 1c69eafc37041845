// Package tui provides the Bubble Tea integration for the reflex game.
// It handles the terminal UI loop, input mapping, and the render of the
// seven-segment target display.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a render frame. Each frame runs a batch of
// engine ticks so the engine clock can be much faster than the frame rate.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// specified frame rate.
func tickCmd(fps int) tea.Cmd {
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
