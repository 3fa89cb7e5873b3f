// Package tui provides the Bubble Tea frontend for Maze Heist. It owns the
// terminal loop, key mapping, held-key emulation and run bookkeeping.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxDelta caps the measured frame time so a stalled terminal does not
// teleport pursuers.
const maxDelta = 250 * time.Millisecond

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the seconds elapsed between two ticks. The first tick
// uses the nominal interval.
func frameDelta(prev, now time.Time, tickRate int) float64 {
	if prev.IsZero() {
		if tickRate <= 0 {
			tickRate = 60
		}
		return 1 / float64(tickRate)
	}
	d := now.Sub(prev)
	if d < 0 {
		d = 0
	}
	if d > maxDelta {
		d = maxDelta
	}
	return d.Seconds()
}
