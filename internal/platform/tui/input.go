package tui

import (
	"time"

	"github.com/vovakirdan/maze-heist/internal/core"
)

// heldInput emulates key-down state on top of a terminal's press-only key
// stream. A held action stays active for window after its last press (auto
// repeat refreshes it). Edge actions fire on exactly one tick.
type heldInput struct {
	window   time.Duration
	lastSeen map[core.Action]time.Time
	edges    core.InputFrame
}

func newHeldInput(window time.Duration) *heldInput {
	return &heldInput{
		window:   window,
		lastSeen: make(map[core.Action]time.Time),
		edges:    core.NewInputFrame(),
	}
}

// Press records a key press at time at.
func (h *heldInput) Press(a core.Action, at time.Time) {
	if a == core.ActionNone {
		return
	}
	if !a.Held() {
		h.edges.Set(a)
		return
	}
	if opp, ok := opposite[a]; ok {
		delete(h.lastSeen, opp)
	}
	h.lastSeen[a] = at
}

var opposite = map[core.Action]core.Action{
	core.ActionUp:    core.ActionDown,
	core.ActionDown:  core.ActionUp,
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
}

// Frame samples the input for a tick at now and consumes pending edges.
func (h *heldInput) Frame(now time.Time) core.InputFrame {
	frame := h.edges.Clone()
	h.edges.Clear()
	for a, at := range h.lastSeen {
		if now.Sub(at) <= h.window {
			frame.Set(a)
		} else {
			delete(h.lastSeen, a)
		}
	}
	return frame
}

// Release drops every held action, e.g. when a quiz pops up.
func (h *heldInput) Release() {
	clear(h.lastSeen)
}

// Drop releases a single held action.
func (h *heldInput) Drop(a core.Action) {
	delete(h.lastSeen, a)
}
