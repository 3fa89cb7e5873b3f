package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/maze-heist/internal/core"
	"github.com/vovakirdan/maze-heist/internal/games/heist/sim"
)

// KeyMap defines the key bindings for a heist session.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Sprint     key.Binding
	Confirm    key.Binding
	Help       key.Binding
	Cancel     key.Binding
	Choice1    key.Binding
	Choice2    key.Binding
	Choice3    key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "shift+up", "W"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "shift+down", "S"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "shift+left", "A"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "shift+right", "D"),
			key.WithHelp("→/d", "right"),
		),
		// Terminals have no bare shift key event: sprint rides on the
		// shifted direction keys.
		Sprint: key.NewBinding(
			key.WithKeys("shift+up", "shift+down", "shift+left", "shift+right", "W", "A", "S", "D"),
			key.WithHelp("shift+dir", "sprint"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "start"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h", "help"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Choice1: key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "answer 1")),
		Choice2: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "answer 2")),
		Choice3: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "answer 3")),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Sprint, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Sprint},
		{k.Choice1, k.Choice2, k.Choice3},
		{k.Confirm, k.Help, k.Cancel, k.Screenshot, k.Quit},
	}
}

// ForMode returns the bindings worth showing in the footer for mode.
func (k KeyMap) ForMode(mode sim.Mode) []key.Binding {
	switch mode {
	case sim.ModeMenu:
		return []key.Binding{k.Confirm, k.Help, k.Quit}
	case sim.ModeHelp:
		return []key.Binding{k.Cancel, k.Quit}
	case sim.ModeQuiz:
		return []key.Binding{k.Choice1, k.Choice2, k.Choice3, k.Quit}
	case sim.ModeGameOver, sim.ModeVictory:
		confirm := k.Confirm
		confirm.SetHelp("enter", "menu")
		return []key.Binding{confirm, k.Screenshot, k.Quit}
	default:
		return k.ShortHelp()
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings in use.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to an action. sprint reports whether the
// key also carries the sprint modifier; isQuit whether it is a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, sprint, isQuit bool) {
	k := km.keys
	if key.Matches(msg, k.Quit) {
		return core.ActionNone, false, true
	}

	sprint = key.Matches(msg, k.Sprint)
	switch {
	case key.Matches(msg, k.Up):
		return core.ActionUp, sprint, false
	case key.Matches(msg, k.Down):
		return core.ActionDown, sprint, false
	case key.Matches(msg, k.Left):
		return core.ActionLeft, sprint, false
	case key.Matches(msg, k.Right):
		return core.ActionRight, sprint, false
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm, false, false
	case key.Matches(msg, k.Help):
		return core.ActionHelp, false, false
	case key.Matches(msg, k.Cancel):
		return core.ActionCancel, false, false
	case key.Matches(msg, k.Choice1):
		return core.ActionChoice1, false, false
	case key.Matches(msg, k.Choice2):
		return core.ActionChoice2, false, false
	case key.Matches(msg, k.Choice3):
		return core.ActionChoice3, false, false
	}
	return core.ActionNone, false, false
}
