package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/maze-heist/internal/core"
	"github.com/vovakirdan/maze-heist/internal/games/heist/sim"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		sprint bool
		quit   bool
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false, false},
		{"w", runeKey('w'), core.ActionUp, false, false},
		{"shift up", tea.KeyMsg{Type: tea.KeyShiftUp}, core.ActionUp, true, false},
		{"capital W", runeKey('W'), core.ActionUp, true, false},
		{"s", runeKey('s'), core.ActionDown, false, false},
		{"capital S", runeKey('S'), core.ActionDown, true, false},
		{"shift left", tea.KeyMsg{Type: tea.KeyShiftLeft}, core.ActionLeft, true, false},
		{"d", runeKey('d'), core.ActionRight, false, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionConfirm, false, false},
		{"h", runeKey('h'), core.ActionHelp, false, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionCancel, false, false},
		{"1", runeKey('1'), core.ActionChoice1, false, false},
		{"2", runeKey('2'), core.ActionChoice2, false, false},
		{"3", runeKey('3'), core.ActionChoice3, false, false},
		{"4", runeKey('4'), core.ActionNone, false, false},
		{"q", runeKey('q'), core.ActionNone, false, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionNone, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, sprint, quit := km.MapKey(tt.msg)
			if action != tt.action {
				t.Errorf("action = %v, want %v", action, tt.action)
			}
			if sprint != tt.sprint {
				t.Errorf("sprint = %v, want %v", sprint, tt.sprint)
			}
			if quit != tt.quit {
				t.Errorf("quit = %v, want %v", quit, tt.quit)
			}
		})
	}
}

func TestForModeShowsAnswersDuringQuiz(t *testing.T) {
	keys := DefaultKeyMap()
	bindings := keys.ForMode(sim.ModeQuiz)
	if len(bindings) != 4 {
		t.Fatalf("got %d bindings, want 4", len(bindings))
	}
	if bindings[0].Help().Key != "1" {
		t.Errorf("first binding = %q, want answer 1", bindings[0].Help().Key)
	}

	over := keys.ForMode(sim.ModeGameOver)
	if over[0].Help().Desc != "menu" {
		t.Errorf("game over confirm desc = %q, want menu", over[0].Help().Desc)
	}
	if keys.Confirm.Help().Desc != "start" {
		t.Error("ForMode must not mutate the shared binding")
	}
}
