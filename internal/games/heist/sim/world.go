package sim

import (
	"slices"
)

// timerEpsilon absorbs float drift when a countdown is decremented by many
// small Δt steps; anything at or below it counts as expired.
const timerEpsilon = 1e-9

// RunStats accumulates per-run figures for the HUD and the run history.
type RunStats struct {
	Elapsed     float64 // seconds spent in Playing or Frozen
	Collected   int
	QuizCorrect int
	QuizWrong   int
}

// StepResult reports the outcome of one tick.
type StepResult struct {
	Mode   Mode
	Events []Event
	// Err is set when a requested level reset failed; the world stays in the menu.
	Err error
}

// World owns all mutable simulation state. It is driven by exactly one
// caller; Step runs the controllers for the current mode to completion.
type World struct {
	grid   *Grid
	params Params
	rng    Rand

	bank        []Question
	pendingBank []Question
	deck        *Deck

	mode         Mode
	player       Player
	pursuers     []Pursuer
	collectibles []Cell
	triggers     []Cell
	question     *Question
	questionIdx  int
	stats        RunStats

	events []Event
}

// NewWorld validates the bank and the spawn capacity of the grid and returns
// a world sitting in the menu. rng is the only random source it will use.
func NewWorld(grid *Grid, bank []Question, params Params, rng Rand) (*World, error) {
	if err := CheckCapacity(grid, params.Spawn); err != nil {
		return nil, err
	}
	deck, err := NewDeck(bank, params.PinnedWindow, rng)
	if err != nil {
		return nil, err
	}

	w := &World{
		grid:   grid,
		params: params,
		rng:    rng,
		bank:   append([]Question(nil), bank...),
		deck:   deck,
		mode:   ModeMenu,
	}
	w.player = newPlayer(grid.Spawn(), params.StaminaMax)
	return w, nil
}

// Grid returns the level map.
func (w *World) Grid() *Grid {
	return w.grid
}

// Params returns the simulation tuning.
func (w *World) Params() Params {
	return w.params
}

// Mode returns the current game mode.
func (w *World) Mode() Mode {
	return w.mode
}

// Player returns a copy of the player state.
func (w *World) Player() Player {
	return w.player
}

// Deck exposes the trivia deck.
func (w *World) Deck() *Deck {
	return w.deck
}

// Stats returns the current run's statistics.
func (w *World) Stats() RunStats {
	return w.stats
}

// SetBank stages a replacement question bank. It takes effect at the next
// level reset so a running quiz never changes under the player.
func (w *World) SetBank(bank []Question) error {
	if err := ValidateBank(bank); err != nil {
		return err
	}
	w.pendingBank = append([]Question(nil), bank...)
	return nil
}

// Reset starts a fresh level instance: player back at spawn with full
// stamina and no timers, every entity re-spawned, the deck reshuffled, and
// the mode set to Playing. Nothing carries over from the previous run.
func (w *World) Reset() error {
	pop, err := Spawn(w.grid, w.params.Spawn, w.rng)
	if err != nil {
		return err
	}

	if w.pendingBank != nil {
		deck, err := NewDeck(w.pendingBank, w.params.PinnedWindow, w.rng)
		if err != nil {
			return err
		}
		w.bank, w.deck, w.pendingBank = w.pendingBank, deck, nil
		w.emit(BankSwappedEvent{Size: len(w.bank)})
	} else {
		w.deck.Shuffle()
	}

	w.player = newPlayer(w.grid.Spawn(), w.params.StaminaMax)
	w.collectibles = pop.Collectibles
	w.triggers = pop.Triggers
	w.pursuers = pop.Pursuers
	w.question = nil
	w.questionIdx = -1
	w.stats = RunStats{}
	w.setMode(ModePlaying)
	return nil
}

// Step advances the simulation by dt seconds with the intents sampled for
// this tick. Controllers run in a fixed order: player, then pursuers with
// collision evaluation.
func (w *World) Step(dt float64, in Intents) StepResult {
	w.events = w.events[:0]
	if dt < 0 {
		dt = 0
	}

	var err error
	switch w.mode {
	case ModeMenu:
		switch {
		case in.Confirm:
			err = w.Reset()
		case in.Help:
			w.setMode(ModeHelp)
		}

	case ModeHelp:
		if in.Help || in.Confirm || in.Cancel {
			w.setMode(ModeMenu)
		}

	case ModePlaying, ModeFrozen:
		w.stats.Elapsed += dt
		w.updatePlayer(dt, in)
		w.updatePursuers(dt)

	case ModeQuiz:
		if in.Choice >= 1 && in.Choice <= OptionCount {
			w.Answer(in.Choice - 1)
		}

	case ModeGameOver, ModeVictory:
		if in.Confirm {
			w.setMode(ModeMenu)
		}
	}

	return StepResult{
		Mode:   w.mode,
		Events: slices.Clone(w.events),
		Err:    err,
	}
}

// Answer resolves the pending quiz with a 0-based choice. A correct answer
// grants invisibility and refills stamina; a wrong one freezes the player.
// Returns false if no quiz is pending or the choice is out of range.
func (w *World) Answer(choice int) bool {
	if w.mode != ModeQuiz || w.question == nil {
		return false
	}
	if choice < 0 || choice >= OptionCount {
		return false
	}

	correct := choice == w.question.Correct
	w.emit(AnsweredEvent{QuestionIndex: w.questionIdx, Choice: choice, Correct: correct})
	w.question = nil
	w.questionIdx = -1

	if correct {
		w.stats.QuizCorrect++
		w.player.Invisible = w.params.InvisibleDuration
		w.player.Stamina = w.params.StaminaMax
		w.setMode(ModePlaying)
	} else {
		w.stats.QuizWrong++
		w.player.Frozen = w.params.FreezeDuration
		w.setMode(ModeFrozen)
	}
	return true
}

func (w *World) setMode(m Mode) {
	if w.mode == m {
		return
	}
	w.emit(ModeChangedEvent{From: w.mode, To: m})
	w.mode = m
}

func (w *World) emit(e Event) {
	w.events = append(w.events, e)
}
