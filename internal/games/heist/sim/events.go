package sim

// Event is something notable that happened during a tick.
type Event interface {
	simEvent()
}

// ModeChangedEvent is emitted on every Game Mode transition.
type ModeChangedEvent struct {
	From, To Mode
}

func (ModeChangedEvent) simEvent() {}

// CollectibleTakenEvent is emitted when the player picks up a collectible.
type CollectibleTakenEvent struct {
	Cell      Cell
	Remaining int
}

func (CollectibleTakenEvent) simEvent() {}

// TriggerTakenEvent is emitted when a bonus trigger launches a question.
type TriggerTakenEvent struct {
	Cell          Cell
	QuestionIndex int
}

func (TriggerTakenEvent) simEvent() {}

// AnsweredEvent is emitted when a quiz is resolved.
type AnsweredEvent struct {
	QuestionIndex int
	Choice        int
	Correct       bool
}

func (AnsweredEvent) simEvent() {}

// CaughtEvent is emitted when a pursuer catches a visible player.
type CaughtEvent struct {
	Pursuer int
	Cell    Cell
}

func (CaughtEvent) simEvent() {}

// EscapedEvent is emitted when the player reaches an unlocked exit.
type EscapedEvent struct {
	Cell Cell
}

func (EscapedEvent) simEvent() {}

// BankSwappedEvent is emitted when a staged question bank takes effect.
type BankSwappedEvent struct {
	Size int
}

func (BankSwappedEvent) simEvent() {}
