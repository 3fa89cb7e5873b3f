package sim

// Mode is the top-level game mode. It decides which controllers run each
// tick and which intents are accepted.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModeQuiz
	ModeFrozen
	ModeGameOver
	ModeVictory
	ModeHelp
)

func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	case ModeQuiz:
		return "quiz"
	case ModeFrozen:
		return "frozen"
	case ModeGameOver:
		return "game_over"
	case ModeVictory:
		return "victory"
	case ModeHelp:
		return "help"
	default:
		return "unknown"
	}
}

// Terminal reports whether the mode ends a run.
func (m Mode) Terminal() bool {
	return m == ModeGameOver || m == ModeVictory
}

// InRun reports whether a level instance is live (simulating or paused on a quiz).
func (m Mode) InRun() bool {
	return m == ModePlaying || m == ModeQuiz || m == ModeFrozen
}

// NoChoice is the Intents.Choice value when no answer key was pressed.
const NoChoice = 0

// Intents is the input sampled once per tick. Directions and Sprint are
// held states; Confirm, Help, Cancel and Choice are edges.
type Intents struct {
	Up, Down, Left, Right bool
	Sprint                bool
	Confirm               bool
	Help                  bool
	Cancel                bool
	// Choice is 1..3 for the answer keys, NoChoice otherwise.
	Choice int
}

// HasDirection reports whether any movement intent is held.
func (in Intents) HasDirection() bool {
	return in.Up || in.Down || in.Left || in.Right
}
