package sim

import "slices"

// PursuerView is the read-only render data for one pursuer.
type PursuerView struct {
	Pos   Cell
	Speed float64
	Fast  bool
}

// Snapshot is a read-only copy of everything a frontend needs for one frame.
// Mutating it never affects the world.
type Snapshot struct {
	Mode              Mode
	Player            Player
	StaminaMax        float64
	Pursuers          []PursuerView
	Collectibles      []Cell
	Triggers          []Cell
	CollectiblesTotal int
	ExitOpen          bool
	Question          *Question
	QuestionIndex     int
	Stats             RunStats
}

// Snapshot captures the current state.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Mode:              w.mode,
		Player:            w.player,
		StaminaMax:        w.params.StaminaMax,
		Collectibles:      slices.Clone(w.collectibles),
		Triggers:          slices.Clone(w.triggers),
		CollectiblesTotal: w.params.Spawn.Collectibles,
		ExitOpen:          w.ExitOpen(),
		QuestionIndex:     -1,
		Stats:             w.stats,
	}

	s.Pursuers = make([]PursuerView, len(w.pursuers))
	for i, p := range w.pursuers {
		s.Pursuers[i] = PursuerView{Pos: p.Pos, Speed: p.Speed, Fast: p.Fast()}
	}

	if w.question != nil {
		q := *w.question
		s.Question = &q
		s.QuestionIndex = w.questionIdx
	}
	return s
}
