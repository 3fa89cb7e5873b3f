package sim

import "slices"

// resolveInteractions handles what the player's cell touches after a
// movement attempt: the exit, then one collectible, then one trigger.
func (w *World) resolveInteractions() {
	pos := w.player.Pos

	if w.grid.TileAt(pos) == TileExit && len(w.collectibles) == 0 {
		w.emit(EscapedEvent{Cell: pos})
		w.setMode(ModeVictory)
		return
	}

	if i := slices.Index(w.collectibles, pos); i >= 0 {
		w.collectibles = slices.Delete(w.collectibles, i, i+1)
		w.stats.Collected++
		w.emit(CollectibleTakenEvent{Cell: pos, Remaining: len(w.collectibles)})
	}

	if i := slices.Index(w.triggers, pos); i >= 0 {
		w.triggers = slices.Delete(w.triggers, i, i+1)
		idx, q := w.deck.Draw()
		w.question = &q
		w.questionIdx = idx
		w.emit(TriggerTakenEvent{Cell: pos, QuestionIndex: idx})
		w.setMode(ModeQuiz)
	}
}

// ExitOpen reports whether every collectible has been picked up.
func (w *World) ExitOpen() bool {
	return len(w.collectibles) == 0
}
