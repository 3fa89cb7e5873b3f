package sim

// updatePursuers advances every pursuer's cadence and moves those whose
// cooldown has elapsed, then checks for collisions with the player.
func (w *World) updatePursuers(dt float64) {
	scale := 1.0
	if w.mode == ModeFrozen {
		// Thresholds shrink while the player is frozen: pursuers step faster.
		scale = w.params.FrozenCadence
	}
	invisible := w.player.IsInvisible()

	for i := range w.pursuers {
		p := &w.pursuers[i]
		p.Cooldown += dt
		if p.Cooldown < p.Speed*scale {
			continue
		}
		p.Cooldown = 0
		if invisible {
			p.Pos = WanderStep(w.grid, p.Pos, w.rng)
		} else {
			p.Pos = PursuitStep(w.grid, p.Pos, w.player.Pos, w.params.RequireImprovement)
		}
	}

	w.resolveCollisions()
}

// PursuitStep picks the walkable neighbour closest to target by Manhattan
// distance, evaluating CandidateDirs in order so ties go to the earlier
// direction. With requireImprovement the pursuer stays put unless the best
// move strictly shortens the distance; without it the best walkable
// neighbour is always taken. A boxed-in pursuer never moves.
func PursuitStep(g *Grid, from, target Cell, requireImprovement bool) Cell {
	best := from
	bestDist := -1
	for _, d := range CandidateDirs {
		next := from.Step(d)
		if !g.IsWalkable(next) {
			continue
		}
		if dist := Manhattan(next, target); bestDist < 0 || dist < bestDist {
			best, bestDist = next, dist
		}
	}

	if bestDist < 0 {
		return from
	}
	if requireImprovement && bestDist >= Manhattan(from, target) {
		return from
	}
	return best
}

// WanderStep shuffles the candidate directions and takes the first walkable
// one. It returns from unchanged when every neighbour is blocked.
func WanderStep(g *Grid, from Cell, rng Rand) Cell {
	dirs := CandidateDirs
	rng.Shuffle(len(dirs), func(i, j int) {
		dirs[i], dirs[j] = dirs[j], dirs[i]
	})
	for _, d := range dirs {
		if next := from.Step(d); g.IsWalkable(next) {
			return next
		}
	}
	return from
}

// resolveCollisions ends the run on the first pursuer sharing the player's
// cell while the player is visible. A catch overrides a Victory reached
// earlier in the same tick.
func (w *World) resolveCollisions() {
	if w.player.IsInvisible() || w.mode == ModeGameOver {
		return
	}
	for i, p := range w.pursuers {
		if p.Pos == w.player.Pos {
			w.emit(CaughtEvent{Pursuer: i, Cell: p.Pos})
			w.question = nil
			w.questionIdx = -1
			w.setMode(ModeGameOver)
			return
		}
	}
}
