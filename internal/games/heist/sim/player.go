package sim

import "math"

// Player is the player's mutable state.
type Player struct {
	Pos          Cell
	MoveCooldown float64 // seconds accumulated toward the next permitted step
	Stamina      float64
	Invisible    float64 // seconds of invisibility left
	Frozen       float64 // seconds of freeze left
}

func newPlayer(spawn Cell, stamina float64) Player {
	return Player{Pos: spawn, Stamina: stamina}
}

// IsInvisible reports whether pursuers have lost track of the player.
func (p Player) IsInvisible() bool {
	return p.Invisible > 0
}

// IsFrozen reports whether the player is locked in place.
func (p Player) IsFrozen() bool {
	return p.Frozen > 0
}

// updatePlayer runs the player controller for one tick.
func (w *World) updatePlayer(dt float64, in Intents) {
	p := &w.player

	// A freeze suppresses everything else, pickups included.
	if p.Frozen > 0 {
		p.Frozen -= dt
		if p.Frozen <= timerEpsilon {
			p.Frozen = 0
			if w.mode == ModeFrozen {
				w.setMode(ModePlaying)
			}
		}
		return
	}

	p.Invisible = math.Max(0, p.Invisible-dt)
	if p.Invisible <= timerEpsilon {
		p.Invisible = 0
	}

	delay := w.params.WalkDelay
	switch {
	case !in.Sprint:
		if p.Stamina < w.params.StaminaMax {
			p.Stamina += w.params.StaminaRegen * dt
		}
	case p.Stamina > 0:
		delay = w.params.SprintDelay
		p.Stamina -= w.params.StaminaDrain * dt
	}
	p.Stamina = math.Max(0, math.Min(w.params.StaminaMax, p.Stamina))

	p.MoveCooldown += dt
	if p.MoveCooldown >= delay && in.HasDirection() {
		p.MoveCooldown = 0
		w.stepPlayer(in)
	}

	w.resolveInteractions()
}

// stepPlayer moves at most one cell. Vertical intent wins; horizontal is
// only tried when there is no vertical intent or the vertical target is
// blocked. Down overrides Up and Right overrides Left when both are held.
func (w *World) stepPlayer(in Intents) {
	p := &w.player

	var vertical, horizontal *Dir
	if in.Up {
		d := DirUp
		vertical = &d
	}
	if in.Down {
		d := DirDown
		vertical = &d
	}
	if in.Left {
		d := DirLeft
		horizontal = &d
	}
	if in.Right {
		d := DirRight
		horizontal = &d
	}

	if vertical != nil {
		if next := p.Pos.Step(*vertical); w.grid.IsWalkable(next) {
			p.Pos = next
			return
		}
	}
	if horizontal != nil {
		if next := p.Pos.Step(*horizontal); w.grid.IsWalkable(next) {
			p.Pos = next
		}
	}
}
