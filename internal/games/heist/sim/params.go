package sim

// Params holds every tunable of the simulation.
type Params struct {
	WalkDelay    float64 // seconds per step while walking
	SprintDelay  float64 // seconds per step while sprinting
	StaminaMax   float64
	StaminaRegen float64 // per second while sprint is not held
	StaminaDrain float64 // per second while sprinting

	Spawn SpawnRules

	// FrozenCadence multiplies every pursuer's step interval while the
	// game is in ModeFrozen. 0.5 makes pursuers step twice as often.
	FrozenCadence float64
	// RequireImprovement keeps a visible-mode pursuer in place unless its
	// best move strictly reduces the distance to the player. When false
	// it always steps to its best walkable neighbour.
	RequireImprovement bool

	InvisibleDuration float64 // ghost time granted by a correct answer
	FreezeDuration    float64 // freeze time imposed by a wrong answer
	PinnedWindow      int     // trailing draw slots the pinned question is moved into
}

// DefaultParams returns the standard tuning.
func DefaultParams() Params {
	return Params{
		WalkDelay:          0.12,
		SprintDelay:        0.06,
		StaminaMax:         100,
		StaminaRegen:       40,
		StaminaDrain:       60,
		Spawn:              DefaultSpawnRules(),
		FrozenCadence:      0.5,
		RequireImprovement: true,
		InvisibleDuration:  5.0,
		FreezeDuration:     3.0,
		PinnedWindow:       3,
	}
}
