package config

import (
	_ "embed"
)

//go:embed defaults/heist.yaml
var defaultHeistYAML []byte

// DefaultHeistConfig returns the built-in tuning.
func DefaultHeistConfig() HeistConfig {
	return HeistConfig{
		Player: PlayerConfig{
			WalkDelay:    0.12,
			SprintDelay:  0.06,
			StaminaMax:   100,
			StaminaRegen: 40,
			StaminaDrain: 60,
		},
		Spawn: SpawnConfig{
			Collectibles:       5,
			Triggers:           3,
			Pursuers:           6,
			MinPursuerDistance: 8,
		},
		Pursuit: PursuitConfig{
			SpeedMin:           0.28,
			SpeedMax:           0.68,
			FrozenCadence:      0.5,
			RequireImprovement: true,
		},
		Quiz: QuizConfig{
			InvisibleDuration: 5.0,
			FreezeDuration:    3.0,
			PinnedWindow:      3,
		},
		Input: InputConfig{
			HoldWindowMS: 150,
		},
	}
}
