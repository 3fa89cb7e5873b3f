// Package config provides YAML-based configuration loading for Maze Heist,
// plus environment overrides for the command-line defaults.
package config

import (
	"errors"
	"time"

	"github.com/vovakirdan/maze-heist/internal/games/heist/sim"
)

// ErrInvalidConfig is matched by every configuration range error.
var ErrInvalidConfig = errors.New("invalid configuration")

// HeistConfig contains all tunables for the game.
type HeistConfig struct {
	Player  PlayerConfig  `yaml:"player"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Pursuit PursuitConfig `yaml:"pursuit"`
	Quiz    QuizConfig    `yaml:"quiz"`
	Input   InputConfig   `yaml:"input"`
	Assets  AssetsConfig  `yaml:"assets"`
}

// PlayerConfig defines movement cadence and stamina.
type PlayerConfig struct {
	WalkDelay    float64 `yaml:"walk_delay"`
	SprintDelay  float64 `yaml:"sprint_delay"`
	StaminaMax   float64 `yaml:"stamina_max"`
	StaminaRegen float64 `yaml:"stamina_regen"`
	StaminaDrain float64 `yaml:"stamina_drain"`
}

// SpawnConfig defines the level population.
type SpawnConfig struct {
	Collectibles       int `yaml:"collectibles"`
	Triggers           int `yaml:"triggers"`
	Pursuers           int `yaml:"pursuers"`
	MinPursuerDistance int `yaml:"min_pursuer_distance"`
}

// PursuitConfig defines pursuer cadence and targeting.
type PursuitConfig struct {
	SpeedMin           float64 `yaml:"speed_min"`
	SpeedMax           float64 `yaml:"speed_max"`
	FrozenCadence      float64 `yaml:"frozen_cadence"`
	RequireImprovement bool    `yaml:"require_improvement"`
}

// QuizConfig defines quiz rewards and penalties.
type QuizConfig struct {
	InvisibleDuration float64 `yaml:"invisible_duration"`
	FreezeDuration    float64 `yaml:"freeze_duration"`
	PinnedWindow      int     `yaml:"pinned_window"`
}

// InputConfig defines terminal input emulation.
type InputConfig struct {
	HoldWindowMS int `yaml:"hold_window_ms"`
}

// HoldWindow returns how long a key press counts as held.
func (c InputConfig) HoldWindow() time.Duration {
	return time.Duration(c.HoldWindowMS) * time.Millisecond
}

// AssetsConfig points at custom level and question files. Empty means embedded.
type AssetsConfig struct {
	Level     string `yaml:"level"`
	Questions string `yaml:"questions"`
}

// Params converts the config into simulation parameters.
func (c HeistConfig) Params() sim.Params {
	return sim.Params{
		WalkDelay:    c.Player.WalkDelay,
		SprintDelay:  c.Player.SprintDelay,
		StaminaMax:   c.Player.StaminaMax,
		StaminaRegen: c.Player.StaminaRegen,
		StaminaDrain: c.Player.StaminaDrain,
		Spawn: sim.SpawnRules{
			Collectibles:       c.Spawn.Collectibles,
			Triggers:           c.Spawn.Triggers,
			Pursuers:           c.Spawn.Pursuers,
			MinPursuerDistance: c.Spawn.MinPursuerDistance,
			PursuerSpeedMin:    c.Pursuit.SpeedMin,
			PursuerSpeedMax:    c.Pursuit.SpeedMax,
		},
		FrozenCadence:      c.Pursuit.FrozenCadence,
		RequireImprovement: c.Pursuit.RequireImprovement,
		InvisibleDuration:  c.Quiz.InvisibleDuration,
		FreezeDuration:     c.Quiz.FreezeDuration,
		PinnedWindow:       c.Quiz.PinnedWindow,
	}
}

// Validate rejects values the simulation cannot run with.
func (c HeistConfig) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"player.walk_delay", c.Player.WalkDelay},
		{"player.sprint_delay", c.Player.SprintDelay},
		{"player.stamina_max", c.Player.StaminaMax},
		{"pursuit.speed_min", c.Pursuit.SpeedMin},
		{"pursuit.speed_max", c.Pursuit.SpeedMax},
		{"pursuit.frozen_cadence", c.Pursuit.FrozenCadence},
	}
	for _, f := range positive {
		if f.value <= 0 {
			return rangeError("%s must be positive, got %g", f.name, f.value)
		}
	}

	nonNegative := []struct {
		name  string
		value float64
	}{
		{"player.stamina_regen", c.Player.StaminaRegen},
		{"player.stamina_drain", c.Player.StaminaDrain},
		{"quiz.invisible_duration", c.Quiz.InvisibleDuration},
		{"quiz.freeze_duration", c.Quiz.FreezeDuration},
		{"spawn.min_pursuer_distance", float64(c.Spawn.MinPursuerDistance)},
		{"input.hold_window_ms", float64(c.Input.HoldWindowMS)},
	}
	for _, f := range nonNegative {
		if f.value < 0 {
			return rangeError("%s must not be negative, got %g", f.name, f.value)
		}
	}

	if c.Pursuit.SpeedMin > c.Pursuit.SpeedMax {
		return rangeError("pursuit.speed_min %g exceeds speed_max %g", c.Pursuit.SpeedMin, c.Pursuit.SpeedMax)
	}
	if c.Spawn.Collectibles < 1 || c.Spawn.Triggers < 0 || c.Spawn.Pursuers < 0 {
		return rangeError("spawn counts must be collectibles >= 1, triggers >= 0, pursuers >= 0")
	}
	if c.Quiz.PinnedWindow < 1 {
		return rangeError("quiz.pinned_window must be at least 1, got %d", c.Quiz.PinnedWindow)
	}
	return nil
}

func rangeError(format string, args ...any) error {
	return sim.NewValidationError(ErrInvalidConfig, "CONFIG_RANGE", format, args...)
}
