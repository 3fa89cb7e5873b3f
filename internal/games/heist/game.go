// Package heist adapts the simulation engine to the platform: it turns
// core.InputFrame actions into intents and draws snapshots into a
// core.Screen.
package heist

import (
	"math/rand"

	"github.com/vovakirdan/maze-heist/internal/core"
	"github.com/vovakirdan/maze-heist/internal/games/heist/assets"
	"github.com/vovakirdan/maze-heist/internal/games/heist/sim"
)

// Layout of the play field on screen.
const (
	hudHeight = 2
	cellWidth = 2 // each grid cell is drawn two characters wide
	mapW      = sim.Cols * cellWidth
	mapH      = sim.Rows

	// MinWidth and MinHeight are the smallest screen the game can draw on.
	MinWidth  = mapW + 2
	MinHeight = hudHeight + mapH + 2
)

// Options configures a Game.
type Options struct {
	Level  assets.Level
	Bank   []sim.Question
	Params sim.Params
}

// Game is one player's heist: a World plus its presentation.
type Game struct {
	opts  Options
	world *sim.World
	seed  int64

	screenW int
	screenH int
}

// New validates the options by building a throwaway world, so that level,
// bank and capacity problems surface before the first frame.
func New(opts Options) (*Game, error) {
	if _, err := sim.NewWorld(opts.Level.Grid, opts.Bank, opts.Params, rand.New(rand.NewSource(0))); err != nil {
		return nil, err
	}
	return &Game{opts: opts}, nil
}

// ID returns the game identifier used for storage and logging.
func (g *Game) ID() string {
	return "heist"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Maze Heist"
}

// Reset builds a fresh world seeded from cfg. The world starts in the menu.
func (g *Game) Reset(cfg core.RuntimeConfig) error {
	w, err := sim.NewWorld(g.opts.Level.Grid, g.opts.Bank, g.opts.Params, rand.New(rand.NewSource(cfg.Seed)))
	if err != nil {
		return err
	}
	g.world = w
	g.seed = cfg.Seed
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	return nil
}

// Resize records new screen dimensions.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
}

// Step advances the world by dt seconds.
func (g *Game) Step(dt float64, in core.InputFrame) sim.StepResult {
	return g.world.Step(dt, Intents(in))
}

// Intents maps platform actions onto the simulation's input contract.
func Intents(in core.InputFrame) sim.Intents {
	it := sim.Intents{
		Up:      in.Has(core.ActionUp),
		Down:    in.Has(core.ActionDown),
		Left:    in.Has(core.ActionLeft),
		Right:   in.Has(core.ActionRight),
		Sprint:  in.Has(core.ActionSprint),
		Confirm: in.Has(core.ActionConfirm),
		Help:    in.Has(core.ActionHelp),
		Cancel:  in.Has(core.ActionCancel),
	}
	switch {
	case in.Has(core.ActionChoice1):
		it.Choice = 1
	case in.Has(core.ActionChoice2):
		it.Choice = 2
	case in.Has(core.ActionChoice3):
		it.Choice = 3
	}
	return it
}

// SetBank stages a new question bank for the next level reset.
func (g *Game) SetBank(bank []sim.Question) error {
	if err := g.world.SetBank(bank); err != nil {
		return err
	}
	g.opts.Bank = bank
	return nil
}

// QuestionCount returns the size of the question deck in use.
func (g *Game) QuestionCount() int {
	return g.world.Deck().Size()
}

// Snapshot returns the render contract for the current tick.
func (g *Game) Snapshot() sim.Snapshot {
	return g.world.Snapshot()
}

// Mode returns the current game mode.
func (g *Game) Mode() sim.Mode {
	return g.world.Mode()
}

// Seed returns the seed of the current world.
func (g *Game) Seed() int64 {
	return g.seed
}

// LevelName returns the loaded level's name.
func (g *Game) LevelName() string {
	return g.opts.Level.Name
}
