// Package sim is the Maze Heist simulation engine: grid map, entity spawner,
// trivia deck, player and pursuer controllers, interaction resolution and the
// top-level game mode state machine.
//
// The package is UI-agnostic and deterministic for a given seed and sequence
// of (Δt, Intents) pairs. Nothing in it blocks or spawns goroutines.
package sim

// Grid dimensions of the level.
const (
	Cols = 20
	Rows = 15
)

// Cell is a grid coordinate: X is the column, Y is the row.
type Cell struct {
	X, Y int
}

// C is shorthand for constructing a Cell.
func C(x, y int) Cell {
	return Cell{X: x, Y: y}
}

// Step returns the neighbouring cell in direction d.
func (c Cell) Step(d Dir) Cell {
	dx, dy := d.Delta()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Manhattan returns the taxicab distance between two cells.
func Manhattan(a, b Cell) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Dir is one of the four orthogonal movement directions.
type Dir uint8

const (
	DirUp Dir = iota
	DirDown
	DirLeft
	DirRight
)

// CandidateDirs is the fixed evaluation order for pursuit moves.
// Ties in pursuit resolve toward the earlier entry.
var CandidateDirs = [4]Dir{DirUp, DirDown, DirLeft, DirRight}

// Delta returns the (dx, dy) offset for one step. Up decreases Y.
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

func (d Dir) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Tile is the static kind of a grid cell.
type Tile uint8

const (
	TileEmpty Tile = iota
	TileWall
	TileExit
)

func (t Tile) String() string {
	switch t {
	case TileEmpty:
		return "Empty"
	case TileWall:
		return "Wall"
	case TileExit:
		return "Exit"
	default:
		return "Unknown"
	}
}

// Rand is the random source threaded through every stochastic operation.
// *math/rand.Rand satisfies it; one instance is owned by each World.
type Rand interface {
	Intn(n int) int
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}
