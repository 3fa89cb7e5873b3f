package sim

// FastPursuerSpeed is the presentation threshold: pursuers stepping at or
// below this many seconds per step are drawn as fast ones.
const FastPursuerSpeed = 0.45

// SpawnRules configures entity placement for one level instance.
type SpawnRules struct {
	Collectibles int
	Triggers     int
	Pursuers     int
	// MinPursuerDistance is exclusive: a pursuer's Manhattan distance to the
	// spawn must be strictly greater.
	MinPursuerDistance int
	PursuerSpeedMin    float64
	PursuerSpeedMax    float64
}

// DefaultSpawnRules returns the standard level population.
func DefaultSpawnRules() SpawnRules {
	return SpawnRules{
		Collectibles:       5,
		Triggers:           3,
		Pursuers:           6,
		MinPursuerDistance: 8,
		PursuerSpeedMin:    0.28,
		PursuerSpeedMax:    0.68,
	}
}

// Pursuer is one enemy. Speed is its base step interval in seconds.
type Pursuer struct {
	Pos      Cell
	Cooldown float64
	Speed    float64
}

// Fast reports whether the pursuer is drawn as a fast one. It has no
// behavioral effect beyond the cadence already encoded in Speed.
func (p Pursuer) Fast() bool {
	return p.Speed <= FastPursuerSpeed
}

// Population is the set of entities placed for one level instance.
type Population struct {
	Collectibles []Cell
	Triggers     []Cell
	Pursuers     []Pursuer
}

// CheckCapacity verifies that the grid has enough qualifying cells for the
// rules. It is the load-time precondition for Spawn.
func CheckCapacity(g *Grid, rules SpawnRules) error {
	spawn := g.Spawn()
	free, far := 0, 0
	for _, c := range g.EmptyCells() {
		if c == spawn {
			continue
		}
		free++
		if Manhattan(c, spawn) > rules.MinPursuerDistance {
			far++
		}
	}

	need := rules.Collectibles + rules.Triggers + rules.Pursuers
	if free < need {
		return capacityError("%d empty cells for %d entities", free, need)
	}
	if far < rules.Pursuers {
		return capacityError("%d cells farther than %d from spawn for %d pursuers",
			far, rules.MinPursuerDistance, rules.Pursuers)
	}
	return nil
}

// Spawn places collectibles, then bonus triggers, then pursuers onto distinct
// empty cells by uniform sampling with rejection. None lands on the spawn.
// Before each group it checks that enough qualifying cells remain, so the
// rejection loops always terminate.
func Spawn(g *Grid, rules SpawnRules, rng Rand) (Population, error) {
	spawn := g.Spawn()
	occupied := map[Cell]bool{spawn: true}

	anyFree := func(c Cell) bool {
		return g.TileAt(c) == TileEmpty && !occupied[c]
	}
	farFree := func(c Cell) bool {
		return anyFree(c) && Manhattan(c, spawn) > rules.MinPursuerDistance
	}

	var pop Population
	var err error

	if pop.Collectibles, err = place(g, rng, rules.Collectibles, anyFree, occupied); err != nil {
		return Population{}, err
	}
	if pop.Triggers, err = place(g, rng, rules.Triggers, anyFree, occupied); err != nil {
		return Population{}, err
	}

	cells, err := place(g, rng, rules.Pursuers, farFree, occupied)
	if err != nil {
		return Population{}, err
	}
	span := rules.PursuerSpeedMax - rules.PursuerSpeedMin
	pop.Pursuers = make([]Pursuer, len(cells))
	for i, c := range cells {
		pop.Pursuers[i] = Pursuer{
			Pos:   c,
			Speed: rules.PursuerSpeedMin + rng.Float64()*span,
		}
	}

	return pop, nil
}

// place samples n cells accepted by ok, marking each as occupied.
func place(g *Grid, rng Rand, n int, ok func(Cell) bool, occupied map[Cell]bool) ([]Cell, error) {
	if n <= 0 {
		return nil, nil
	}

	available := 0
	for y := 0; y < Rows; y++ {
		for x := 0; x < Cols; x++ {
			if ok(C(x, y)) {
				available++
			}
		}
	}
	if available < n {
		return nil, capacityError("%d qualifying cells left for %d entities", available, n)
	}

	cells := make([]Cell, 0, n)
	for len(cells) < n {
		c := C(rng.Intn(Cols), rng.Intn(Rows))
		if !ok(c) {
			continue
		}
		occupied[c] = true
		cells = append(cells, c)
	}
	return cells, nil
}
