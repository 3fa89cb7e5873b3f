package sim

// Layout symbols.
const (
	SymbolEmpty = '0'
	SymbolWall  = '1'
	SymbolExit  = '2'
	SymbolSpawn = '9'
)

// Grid is the immutable walkability map of the level.
type Grid struct {
	tiles [Rows][Cols]Tile
	spawn Cell
	exits []Cell
}

// ParseLayout builds a Grid from exactly Rows strings of Cols symbols.
// The spawn symbol marks the player's start and is itself an empty tile.
// Wrong dimensions, unknown symbols, a missing or repeated spawn and a
// layout without an exit are all reported as ValidationErrors.
func ParseLayout(rows []string) (*Grid, error) {
	if len(rows) != Rows {
		return nil, layoutError("LAYOUT_ROWS", "expected %d rows, got %d", Rows, len(rows))
	}

	g := &Grid{}
	spawnFound := false

	for y, row := range rows {
		if len(row) != Cols {
			return nil, layoutError("LAYOUT_WIDTH", "row %d: expected %d columns, got %d", y, Cols, len(row))
		}
		for x := 0; x < Cols; x++ {
			switch row[x] {
			case SymbolEmpty:
				g.tiles[y][x] = TileEmpty
			case SymbolWall:
				g.tiles[y][x] = TileWall
			case SymbolExit:
				g.tiles[y][x] = TileExit
				g.exits = append(g.exits, C(x, y))
			case SymbolSpawn:
				if spawnFound {
					return nil, layoutError("LAYOUT_SPAWN", "second spawn at (%d, %d)", x, y)
				}
				g.tiles[y][x] = TileEmpty
				g.spawn = C(x, y)
				spawnFound = true
			default:
				return nil, layoutError("LAYOUT_SYMBOL", "unknown symbol %q at (%d, %d)", row[x], x, y)
			}
		}
	}

	if !spawnFound {
		return nil, layoutError("LAYOUT_SPAWN", "no spawn symbol %q in layout", SymbolSpawn)
	}
	if len(g.exits) == 0 {
		return nil, layoutError("LAYOUT_EXIT", "no exit symbol %q in layout", SymbolExit)
	}

	return g, nil
}

// InBounds reports whether c lies on the grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < Cols && c.Y >= 0 && c.Y < Rows
}

// TileAt returns the tile at c. Out-of-bounds cells read as walls.
func (g *Grid) TileAt(c Cell) Tile {
	if !g.InBounds(c) {
		return TileWall
	}
	return g.tiles[c.Y][c.X]
}

// IsWalkable is false out of bounds or on a wall, true on empty and exit tiles.
func (g *Grid) IsWalkable(c Cell) bool {
	return g.TileAt(c) != TileWall
}

// Spawn returns the player's start cell.
func (g *Grid) Spawn() Cell {
	return g.spawn
}

// Exits returns the exit cells in row-major order.
func (g *Grid) Exits() []Cell {
	out := make([]Cell, len(g.exits))
	copy(out, g.exits)
	return out
}

// EmptyCells returns every Empty tile (spawn included) in row-major order.
func (g *Grid) EmptyCells() []Cell {
	var cells []Cell
	for y := 0; y < Rows; y++ {
		for x := 0; x < Cols; x++ {
			if g.tiles[y][x] == TileEmpty {
				cells = append(cells, C(x, y))
			}
		}
	}
	return cells
}
