package world

// Snapshot is a read-only view of the world at one tick, in row-major order.
type Snapshot struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Tick   Tick   `json:"tick"`
	Start  Cell   `json:"start"`
	Goal   Cell   `json:"goal"`
	Tiles  []Tile `json:"tiles"`
}

func (w *World) Snapshot(t Tick) Snapshot {
	tiles := make([]Tile, 0, w.width*w.height)
	for y := 0; y < w.height; y++ {
		for x := 0; x < w.width; x++ {
			c := Cell{X: x, Y: y}
			tiles = append(tiles, Tile{Cell: c, Kind: w.tileKind(c, t), Cost: w.Cost(c)})
		}
	}
	return Snapshot{
		Width:  w.width,
		Height: w.height,
		Tick:   t,
		Start:  w.start,
		Goal:   w.goal,
		Tiles:  tiles,
	}
}

func (w *World) tileKind(c Cell, t Tick) TileKind {
	switch {
	case c == w.start:
		return TileStart
	case c == w.goal:
		return TileGoal
	case w.static.Has(c):
		return TileStatic
	case w.IsBlocked(c.X, c.Y, t):
		return TileDynamic
	default:
		return TileTerrain
	}
}

// TileAt returns the tile at c; ok is false when c is off the grid.
func (s Snapshot) TileAt(c Cell) (Tile, bool) {
	if c.X < 0 || c.X >= s.Width || c.Y < 0 || c.Y >= s.Height {
		return Tile{}, false
	}
	return s.Tiles[c.Y*s.Width+c.X], true
}
