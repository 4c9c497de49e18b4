package world

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
)

const (
	DefaultWidth  = 5
	DefaultHeight = 5
	MinCost       = 1
)

type World struct {
	width   int
	height  int
	costs   []int
	static  mapset.Set[Cell]
	dynamic map[Tick]mapset.Set[Cell]
	start   Cell
	goal    Cell
}

// New builds an open width x height world with unit costs, start at the
// origin and goal at the far corner.
func New(width, height int) *World {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	costs := make([]int, width*height)
	for i := range costs {
		costs[i] = MinCost
	}
	return &World{
		width:   width,
		height:  height,
		costs:   costs,
		static:  mapset.New[Cell](),
		dynamic: map[Tick]mapset.Set[Cell]{},
		start:   Cell{X: 0, Y: 0},
		goal:    Cell{X: width - 1, Y: height - 1},
	}
}

func Default() *World {
	return New(DefaultWidth, DefaultHeight)
}

func (w *World) Width() int  { return w.width }
func (w *World) Height() int { return w.height }
func (w *World) Start() Cell { return w.start }
func (w *World) Goal() Cell  { return w.goal }

func (w *World) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < w.width && c.Y >= 0 && c.Y < w.height
}

func (w *World) index(c Cell) int {
	return c.Y*w.width + c.X
}

// SetCost is a no-op off the grid and on the start or goal, which always
// cost MinCost.
func (w *World) SetCost(x, y, cost int) {
	c := Cell{X: x, Y: y}
	if c == w.start || c == w.goal {
		return
	}
	w.setCost(c, cost)
}

func (w *World) setCost(c Cell, cost int) {
	if !w.InBounds(c) {
		return
	}
	if cost < MinCost {
		cost = MinCost
	}
	w.costs[w.index(c)] = cost
}

// Cost returns the terrain cost of entering c, or 0 when c is off the grid.
func (w *World) Cost(c Cell) int {
	if !w.InBounds(c) {
		return 0
	}
	return w.costs[w.index(c)]
}

// AddStaticObstacle reports false when the cell is off the grid or is the
// start or goal.
func (w *World) AddStaticObstacle(x, y int) bool {
	c := Cell{X: x, Y: y}
	if !w.InBounds(c) || c == w.start || c == w.goal {
		return false
	}
	w.static.Put(c)
	return true
}

func (w *World) IsStatic(c Cell) bool {
	return w.static.Has(c)
}

func (w *World) StaticObstacles() []Cell {
	out := make([]Cell, 0, w.static.Size())
	w.static.Each(func(c Cell) { out = append(out, c) })
	SortCells(out)
	return out
}

func (w *World) SetStart(c Cell) bool {
	if !w.InBounds(c) || w.static.Has(c) {
		return false
	}
	w.start = c
	w.setCost(c, MinCost)
	return true
}

func (w *World) SetGoal(c Cell) bool {
	if !w.InBounds(c) || w.static.Has(c) {
		return false
	}
	w.goal = c
	w.setCost(c, MinCost)
	return true
}

func (w *World) AddDynamic(c Cell, ticks ...Tick) {
	for _, t := range ticks {
		set, ok := w.dynamic[t]
		if !ok {
			set = mapset.New[Cell]()
			w.dynamic[t] = set
		}
		set.Put(c)
	}
}

func (w *World) ClearDynamic() {
	w.dynamic = map[Tick]mapset.Set[Cell]{}
}

func (w *World) ClearDynamicAt(t Tick) {
	delete(w.dynamic, t)
}

func (w *World) DynamicTicks() []Tick {
	out := make([]Tick, 0, len(w.dynamic))
	for t := range w.dynamic {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (w *World) DynamicAt(t Tick) []Cell {
	set, ok := w.dynamic[t]
	if !ok {
		return []Cell{}
	}
	out := make([]Cell, 0, set.Size())
	set.Each(func(c Cell) { out = append(out, c) })
	SortCells(out)
	return out
}

// IsBlocked treats cells off the grid as blocked.
func (w *World) IsBlocked(x, y int, t Tick) bool {
	c := Cell{X: x, Y: y}
	if !w.InBounds(c) {
		return true
	}
	if w.static.Has(c) {
		return true
	}
	if set, ok := w.dynamic[t]; ok && set.Has(c) {
		return true
	}
	return false
}

func (w *World) Neighbors(x, y int, t Tick) []Neighbor {
	out := make([]Neighbor, 0, len(neighborOffsets))
	from := Cell{X: x, Y: y}
	for _, off := range neighborOffsets {
		next := from.Add(off[0], off[1])
		if w.IsBlocked(next.X, next.Y, t) {
			continue
		}
		out = append(out, Neighbor{Cell: next, Cost: w.Cost(next)})
	}
	return out
}

func (w *World) Clone() *World {
	cp := &World{
		width:   w.width,
		height:  w.height,
		costs:   append([]int(nil), w.costs...),
		static:  mapset.New[Cell](),
		dynamic: make(map[Tick]mapset.Set[Cell], len(w.dynamic)),
		start:   w.start,
		goal:    w.goal,
	}
	w.static.Each(func(c Cell) { cp.static.Put(c) })
	for t, set := range w.dynamic {
		next := mapset.New[Cell]()
		set.Each(func(c Cell) { next.Put(c) })
		cp.dynamic[t] = next
	}
	return cp
}
