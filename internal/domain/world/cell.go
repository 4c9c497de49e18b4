package world

import (
	"sort"
	"strconv"
)

type Tick int

type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (c Cell) Less(o Cell) bool {
	if c.X != o.X {
		return c.X < o.X
	}
	return c.Y < o.Y
}

func (c Cell) String() string {
	return "(" + strconv.Itoa(c.X) + "," + strconv.Itoa(c.Y) + ")"
}

func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// SortCells orders cells by (x, y) in place.
func SortCells(cells []Cell) {
	sort.Slice(cells, func(i, j int) bool { return cells[i].Less(cells[j]) })
}

// Neighbor is a traversable adjacent cell paired with the cost of entering it.
type Neighbor struct {
	Cell Cell
	Cost int
}

// neighborOffsets fixes the expansion order: up, right, down, left.
var neighborOffsets = [4][2]int{
	{0, 1},
	{1, 0},
	{0, -1},
	{-1, 0},
}

// Manhattan is the axis-aligned step distance between two cells.
func Manhattan(a, b Cell) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
