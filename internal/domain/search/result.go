package search

import (
	"time"

	"gridcourier/internal/domain/world"
)

type Result struct {
	Path          []world.Cell  `json:"path"`
	TotalCost     int           `json:"total_cost"`
	Success       bool          `json:"success"`
	NodesExpanded int           `json:"nodes_expanded"`
	PlanningTime  time.Duration `json:"planning_time"`
	Restarts      int           `json:"restarts"`
	Kind          Kind          `json:"algorithm"`
}

func (r Result) PlanningTimeSeconds() float64 {
	return r.PlanningTime.Seconds()
}

func failed(expanded int) Result {
	return Result{Path: []world.Cell{}, NodesExpanded: expanded}
}

func found(w *world.World, path []world.Cell, expanded int) Result {
	return Result{Path: path, TotalCost: PathCost(w, path), Success: true, NodesExpanded: expanded}
}

// PathCost sums the cost of every cell on the path, the first one included.
func PathCost(w *world.World, path []world.Cell) int {
	total := 0
	for _, c := range path {
		total += w.Cost(c)
	}
	return total
}

func reconstructPath(parent map[world.Cell]world.Cell, current, start world.Cell) []world.Cell {
	path := []world.Cell{current}
	for current != start {
		prev, ok := parent[current]
		if !ok {
			break
		}
		path = append(path, prev)
		current = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
