package search

import "gridcourier/internal/domain/world"

func breadthFirst(w *world.World, start, goal world.Cell, at world.Tick) Result {
	parent := map[world.Cell]world.Cell{}
	seen := map[world.Cell]struct{}{start: {}}
	pending := []world.Cell{start}
	expanded := 0

	for len(pending) > 0 {
		current := pending[0]
		pending = pending[1:]
		if current == goal {
			return found(w, reconstructPath(parent, goal, start), expanded)
		}
		expanded++
		for _, n := range w.Neighbors(current.X, current.Y, at) {
			if _, ok := seen[n.Cell]; ok {
				continue
			}
			seen[n.Cell] = struct{}{}
			parent[n.Cell] = current
			pending = append(pending, n.Cell)
		}
	}
	return failed(expanded)
}
