package search

import "gridcourier/internal/domain/world"

// hillClimb greedily steps to the unvisited neighbour with the lowest
// strictly improving heuristic. At a local optimum it restarts from a random
// unvisited cell next to the visited region, so the visit tree stays connected
// and any path found is a valid walk from start.
func hillClimb(w *world.World, start, goal world.Cell, at world.Tick, o options) Result {
	h := func(c world.Cell) int { return Manhattan(c, goal) }
	visited := map[world.Cell]struct{}{start: {}}
	order := []world.Cell{start}
	parent := map[world.Cell]world.Cell{}
	current := start
	expanded := 0
	restarts := 0

	for current != goal {
		expanded++
		var next world.Cell
		bestH := h(current)
		improved := false
		for _, n := range w.Neighbors(current.X, current.Y, at) {
			if _, ok := visited[n.Cell]; ok {
				continue
			}
			if nh := h(n.Cell); nh < bestH {
				bestH = nh
				next = n.Cell
				improved = true
			}
		}
		if improved {
			parent[next] = current
			visited[next] = struct{}{}
			order = append(order, next)
			current = next
			continue
		}

		if restarts >= o.maxRestarts {
			res := failed(expanded)
			res.Restarts = restarts
			return res
		}
		candidates, from := frontierOf(w, order, visited, at)
		if len(candidates) == 0 {
			res := failed(expanded)
			res.Restarts = restarts
			return res
		}
		pick := o.rng.Intn(len(candidates))
		next = candidates[pick]
		restarts++
		parent[next] = from[pick]
		visited[next] = struct{}{}
		order = append(order, next)
		current = next
	}

	res := found(w, reconstructPath(parent, goal, start), expanded)
	res.Restarts = restarts
	return res
}

// frontierOf lists unvisited cells adjacent to the visited region in visit
// order, each with the first visited cell that reaches it.
func frontierOf(w *world.World, order []world.Cell, visited map[world.Cell]struct{}, at world.Tick) ([]world.Cell, []world.Cell) {
	seen := map[world.Cell]struct{}{}
	var candidates, from []world.Cell
	for _, c := range order {
		for _, n := range w.Neighbors(c.X, c.Y, at) {
			if _, ok := visited[n.Cell]; ok {
				continue
			}
			if _, ok := seen[n.Cell]; ok {
				continue
			}
			seen[n.Cell] = struct{}{}
			candidates = append(candidates, n.Cell)
			from = append(from, c)
		}
	}
	return candidates, from
}
