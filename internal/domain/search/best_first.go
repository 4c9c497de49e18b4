package search

import "gridcourier/internal/domain/world"

// bestFirst runs uniform-cost search ordered by g + h. A zero heuristic gives
// plain uniform-cost; Manhattan distance gives A*.
func bestFirst(w *world.World, start, goal world.Cell, at world.Tick, h func(world.Cell) int) Result {
	startCost := w.Cost(start)
	best := map[world.Cell]int{start: startCost}
	parent := map[world.Cell]world.Cell{}
	closed := map[world.Cell]struct{}{}
	open := &queue{}
	open.push(start, startCost, startCost+h(start))
	expanded := 0

	for open.len() > 0 {
		item := open.pop()
		if _, done := closed[item.cell]; done {
			continue
		}
		if item.g > best[item.cell] {
			continue
		}
		closed[item.cell] = struct{}{}
		if item.cell == goal {
			res := found(w, reconstructPath(parent, goal, start), expanded)
			res.TotalCost = item.g
			return res
		}
		expanded++
		for _, n := range w.Neighbors(item.cell.X, item.cell.Y, at) {
			if _, done := closed[n.Cell]; done {
				continue
			}
			g := item.g + n.Cost
			if prev, ok := best[n.Cell]; ok && g >= prev {
				continue
			}
			best[n.Cell] = g
			parent[n.Cell] = item.cell
			open.push(n.Cell, g, g+h(n.Cell))
		}
	}
	return failed(expanded)
}
