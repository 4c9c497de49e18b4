package search

import (
	"container/heap"

	"gridcourier/internal/domain/world"
)

type frontierItem struct {
	cell     world.Cell
	g        int
	priority int
	seq      int
	index    int
}

// frontier is a min-heap ordered by priority, then by insertion sequence.
type frontier []*frontierItem

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].priority != f[j].priority {
		return f[i].priority < f[j].priority
	}
	return f[i].seq < f[j].seq
}

func (f frontier) Swap(i, j int) {
	f[i], f[j] = f[j], f[i]
	f[i].index = i
	f[j].index = j
}

func (f *frontier) Push(x any) {
	item := x.(*frontierItem)
	item.index = len(*f)
	*f = append(*f, item)
}

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*f = old[:n-1]
	return item
}

type queue struct {
	items frontier
	seq   int
}

func (q *queue) push(c world.Cell, g, priority int) {
	heap.Push(&q.items, &frontierItem{cell: c, g: g, priority: priority, seq: q.seq})
	q.seq++
}

func (q *queue) pop() *frontierItem {
	return heap.Pop(&q.items).(*frontierItem)
}

func (q *queue) len() int {
	return q.items.Len()
}
