package search

import (
	"math/rand"
	"time"

	"gridcourier/internal/domain/world"
)

const DefaultMaxRestarts = 10

type options struct {
	rng         *rand.Rand
	maxRestarts int
}

type Option func(*options)

// WithRand sets the random source used by hill-climbing restarts.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		if rng != nil {
			o.rng = rng
		}
	}
}

func WithMaxRestarts(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.maxRestarts = n
		}
	}
}

func Manhattan(a, b world.Cell) int {
	return world.Manhattan(a, b)
}

// Search plans from start to goal against the occupancy of tick at. A failed
// plan is reported through Result.Success, never as an error.
func Search(w *world.World, start, goal world.Cell, kind Kind, at world.Tick, opts ...Option) Result {
	o := options{maxRestarts: DefaultMaxRestarts}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(1))
	}

	began := time.Now()
	var res Result
	switch {
	case !w.InBounds(start) || !w.InBounds(goal):
		res = failed(0)
	case start == goal:
		res = found(w, []world.Cell{start}, 0)
	default:
		switch kind {
		case BreadthFirst:
			res = breadthFirst(w, start, goal, at)
		case UniformCost:
			res = bestFirst(w, start, goal, at, func(world.Cell) int { return 0 })
		case AStar:
			res = bestFirst(w, start, goal, at, func(c world.Cell) int { return Manhattan(c, goal) })
		case HillClimb:
			res = hillClimb(w, start, goal, at, o)
		default:
			res = failed(0)
		}
	}
	res.Kind = kind
	res.PlanningTime = time.Since(began)
	return res
}
