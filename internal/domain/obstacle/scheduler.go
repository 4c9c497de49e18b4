package obstacle

import (
	"math/rand"
	"sort"

	"github.com/google/uuid"

	"gridcourier/internal/domain/world"
)

const DefaultRetention = 1

type Scheduler struct {
	world     *world.World
	rng       *rand.Rand
	retention int
	obstacles []MovingObstacle
	schedules map[world.Tick][]world.Cell
	retained  []world.Tick
}

type Option func(*Scheduler)

func WithRand(rng *rand.Rand) Option {
	return func(s *Scheduler) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// WithRetention keeps the occupancy of the n most recently materialized
// ticks instead of only the latest one.
func WithRetention(n int) Option {
	return func(s *Scheduler) {
		if n >= 1 {
			s.retention = n
		}
	}
}

func NewScheduler(w *world.World, opts ...Option) *Scheduler {
	s := &Scheduler{
		world:     w,
		rng:       rand.New(rand.NewSource(1)),
		retention: DefaultRetention,
		schedules: map[world.Tick][]world.Cell{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddMovingObstacle draws the obstacle ID from the scheduler's random source.
func (s *Scheduler) AddMovingObstacle(start world.Cell, path []world.Cell, speed int, startTime world.Tick) (MovingObstacle, error) {
	o := MovingObstacle{
		Base:      start,
		Path:      append([]world.Cell(nil), path...),
		Speed:     speed,
		StartTime: startTime,
	}
	if err := o.Validate(); err != nil {
		return MovingObstacle{}, err
	}
	id, err := uuid.NewRandomFromReader(s.rng)
	if err != nil {
		return MovingObstacle{}, err
	}
	o.ID = id.String()
	s.obstacles = append(s.obstacles, o)
	s.world.AddDynamic(start, startTime)
	return o, nil
}

// AddRandomMovingObstacle reports false when no free cell is left to start from.
func (s *Scheduler) AddRandomMovingObstacle(pathLength, speed int, startTime world.Tick) bool {
	candidates := s.freeCells()
	if len(candidates) == 0 {
		return false
	}
	start := candidates[s.rng.Intn(len(candidates))]
	path := s.randomWalk(start, pathLength)
	_, err := s.AddMovingObstacle(start, path, speed, startTime)
	return err == nil
}

func (s *Scheduler) freeCells() []world.Cell {
	w := s.world
	out := make([]world.Cell, 0, w.Width()*w.Height())
	for x := 0; x < w.Width(); x++ {
		for y := 0; y < w.Height(); y++ {
			c := world.Cell{X: x, Y: y}
			if w.IsStatic(c) || c == w.Start() || c == w.Goal() {
				continue
			}
			out = append(out, c)
		}
	}
	return out
}

func (s *Scheduler) randomWalk(start world.Cell, length int) []world.Cell {
	path := []world.Cell{start}
	seen := map[world.Cell]struct{}{start: {}}
	current := start
	for i := 1; i < length; i++ {
		neighbors := s.world.Neighbors(current.X, current.Y, 0)
		if len(neighbors) == 0 {
			break
		}
		preferred := make([]world.Cell, 0, len(neighbors))
		for _, n := range neighbors {
			if _, ok := seen[n.Cell]; ok || n.Cell == s.world.Start() || n.Cell == s.world.Goal() {
				continue
			}
			preferred = append(preferred, n.Cell)
		}
		if len(preferred) == 0 {
			for _, n := range neighbors {
				preferred = append(preferred, n.Cell)
			}
		}
		current = preferred[s.rng.Intn(len(preferred))]
		seen[current] = struct{}{}
		path = append(path, current)
	}
	return path
}

// AddScheduledObstacle marks one-shot occupancy directly. The schedule is
// kept so that materializing one of its ticks projects it again.
func (s *Scheduler) AddScheduledObstacle(schedule map[world.Tick]world.Cell) {
	for t, c := range schedule {
		s.schedules[t] = append(s.schedules[t], c)
		s.world.AddDynamic(c, t)
	}
}

// Materialize recomputes the occupancy of t from scratch and drops every
// tick that falls outside the retention window.
func (s *Scheduler) Materialize(t world.Tick) {
	s.world.ClearDynamicAt(t)
	for _, o := range s.obstacles {
		if c, ok := o.PositionAt(t); ok {
			s.world.AddDynamic(c, t)
		}
	}
	for _, c := range s.schedules[t] {
		s.world.AddDynamic(c, t)
	}
	s.retain(t)

	keep := make(map[world.Tick]struct{}, len(s.retained))
	for _, r := range s.retained {
		keep[r] = struct{}{}
	}
	for _, dt := range s.world.DynamicTicks() {
		if _, ok := keep[dt]; !ok {
			s.world.ClearDynamicAt(dt)
		}
	}
}

func (s *Scheduler) retain(t world.Tick) {
	next := s.retained[:0]
	for _, r := range s.retained {
		if r != t {
			next = append(next, r)
		}
	}
	next = append(next, t)
	if len(next) > s.retention {
		next = next[len(next)-s.retention:]
	}
	s.retained = next
}

func (s *Scheduler) ObstaclesAt(t world.Tick) []world.Cell {
	return s.world.DynamicAt(t)
}

func (s *Scheduler) ClearAll() {
	s.obstacles = nil
	s.schedules = map[world.Tick][]world.Cell{}
	s.retained = nil
	s.world.ClearDynamic()
}

func (s *Scheduler) Obstacles() []MovingObstacle {
	out := make([]MovingObstacle, len(s.obstacles))
	for i, o := range s.obstacles {
		o.Path = append([]world.Cell(nil), o.Path...)
		out[i] = o
	}
	return out
}

// ScheduledTicks lists the ticks that carry one-shot obstacles.
func (s *Scheduler) ScheduledTicks() []world.Tick {
	out := make([]world.Tick, 0, len(s.schedules))
	for t := range s.schedules {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
