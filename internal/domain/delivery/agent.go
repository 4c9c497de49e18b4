package delivery

import (
	"fmt"

	"go.uber.org/zap"

	"gridcourier/internal/domain/search"
	"gridcourier/internal/domain/world"
)

// Materializer projects obstacle occupancy for a tick before it is read.
type Materializer interface {
	Materialize(t world.Tick)
}

type Agent struct {
	world      *world.World
	scheduler  Materializer
	clock      *world.Clock
	position   world.Cell
	state      State
	searchOpts []search.Option
	logger     *zap.Logger
}

type Option func(*Agent)

func WithScheduler(m Materializer) Option {
	return func(a *Agent) { a.scheduler = m }
}

func WithStartTick(t world.Tick) Option {
	return func(a *Agent) { a.clock = world.NewClock(t) }
}

func WithSearchOptions(opts ...search.Option) Option {
	return func(a *Agent) { a.searchOpts = append(a.searchOpts, opts...) }
}

func WithLogger(logger *zap.Logger) Option {
	return func(a *Agent) {
		if logger != nil {
			a.logger = logger
		}
	}
}

func New(w *world.World, opts ...Option) *Agent {
	a := &Agent{
		world:    w,
		clock:    world.NewClock(0),
		position: w.Start(),
		state:    Planning,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Agent) State() State         { return a.state }
func (a *Agent) Position() world.Cell { return a.position }
func (a *Agent) Tick() world.Tick     { return a.clock.Now() }

// run holds the bookkeeping of one Deliver call.
type run struct {
	agent   *Agent
	kind    search.Kind
	metrics Metrics
}

// Deliver drives the agent to the goal one cell per tick, re-checking each
// next cell at its arrival tick and replanning from the current cell when it
// is blocked.
func (a *Agent) Deliver(kind search.Kind, maxReplans, maxSteps int) Metrics {
	r := &run{agent: a, kind: kind}
	r.metrics.FinalPath = []world.Cell{a.position}
	a.state = Planning
	a.logger.Info("delivery started",
		zap.Stringer("algorithm", kind),
		zap.Stringer("start", a.position),
		zap.Stringer("goal", a.world.Goal()),
		zap.Int("max_replans", maxReplans),
		zap.Int("max_steps", maxSteps),
	)

	now := a.clock.Now()
	a.materialize(now)
	r.metrics.TotalCost += a.world.Cost(a.position)
	plan, ok := r.plan(now)
	if !ok {
		return r.fail(ReasonNoInitialPath, "no path from %s to %s", a.position, a.world.Goal())
	}
	r.event(EventPlanned, "%s path of %d cells, cost %d", kind, len(plan), search.PathCost(a.world, plan))

	a.state = Executing
	idx := 0
	for {
		if a.position == a.world.Goal() {
			return r.succeed()
		}
		if r.metrics.TotalTimeSteps >= maxSteps {
			return r.fail(ReasonStepBudgetExhausted, "step budget of %d exhausted", maxSteps)
		}

		arrival := a.clock.Now() + 1
		a.materialize(arrival)
		var next world.Cell
		blocked := idx+1 >= len(plan)
		if !blocked {
			next = plan[idx+1]
			blocked = a.world.IsBlocked(next.X, next.Y, arrival)
		}
		if blocked {
			if idx+1 < len(plan) {
				r.logEvent(arrival, EventBlocked, "next cell %s blocked", next)
			} else {
				r.logEvent(arrival, EventBlocked, "plan ended before the goal")
			}
			if r.metrics.Replans >= maxReplans {
				return r.fail(ReasonReplanBudgetExhausted, "replan budget of %d exhausted", maxReplans)
			}
			a.state = Replanning
			r.metrics.Replans++
			r.logEvent(arrival, EventReplanning, "replan %d of %d from %s", r.metrics.Replans, maxReplans, a.position)
			replanned, ok := r.plan(arrival)
			if !ok {
				return r.fail(ReasonReplanFailed, "no path from %s at tick %d", a.position, arrival)
			}
			plan, idx = replanned, 0
			r.logEvent(arrival, EventReplanned, "%s path of %d cells", kind, len(plan))
			a.state = Executing
			continue
		}

		a.position = next
		a.clock.Advance()
		idx++
		r.metrics.TotalCost += a.world.Cost(next)
		r.metrics.TotalTimeSteps++
		r.metrics.FinalPath = append(r.metrics.FinalPath, next)
		r.metrics.Events = append(r.metrics.Events, Event{Tick: a.clock.Now(), Type: EventStep, Position: next})
		a.logger.Debug("step", zap.Stringer("position", next), zap.Int("tick", int(a.clock.Now())))
	}
}

func (a *Agent) materialize(t world.Tick) {
	if a.scheduler != nil {
		a.scheduler.Materialize(t)
	}
}

func (r *run) plan(at world.Tick) ([]world.Cell, bool) {
	a := r.agent
	res := search.Search(a.world, a.position, a.world.Goal(), r.kind, at, a.searchOpts...)
	r.metrics.NodesExpanded += res.NodesExpanded
	r.metrics.PlanningTime += res.PlanningTime
	a.logger.Debug("planned",
		zap.Stringer("algorithm", r.kind),
		zap.Bool("success", res.Success),
		zap.Int("nodes_expanded", res.NodesExpanded),
		zap.Int("restarts", res.Restarts),
		zap.Duration("planning_time", res.PlanningTime),
	)
	return res.Path, res.Success
}

func (r *run) event(typ EventType, format string, args ...any) {
	r.metrics.Events = append(r.metrics.Events, Event{
		Tick:     r.agent.clock.Now(),
		Type:     typ,
		Position: r.agent.position,
		Detail:   fmt.Sprintf(format, args...),
	})
}

// logEvent records an event and mirrors it into the execution log.
func (r *run) logEvent(t world.Tick, typ EventType, format string, args ...any) {
	detail := fmt.Sprintf(format, args...)
	r.metrics.Events = append(r.metrics.Events, Event{Tick: t, Type: typ, Position: r.agent.position, Detail: detail})
	r.metrics.ExecutionLog = append(r.metrics.ExecutionLog, fmt.Sprintf("t=%d %s: %s", t, typ, detail))
	r.agent.logger.Info(string(typ), zap.Int("tick", int(t)), zap.Stringer("position", r.agent.position), zap.String("detail", detail))
}

func (r *run) succeed() Metrics {
	a := r.agent
	a.state = Succeeded
	r.metrics.Success = true
	r.metrics.FinalPosition = a.position
	r.logEvent(a.clock.Now(), EventSucceeded, "reached goal %s with cost %d in %d steps", a.position, r.metrics.TotalCost, r.metrics.TotalTimeSteps)
	return r.metrics
}

func (r *run) fail(reason FailureReason, format string, args ...any) Metrics {
	a := r.agent
	a.state = Failed
	r.metrics.Success = false
	r.metrics.Reason = reason
	r.metrics.FinalPosition = a.position
	r.logEvent(a.clock.Now(), EventFailed, "%s: %s", reason, fmt.Sprintf(format, args...))
	return r.metrics
}
