package run

import (
	"gridcourier/internal/domain/delivery"
	"gridcourier/internal/domain/obstacle"
	"gridcourier/internal/domain/world"
)

// AlgorithmAll runs every search kind against the same scenario.
const AlgorithmAll = "all"

type MovingObstacle struct {
	Start     world.Cell
	Path      []world.Cell
	Speed     int
	StartTime world.Tick
}

type ScheduledObstacle struct {
	Tick world.Tick
	Cell world.Cell
}

type Request struct {
	MapName         string
	Encoding        string
	Algorithm       string
	MaxReplans      int
	MaxSteps        int
	Seed            int64
	MaxRestarts     int
	StartTick       world.Tick
	RandomObstacles int
	Moving          []MovingObstacle
	Scheduled       []ScheduledObstacle
}

type Outcome struct {
	RunID     string
	Algorithm string
	Metrics   delivery.Metrics
	Obstacles []obstacle.MovingObstacle
}

type Response struct {
	ComparisonID string
	MapName      string
	Runs         []Outcome
}
