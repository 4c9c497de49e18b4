package obstacle

import (
	"errors"

	"gridcourier/internal/domain/world"
)

var ErrInvalidObstacle = errors.New("invalid moving obstacle")

// MovingObstacle sits on each path cell for Speed ticks and loops from the
// last cell back to the first.
type MovingObstacle struct {
	ID        string       `json:"id"`
	Base      world.Cell   `json:"base"`
	Path      []world.Cell `json:"path"`
	Speed     int          `json:"speed"`
	StartTime world.Tick   `json:"start_time"`
}

func (o MovingObstacle) Validate() error {
	if len(o.Path) == 0 || o.Speed < 1 || o.StartTime < 0 {
		return ErrInvalidObstacle
	}
	return nil
}

// PositionAt reports where the obstacle is at t; ok is false before it starts.
func (o MovingObstacle) PositionAt(t world.Tick) (world.Cell, bool) {
	if t < o.StartTime || len(o.Path) == 0 || o.Speed < 1 {
		return world.Cell{}, false
	}
	step := (int(t-o.StartTime) / o.Speed) % len(o.Path)
	return o.Path[step], true
}
