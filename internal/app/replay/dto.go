package replay

import (
	"gridcourier/internal/domain/delivery"
	"gridcourier/internal/domain/world"
)

type Request struct {
	RunID    string
	Limit    int
	FromTick *world.Tick
	ToTick   *world.Tick
}

// Latest is the agent's last known position rebuilt from events.
type Latest struct {
	Position world.Cell
	Tick     world.Tick
	State    string
	Reason   string
}

type Response struct {
	RunID  string
	Events []delivery.Event
	Latest Latest
}
