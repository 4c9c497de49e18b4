package plan

import (
	"gridcourier/internal/domain/search"
	"gridcourier/internal/domain/world"
)

type Request struct {
	MapName   string
	Encoding  string
	Algorithm string
	Tick      world.Tick
	Start     *world.Cell
	Goal      *world.Cell
}

type Response struct {
	MapName string
	Start   world.Cell
	Goal    world.Cell
	Result  search.Result
}
