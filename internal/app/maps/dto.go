package maps

import "gridcourier/internal/domain/world"

const InlineName = "inline"

type SaveRequest struct {
	Name     string
	Encoding string
}

type SaveResponse struct {
	Name   string
	Width  int
	Height int
}

type GetResponse struct {
	Name     string
	Encoding string
	Snapshot world.Snapshot
}

// Resolved is a parsed map ready to be cloned into a scenario.
type Resolved struct {
	Name     string
	Encoding string
	World    *world.World
}
