package delivery

import (
	"time"

	"gridcourier/internal/domain/world"
)

type EventType string

const (
	EventPlanned    EventType = "planned"
	EventStep       EventType = "step"
	EventBlocked    EventType = "blocked"
	EventReplanning EventType = "replanning"
	EventReplanned  EventType = "replanned"
	EventSucceeded  EventType = "succeeded"
	EventFailed     EventType = "failed"
)

type Event struct {
	Tick     world.Tick `json:"tick"`
	Type     EventType  `json:"type"`
	Position world.Cell `json:"position"`
	Detail   string     `json:"detail,omitempty"`
}

// Metrics aggregates one Deliver call. NodesExpanded and PlanningTime are
// summed over every plan, the initial one included.
type Metrics struct {
	Success        bool          `json:"success"`
	Reason         FailureReason `json:"reason,omitempty"`
	TotalCost      int           `json:"total_cost"`
	TotalTimeSteps int           `json:"total_time_steps"`
	NodesExpanded  int           `json:"nodes_expanded"`
	Replans        int           `json:"replans"`
	PlanningTime   time.Duration `json:"planning_time"`
	FinalPath      []world.Cell  `json:"final_path"`
	ExecutionLog   []string      `json:"execution_log"`
	Events         []Event       `json:"events"`
	FinalPosition  world.Cell    `json:"final_position"`
}

func (m Metrics) PlanningTimeSeconds() float64 {
	return m.PlanningTime.Seconds()
}
