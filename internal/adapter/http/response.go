package httpadapter

import (
	"time"

	"gridcourier/internal/app/maps"
	"gridcourier/internal/app/plan"
	"gridcourier/internal/app/ports"
	"gridcourier/internal/app/replay"
	"gridcourier/internal/app/run"
	"gridcourier/internal/domain/delivery"
	"gridcourier/internal/domain/obstacle"
	"gridcourier/internal/domain/search"
	"gridcourier/internal/domain/world"
)

type saveMapResponse struct {
	Name   string `json:"name"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type mapSummary struct {
	Name      string    `json:"name"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	CreatedAt time.Time `json:"created_at"`
}

type mapListResponse struct {
	Maps []mapSummary `json:"maps"`
}

type getMapResponse struct {
	Name     string         `json:"name"`
	Encoding string         `json:"encoding"`
	Snapshot world.Snapshot `json:"snapshot"`
}

type searchResultBody struct {
	Algorithm           string       `json:"algorithm"`
	Success             bool         `json:"success"`
	Path                []world.Cell `json:"path"`
	TotalCost           int          `json:"total_cost"`
	NodesExpanded       int          `json:"nodes_expanded"`
	Restarts            int          `json:"restarts"`
	PlanningTimeSeconds float64      `json:"planning_time_seconds"`
}

type planResponse struct {
	MapName string           `json:"map_name"`
	Start   world.Cell       `json:"start"`
	Goal    world.Cell       `json:"goal"`
	Result  searchResultBody `json:"result"`
}

type metricsBody struct {
	Success             bool             `json:"success"`
	Reason              string           `json:"reason,omitempty"`
	TotalCost           int              `json:"total_cost"`
	TotalTimeSteps      int              `json:"total_time_steps"`
	NodesExpanded       int              `json:"nodes_expanded"`
	Replans             int              `json:"replans"`
	PlanningTimeSeconds float64          `json:"planning_time_seconds"`
	FinalPath           []world.Cell     `json:"final_path"`
	FinalPosition       world.Cell       `json:"final_position"`
	ExecutionLog        []string         `json:"execution_log"`
	Events              []delivery.Event `json:"events"`
}

type obstacleBody struct {
	ID        string       `json:"id"`
	Start     world.Cell   `json:"start"`
	Path      []world.Cell `json:"path"`
	Speed     int          `json:"speed"`
	StartTime world.Tick   `json:"start_time"`
}

type runBody struct {
	RunID     string         `json:"run_id"`
	Algorithm string         `json:"algorithm"`
	Metrics   metricsBody    `json:"metrics"`
	Obstacles []obstacleBody `json:"obstacles"`
}

type runResponse struct {
	ComparisonID string    `json:"comparison_id,omitempty"`
	MapName      string    `json:"map_name"`
	Runs         []runBody `json:"runs"`
}

type latestBody struct {
	Position world.Cell `json:"position"`
	Tick     world.Tick `json:"tick"`
	State    string     `json:"state"`
	Reason   string     `json:"reason,omitempty"`
}

type replayResponse struct {
	RunID  string           `json:"run_id"`
	Events []delivery.Event `json:"events"`
	Latest latestBody       `json:"latest"`
}

func toSaveMapResponse(r maps.SaveResponse) saveMapResponse {
	return saveMapResponse{Name: r.Name, Width: r.Width, Height: r.Height}
}

func toMapListResponse(records []ports.MapRecord) mapListResponse {
	out := mapListResponse{Maps: make([]mapSummary, 0, len(records))}
	for _, r := range records {
		out.Maps = append(out.Maps, mapSummary{Name: r.Name, Width: r.Width, Height: r.Height, CreatedAt: r.CreatedAt})
	}
	return out
}

func toGetMapResponse(r maps.GetResponse) getMapResponse {
	return getMapResponse{Name: r.Name, Encoding: r.Encoding, Snapshot: r.Snapshot}
}

func toSearchResult(r search.Result) searchResultBody {
	return searchResultBody{
		Algorithm:           r.Kind.String(),
		Success:             r.Success,
		Path:                r.Path,
		TotalCost:           r.TotalCost,
		NodesExpanded:       r.NodesExpanded,
		Restarts:            r.Restarts,
		PlanningTimeSeconds: r.PlanningTimeSeconds(),
	}
}

func toPlanResponse(r plan.Response) planResponse {
	return planResponse{MapName: r.MapName, Start: r.Start, Goal: r.Goal, Result: toSearchResult(r.Result)}
}

func toMetrics(m delivery.Metrics) metricsBody {
	return metricsBody{
		Success:             m.Success,
		Reason:              string(m.Reason),
		TotalCost:           m.TotalCost,
		TotalTimeSteps:      m.TotalTimeSteps,
		NodesExpanded:       m.NodesExpanded,
		Replans:             m.Replans,
		PlanningTimeSeconds: m.PlanningTimeSeconds(),
		FinalPath:           m.FinalPath,
		FinalPosition:       m.FinalPosition,
		ExecutionLog:        m.ExecutionLog,
		Events:              m.Events,
	}
}

func toObstacles(in []obstacle.MovingObstacle) []obstacleBody {
	out := make([]obstacleBody, 0, len(in))
	for _, o := range in {
		out = append(out, obstacleBody{ID: o.ID, Start: o.Base, Path: o.Path, Speed: o.Speed, StartTime: o.StartTime})
	}
	return out
}

func toRunResponse(r run.Response) runResponse {
	out := runResponse{ComparisonID: r.ComparisonID, MapName: r.MapName, Runs: make([]runBody, 0, len(r.Runs))}
	for _, o := range r.Runs {
		out.Runs = append(out.Runs, runBody{
			RunID:     o.RunID,
			Algorithm: o.Algorithm,
			Metrics:   toMetrics(o.Metrics),
			Obstacles: toObstacles(o.Obstacles),
		})
	}
	return out
}

func toReplayResponse(r replay.Response) replayResponse {
	return replayResponse{
		RunID:  r.RunID,
		Events: r.Events,
		Latest: latestBody{
			Position: r.Latest.Position,
			Tick:     r.Latest.Tick,
			State:    r.Latest.State,
			Reason:   r.Latest.Reason,
		},
	}
}
