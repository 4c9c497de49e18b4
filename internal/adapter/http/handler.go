package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"gridcourier/internal/app/maps"
	"gridcourier/internal/app/plan"
	"gridcourier/internal/app/ports"
	"gridcourier/internal/app/replay"
	"gridcourier/internal/app/run"
	"gridcourier/internal/domain/world"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type Handler struct {
	MapsUC   maps.UseCase
	PlanUC   plan.UseCase
	RunUC    run.UseCase
	ReplayUC replay.UseCase
	KPI      kpiSnapshotProvider

	// AllowOrigins limits CORS; empty allows any origin.
	AllowOrigins []string
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware(h.AllowOrigins))

	api := s.Group("/api")
	api.POST("/maps", h.saveMap)
	api.GET("/maps", h.listMaps)
	api.GET("/maps/:name", h.getMap)
	api.POST("/plan", h.plan)
	api.POST("/runs", h.run)
	api.GET("/runs/:id/replay", h.replay)

	s.GET("/ops/kpi", h.kpi)
	s.GET("/healthz", h.healthz)
}

type saveMapRequest struct {
	Name     string `json:"name"`
	Encoding string `json:"encoding"`
}

type planRequest struct {
	MapName   string      `json:"map_name"`
	Encoding  string      `json:"encoding"`
	Algorithm string      `json:"algorithm"`
	Tick      int         `json:"tick"`
	Start     *world.Cell `json:"start,omitempty"`
	Goal      *world.Cell `json:"goal,omitempty"`
}

type movingObstacleBody struct {
	Start     world.Cell   `json:"start"`
	Path      []world.Cell `json:"path"`
	Speed     int          `json:"speed"`
	StartTime int          `json:"start_time"`
}

type scheduledObstacleBody struct {
	Tick int        `json:"tick"`
	Cell world.Cell `json:"cell"`
}

type runRequest struct {
	MapName            string                  `json:"map_name"`
	Encoding           string                  `json:"encoding"`
	Algorithm          string                  `json:"algorithm"`
	MaxReplans         *int                    `json:"max_replans,omitempty"`
	MaxSteps           *int                    `json:"max_steps,omitempty"`
	MaxRestarts        int                     `json:"max_restarts"`
	Seed               int64                   `json:"seed"`
	StartTick          int                     `json:"start_tick"`
	RandomObstacles    int                     `json:"random_obstacles"`
	MovingObstacles    []movingObstacleBody    `json:"moving_obstacles"`
	ScheduledObstacles []scheduledObstacleBody `json:"scheduled_obstacles"`
}

func (h Handler) saveMap(c context.Context, ctx *app.RequestContext) {
	var body saveMapRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.MapsUC.Save(c, maps.SaveRequest{Name: body.Name, Encoding: body.Encoding})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, toSaveMapResponse(resp))
}

func (h Handler) listMaps(c context.Context, ctx *app.RequestContext) {
	records, err := h.MapsUC.List(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, toMapListResponse(records))
}

func (h Handler) getMap(c context.Context, ctx *app.RequestContext) {
	resp, err := h.MapsUC.Get(c, ctx.Param("name"))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, toGetMapResponse(resp))
}

func (h Handler) plan(c context.Context, ctx *app.RequestContext) {
	var body planRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.PlanUC.Execute(c, plan.Request{
		MapName:   body.MapName,
		Encoding:  body.Encoding,
		Algorithm: body.Algorithm,
		Tick:      world.Tick(body.Tick),
		Start:     body.Start,
		Goal:      body.Goal,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, toPlanResponse(resp))
}

func (h Handler) run(c context.Context, ctx *app.RequestContext) {
	var body runRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	req := run.Request{
		MapName:         body.MapName,
		Encoding:        body.Encoding,
		Algorithm:       body.Algorithm,
		MaxReplans:      defaultMaxReplans,
		MaxSteps:        defaultMaxSteps,
		MaxRestarts:     body.MaxRestarts,
		Seed:            body.Seed,
		StartTick:       world.Tick(body.StartTick),
		RandomObstacles: body.RandomObstacles,
	}
	if body.MaxReplans != nil {
		req.MaxReplans = *body.MaxReplans
	}
	if body.MaxSteps != nil {
		req.MaxSteps = *body.MaxSteps
	}
	for _, m := range body.MovingObstacles {
		req.Moving = append(req.Moving, run.MovingObstacle{
			Start:     m.Start,
			Path:      m.Path,
			Speed:     m.Speed,
			StartTime: world.Tick(m.StartTime),
		})
	}
	for _, s := range body.ScheduledObstacles {
		req.Scheduled = append(req.Scheduled, run.ScheduledObstacle{Tick: world.Tick(s.Tick), Cell: s.Cell})
	}

	resp, err := h.RunUC.Execute(c, req)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, toRunResponse(resp))
}

func (h Handler) replay(c context.Context, ctx *app.RequestContext) {
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	req := replay.Request{RunID: ctx.Param("id"), Limit: limit}
	if t, ok := tickQuery(ctx, "from_tick"); ok {
		req.FromTick = &t
	}
	if t, ok := tickQuery(ctx, "to_tick"); ok {
		req.ToTick = &t
	}
	resp, err := h.ReplayUC.Execute(c, req)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, toReplayResponse(resp))
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func (h Handler) healthz(_ context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, map[string]string{"status": "ok"})
}

const (
	defaultMaxReplans = 3
	defaultMaxSteps   = 100
)

func tickQuery(ctx *app.RequestContext, key string) (world.Tick, bool) {
	raw := strings.TrimSpace(string(ctx.Query(key)))
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return world.Tick(n), true
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func writeError(ctx *app.RequestContext, err error) {
	var mapErr *maps.InvalidMapError
	switch {
	case errors.As(err, &mapErr):
		writeErrorBodyWithDetails(ctx, consts.StatusBadRequest, "invalid_map", err.Error(), map[string]any{
			"reason": string(mapErr.Reason),
			"line":   mapErr.Line,
		})
	case errors.Is(err, maps.ErrInvalidMap):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_map", err.Error())
	case errors.Is(err, maps.ErrInvalidRequest),
		errors.Is(err, plan.ErrInvalidRequest),
		errors.Is(err, run.ErrInvalidRequest),
		errors.Is(err, replay.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}

func writeErrorBodyWithDetails(ctx *app.RequestContext, status int, code, message string, details map[string]any) {
	ctx.JSON(status, map[string]any{
		"error": map[string]any{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}
