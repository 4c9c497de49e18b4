package plan

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"gridcourier/internal/app/maps"
	"gridcourier/internal/domain/search"
)

var ErrInvalidRequest = errors.New("invalid plan request")

type MapResolver interface {
	Resolve(ctx context.Context, name, encoding string) (maps.Resolved, error)
}

type UseCase struct {
	Maps   MapResolver
	Logger *zap.Logger
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	kind, err := search.ParseKind(req.Algorithm)
	if err != nil {
		return Response{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	if req.Tick < 0 {
		return Response{}, ErrInvalidRequest
	}
	resolved, err := u.Maps.Resolve(ctx, req.MapName, req.Encoding)
	if err != nil {
		return Response{}, err
	}
	w := resolved.World
	start, goal := w.Start(), w.Goal()
	if req.Start != nil {
		start = *req.Start
	}
	if req.Goal != nil {
		goal = *req.Goal
	}
	if !w.InBounds(start) || !w.InBounds(goal) {
		return Response{}, ErrInvalidRequest
	}

	res := search.Search(w, start, goal, kind, req.Tick)
	logger := u.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Info("plan computed",
		zap.String("map", resolved.Name),
		zap.Stringer("algorithm", kind),
		zap.Bool("success", res.Success),
		zap.Int("total_cost", res.TotalCost),
		zap.Int("nodes_expanded", res.NodesExpanded),
	)
	return Response{MapName: resolved.Name, Start: start, Goal: goal, Result: res}, nil
}
