package run

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gridcourier/internal/app/maps"
	"gridcourier/internal/app/ports"
	"gridcourier/internal/domain/delivery"
	"gridcourier/internal/domain/search"
)

var ErrInvalidRequest = errors.New("invalid run request")

type MapResolver interface {
	Resolve(ctx context.Context, name, encoding string) (maps.Resolved, error)
}

type UseCase struct {
	TxManager ports.TxManager
	Maps      MapResolver
	Runs      ports.RunRepository
	Events    ports.EventRepository
	Metrics   ports.RunMetrics
	Logger    *zap.Logger
	Now       func() time.Time
	NewID     func() string
}

// Execute runs one delivery, or one per algorithm when Algorithm is "all".
// Every run gets its own copy of the map and a scheduler seeded identically.
// A zero MaxRestarts keeps the search default for hill-climbing.
func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	kinds, err := u.validate(req)
	if err != nil {
		if u.Metrics != nil {
			u.Metrics.RecordInvalidRequest()
		}
		return Response{}, err
	}
	resolved, err := u.Maps.Resolve(ctx, req.MapName, req.Encoding)
	if err != nil {
		return Response{}, err
	}

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	newID := u.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	logger := u.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	out := Response{MapName: resolved.Name}
	if len(kinds) > 1 {
		out.ComparisonID = newID()
	}
	for _, kind := range kinds {
		w := resolved.World.Clone()
		sched, skipped, err := buildScenario(w, req, rand.New(rand.NewSource(req.Seed)))
		if err != nil {
			return Response{}, err
		}
		if skipped > 0 {
			logger.Warn("random obstacles skipped", zap.Int("skipped", skipped), zap.String("map", resolved.Name))
		}

		runID := newID()
		runLogger := logger.With(zap.String("run_id", runID), zap.Stringer("algorithm", kind))
		searchOpts := []search.Option{search.WithRand(rand.New(rand.NewSource(req.Seed)))}
		if req.MaxRestarts > 0 {
			searchOpts = append(searchOpts, search.WithMaxRestarts(req.MaxRestarts))
		}
		agent := delivery.New(w,
			delivery.WithScheduler(sched),
			delivery.WithStartTick(req.StartTick),
			delivery.WithSearchOptions(searchOpts...),
			delivery.WithLogger(runLogger),
		)
		metrics := agent.Deliver(kind, req.MaxReplans, req.MaxSteps)

		record := ports.RunRecord{
			RunID:          runID,
			ComparisonID:   out.ComparisonID,
			MapName:        resolved.Name,
			MapEncoding:    resolved.Encoding,
			Algorithm:      kind.String(),
			Seed:           req.Seed,
			MaxReplans:     req.MaxReplans,
			MaxSteps:       req.MaxSteps,
			Success:        metrics.Success,
			Reason:         string(metrics.Reason),
			TotalCost:      metrics.TotalCost,
			TotalTimeSteps: metrics.TotalTimeSteps,
			NodesExpanded:  metrics.NodesExpanded,
			Replans:        metrics.Replans,
			PlanningTime:   metrics.PlanningTime,
			FinalPath:      metrics.FinalPath,
			CreatedAt:      nowFn(),
		}
		if err := u.persist(ctx, record, metrics.Events); err != nil {
			return Response{}, err
		}
		if u.Metrics != nil {
			u.Metrics.RecordRun(kind.String(), metrics)
		}
		runLogger.Info("run finished",
			zap.Bool("success", metrics.Success),
			zap.String("reason", string(metrics.Reason)),
			zap.Int("total_cost", metrics.TotalCost),
			zap.Int("replans", metrics.Replans),
		)
		out.Runs = append(out.Runs, Outcome{
			RunID:     runID,
			Algorithm: kind.String(),
			Metrics:   metrics,
			Obstacles: sched.Obstacles(),
		})
	}
	return out, nil
}

func (u UseCase) validate(req Request) ([]search.Kind, error) {
	if req.MaxReplans < 0 || req.MaxSteps < 1 || req.StartTick < 0 || req.MaxRestarts < 0 {
		return nil, ErrInvalidRequest
	}
	if req.RandomObstacles < 0 || req.RandomObstacles > MaxRandomObstacles {
		return nil, ErrInvalidRequest
	}
	name := strings.TrimSpace(req.Algorithm)
	if strings.EqualFold(name, AlgorithmAll) {
		return search.Kinds(), nil
	}
	kind, err := search.ParseKind(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	return []search.Kind{kind}, nil
}

func (u UseCase) persist(ctx context.Context, record ports.RunRecord, events []delivery.Event) error {
	if u.Runs == nil {
		return nil
	}
	save := func(txCtx context.Context) error {
		if err := u.Runs.Save(txCtx, record); err != nil {
			return err
		}
		if u.Events == nil {
			return nil
		}
		return u.Events.Append(txCtx, record.RunID, events)
	}
	if u.TxManager == nil {
		return save(ctx)
	}
	return u.TxManager.RunInTx(ctx, save)
}
