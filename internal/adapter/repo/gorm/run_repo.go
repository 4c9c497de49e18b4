package gormrepo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"

	"gridcourier/internal/adapter/repo/gorm/model"
	"gridcourier/internal/app/ports"
	"gridcourier/internal/domain/world"
)

type RunRepo struct {
	db *gorm.DB
}

func NewRunRepo(db *gorm.DB) RunRepo {
	return RunRepo{db: db}
}

func (r RunRepo) Save(ctx context.Context, run ports.RunRecord) error {
	path, err := json.Marshal(run.FinalPath)
	if err != nil {
		return err
	}
	row := model.Run{
		RunID:          run.RunID,
		ComparisonID:   run.ComparisonID,
		MapName:        run.MapName,
		MapEncoding:    run.MapEncoding,
		Algorithm:      run.Algorithm,
		Seed:           run.Seed,
		MaxReplans:     int32(run.MaxReplans),
		MaxSteps:       int32(run.MaxSteps),
		Success:        run.Success,
		Reason:         run.Reason,
		TotalCost:      int32(run.TotalCost),
		TotalTimeSteps: int32(run.TotalTimeSteps),
		NodesExpanded:  int32(run.NodesExpanded),
		Replans:        int32(run.Replans),
		PlanningTimeUs: run.PlanningTime.Microseconds(),
		FinalPath:      string(path),
		CreatedAt:      run.CreatedAt,
	}
	err = getDBFromCtx(ctx, r.db).WithContext(ctx).Create(&row).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ports.ErrConflict
	}
	return err
}

func (r RunRepo) GetByID(ctx context.Context, runID string) (ports.RunRecord, error) {
	var row model.Run
	if err := getDBFromCtx(ctx, r.db).WithContext(ctx).Where("run_id = ?", runID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.RunRecord{}, ports.ErrNotFound
		}
		return ports.RunRecord{}, err
	}
	return toRunRecord(row)
}

func (r RunRepo) ListByComparisonID(ctx context.Context, comparisonID string) ([]ports.RunRecord, error) {
	rows := []model.Run{}
	if comparisonID == "" {
		return []ports.RunRecord{}, nil
	}
	err := getDBFromCtx(ctx, r.db).WithContext(ctx).
		Where("comparison_id = ?", comparisonID).
		Order("created_at").Order("run_id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]ports.RunRecord, 0, len(rows))
	for _, row := range rows {
		rec, err := toRunRecord(row)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func toRunRecord(row model.Run) (ports.RunRecord, error) {
	path := []world.Cell{}
	if row.FinalPath != "" {
		if err := json.Unmarshal([]byte(row.FinalPath), &path); err != nil {
			return ports.RunRecord{}, err
		}
	}
	return ports.RunRecord{
		RunID:          row.RunID,
		ComparisonID:   row.ComparisonID,
		MapName:        row.MapName,
		MapEncoding:    row.MapEncoding,
		Algorithm:      row.Algorithm,
		Seed:           row.Seed,
		MaxReplans:     int(row.MaxReplans),
		MaxSteps:       int(row.MaxSteps),
		Success:        row.Success,
		Reason:         row.Reason,
		TotalCost:      int(row.TotalCost),
		TotalTimeSteps: int(row.TotalTimeSteps),
		NodesExpanded:  int(row.NodesExpanded),
		Replans:        int(row.Replans),
		PlanningTime:   time.Duration(row.PlanningTimeUs) * time.Microsecond,
		FinalPath:      path,
		CreatedAt:      row.CreatedAt,
	}, nil
}
