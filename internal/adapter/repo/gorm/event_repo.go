package gormrepo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gridcourier/internal/adapter/repo/gorm/model"
	"gridcourier/internal/domain/delivery"
	"gridcourier/internal/domain/world"
)

type EventRepo struct {
	db *gorm.DB
}

func NewEventRepo(db *gorm.DB) EventRepo {
	return EventRepo{db: db}
}

func (r EventRepo) Append(ctx context.Context, runID string, events []delivery.Event) error {
	if len(events) == 0 {
		return nil
	}
	db := getDBFromCtx(ctx, r.db).WithContext(ctx)
	var next int64
	if err := db.Model(&model.RunEvent{}).Where("run_id = ?", runID).Count(&next).Error; err != nil {
		return err
	}
	rows := make([]model.RunEvent, 0, len(events))
	for i, e := range events {
		rows = append(rows, model.RunEvent{
			RunID:  runID,
			Seq:    int32(next) + int32(i),
			Tick:   int32(e.Tick),
			Type:   string(e.Type),
			X:      int32(e.Position.X),
			Y:      int32(e.Position.Y),
			Detail: e.Detail,
		})
	}
	return db.CreateInBatches(&rows, 200).Error
}

// ListByRunID returns events in sequence order; a positive limit keeps the
// most recent ones.
func (r EventRepo) ListByRunID(ctx context.Context, runID string, limit int) ([]delivery.Event, error) {
	rows := []model.RunEvent{}
	query := getDBFromCtx(ctx, r.db).WithContext(ctx).
		Where(&model.RunEvent{RunID: runID}).
		Clauses(clause.OrderBy{
			Columns: []clause.OrderByColumn{{Column: clause.Column{Name: "seq"}, Desc: true}},
		})
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]delivery.Event, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		row := rows[i]
		out = append(out, delivery.Event{
			Tick:     world.Tick(row.Tick),
			Type:     delivery.EventType(row.Type),
			Position: world.Cell{X: int(row.X), Y: int(row.Y)},
			Detail:   row.Detail,
		})
	}
	return out, nil
}
