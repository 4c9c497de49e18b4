package gormrepo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gridcourier/internal/adapter/repo/gorm/model"
	"gridcourier/internal/app/ports"
)

type MapRepo struct {
	db *gorm.DB
}

func NewMapRepo(db *gorm.DB) MapRepo {
	return MapRepo{db: db}
}

func (r MapRepo) Save(ctx context.Context, m ports.MapRecord) error {
	createdAt := m.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	row := model.GridMap{
		Name:      m.Name,
		Encoding:  m.Encoding,
		Width:     int32(m.Width),
		Height:    int32(m.Height),
		CreatedAt: createdAt,
		UpdatedAt: time.Now(),
	}
	return getDBFromCtx(ctx, r.db).WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"encoding", "width", "height", "updated_at"}),
	}).Create(&row).Error
}

func (r MapRepo) GetByName(ctx context.Context, name string) (ports.MapRecord, error) {
	var row model.GridMap
	if err := getDBFromCtx(ctx, r.db).WithContext(ctx).Where("name = ?", name).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.MapRecord{}, ports.ErrNotFound
		}
		return ports.MapRecord{}, err
	}
	return toMapRecord(row), nil
}

func (r MapRepo) List(ctx context.Context) ([]ports.MapRecord, error) {
	rows := []model.GridMap{}
	if err := getDBFromCtx(ctx, r.db).WithContext(ctx).Order("name").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]ports.MapRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, toMapRecord(row))
	}
	return out, nil
}

func toMapRecord(row model.GridMap) ports.MapRecord {
	return ports.MapRecord{
		Name:      row.Name,
		Encoding:  row.Encoding,
		Width:     int(row.Width),
		Height:    int(row.Height),
		CreatedAt: row.CreatedAt,
	}
}
