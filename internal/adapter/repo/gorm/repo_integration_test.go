package gormrepo

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"gridcourier/internal/app/ports"
	"gridcourier/internal/domain/delivery"
	"gridcourier/internal/domain/world"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("COURIER_DB_DSN")
	if dsn == "" {
		t.Skip("COURIER_DB_DSN is required for integration test")
	}
	driver := os.Getenv("COURIER_DB_DRIVER")
	if driver == "" {
		driver = DriverPostgres
	}
	db, err := Open(driver, dsn)
	require.NoError(t, err)
	_, err = Migrate(context.Background(), db, driver, "")
	require.NoError(t, err)
	return db
}

func TestMapRepo_UpsertRoundTrip(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	require.NoError(t, db.Exec("DELETE FROM grid_maps WHERE name = ?", "it-map").Error)

	repo := NewMapRepo(db)
	require.NoError(t, repo.Save(ctx, ports.MapRecord{Name: "it-map", Encoding: "S,G\n", Width: 2, Height: 1}))
	require.NoError(t, repo.Save(ctx, ports.MapRecord{Name: "it-map", Encoding: "S,1,G\n", Width: 3, Height: 1}))

	got, err := repo.GetByName(ctx, "it-map")
	require.NoError(t, err)
	assert.Equal(t, "S,1,G\n", got.Encoding)
	assert.Equal(t, 3, got.Width)

	_, err = repo.GetByName(ctx, "it-missing")
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestRunAndEventRepo_PersistInTransaction(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	runID := "it-run-roundtrip"
	require.NoError(t, db.Exec("DELETE FROM run_events WHERE run_id = ?", runID).Error)
	require.NoError(t, db.Exec("DELETE FROM runs WHERE run_id = ?", runID).Error)

	runs := NewRunRepo(db)
	events := NewEventRepo(db)
	tx := NewTxManager(db)
	record := ports.RunRecord{
		RunID:        runID,
		ComparisonID: "it-cmp",
		MapName:      "inline",
		MapEncoding:  "S,G\n",
		Algorithm:    "astar",
		MaxReplans:   3,
		MaxSteps:     100,
		Success:      true,
		TotalCost:    2,
		PlanningTime: 1500 * time.Microsecond,
		FinalPath:    []world.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}},
		CreatedAt:    time.Now().UTC(),
	}
	err := tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := runs.Save(txCtx, record); err != nil {
			return err
		}
		return events.Append(txCtx, runID, []delivery.Event{
			{Tick: 0, Type: delivery.EventPlanned},
			{Tick: 1, Type: delivery.EventStep, Position: world.Cell{X: 1, Y: 0}},
			{Tick: 1, Type: delivery.EventSucceeded, Position: world.Cell{X: 1, Y: 0}},
		})
	})
	require.NoError(t, err)

	got, err := runs.GetByID(ctx, runID)
	require.NoError(t, err)
	assert.Equal(t, record.FinalPath, got.FinalPath)
	assert.Equal(t, record.PlanningTime, got.PlanningTime)

	tail, err := events.ListByRunID(ctx, runID, 2)
	require.NoError(t, err)
	require.Len(t, tail, 2)
	assert.Equal(t, delivery.EventStep, tail[0].Type)
	assert.Equal(t, delivery.EventSucceeded, tail[1].Type)

	assert.ErrorIs(t, runs.Save(ctx, record), ports.ErrConflict)
}
