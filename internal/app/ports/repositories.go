package ports

import (
	"context"
	"errors"
	"time"

	"gridcourier/internal/domain/delivery"
	"gridcourier/internal/domain/world"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

// TxManager runs fn with a context that repositories use to join the
// transaction.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type MapRecord struct {
	Name      string
	Encoding  string
	Width     int
	Height    int
	CreatedAt time.Time
}

type MapRepository interface {
	Save(ctx context.Context, m MapRecord) error
	GetByName(ctx context.Context, name string) (MapRecord, error)
	List(ctx context.Context) ([]MapRecord, error)
}

type RunRecord struct {
	RunID          string
	ComparisonID   string
	MapName        string
	MapEncoding    string
	Algorithm      string
	Seed           int64
	MaxReplans     int
	MaxSteps       int
	Success        bool
	Reason         string
	TotalCost      int
	TotalTimeSteps int
	NodesExpanded  int
	Replans        int
	PlanningTime   time.Duration
	FinalPath      []world.Cell
	CreatedAt      time.Time
}

type RunRepository interface {
	Save(ctx context.Context, run RunRecord) error
	GetByID(ctx context.Context, runID string) (RunRecord, error)
	ListByComparisonID(ctx context.Context, comparisonID string) ([]RunRecord, error)
}

type EventRepository interface {
	Append(ctx context.Context, runID string, events []delivery.Event) error
	ListByRunID(ctx context.Context, runID string, limit int) ([]delivery.Event, error)
}
