package memory

import (
	"context"

	"gridcourier/internal/app/ports"
	"gridcourier/internal/domain/world"
)

type RunRepo struct {
	store *Store
}

func NewRunRepo(store *Store) RunRepo {
	return RunRepo{store: store}
}

func (r RunRepo) Save(_ context.Context, run ports.RunRecord) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.runs[run.RunID]; ok {
		return ports.ErrConflict
	}
	run.FinalPath = append([]world.Cell(nil), run.FinalPath...)
	r.store.runs[run.RunID] = run
	r.store.order = append(r.store.order, run.RunID)
	return nil
}

func (r RunRepo) GetByID(_ context.Context, runID string) (ports.RunRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	run, ok := r.store.runs[runID]
	if !ok {
		return ports.RunRecord{}, ports.ErrNotFound
	}
	return run, nil
}

func (r RunRepo) ListByComparisonID(_ context.Context, comparisonID string) ([]ports.RunRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]ports.RunRecord, 0)
	for _, id := range r.store.order {
		if run := r.store.runs[id]; run.ComparisonID == comparisonID && comparisonID != "" {
			out = append(out, run)
		}
	}
	return out, nil
}
