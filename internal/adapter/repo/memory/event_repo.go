package memory

import (
	"context"

	"gridcourier/internal/domain/delivery"
)

type EventRepo struct {
	store *Store
}

func NewEventRepo(store *Store) EventRepo {
	return EventRepo{store: store}
}

func (r EventRepo) Append(_ context.Context, runID string, events []delivery.Event) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.events[runID] = append(r.store.events[runID], events...)
	return nil
}

// ListByRunID returns events in tick order; a positive limit keeps the
// most recent ones.
func (r EventRepo) ListByRunID(_ context.Context, runID string, limit int) ([]delivery.Event, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	events := r.store.events[runID]
	if limit > 0 && len(events) > limit {
		events = events[len(events)-limit:]
	}
	return append([]delivery.Event(nil), events...), nil
}
