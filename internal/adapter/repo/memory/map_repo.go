package memory

import (
	"context"
	"sort"

	"gridcourier/internal/app/ports"
)

type MapRepo struct {
	store *Store
}

func NewMapRepo(store *Store) MapRepo {
	return MapRepo{store: store}
}

func (r MapRepo) Save(_ context.Context, m ports.MapRecord) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if prev, ok := r.store.maps[m.Name]; ok && !prev.CreatedAt.IsZero() {
		m.CreatedAt = prev.CreatedAt
	}
	r.store.maps[m.Name] = m
	return nil
}

func (r MapRepo) GetByName(_ context.Context, name string) (ports.MapRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	m, ok := r.store.maps[name]
	if !ok {
		return ports.MapRecord{}, ports.ErrNotFound
	}
	return m, nil
}

func (r MapRepo) List(_ context.Context) ([]ports.MapRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]ports.MapRecord, 0, len(r.store.maps))
	for _, m := range r.store.maps {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
