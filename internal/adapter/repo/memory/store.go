package memory

import (
	"sync"

	"gridcourier/internal/app/ports"
	"gridcourier/internal/domain/delivery"
)

type Store struct {
	mu     sync.RWMutex
	txMu   sync.Mutex
	maps   map[string]ports.MapRecord
	runs   map[string]ports.RunRecord
	order  []string
	events map[string][]delivery.Event
}

func NewStore() *Store {
	return &Store{
		maps:   make(map[string]ports.MapRecord),
		runs:   make(map[string]ports.RunRecord),
		events: make(map[string][]delivery.Event),
	}
}

func (s *Store) SeedMap(m ports.MapRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.maps[m.Name] = m
}
