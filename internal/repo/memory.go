package repo

import (
	"sync"

	"github.com/trip-curator/backend/internal/domain"
)

// MemoryStore is the in-process fallback plan store. It is shared by all
// in-flight requests, so every access holds the mutex.
type MemoryStore struct {
	mu    sync.RWMutex
	plans []domain.TripPlan // insertion order, oldest first
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Save appends the plan. It cannot fail.
func (m *MemoryStore) Save(plan domain.TripPlan) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.plans = append(m.plans, plan)
}

// GetByID returns the plan with the given id, or domain.ErrNotFound.
func (m *MemoryStore) GetByID(id string) (domain.TripPlan, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.plans {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.TripPlan{}, domain.ErrNotFound
}

// List returns up to params.Limit plans in reverse insertion order (most
// recently saved first), skipping params.Offset newest entries.
func (m *MemoryStore) List(params domain.ListParams) []domain.TripPlan {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []domain.TripPlan{}
	for i := len(m.plans) - 1 - params.Offset; i >= 0 && len(out) < params.Limit; i-- {
		out = append(out, m.plans[i])
	}
	return out
}

// Len reports the number of stored plans.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.plans)
}
