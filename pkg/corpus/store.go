package corpus

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"ai-legalaid-be/internal/entity"
)

// Store is the in-memory, read-only view of the reference corpus. It is
// loaded once at startup and never mutated afterwards, so reads need no
// coordination beyond the RWMutex taken during the initial Load.
type Store struct {
	mu      sync.RWMutex
	units   map[uuid.UUID]*entity.ReferenceUnit
	ordered []*entity.ReferenceUnit
}

func NewStore() *Store {
	return &Store{
		units: make(map[uuid.UUID]*entity.ReferenceUnit),
	}
}

// Load replaces the store contents. Duplicate unit ids are rejected and leave
// the store unchanged.
func (s *Store) Load(units []*entity.ReferenceUnit) error {
	byId := make(map[uuid.UUID]*entity.ReferenceUnit, len(units))
	ordered := make([]*entity.ReferenceUnit, 0, len(units))

	for _, u := range units {
		if u.Id == uuid.Nil {
			return fmt.Errorf("reference unit %q has no id", u.Title)
		}
		if _, exists := byId[u.Id]; exists {
			return fmt.Errorf("duplicate reference unit id %s", u.Id)
		}
		byId[u.Id] = u
		ordered = append(ordered, u)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.units = byId
	s.ordered = ordered
	return nil
}

func (s *Store) Lookup(id uuid.UUID) (*entity.ReferenceUnit, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.units[id]
	return u, ok
}

// All returns the units in load order. Callers must not mutate them.
func (s *Store) All() []*entity.ReferenceUnit {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ordered
}

func (s *Store) Ready() bool {
	return s.Count() > 0
}

func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ordered)
}
