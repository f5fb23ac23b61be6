package store

import (
	"fmt"
	"sync"

	"github.com/seantiz/roster/internal/model"
)

// Compile-time interface satisfaction check.
var _ Store = (*MemoryStore)(nil)

// MemoryStore implements Store in process memory. A single lock covers the
// whole mapping so that mutations and Reset are indivisible.
type MemoryStore struct {
	mu     sync.RWMutex
	seed   model.Catalog
	order  []string
	byName map[string]*entry
}

// entry is the mutable record for one activity. members mirrors
// activity.Participants for constant-time membership checks.
type entry struct {
	activity model.Activity
	members  map[string]struct{}
}

// NewMemoryStore validates seed and returns a store holding a private copy of
// it. The same copy is restored by Reset.
func NewMemoryStore(seed model.Catalog) (*MemoryStore, error) {
	seen := make(map[string]struct{}, len(seed))
	for _, a := range seed {
		if err := a.Validate(); err != nil {
			return nil, fmt.Errorf("seed: %w", err)
		}
		if _, dup := seen[a.Name]; dup {
			return nil, fmt.Errorf("seed: %w: %q", ErrDuplicateActivity, a.Name)
		}
		seen[a.Name] = struct{}{}
	}

	s := &MemoryStore{seed: seed.Clone()}
	s.load()
	return s, nil
}

// load rebuilds the mapping from the seed. Callers must hold the write lock
// or have exclusive access.
func (s *MemoryStore) load() {
	order := make([]string, 0, len(s.seed))
	byName := make(map[string]*entry, len(s.seed))
	for _, a := range s.seed {
		e := &entry{
			activity: a.Clone(),
			members:  make(map[string]struct{}, a.MaxParticipants),
		}
		for _, p := range a.Participants {
			e.members[p] = struct{}{}
		}
		order = append(order, a.Name)
		byName[a.Name] = e
	}
	s.order = order
	s.byName = byName
}

// ListActivities returns a snapshot of every activity in seed order.
func (s *MemoryStore) ListActivities() model.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(model.Catalog, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.byName[name].activity.Clone())
	}
	return out
}

// GetActivity returns a snapshot of the named activity.
func (s *MemoryStore) GetActivity(name string) (model.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.byName[name]
	if !ok {
		return model.Activity{}, ErrActivityNotFound
	}
	return e.activity.Clone(), nil
}

// AddParticipant enrolls email in the named activity. The duplicate and
// capacity checks run under the same lock as the insert.
func (s *MemoryStore) AddParticipant(name, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.byName[name]
	if !ok {
		return ErrActivityNotFound
	}
	if _, ok := e.members[email]; ok {
		return ErrAlreadyEnrolled
	}
	if len(e.activity.Participants) >= e.activity.MaxParticipants {
		return ErrCapacityExceeded
	}

	e.members[email] = struct{}{}
	e.activity.Participants = append(e.activity.Participants, email)
	return nil
}

// RemoveParticipant withdraws email from the named activity, keeping the
// order of the remaining participants.
func (s *MemoryStore) RemoveParticipant(name, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.byName[name]
	if !ok {
		return ErrActivityNotFound
	}
	if _, ok := e.members[email]; !ok {
		return ErrNotEnrolled
	}

	delete(e.members, email)
	participants := e.activity.Participants[:0]
	for _, p := range e.activity.Participants {
		if p != email {
			participants = append(participants, p)
		}
	}
	e.activity.Participants = participants
	return nil
}

// Stats returns enrollment counts for every activity in seed order.
func (s *MemoryStore) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := Stats{
		Activities: len(s.order),
		ByActivity: make([]ActivityStats, 0, len(s.order)),
	}
	for _, name := range s.order {
		a := s.byName[name].activity
		n := len(a.Participants)
		st.TotalParticipants += n
		st.TotalCapacity += a.MaxParticipants
		if n >= a.MaxParticipants {
			st.FullActivities++
		}
		st.ByActivity = append(st.ByActivity, ActivityStats{
			Name:            name,
			Participants:    n,
			MaxParticipants: a.MaxParticipants,
			SpotsLeft:       a.MaxParticipants - n,
		})
	}
	return st
}

// Reset discards all mutations and restores the seed catalog.
func (s *MemoryStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load()
}
