// Package memory is an in-process automata.Store. It is meant for tests and
// for running the server without a database.
package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/meikuraledutech/automata"
)

// Store implements automata.Store with a mutex-guarded map. Stored DFAs are
// shared, not copied; callers must not mutate what they get back.
type Store struct {
	mu          sync.RWMutex
	conversions map[string]*automata.Conversion
}

var _ automata.Store = (*Store)(nil)

// New creates an empty Store.
func New() *Store {
	return &Store{conversions: make(map[string]*automata.Conversion)}
}

// CreateSchema is a no-op.
func (s *Store) CreateSchema(context.Context) error {
	return nil
}

// DropSchema discards every stored conversion.
func (s *Store) DropSchema(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.conversions)
	return nil
}

// SaveConversion stores c, replacing any conversion with the same ID. An
// empty ID gets an auto-generated UUID.
func (s *Store) SaveConversion(_ context.Context, c *automata.Conversion) (string, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	cp := *c

	s.mu.Lock()
	defer s.mu.Unlock()
	s.conversions[c.ID] = &cp
	return c.ID, nil
}

// GetConversion returns nil, nil if not found.
func (s *Store) GetConversion(_ context.Context, id string) (*automata.Conversion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.conversions[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

// ListConversions returns every conversion, oldest first, without DFAs.
func (s *Store) ListConversions(context.Context) ([]automata.Conversion, error) {
	s.mu.RLock()
	out := make([]automata.Conversion, 0, len(s.conversions))
	for _, c := range s.conversions {
		out = append(out, automata.Conversion{
			ID:        c.ID,
			Name:      c.Name,
			NFA:       c.NFA,
			CreatedAt: c.CreatedAt,
		})
	}
	s.mu.RUnlock()

	slices.SortFunc(out, func(a, b automata.Conversion) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		if a.ID < b.ID {
			return -1
		}
		if a.ID > b.ID {
			return 1
		}
		return 0
	})
	return out, nil
}

// DeleteConversion is a no-op for unknown IDs.
func (s *Store) DeleteConversion(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.conversions, id)
	return nil
}

// ListStates returns an empty slice for unknown IDs.
func (s *Store) ListStates(_ context.Context, id string) ([]automata.State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.conversions[id]
	if !ok {
		return []automata.State{}, nil
	}
	return c.DFA.StateList(), nil
}

// ListTransitions returns an empty slice for unknown IDs.
func (s *Store) ListTransitions(_ context.Context, id string) ([]automata.Edge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.conversions[id]
	if !ok {
		return []automata.Edge{}, nil
	}
	edges := c.DFA.Edges()
	if edges == nil {
		edges = []automata.Edge{}
	}
	return edges, nil
}
