package cart

import (
	"context"
	"log/slog"
	"sync"

	"storefront/internal/domain/repository"
)

// Listener observes every committed transition.
type Listener func(action Action, state State)

// Store is the only writer of the cart. All changes go through Dispatch,
// which reduces, persists the derived count, then notifies listeners.
type Store struct {
	mu        sync.RWMutex
	state     State
	counts    repository.CartCountStore
	logger    *slog.Logger
	listeners map[int]Listener
	nextID    int
}

// NewStore creates a store seeded with the persisted count as a placeholder.
func NewStore(ctx context.Context, counts repository.CartCountStore, logger *slog.Logger) *Store {
	return &Store{
		state:     InitialState(counts.LoadCount(ctx)),
		counts:    counts,
		logger:    logger,
		listeners: make(map[int]Listener),
	}
}

// Dispatch applies an action and returns the new state. The count is written
// to the persistence shim in the same critical section as the transition so
// the persisted value always follows state order.
func (s *Store) Dispatch(ctx context.Context, action Action) State {
	s.mu.Lock()
	next := Reduce(s.state, action)
	s.state = next
	s.counts.SaveCount(ctx, next.Count)
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	s.logger.Debug("Cart action applied",
		slog.String("action", ActionName(action)),
		slog.Int("count", next.Count),
	)

	snapshot := next.Clone()
	for _, l := range listeners {
		l(action, snapshot)
	}

	return snapshot
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.Clone()
}

// Subscribe registers a listener and returns a function that removes it.
func (s *Store) Subscribe(l Listener) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}
