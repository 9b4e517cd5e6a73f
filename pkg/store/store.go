package store

import (
	"sync"

	"github.com/google/uuid"
)

// Reducer computes the next state from the current state and an action. It
// must be pure: no side effects, no mutation of the current state.
type Reducer[S, A any] func(state S, action A) S

// Listener observes every state produced by a dispatch.
type Listener[S any] func(state S)

// Store holds application state that changes only through dispatched actions
// run through a single reducer. All methods are safe for concurrent use.
type Store[S, A any] struct {
	mu        sync.RWMutex
	reduce    Reducer[S, A]
	state     S
	listeners map[uuid.UUID]Listener[S]
}

// New creates a store with the given reducer and initial state. A nil
// reducer panics: the store is unusable without one.
func New[S, A any](reduce Reducer[S, A], initial S) *Store[S, A] {
	if reduce == nil {
		panic("store: reducer must not be nil")
	}
	return &Store[S, A]{
		reduce:    reduce,
		state:     initial,
		listeners: make(map[uuid.UUID]Listener[S]),
	}
}

// State returns the current state.
func (s *Store[S, A]) State() S {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch runs the action through the reducer and notifies subscribers with
// the new state. Notification happens outside the store's lock, so listeners
// may call back into the store.
func (s *Store[S, A]) Dispatch(action A) {
	s.mu.Lock()
	s.state = s.reduce(s.state, action)
	state := s.state
	listeners := make([]Listener[S], 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	for _, l := range listeners {
		l(state)
	}
}

// Subscribe registers a listener for future state changes and returns an
// unsubscribe function. Unsubscribing twice is harmless.
func (s *Store[S, A]) Subscribe(listener Listener[S]) (unsubscribe func()) {
	if listener == nil {
		return func() {}
	}

	id := uuid.New()
	s.mu.Lock()
	s.listeners[id] = listener
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}
