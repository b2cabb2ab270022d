// Package store is the single process-wide state container. All state
// changes go through Dispatch, which applies Reduce under a lock, so readers
// only ever see whole transitions.
package store

import (
	"context"
	"sync"

	"podash/pkg/utils"
)

// Listener is notified with the new state after every dispatch
type Listener func(State)

// Store holds the current State
type Store struct {
	// notify is held from reduce to the last listener call so listeners see
	// states in the order they were produced
	notify sync.Mutex

	mu        sync.Mutex
	state     State
	listeners map[int]Listener
	nextID    int
}

// New returns a store starting from initial
func New(initial State) *Store {
	return &Store{
		state:     initial,
		listeners: make(map[int]Listener),
	}
}

// State returns a snapshot of the current state
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch reduces a into the state and notifies listeners. Listeners must
// not dispatch themselves.
func (s *Store) Dispatch(a Action) State {
	s.notify.Lock()
	defer s.notify.Unlock()

	s.mu.Lock()
	s.state = Reduce(s.state, a)
	state := s.state
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	utils.Log("dispatch %s", a.Type())
	if msg, ok := Rejected(a); ok {
		utils.Logger.Warnw("action rejected", "type", a.Type(), "message", msg)
	}

	for _, l := range listeners {
		l(state)
	}
	return state
}

// Subscribe registers l and returns a function removing it
func (s *Store) Subscribe(l Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// Run dispatches the pending action of a, performs its request and
// dispatches the outcome, which is also returned.
func (s *Store) Run(ctx context.Context, a AsyncAction) Action {
	if a.Pending != nil {
		s.Dispatch(a.Pending)
	}
	result := a.Run(ctx)
	s.Dispatch(result)
	return result
}
