package signals

import "sync"

// Signal[T] is a reactive value that notifies subscribers when it changes.
// No build tags, so it is testable outside WASM.
type Signal[T comparable] struct {
	mu     sync.RWMutex
	value  T
	nextID int
	subs   map[int]func(T)
}

// NewSignal creates a Signal with an initial value.
func NewSignal[T comparable](initial T) *Signal[T] {
	return &Signal[T]{value: initial, subs: make(map[int]func(T))}
}

// Get returns the current value.
func (s *Signal[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set stores v and notifies subscribers. Storing the value already held is a
// no-op and notifies nobody. Set reports whether the value changed.
func (s *Signal[T]) Set(v T) bool {
	s.mu.Lock()
	if s.value == v {
		s.mu.Unlock()
		return false
	}
	s.value = v
	subs := make([]func(T), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	// Callbacks run outside the lock so they may read the signal.
	for _, fn := range subs {
		fn(v)
	}
	return true
}

// Subscribe registers a callback fired with the new value when it changes.
// Returns an unsubscribe func; call it in OnDestroy to avoid leaks.
// Unsubscribing twice is harmless.
func (s *Signal[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// Subscribers returns how many callbacks are registered.
func (s *Signal[T]) Subscribers() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subs)
}
