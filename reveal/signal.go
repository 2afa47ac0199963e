package reveal

import "sync"

// Size is a measured content box.
type Size struct {
	Width, Height float64
}

// Signal holds the latest sample of a value and notifies subscribers when it
// changes. There is no backlog: a subscriber only ever sees the newest value.
type Signal[T comparable] struct {
	mu    sync.Mutex
	value T
	subs  map[int]func(T)
	next  int
}

// NewSignal returns a Signal holding initial.
func NewSignal[T comparable](initial T) *Signal[T] {
	return &Signal[T]{value: initial, subs: make(map[int]func(T))}
}

// Get returns the latest sample.
func (s *Signal[T]) Get() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Set stores v and, if it differs from the previous sample, calls every
// subscriber with it. Callbacks run on the caller's goroutine outside the lock.
func (s *Signal[T]) Set(v T) {
	s.mu.Lock()
	if v == s.value {
		s.mu.Unlock()
		return
	}
	s.value = v
	subs := make([]func(T), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(v)
	}
}

// Subscribe registers fn and calls it once with the current sample. The
// returned func unregisters it.
func (s *Signal[T]) Subscribe(fn func(T)) (cancel func()) {
	s.mu.Lock()
	id := s.next
	s.next++
	s.subs[id] = fn
	v := s.value
	s.mu.Unlock()

	fn(v)
	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}
