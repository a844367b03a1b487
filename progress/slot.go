package progress

import "sync"

// Slot holds at most one published value of type T. It is safe for one
// writer and any number of concurrent readers, following the same
// per-field sync.RWMutex idiom the pipeline's upstream graph core uses
// to guard its own mutable state.
type Slot[T any] struct {
	mu        sync.RWMutex
	value     T
	published bool
}

// NewSlot returns an empty Slot.
func NewSlot[T any]() *Slot[T] {
	return &Slot[T]{}
}

// Publish sets the slot's value. Publish may be called more than once;
// later calls overwrite the value visible to subsequent Get calls.
func (s *Slot[T]) Publish(value T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.value = value
	s.published = true
}

// Get returns the slot's current value and whether anything has been
// published yet.
func (s *Slot[T]) Get() (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.value, s.published
}

// MustGet returns the slot's value, panicking if nothing has been
// published. It exists for call sites downstream of a step the caller
// has already confirmed has run to completion.
func (s *Slot[T]) MustGet() T {
	v, ok := s.Get()
	if !ok {
		panic("progress: Slot.MustGet called before Publish")
	}
	return v
}
