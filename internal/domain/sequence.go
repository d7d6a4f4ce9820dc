package domain

// Sequence issues monotonically increasing int64 identifiers starting at 1.
// Each entity type that needs process-unique ids (members, orders) owns its
// own Sequence, and the value is persisted alongside the store snapshot so
// ids are never reused across restarts either.
type Sequence struct {
	next int64
}

// NewSequence returns a sequence whose first issued id is 1.
func NewSequence() *Sequence {
	return &Sequence{next: 1}
}

// Next issues the next identifier.
func (s *Sequence) Next() int64 {
	id := s.next
	s.next++
	return id
}

// Current returns the next identifier that would be issued, without
// consuming it. This is the value captured by persistence.
func (s *Sequence) Current() int64 {
	return s.next
}

// Restore resets the sequence so the next issued id is next. Used when
// loading a saved store.
func (s *Sequence) Restore(next int64) {
	if next < 1 {
		next = 1
	}
	s.next = next
}
