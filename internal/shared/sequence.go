package shared

import "sync/atomic"

// Sequence hands out monotonically increasing record identifiers. Wall-clock
// derived IDs can collide under rapid creation; a counter seeded past the
// seed data cannot.
type Sequence struct {
	n atomic.Int64
}

// NewSequence returns a Sequence whose next value is start+1.
func NewSequence(start int64) *Sequence {
	s := &Sequence{}
	s.n.Store(start)
	return s
}

// Next returns the next identifier.
func (s *Sequence) Next() int64 {
	return s.n.Add(1)
}
