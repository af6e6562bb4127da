// Package indexset provides a growable, ordered collection of body indices.
//
// A Set keeps insertion order and tolerates duplicates. Membership is a
// linear scan, which is the right trade for the handful of indices a frame
// ever holds. Clear keeps the backing array so per-frame scratch sets do not
// allocate once warmed up.
package indexset

type Set struct {
	items []int
}

func New(capacity int) *Set {
	if capacity < 0 {
		capacity = 0
	}
	return &Set{items: make([]int, 0, capacity)}
}

func (s *Set) Append(i int) { s.items = append(s.items, i) }

func (s *Set) Contains(i int) bool {
	for _, v := range s.items {
		if v == i {
			return true
		}
	}
	return false
}

// Clear empties the set without releasing its storage.
func (s *Set) Clear() { s.items = s.items[:0] }

func (s *Set) Len() int { return len(s.items) }

func (s *Set) Cap() int { return cap(s.items) }

func (s *Set) At(k int) int { return s.items[k] }

// Items returns a copy of the indices in insertion order.
func (s *Set) Items() []int {
	c := make([]int, len(s.items))
	copy(c, s.items)
	return c
}

// First returns the first index, in insertion order, accepted by pred.
func (s *Set) First(pred func(int) bool) (int, bool) {
	for _, v := range s.items {
		if pred(v) {
			return v, true
		}
	}
	return 0, false
}
