package core

// VisitedSet is an insertion-ordered set of cells.
//
// Membership is O(1) through the index map; Slice returns members in the
// order they were first added, which is the ExpandedNodes order reported by
// every traversal. The zero value is not usable; call NewVisitedSet.
type VisitedSet struct {
	index map[Cell]struct{}
	order []Cell
}

// NewVisitedSet returns an empty set with room for sizeHint cells.
func NewVisitedSet(sizeHint int) *VisitedSet {
	if sizeHint < 0 {
		sizeHint = 0
	}

	return &VisitedSet{
		index: make(map[Cell]struct{}, sizeHint),
		order: make([]Cell, 0, sizeHint),
	}
}

// Add inserts c and reports whether it was newly added.
func (s *VisitedSet) Add(c Cell) bool {
	if _, ok := s.index[c]; ok {
		return false
	}
	s.index[c] = struct{}{}
	s.order = append(s.order, c)

	return true
}

// Has reports whether c is a member.
func (s *VisitedSet) Has(c Cell) bool {
	_, ok := s.index[c]

	return ok
}

// Len returns the number of members.
func (s *VisitedSet) Len() int { return len(s.order) }

// Slice returns a copy of the members in insertion order.
func (s *VisitedSet) Slice() []Cell {
	out := make([]Cell, len(s.order))
	copy(out, s.order)

	return out
}
