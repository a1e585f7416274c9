package memstore

// Bounded views. A view is the same Set type holding a reference to the
// parent's backing tree plus boundary predicates, never a copy. Views of
// views compose their bounds. The inclusivity defaults are asymmetric on
// purpose: Head excludes its boundary, Tail includes it.

// Head returns a live view of the entries strictly less than boundary.
func (s *Set[E]) Head(boundary E) (*Set[E], error) {
	return s.HeadView(boundary, false)
}

// Tail returns a live view of the entries greater than or equal to
// boundary.
func (s *Set[E]) Tail(boundary E) (*Set[E], error) {
	return s.TailView(boundary, true)
}

// HeadView returns a live view of the entries below boundary, including the
// boundary key itself when inclusive is true. ErrKeyOutOfRange if boundary
// falls outside this view's own bounds.
func (s *Set[E]) HeadView(boundary E, inclusive bool) (*Set[E], error) {
	if !s.boundaryOK(boundary) {
		return nil, ErrKeyOutOfRange
	}
	hi := &bound[E]{key: boundary, inclusive: inclusive}
	// never widen an edge the parent already excludes
	if s.hi != nil && s.cmp(boundary, s.hi.key) == 0 && !s.hi.inclusive {
		hi.inclusive = false
	}
	v := *s
	v.hi = hi
	return &v, nil
}

// TailView returns a live view of the entries above boundary, including the
// boundary key itself when inclusive is true. ErrKeyOutOfRange if boundary
// falls outside this view's own bounds.
func (s *Set[E]) TailView(boundary E, inclusive bool) (*Set[E], error) {
	if !s.boundaryOK(boundary) {
		return nil, ErrKeyOutOfRange
	}
	lo := &bound[E]{key: boundary, inclusive: inclusive}
	if s.lo != nil && s.cmp(boundary, s.lo.key) == 0 && !s.lo.inclusive {
		lo.inclusive = false
	}
	v := *s
	v.lo = lo
	return &v, nil
}

func (s *Set[E]) boundaryOK(boundary E) bool {
	if s.lo != nil && s.cmp(boundary, s.lo.key) < 0 {
		return false
	}
	if s.hi != nil && s.cmp(boundary, s.hi.key) > 0 {
		return false
	}
	return true
}
