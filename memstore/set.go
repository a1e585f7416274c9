package memstore

import "github.com/tidwall/btree"

const treeDegree = 32

// Set is a concurrent ordered overwrite set backed by a thread-safe B-tree.
// The zero value is not usable; construct with New or NewWithFilter.
//
// A Set returned by Head, Tail, HeadView or TailView is a live bounded view
// over the same backing tree: mutations through the view are visible
// through the parent and vice versa.
type Set[E any] struct {
	cmp      CompareFunc[E]
	tree     *btree.BTreeG[E]
	filter   PrefixFilter[E]
	filtered bool

	// view bounds; nil means unbounded on that side
	lo, hi *bound[E]
}

type bound[E any] struct {
	key       E
	inclusive bool
}

func newTree[E any](cmp CompareFunc[E], noLocks bool) *btree.BTreeG[E] {
	return btree.NewBTreeGOptions(func(a, b E) bool {
		return cmp(a, b) < 0
	}, btree.Options{
		Degree:  treeDegree,
		NoLocks: noLocks,
	})
}

// New returns an empty set ordered by cmp, with no prefix filter.
// ContainsPrefix on such a set fails with ErrNoFilter.
func New[E any](cmp CompareFunc[E]) *Set[E] {
	return &Set[E]{
		cmp:  cmp,
		tree: newTree(cmp, false),
	}
}

// NewWithFilter returns an empty set ordered by cmp whose inserts record
// into filter. The filter is an unconditional dependency of such a set:
// passing nil makes every Insert fail with ErrNoFilter.
func NewWithFilter[E any](cmp CompareFunc[E], filter PrefixFilter[E]) *Set[E] {
	s := New(cmp)
	s.filter = filter
	s.filtered = true
	return s
}

// Insert upserts e by its comparator key. It reports true if no prior entry
// existed for the key, false if an existing entry was overwritten.
//
// When a filter is configured, e is recorded into it first, on every call,
// overwrites included. The filter-record and the tree upsert are not atomic
// as a pair: if the upsert fails (a view-bound violation) the filter may
// already have grown. The filter is advisory, never authoritative, so
// consumers must tolerate a filter hit for a key whose upsert has not
// become visible.
func (s *Set[E]) Insert(e E) (bool, error) {
	if s.filtered {
		if s.filter == nil {
			return false, ErrNoFilter
		}
		s.filter.Record(e)
	}
	if !s.inRange(e) {
		return false, ErrKeyOutOfRange
	}
	_, replaced := s.tree.Set(e)
	return !replaced, nil
}

// Get returns the stored entry for e's comparator key, which is always the
// most recently inserted entry sharing that key.
func (s *Set[E]) Get(e E) (E, bool) {
	if !s.inRange(e) {
		var zero E
		return zero, false
	}
	return s.tree.Get(e)
}

// Contains performs an exact ordered lookup. It does not consult the
// filter; use ContainsPrefix for the approximate fast path.
func (s *Set[E]) Contains(e E) bool {
	_, ok := s.Get(e)
	return ok
}

// ContainsPrefix asks the configured filter whether e's prefix could be
// present. False positives are possible; false negatives are not.
func (s *Set[E]) ContainsPrefix(e E) (bool, error) {
	if s.filter == nil {
		return false, ErrNoFilter
	}
	return s.filter.MayContainPrefix(e), nil
}

// Remove deletes the entry stored under e's comparator key and reports
// whether one was present. The filter is untouched: it only ever grows.
func (s *Set[E]) Remove(e E) bool {
	if !s.inRange(e) {
		return false
	}
	_, ok := s.tree.Delete(e)
	return ok
}

// First returns the least entry, or ErrEmpty.
func (s *Set[E]) First() (E, error) {
	if !s.bounded() {
		if e, ok := s.tree.Min(); ok {
			return e, nil
		}
		var zero E
		return zero, ErrEmpty
	}
	it := s.Iterator()
	if it.Next() {
		return it.Entry(), nil
	}
	var zero E
	return zero, ErrEmpty
}

// Last returns the greatest entry, or ErrEmpty.
func (s *Set[E]) Last() (E, error) {
	if !s.bounded() {
		if e, ok := s.tree.Max(); ok {
			return e, nil
		}
		var zero E
		return zero, ErrEmpty
	}
	it := s.ReverseIterator()
	if it.Next() {
		return it.Entry(), nil
	}
	var zero E
	return zero, ErrEmpty
}

// Len reports the number of distinct comparator keys present. Overwrites
// never grow it. For bounded views this walks the window.
func (s *Set[E]) Len() int {
	if !s.bounded() {
		return s.tree.Len()
	}
	n := 0
	for range s.All() {
		n++
	}
	return n
}

func (s *Set[E]) Empty() bool {
	if !s.bounded() {
		return s.tree.Len() == 0
	}
	return !s.Iterator().Next()
}

// Clear removes every entry visible through this set or view. The filter is
// untouched.
func (s *Set[E]) Clear() {
	if !s.bounded() {
		s.tree.Clear()
		return
	}
	for e := range s.All() {
		s.tree.Delete(e)
	}
}

func (s *Set[E]) bounded() bool { return s.lo != nil || s.hi != nil }

func (s *Set[E]) inRange(e E) bool {
	if s.lo != nil {
		c := s.cmp(e, s.lo.key)
		if c < 0 || (c == 0 && !s.lo.inclusive) {
			return false
		}
	}
	if s.hi != nil {
		c := s.cmp(e, s.hi.key)
		if c > 0 || (c == 0 && !s.hi.inclusive) {
			return false
		}
	}
	return true
}
