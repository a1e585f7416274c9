package memstore

import (
	"iter"

	"github.com/tidwall/btree"
)

// Iterator is a stepwise cursor over the entries visible through a set or
// view. It traverses a copy-on-write snapshot of the backing tree taken at
// creation, so it never fails when writers mutate the set mid-traversal and
// it holds no lock between calls. Elements already visited always reflect
// the state at creation; mutations after creation are not observed.
// Restart by asking the set for a fresh iterator.
type Iterator[E any] struct {
	src     *Set[E]
	snap    *btree.BTreeG[E]
	desc    bool
	started bool
	cur     E
	ok      bool
}

// Iterator returns an ascending cursor positioned before the first entry.
func (s *Set[E]) Iterator() *Iterator[E] {
	return &Iterator[E]{src: s, snap: s.tree.Copy()}
}

// ReverseIterator returns a descending cursor positioned before the last
// entry.
func (s *Set[E]) ReverseIterator() *Iterator[E] {
	return &Iterator[E]{src: s, snap: s.tree.Copy(), desc: true}
}

// Next advances to the next entry and reports whether one exists.
func (it *Iterator[E]) Next() bool {
	var candidate E
	found := false
	cmp := it.src.cmp
	take := func(e E) bool {
		candidate = e
		found = true
		return false
	}
	skipAnchor := func(e E) bool {
		// the anchor itself comes back first when re-seeking from it
		if cmp(e, it.cur) == 0 {
			return true
		}
		return take(e)
	}

	if it.desc {
		switch {
		case it.started:
			it.snap.Descend(it.cur, skipAnchor)
		case it.src.hi != nil:
			hi := it.src.hi
			it.snap.Descend(hi.key, func(e E) bool {
				if !hi.inclusive && cmp(e, hi.key) == 0 {
					return true
				}
				return take(e)
			})
		default:
			it.snap.Reverse(take)
		}
		if found && it.src.lo != nil {
			c := cmp(candidate, it.src.lo.key)
			if c < 0 || (c == 0 && !it.src.lo.inclusive) {
				found = false
			}
		}
	} else {
		switch {
		case it.started:
			it.snap.Ascend(it.cur, skipAnchor)
		case it.src.lo != nil:
			lo := it.src.lo
			it.snap.Ascend(lo.key, func(e E) bool {
				if !lo.inclusive && cmp(e, lo.key) == 0 {
					return true
				}
				return take(e)
			})
		default:
			it.snap.Scan(take)
		}
		if found && it.src.hi != nil {
			c := cmp(candidate, it.src.hi.key)
			if c > 0 || (c == 0 && !it.src.hi.inclusive) {
				found = false
			}
		}
	}

	if !found {
		it.ok = false
		return false
	}
	it.cur = candidate
	it.ok = true
	it.started = true
	return true
}

// Entry returns the entry Next advanced to. Only valid after Next reported
// true.
func (it *Iterator[E]) Entry() E { return it.cur }

// Remove deletes the current entry from the live backing relation, not just
// from this cursor's snapshot. It reports whether the entry was still
// present.
func (it *Iterator[E]) Remove() bool {
	if !it.ok {
		return false
	}
	_, removed := it.src.tree.Delete(it.cur)
	return removed
}

// All yields the visible entries in ascending order.
func (s *Set[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		it := s.Iterator()
		for it.Next() {
			if !yield(it.Entry()) {
				return
			}
		}
	}
}

// Backward yields the visible entries in descending order.
func (s *Set[E]) Backward() iter.Seq[E] {
	return func(yield func(E) bool) {
		it := s.ReverseIterator()
		for it.Next() {
			if !yield(it.Entry()) {
				return
			}
		}
	}
}
