package memstore

import (
	"iter"

	"github.com/tidwall/btree"
)

// Snapshot is an immutable ordered capture of a set, taken when a memstore
// segment rotates so the flush pipeline can persist its entries while new
// writes land in a fresh set. For an unbounded set the capture is an O(1)
// copy-on-write clone of the backing tree.
type Snapshot[E any] struct {
	cmp  CompareFunc[E]
	tree *btree.BTreeG[E]
}

// Snapshot captures the entries currently visible through s.
func (s *Set[E]) Snapshot() *Snapshot[E] {
	if !s.bounded() {
		return &Snapshot[E]{cmp: s.cmp, tree: s.tree.Copy()}
	}
	t := newTree(s.cmp, true)
	for e := range s.All() {
		t.Set(e)
	}
	return &Snapshot[E]{cmp: s.cmp, tree: t}
}

func (sn *Snapshot[E]) Len() int { return sn.tree.Len() }

func (sn *Snapshot[E]) First() (E, error) {
	if e, ok := sn.tree.Min(); ok {
		return e, nil
	}
	var zero E
	return zero, ErrEmpty
}

func (sn *Snapshot[E]) Last() (E, error) {
	if e, ok := sn.tree.Max(); ok {
		return e, nil
	}
	var zero E
	return zero, ErrEmpty
}

// All yields the captured entries in ascending order.
func (sn *Snapshot[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		sn.tree.Scan(yield)
	}
}

// Backward yields the captured entries in descending order.
func (sn *Snapshot[E]) Backward() iter.Seq[E] {
	return func(yield func(E) bool) {
		sn.tree.Reverse(yield)
	}
}
