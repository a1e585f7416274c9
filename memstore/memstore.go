// Package memstore provides the in-memory write buffer of an LSM-style
// storage engine: a concurrent, ordered, unique-by-key collection of
// entries. It behaves like an ordered set in all but one regard: inserting
// an entry whose key already exists overwrites the stored entry instead of
// rejecting it. Each key encodes a versioned record whose payload can be
// superseded before it is flushed, so last writer wins.
//
// Ordering is delegated entirely to an externally supplied comparator; two
// entries equal under the comparator are the same key regardless of payload
// bytes. Readers (scans, bounded views, snapshots) never observe a
// structural-modification failure while writers insert or remove
// concurrently.
package memstore

import "iter"

// CompareFunc is a total order over entries. It must be consistent and
// stable for the lifetime of the set it is given to. Negative means a < b,
// zero means same key, positive means a > b.
type CompareFunc[E any] func(a, b E) int

// PrefixFilter is the approximate membership capability consulted before
// exact lookups. Record is invoked on every insert, including overwrites.
// MayContainPrefix may return false positives but must never return a false
// negative for a previously recorded entry's prefix. The filter is shared
// by reference with the owning segment; this package borrows it, it does
// not own it.
type PrefixFilter[E any] interface {
	Record(e E)
	MayContainPrefix(e E) bool
}

// SortedStore is the operation surface the surrounding engine relies on.
// Operations intentionally absent from it live on the separate Unsupported
// interface and always fail.
type SortedStore[E any] interface {
	Insert(e E) (added bool, err error)
	Get(e E) (E, bool)
	Contains(e E) bool
	ContainsPrefix(e E) (bool, error)
	Remove(e E) bool
	First() (E, error)
	Last() (E, error)
	Iterator() *Iterator[E]
	ReverseIterator() *Iterator[E]
	All() iter.Seq[E]
	Backward() iter.Seq[E]
	Head(boundary E) (*Set[E], error)
	Tail(boundary E) (*Set[E], error)
	HeadView(boundary E, inclusive bool) (*Set[E], error)
	TailView(boundary E, inclusive bool) (*Set[E], error)
	Snapshot() *Snapshot[E]
	Len() int
	Empty() bool
	Clear()
}

var (
	_ SortedStore[int] = (*Set[int])(nil)
	_ Unsupported[int] = (*Set[int])(nil)
)
