// Package segment owns one memstore segment: the write buffer a region of
// the engine accumulates into before flushing. It wires the ordered
// overwrite set to its comparator and shared prefix filter, serves the
// filter-first read path, and on rotation hands the accumulated entries to
// the flush pipeline as an immutable snapshot.
package segment

import (
	"fmt"
	"iter"
	"sync"

	"github.com/Priyanshu23/MemstoreGo/memstore"
	"go.uber.org/zap"
)

// FlushSink receives the entries of a rotated segment in ascending order.
// The durable flush pipeline implements it; this package only drives it.
type FlushSink[E any] interface {
	Append(e E) error
}

// Segment is safe for concurrent use. Writers and readers proceed through
// the underlying set's own concurrency guarantees; the segment lock only
// serializes rotation against in-flight operations.
type Segment[E any] struct {
	name   string
	cmp    memstore.CompareFunc[E]
	filter memstore.PrefixFilter[E]
	logger *zap.Logger

	mu    sync.RWMutex
	store *memstore.Set[E]
}

// New opens an empty segment. filter may be nil, in which case the prefix
// fast path is disabled and Has always does the exact lookup. logger may be
// nil.
func New[E any](name string, cmp memstore.CompareFunc[E], filter memstore.PrefixFilter[E], logger *zap.Logger) *Segment[E] {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Segment[E]{
		name:   name,
		cmp:    cmp,
		filter: filter,
		logger: logger,
		store:  newStore(cmp, filter),
	}
	logger.Info("segment opened", zap.String("segment", name))
	return s
}

func newStore[E any](cmp memstore.CompareFunc[E], filter memstore.PrefixFilter[E]) *memstore.Set[E] {
	if filter != nil {
		return memstore.NewWithFilter(cmp, filter)
	}
	return memstore.New(cmp)
}

// Put upserts e and reports whether it was the first entry for its key.
func (s *Segment[E]) Put(e E) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store.Insert(e)
}

// Delete removes the entry for e's key, if present.
func (s *Segment[E]) Delete(e E) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store.Remove(e)
}

// Get returns the stored entry for e's key.
func (s *Segment[E]) Get(e E) (E, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store.Get(e)
}

// Has runs the advisory prefix probe before the exact lookup: a filter miss
// proves absence without touching the ordered relation, a filter hit may
// still be a false positive and is confirmed with Contains. Because insert
// records the filter before the upsert becomes visible, a hit for a key the
// lookup then misses is a normal ordering, not a fault.
func (s *Segment[E]) Has(e E) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.filter != nil {
		if ok, err := s.store.ContainsPrefix(e); err == nil && !ok {
			return false
		}
	}
	return s.store.Contains(e)
}

// Scan yields the segment's entries in ascending order, weakly consistent
// with concurrent writes.
func (s *Segment[E]) Scan() iter.Seq[E] {
	s.mu.RLock()
	store := s.store
	s.mu.RUnlock()
	return store.All()
}

func (s *Segment[E]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store.Len()
}

// Rotate retires the accumulated entries as an immutable snapshot and
// resets the segment to a fresh empty store. The shared filter carries
// over: it is monotonic for its own lifetime, so prefixes recorded before
// the rotation still answer true.
func (s *Segment[E]) Rotate() *memstore.Snapshot[E] {
	s.mu.Lock()
	old := s.store
	s.store = newStore(s.cmp, s.filter)
	snap := old.Snapshot()
	s.mu.Unlock()
	s.logger.Info("segment rotated",
		zap.String("segment", s.name),
		zap.Int("entries", snap.Len()))
	return snap
}

// Flush rotates the segment and streams the snapshot into sink in ascending
// order. It returns the number of entries delivered; on a sink error the
// snapshot is abandoned mid-stream and the count covers what was delivered.
func (s *Segment[E]) Flush(sink FlushSink[E]) (int, error) {
	snap := s.Rotate()
	n := 0
	for e := range snap.All() {
		if err := sink.Append(e); err != nil {
			return n, fmt.Errorf("failed to flush segment %s: %w", s.name, err)
		}
		n++
	}
	s.logger.Info("segment flushed",
		zap.String("segment", s.name),
		zap.Int("entries", n))
	return n, nil
}
