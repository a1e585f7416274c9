// Package bloomfilter provides a bloom-filter-backed prefix membership
// filter for the memstore: a cheap "could this row prefix possibly be
// present" probe consulted before an exact ordered lookup. False positives
// are possible; false negatives for a recorded prefix are not. The filter
// only ever grows — removing an entry from the store never shrinks it.
package bloomfilter

import (
	"sync"

	"github.com/Priyanshu23/MemstoreGo/memstore"
	"github.com/bits-and-blooms/bloom/v3"
)

// PrefixFunc derives the filtered prefix bytes from an entry, typically the
// row identifier of a versioned record.
type PrefixFunc[E any] func(e E) []byte

// Filter implements memstore.PrefixFilter over a bloom filter. Safe for
// concurrent Record and MayContainPrefix.
type Filter[E any] struct {
	prefix PrefixFunc[E]

	mu   sync.RWMutex
	bits *bloom.BloomFilter
}

// New sizes the bloom filter for expectedPrefixes distinct prefixes at the
// given false positive rate.
func New[E any](expectedPrefixes uint, falsePositiveRate float64, prefix PrefixFunc[E]) *Filter[E] {
	return &Filter[E]{
		prefix: prefix,
		bits:   bloom.NewWithEstimates(expectedPrefixes, falsePositiveRate),
	}
}

func (f *Filter[E]) Record(e E) {
	p := f.prefix(e)
	f.mu.Lock()
	f.bits.Add(p)
	f.mu.Unlock()
}

func (f *Filter[E]) MayContainPrefix(e E) bool {
	p := f.prefix(e)
	f.mu.RLock()
	ok := f.bits.Test(p)
	f.mu.RUnlock()
	return ok
}

var _ memstore.PrefixFilter[[]byte] = (*Filter[[]byte])(nil)
