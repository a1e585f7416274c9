package segment

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Priyanshu23/MemstoreGo/bloomfilter"
	"github.com/Priyanshu23/MemstoreGo/memstore"
)

type kv struct {
	row string
	seq int
	val string
}

func byRowSeq(a, b kv) int {
	if c := strings.Compare(a.row, b.row); c != 0 {
		return c
	}
	return b.seq - a.seq
}

// deterministic filter stub so the fast-negative path can be asserted
// without bloom false-positive odds
type exactFilter struct {
	rows map[string]bool
}

func (f *exactFilter) Record(e kv)                { f.rows[e.row] = true }
func (f *exactFilter) MayContainPrefix(e kv) bool { return f.rows[e.row] }

func newSegment(t *testing.T, filter memstore.PrefixFilter[kv]) *Segment[kv] {
	t.Helper()
	return New("seg-001", byRowSeq, filter, zap.NewNop())
}

func TestPutGetOverwrite(t *testing.T) {
	s := newSegment(t, nil)

	added, err := s.Put(kv{"a", 1, "v1"})
	require.NoError(t, err)
	assert.True(t, added)

	added, err = s.Put(kv{"a", 1, "v2"})
	require.NoError(t, err)
	assert.False(t, added, "same key should overwrite, not add")

	got, ok := s.Get(kv{row: "a", seq: 1})
	require.True(t, ok)
	assert.Equal(t, "v2", got.val)
	assert.Equal(t, 1, s.Len())
}

func TestHasShortCircuitsOnFilterMiss(t *testing.T) {
	f := &exactFilter{rows: map[string]bool{}}
	s := newSegment(t, f)

	_, err := s.Put(kv{"present", 1, "v"})
	require.NoError(t, err)

	assert.True(t, s.Has(kv{row: "present", seq: 1}))
	assert.False(t, s.Has(kv{row: "absent", seq: 1}),
		"filter miss should prove absence without a lookup")

	// a filter hit alone is not membership: confirmed by exact lookup
	f.rows["ghost"] = true
	assert.False(t, s.Has(kv{row: "ghost", seq: 1}))
}

func TestScanOrdered(t *testing.T) {
	s := newSegment(t, nil)

	for _, r := range []string{"c", "a", "b"} {
		_, err := s.Put(kv{row: r, seq: 1, val: r})
		require.NoError(t, err)
	}

	var rows []string
	for e := range s.Scan() {
		rows = append(rows, e.row)
	}
	assert.Equal(t, []string{"a", "b", "c"}, rows)
}

func TestRotate(t *testing.T) {
	f := bloomfilter.New(1000, 0.01, func(e kv) []byte { return []byte(e.row) })
	s := newSegment(t, f)

	for i := 0; i < 10; i++ {
		_, err := s.Put(kv{row: string(rune('a' + i)), seq: 1, val: "v"})
		require.NoError(t, err)
	}

	snap := s.Rotate()
	assert.Equal(t, 10, snap.Len())
	assert.Equal(t, 0, s.Len(), "rotation should leave a fresh store")

	// filter is shared and monotonic across rotation
	assert.False(t, s.Has(kv{row: "a", seq: 1}),
		"rotated entries are gone from the live store")
	assert.True(t, f.MayContainPrefix(kv{row: "a"}),
		"prefixes recorded before rotation still answer true")

	// new writes land in the fresh store only
	_, err := s.Put(kv{row: "zz", seq: 1, val: "v"})
	require.NoError(t, err)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 10, snap.Len())
}

type sliceSink struct {
	rows []string
	fail bool
}

func (ss *sliceSink) Append(e kv) error {
	if ss.fail {
		return errors.New("disk full")
	}
	ss.rows = append(ss.rows, e.row)
	return nil
}

func TestFlushStreamsAscending(t *testing.T) {
	s := newSegment(t, nil)

	for _, r := range []string{"delta", "alpha", "charlie", "bravo"} {
		_, err := s.Put(kv{row: r, seq: 1, val: "v"})
		require.NoError(t, err)
	}

	sink := &sliceSink{}
	n, err := s.Flush(sink)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.True(t, slices.IsSorted(sink.rows), "flush must stream in ascending order")
	assert.Equal(t, 0, s.Len())
}

func TestFlushPropagatesSinkError(t *testing.T) {
	s := newSegment(t, nil)
	_, err := s.Put(kv{"a", 1, "v"})
	require.NoError(t, err)

	n, err := s.Flush(&sliceSink{fail: true})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "seg-001")
	assert.Equal(t, 0, n)
}
