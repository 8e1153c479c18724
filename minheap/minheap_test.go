package minheap_test

import (
	"errors"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/terrapath/minheap"
)

// keyTable is a Keys backed by a slice indexed by id.
type keyTable struct {
	k []uint64
}

func (t *keyTable) Key(id int) uint64       { return t.k[id] }
func (t *keyTable) SetKey(id int, k uint64) { t.k[id] = k }

// MinHeapSuite groups tests for the indexed min-heap.
type MinHeapSuite struct {
	suite.Suite
	keys *keyTable
	h    *minheap.Heap
}

func (s *MinHeapSuite) SetupTest() {
	s.keys = &keyTable{k: []uint64{50, 20, 70, 10, 40, 60, 30}}
	s.h = minheap.New(s.keys, len(s.keys.k))
}

func (s *MinHeapSuite) insertAll() {
	for id := range s.keys.k {
		s.h.Insert(id)
		require.NoError(s.T(), s.h.Verify())
	}
}

// TestEmpty: ExtractMin and PeekMin on an empty heap fail with ErrEmpty.
func (s *MinHeapSuite) TestEmpty() {
	require.True(s.T(), s.h.IsEmpty())
	require.Equal(s.T(), 0, s.h.Len())

	_, err := s.h.ExtractMin()
	require.ErrorIs(s.T(), err, minheap.ErrEmpty)
	_, err = s.h.PeekMin()
	require.ErrorIs(s.T(), err, minheap.ErrEmpty)
}

// TestInsertKeepsKey: Insert leaves each id's key at its original value.
func (s *MinHeapSuite) TestInsertKeepsKey() {
	want := append([]uint64(nil), s.keys.k...)
	s.insertAll()
	require.Equal(s.T(), want, s.keys.k)
	require.Equal(s.T(), len(want), s.h.Len())

	top, err := s.h.PeekMin()
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3, top, "id 3 has the smallest key")
	require.Equal(s.T(), 0, s.h.Position(top))
}

// TestExtractOrder: ExtractMin yields keys in non-decreasing order and
// clears the position of every extracted id.
func (s *MinHeapSuite) TestExtractOrder() {
	s.insertAll()

	var got []uint64
	for !s.h.IsEmpty() {
		id, err := s.h.ExtractMin()
		require.NoError(s.T(), err)
		require.False(s.T(), s.h.Contains(id))
		require.Equal(s.T(), -1, s.h.Position(id))
		require.NoError(s.T(), s.h.Verify())
		got = append(got, s.keys.k[id])
	}
	require.Equal(s.T(), []uint64{10, 20, 30, 40, 50, 60, 70}, got)
}

// TestDecreaseKeyToTop: lowering the largest key moves it to the root.
func (s *MinHeapSuite) TestDecreaseKeyToTop() {
	s.insertAll()

	s.h.DecreaseKey(2, 5)
	require.NoError(s.T(), s.h.Verify())
	require.Equal(s.T(), uint64(5), s.keys.k[2])

	top, err := s.h.ExtractMin()
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, top)
}

// TestDecreaseKeyEqual: an unchanged key is accepted and leaves the heap valid.
func (s *MinHeapSuite) TestDecreaseKeyEqual() {
	s.insertAll()
	require.NotPanics(s.T(), func() { s.h.DecreaseKey(4, 40) })
	require.NoError(s.T(), s.h.Verify())
}

// TestPreconditionPanics: misuse is a programming error.
func (s *MinHeapSuite) TestPreconditionPanics() {
	s.insertAll()

	requirePanicsWith(s.T(), minheap.ErrKeyIncrease, func() { s.h.DecreaseKey(3, 11) })
	requirePanicsWith(s.T(), minheap.ErrDuplicate, func() { s.h.Insert(0) })
	requirePanicsWith(s.T(), minheap.ErrBadID, func() { s.h.Insert(-1) })

	id, err := s.h.ExtractMin()
	require.NoError(s.T(), err)
	requirePanicsWith(s.T(), minheap.ErrNotPresent, func() { s.h.DecreaseKey(id, 0) })
	requirePanicsWith(s.T(), minheap.ErrNotPresent, func() { s.h.DecreaseKey(100, 0) })
}

// TestReinsertAfterExtract: an extracted id may be inserted again.
func (s *MinHeapSuite) TestReinsertAfterExtract() {
	s.insertAll()
	id, err := s.h.ExtractMin()
	require.NoError(s.T(), err)

	s.keys.k[id] = 1000
	s.h.Insert(id)
	require.True(s.T(), s.h.Contains(id))
	require.NoError(s.T(), s.h.Verify())
}

func TestMinHeapSuite(t *testing.T) {
	suite.Run(t, new(MinHeapSuite))
}

// TestGrowth inserts sparse ids beyond the capacity hint.
func TestGrowth(t *testing.T) {
	keys := &keyTable{k: make([]uint64, 64)}
	for i := range keys.k {
		keys.k[i] = uint64(64 - i)
	}
	h := minheap.New(keys, 0)
	for _, id := range []int{63, 1, 40, 7} {
		h.Insert(id)
	}
	require.Equal(t, 4, h.Len())
	require.NoError(t, h.Verify())

	top, err := h.ExtractMin()
	require.NoError(t, err)
	require.Equal(t, 63, top)
}

// TestRandomOperations drives the heap with a random mix of inserts,
// decrease-keys and extractions, checking both invariants after every step
// and comparing each extracted key with a sorted reference.
func TestRandomOperations(t *testing.T) {
	const n = 300
	rng := rand.New(rand.NewSource(7))
	keys := &keyTable{k: make([]uint64, n)}
	h := minheap.New(keys, n)

	inHeap := make(map[int]bool)
	nextID := 0
	lastExtracted := uint64(0)

	for step := 0; step < 5000; step++ {
		switch op := rng.Intn(3); {
		case op == 0 && nextID < n:
			keys.k[nextID] = lastExtracted + uint64(rng.Intn(1000))
			h.Insert(nextID)
			inHeap[nextID] = true
			nextID++
		case op == 1 && len(inHeap) > 0:
			id := anyKey(rng, inHeap)
			cur := keys.k[id]
			nk := lastExtracted + uint64(rng.Int63n(int64(cur-lastExtracted)+1))
			h.DecreaseKey(id, nk)
		case op == 2 && len(inHeap) > 0:
			want := minKey(keys, inHeap)
			id, err := h.ExtractMin()
			require.NoError(t, err)
			require.Equal(t, want, keys.k[id], "step %d", step)
			require.GreaterOrEqual(t, keys.k[id], lastExtracted, "extraction must be monotonic")
			lastExtracted = keys.k[id]
			delete(inHeap, id)
		}
		require.NoError(t, h.Verify(), "step %d", step)
		require.Equal(t, len(inHeap), h.Len())
	}
}

func anyKey(rng *rand.Rand, m map[int]bool) int {
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids[rng.Intn(len(ids))]
}

func minKey(keys *keyTable, m map[int]bool) uint64 {
	first := true
	var best uint64
	for id := range m {
		if first || keys.k[id] < best {
			best = keys.k[id]
			first = false
		}
	}
	return best
}

// requirePanicsWith asserts that fn panics with an error wrapping target.
func requirePanicsWith(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic with %v", target)
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.True(t, errors.Is(err, target), "panic %v does not wrap %v", err, target)
	}()
	fn()
}
