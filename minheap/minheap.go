package minheap

import (
	"fmt"
	"math"
)

// Keys owns the priority of every id the heap tracks.
// Key must be cheap; it is called O(log n) times per heap operation.
type Keys interface {
	Key(id int) uint64
	SetKey(id int, k uint64)
}

// absent marks an id with no slot in the heap.
const absent = -1

// Heap is a binary min-heap of ids ordered by Keys, with decrease-key.
// The zero value is not usable; construct with New.
type Heap struct {
	keys Keys
	data []int // slot → id
	pos  []int // id → slot, absent if not in the heap
}

// New returns an empty heap reading priorities from keys.
// capacity is a hint for the expected number of ids; the heap grows as needed.
func New(keys Keys, capacity int) *Heap {
	if capacity < 0 {
		capacity = 0
	}
	return &Heap{
		keys: keys,
		data: make([]int, 0, capacity),
		pos:  make([]int, 0, capacity),
	}
}

func parent(i int) int { return (i - 1) / 2 }
func left(i int) int   { return 2*i + 1 }
func right(i int) int  { return 2*i + 2 }

// Len returns the number of ids in the heap.
func (h *Heap) Len() int { return len(h.data) }

// IsEmpty reports whether the heap holds no ids.
func (h *Heap) IsEmpty() bool { return len(h.data) == 0 }

// Position returns the slot of id, or -1 if id is not in the heap.
func (h *Heap) Position(id int) int {
	if id < 0 || id >= len(h.pos) {
		return absent
	}
	return h.pos[id]
}

// Contains reports whether id is currently in the heap.
func (h *Heap) Contains(id int) bool {
	return h.Position(id) != absent
}

// Insert adds id with its current key. The key is first raised to +∞ and
// then lowered back with DecreaseKey, which bubbles the id into place.
// Panics if id is negative or already present.
func (h *Heap) Insert(id int) {
	if id < 0 {
		panic(fmt.Errorf("%w: %d", ErrBadID, id))
	}
	if h.Contains(id) {
		panic(fmt.Errorf("%w: %d", ErrDuplicate, id))
	}
	for len(h.pos) <= id {
		h.pos = append(h.pos, absent)
	}

	k := h.keys.Key(id)
	h.keys.SetKey(id, math.MaxUint64)
	h.data = append(h.data, id)
	h.pos[id] = len(h.data) - 1
	h.DecreaseKey(id, k)
}

// PeekMin returns the id with the smallest key without removing it.
func (h *Heap) PeekMin() (int, error) {
	if len(h.data) == 0 {
		return absent, ErrEmpty
	}
	return h.data[0], nil
}

// ExtractMin removes and returns the id with the smallest key.
// Ties are broken arbitrarily.
func (h *Heap) ExtractMin() (int, error) {
	if len(h.data) == 0 {
		return absent, ErrEmpty
	}
	top := h.data[0]
	last := len(h.data) - 1
	h.swap(0, last)
	h.data = h.data[:last]
	h.pos[top] = absent
	if last > 0 {
		h.heapify(0)
	}

	return top, nil
}

// DecreaseKey lowers the key of id to k and restores heap order upwards.
// Panics if id is not in the heap or k is greater than the current key:
// both mean the caller relaxed in the wrong direction.
func (h *Heap) DecreaseKey(id int, k uint64) {
	i := h.Position(id)
	if i == absent {
		panic(fmt.Errorf("%w: %d", ErrNotPresent, id))
	}
	if cur := h.keys.Key(id); k > cur {
		panic(fmt.Errorf("%w: id %d, %d > %d", ErrKeyIncrease, id, k, cur))
	}
	h.keys.SetKey(id, k)

	for i > 0 {
		p := parent(i)
		if h.key(p) <= h.key(i) {
			break
		}
		h.swap(i, p)
		i = p
	}
}

// heapify sifts slot i down, swapping with the smaller child while that
// child's key is less than the key at i.
func (h *Heap) heapify(i int) {
	n := len(h.data)
	l, r := left(i), right(i)
	smallest := i
	if l < n && h.key(l) < h.key(smallest) {
		smallest = l
	}
	if r < n && h.key(r) < h.key(smallest) {
		smallest = r
	}
	if smallest != i {
		h.swap(i, smallest)
		h.heapify(smallest)
	}
}

// swap exchanges slots i and j and updates both ids' positions.
// It is the only place two slots are exchanged; Insert and ExtractMin
// otherwise only append or truncate the last slot.
func (h *Heap) swap(i, j int) {
	h.data[i], h.data[j] = h.data[j], h.data[i]
	h.pos[h.data[i]] = i
	h.pos[h.data[j]] = j
}

func (h *Heap) key(slot int) uint64 {
	return h.keys.Key(h.data[slot])
}

// Verify checks both heap invariants in O(n):
// every parent's key is ≤ its children's (ErrHeapOrder), and
// pos[data[i]] == i for every slot while absent ids map nowhere (ErrIndexCorrupt).
func (h *Heap) Verify() error {
	for i, id := range h.data {
		if h.Position(id) != i {
			return fmt.Errorf("%w: slot %d holds id %d, index says %d", ErrIndexCorrupt, i, id, h.Position(id))
		}
		if i > 0 && h.key(parent(i)) > h.key(i) {
			return fmt.Errorf("%w: slot %d key %d < parent slot %d key %d",
				ErrHeapOrder, i, h.key(i), parent(i), h.key(parent(i)))
		}
	}
	for id, slot := range h.pos {
		if slot == absent {
			continue
		}
		if slot >= len(h.data) || h.data[slot] != id {
			return fmt.Errorf("%w: id %d indexed at slot %d", ErrIndexCorrupt, id, slot)
		}
	}

	return nil
}
