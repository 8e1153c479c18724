// Package minheap provides a binary min-heap over integer ids with an
// id→slot position index, so a tracked id's priority can be lowered in
// O(log n) (decrease-key). It is the frontier used by package dijkstra.
//
// Priorities are not stored in the heap. The caller supplies a Keys value
// that owns them; the heap reads keys to order slots and writes a key only in
// Insert and DecreaseKey. In dijkstra the keys are the graph nodes' efforts.
//
// Layout:
//
//	data []int   – slot → id, binary-heap ordered by key
//	pos  []int   – id → slot, or -1 when the id is not in the heap
//
// Slots are exchanged only by a single primitive (swap), which moves both
// slices together. Insert appends and ExtractMin truncates the last slot,
// each fixing pos for that one id, so pos[data[i]] == i holds after every
// operation.
//
// Complexity:
//
//   - Insert, ExtractMin, DecreaseKey: O(log n)
//   - PeekMin, Len, IsEmpty, Contains, Position: O(1)
//   - Verify: O(n)
//
// Errors:
//
//   - ErrEmpty: ExtractMin/PeekMin on an empty heap.
//   - ErrBadID, ErrDuplicate, ErrNotPresent, ErrKeyIncrease: programming
//     errors; the heap panics with a wrapped sentinel.
//   - ErrHeapOrder, ErrIndexCorrupt: returned by Verify.
//
// A Heap is not safe for concurrent use.
package minheap
