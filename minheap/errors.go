package minheap

import "errors"

var (
	// ErrEmpty is returned by ExtractMin and PeekMin on an empty heap.
	ErrEmpty = errors.New("minheap: heap is empty")

	// ErrBadID indicates a negative id passed to Insert.
	ErrBadID = errors.New("minheap: id must be non-negative")

	// ErrDuplicate indicates Insert of an id that is already in the heap.
	ErrDuplicate = errors.New("minheap: id already present")

	// ErrNotPresent indicates DecreaseKey on an id that is not in the heap.
	ErrNotPresent = errors.New("minheap: id not present")

	// ErrKeyIncrease indicates DecreaseKey with a key larger than the current one.
	ErrKeyIncrease = errors.New("minheap: new key is greater than current key")

	// ErrHeapOrder is reported by Verify when a parent's key exceeds a child's.
	ErrHeapOrder = errors.New("minheap: heap order violated")

	// ErrIndexCorrupt is reported by Verify when the position index disagrees with the array.
	ErrIndexCorrupt = errors.New("minheap: position index inconsistent")
)
