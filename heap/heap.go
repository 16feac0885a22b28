// File: heap.go
// Role: the Heap interface and its sentinel errors.
package heap

import "errors"

// Sentinel errors for heap operations.
var (
	// ErrEmpty indicates DeleteMin was called on a heap with no items.
	ErrEmpty = errors.New("heap: empty")

	// ErrItemOutOfRange indicates an item index lies outside [0, capacity).
	ErrItemOutOfRange = errors.New("heap: item out of range")

	// ErrItemPresent indicates Insert was called for an item already in the heap.
	ErrItemPresent = errors.New("heap: item already present")

	// ErrItemAbsent indicates DecreaseKey was called for an item not in the heap.
	ErrItemAbsent = errors.New("heap: item not present")
)

// Heap is a uniform priority-queue interface over integer items in
// [0, capacity) with real-valued keys. capacity is fixed at construction
// time by each backend's constructor.
type Heap interface {
	// Insert adds item with the given key. item must not already be in
	// the heap.
	Insert(item int, key float64) error

	// DecreaseKey lowers item's key to newKey. item must already be in
	// the heap and newKey must be <= item's current key; callers are
	// responsible for the latter (backends do not re-check it).
	DecreaseKey(item int, newKey float64) error

	// DeleteMin removes and returns the item with the smallest key.
	// Returns ErrEmpty if the heap has no items. Tie-breaks among equal
	// keys are unspecified.
	DeleteMin() (int, error)

	// Len returns the number of items currently in the heap.
	Len() int
}
