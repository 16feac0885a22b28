// File: radixheap.go
// Role: RadixHeap — a monotone priority queue specialized for
//       non-decreasing minimum keys (the Dijkstra invariant).
//
// Complexity: O(1) per Insert/DecreaseKey plus amortized O(log C) bucket
// movement per item over its lifetime; O(log C) per DeleteMin to locate the
// next non-empty bucket, plus the same amortized movement cost. Total run
// cost across m inserts/decreases and n delete-mins: O(m + n log C).
//
// Contract: keys must be non-negative, and the sequence of keys returned
// by successive DeleteMin calls must be non-decreasing — callers (i.e.
// dijkstra.Engine) must never decrease a key below the most recently
// deleted minimum. C, an upper bound on any key ever inserted, is fixed at
// construction.
package heap

import (
	"errors"
	"math"
)

// ErrInvalidBound indicates NewRadixHeap was given a non-positive capacity
// or maxKey.
var ErrInvalidBound = errors.New("heap: capacity and maxKey must be positive")

// radixNode is one item's bookkeeping: its bucket membership is an
// intrusive circular doubly-linked list node so that both insertion and
// removal from a bucket run in O(1).
type radixNode struct {
	item   int
	key    float64
	bucket int
	prev   *radixNode
	next   *radixNode
}

// RadixHeap is a monotone priority queue: the keys handed to successive
// DeleteMin calls must be non-decreasing, in exchange for O(log C) amortized
// work per operation instead of a comparison heap's O(log n).
type RadixHeap struct {
	nodes   []*radixNode // item -> node, nil if item not present
	headers []*radixNode // sentinel header per bucket, index 0..nBuckets
	u       []float64    // bucket upper bounds, index 0..nBuckets
	nBuckets int
	itemCount int
}

// NewRadixHeap constructs a RadixHeap that can hold items in [0, capacity)
// with keys bounded above by maxKey. Both must be positive.
func NewRadixHeap(capacity int, maxKey float64) (*RadixHeap, error) {
	if capacity <= 0 || maxKey <= 0 {
		return nil, ErrInvalidBound
	}

	nBuckets := int(math.Ceil(math.Log2(maxKey+1.0))) + 2

	headers := make([]*radixNode, nBuckets+1)
	for i := range headers {
		h := &radixNode{item: -1, bucket: -1, key: -1}
		h.next, h.prev = h, h
		headers[i] = h
	}

	u := make([]float64, nBuckets+1)
	u[0] = -1
	l := 1.0
	for i := 1; i <= nBuckets; i++ {
		u[i] = l - 1
		l *= 2
	}
	u[nBuckets] = float64(capacity)*maxKey + 1

	return &RadixHeap{
		nodes:    make([]*radixNode, capacity),
		headers:  headers,
		u:        u,
		nBuckets: nBuckets,
	}, nil
}

// Insert adds item with key k. item must be in [0, capacity) and not
// already present.
func (h *RadixHeap) Insert(item int, k float64) error {
	if item < 0 || item >= len(h.nodes) {
		return ErrItemOutOfRange
	}
	if h.nodes[item] != nil {
		return ErrItemPresent
	}

	node := &radixNode{item: item, key: k}
	h.nodes[item] = node
	h.placeNode(h.nBuckets, node)
	h.itemCount++

	return nil
}

// DecreaseKey lowers item's key to k. item must already be present and k
// must be <= its current key (caller-enforced, not re-checked here).
func (h *RadixHeap) DecreaseKey(item int, k float64) error {
	if item < 0 || item >= len(h.nodes) {
		return ErrItemOutOfRange
	}
	node := h.nodes[item]
	if node == nil {
		return ErrItemAbsent
	}

	h.removeNode(node)
	node.key = k
	h.placeNode(node.bucket, node)

	return nil
}

// DeleteMin removes and returns the item with the smallest key.
func (h *RadixHeap) DeleteMin() (int, error) {
	if h.itemCount == 0 {
		return 0, ErrEmpty
	}

	// Bucket 1 holds only items whose key equals the current minimum.
	if h.headers[1].next != h.headers[1] {
		minNode := h.headers[1].next
		h.removeNode(minNode)
		return h.finishDelete(minNode), nil
	}

	// Find the lowest-indexed non-empty bucket above bucket 1.
	i := 2
	for h.headers[i].next == h.headers[i] {
		i++
	}

	header := h.headers[i]
	minNode := header.next
	minKey := minNode.key
	for node := minNode.next; node != header; node = node.next {
		if node.key < minKey {
			minNode = node
			minKey = node.key
		}
	}
	h.removeNode(minNode)

	// Recompute the upper bounds of buckets below i so that every
	// remaining item from bucket i lands in a strictly lower bucket.
	h.u[0] = minKey - 1
	h.u[1] = minKey
	l := 1.0
	s := minKey
	uMax := h.u[i]
	for j := 2; j < i; j++ {
		s += l
		if s < uMax {
			h.u[j] = s
		} else {
			h.u[j] = uMax
		}
		l *= 2
	}

	// Redistribute the rest of bucket i into lower buckets, then empty it.
	next := header.next
	for next != header {
		node := next
		next = next.next
		h.placeNode(i-1, node)
	}
	header.next, header.prev = header, header

	return h.finishDelete(minNode), nil
}

func (h *RadixHeap) finishDelete(node *radixNode) int {
	h.nodes[node.item] = nil
	h.itemCount--

	return node.item
}

// Len returns the number of items currently in the heap.
func (h *RadixHeap) Len() int { return h.itemCount }

// placeNode inserts node into the highest-indexed bucket i+1 <= startBucket
// whose upper bound u[i] is below node's key.
func (h *RadixHeap) placeNode(startBucket int, node *radixNode) {
	key := node.key
	i := startBucket
	for {
		i--
		if h.u[i] < key {
			break
		}
	}
	h.insertNode(i+1, node)
}

// insertNode links node at the tail of bucket i's circular list.
func (h *RadixHeap) insertNode(i int, node *radixNode) {
	node.bucket = i
	tail := h.headers[i]
	prev := tail.prev
	node.next = tail
	tail.prev = node
	node.prev = prev
	prev.next = node
}

// removeNode unlinks node from whichever bucket currently holds it.
func (h *RadixHeap) removeNode(node *radixNode) {
	node.prev.next = node.next
	node.next.prev = node.prev
}
