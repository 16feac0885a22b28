// Package heap defines the uniform priority-queue interface shared by
// Dijkstra and the hyperpath engine, and provides two interchangeable
// backends:
//
//   - RadixHeap — monotone, integer-key-friendly; O(log C) amortized per
//     delete-min given a compile-time upper bound C on any key. Used by
//     the dijkstra package, whose keys (shortest-path labels) only ever
//     increase across successive delete-min calls.
//
//   - FibHeap — general-purpose lazy Fibonacci heap; O(1) amortized
//     insert/decrease-key, O(log n) amortized delete-min. Used by the
//     hyperpath package, whose edge labels can decrease below a value
//     already returned by an earlier delete-min.
//
// Both backends address items by small non-negative integers in
// [0, capacity) — the caller's vertex or edge index — rather than opaque
// handles, which is what lets decrease-key run in O(1) time via a direct
// item -> node lookup array.
package heap
