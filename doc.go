// Package dhstar provides shortest-path and hyperpath computation over
// directed graphs with non-negative edge costs.
//
// Two algorithms form the core, organized under four subpackages:
//
//	core/       — Graph, Vertex, Edge: dense integer indices, thread-safe
//	              construction, and the reverse() operation.
//	heap/       — the Heap interface shared by both engines, with a
//	              monotone radix-heap backend and a lazy Fibonacci-heap
//	              backend.
//	dijkstra/   — single-source shortest paths via the radix heap.
//	hyperpath/  — the Ma–Fukuda–Schmöcker (2013) Dijkstra-Hyperstar
//	              optimal-hyperpath algorithm via the Fibonacci heap.
//
// dijkstra computes per-node potentials and a predecessor chain from one
// origin. hyperpath computes, between an origin and a destination, a
// probabilistic routing policy over edges whose costs are only known to
// lie within an interval — the optimal just-in-time choice distribution
// a traveler would use when the realized cost of each option is observed
// only at the moment of choosing it.
//
// See the Example functions in each subpackage's example_test.go for
// runnable demonstrations of the graph, both heaps, and both engines.
package dhstar
