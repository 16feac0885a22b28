// Package dijkstra computes single-source shortest paths on a core.Graph
// with non-negative edge weights, backed by a monotone radix heap.
//
// Overview:
//
//   - Engine.Run computes, from one origin vertex, the minimum-cost
//     distance to every reachable vertex and a predecessor index for path
//     reconstruction.
//   - Because a radix heap enforces non-decreasing delete-min keys, all
//     edge weights must be non-negative and bounded above by the engine's
//     configured MaxWeight.
//
// Complexity:
//
//	Time:  O(m + n log C), C the configured weight bound.
//	Space: O(n + m) — potentials and predecessors are sized once at
//	  construction and reused across Run/Recover cycles; weights are
//	  copied in by SetWeights.
//
// Errors (sentinel):
//
//   - ErrNilGraph:       NewEngine was given a nil *core.Graph.
//   - ErrWeightLength:   SetWeights was given a slice whose length does
//     not equal the graph's edge count.
//   - ErrNegativeWeight: SetWeights was given a negative weight.
//   - ErrNotInitialized: Run was called before SetWeights.
//   - ErrNotReachable:   GetPath found no path from origin to destination.
//   - ErrBadMaxWeight (via panic from WithMaxWeight): a non-positive bound.
//
// Thread safety: an Engine is not safe for concurrent use; its working
// arrays are exclusively owned by the engine for the duration of a Run.
// Multiple engines may run concurrently against the same core.Graph so
// long as the graph is not mutated meanwhile.
package dijkstra
