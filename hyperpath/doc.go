// Package hyperpath computes an optimal hyperpath between an origin and a
// destination on a core.Graph whose edge costs are uncertain within known
// intervals [wmin, wmax], using the Ma–Fukuda–Schmöcker (2013)
// Dijkstra–Hyperstar algorithm.
//
// A hyperpath is a probabilistic routing policy: at every branching node
// reachable on it, the traveler's optimal just-in-time choice among
// outgoing hyperpath edges is a probability distribution, not a single
// edge, because the realized cost of each option is only observed at the
// moment of choice. Engine.Run produces this distribution as a list of
// (edge id, choice probability) pairs.
//
// Algorithm shape:
//
//   - Backward pass: a label-setting search over edges (not vertices),
//     rooted at the destination, using a Fibonacci heap because edge
//     labels may decrease below a value already returned by an earlier
//     delete-min — the monotone radix heap's contract does not hold here.
//     Each deleted edge is tested by a combining rule that aggregates its
//     uniform cost interval into its tail vertex's expected-cost label,
//     and accepted edges are appended to the potential-optimal edge set.
//   - Forward pass: the accepted edges are sorted and replayed from the
//     origin, splitting flow probability at every branching node in
//     proportion to each edge's fan-in weight.
//
// Inputs: per-edge wmin <= wmax, and per-vertex admissible potentials h
// (a lower bound on remaining cost to the destination under wmin —
// typically a dijkstra.Engine run on wmin over the reversed graph). The
// caller supplies h explicitly; this package never computes it itself.
//
// Errors (sentinel):
//
//   - ErrNilGraph:        NewEngine was given a nil *core.Graph.
//   - ErrWeightLength:    SetWeights was given a slice of the wrong length.
//   - ErrInvalidInterval: some edge has wmax < wmin.
//   - ErrPotentialLength: SetPotentials was given a slice of the wrong length.
//   - ErrNotInitialized:  Run was called before SetWeights/SetPotentials.
//
// Thread safety: an Engine is not safe for concurrent use.
package hyperpath
