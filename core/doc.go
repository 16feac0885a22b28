// Package core defines the Graph, Vertex, and Edge types shared by the
// heap, dijkstra, and hyperpath packages, and provides thread-safe
// primitives for building and querying graphs.
//
// Vertices and edges carry both a caller-supplied string ID, for external
// addressing, and a dense integer Idx assigned at first insertion order.
// Idx is stable for the lifetime of the Graph and is the only address the
// algorithm packages use internally; this lets a Graph be shared read-only
// across multiple concurrently running engines without pointer aliasing
// concerns (see the dijkstra and hyperpath package docs).
//
// A Graph owns its Vertex and Edge storage exclusively. muVert guards the
// vertex catalog; muEdgeAdj guards the edge catalog and the adjacency lists
// held on each Vertex (OutEdges/InEdges), mirroring the split-lock strategy
// used throughout this module's ancestor. Mutating a Graph across
// goroutines is safe so long as no engine is mid-run against it — engines
// are not themselves safe for concurrent use.
//
// Errors:
//
//	ErrEmptyID         - vertex or edge ID is the empty string.
//	ErrVertexNotFound  - requested vertex does not exist.
//	ErrEdgeNotFound    - requested edge does not exist.
//	ErrIndexOutOfRange - requested Idx lies outside [0, count).
package core
