// File: graph.go
// Role: Vertex/Edge lifecycle and lookups — AddVertex, AddEdge, GetVertex,
//       GetEdge, and the VertexNum/EdgeNum/Vertices/Edges accessors.
package core

// AddVertex registers a vertex under id, assigning it the next dense index
// if it is not already present. Calling AddVertex again with an existing
// id is a no-op that returns the existing Vertex.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) (*Vertex, error) {
	if id == "" {
		return nil, ErrEmptyID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if v, ok := g.vertices[id]; ok {
		return v, nil
	}

	v := &Vertex{ID: id, Idx: len(g.vertexByIdx)}
	g.vertices[id] = v
	g.vertexByIdx = append(g.vertexByIdx, v)

	return v, nil
}

// AddEdge registers an edge under id running from the vertex named fromID
// to the vertex named toID, auto-creating either endpoint if it does not
// yet exist. Calling AddEdge again with an existing id is a no-op that
// returns the existing Edge, even if fromID/toID differ from the original
// call — callers should treat edge ids as immutable keys.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(id, fromID, toID string) (*Edge, error) {
	if id == "" {
		return nil, ErrEmptyID
	}

	g.muEdgeAdj.Lock()
	if e, ok := g.edges[id]; ok {
		g.muEdgeAdj.Unlock()
		return e, nil
	}
	g.muEdgeAdj.Unlock()

	from, err := g.AddVertex(fromID)
	if err != nil {
		return nil, err
	}
	to, err := g.AddVertex(toID)
	if err != nil {
		return nil, err
	}

	return g.AddEdgeV(id, from, to)
}

// AddEdgeV registers an edge under id between two already-obtained Vertex
// handles. Both handles must belong to this Graph. Calling AddEdgeV again
// with an existing id is a no-op that returns the existing Edge.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdgeV(id string, from, to *Vertex) (*Edge, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	if from == nil || to == nil {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if e, ok := g.edges[id]; ok {
		return e, nil
	}

	e := &Edge{ID: id, Idx: len(g.edgeByIdx), From: from, To: to}
	g.edges[id] = e
	g.edgeByIdx = append(g.edgeByIdx, e)
	from.OutEdges = append(from.OutEdges, e)
	to.InEdges = append(to.InEdges, e)

	return e, nil
}

// GetVertex looks up a vertex by its external id.
//
// Complexity: O(1).
func (g *Graph) GetVertex(id string) (*Vertex, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return v, nil
}

// GetVertexByIdx looks up a vertex by its dense index.
//
// Complexity: O(1).
func (g *Graph) GetVertexByIdx(idx int) (*Vertex, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	if idx < 0 || idx >= len(g.vertexByIdx) {
		return nil, ErrIndexOutOfRange
	}

	return g.vertexByIdx[idx], nil
}

// GetEdge looks up an edge by its external id.
//
// Complexity: O(1).
func (g *Graph) GetEdge(id string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	e, ok := g.edges[id]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// GetEdgeByIdx looks up an edge by its dense index.
//
// Complexity: O(1).
func (g *Graph) GetEdgeByIdx(idx int) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if idx < 0 || idx >= len(g.edgeByIdx) {
		return nil, ErrIndexOutOfRange
	}

	return g.edgeByIdx[idx], nil
}

// GetEdgeBetween returns the first edge (in insertion order) running from
// the vertex named fromID to the vertex named toID. When the graph is a
// multigraph with several parallel from->to edges, only the first one
// encountered in From's OutEdges is returned — mirrors the original
// implementation's get_edge(from, to) convenience overload.
//
// Complexity: O(deg(from)).
func (g *Graph) GetEdgeBetween(fromID, toID string) (*Edge, error) {
	from, err := g.GetVertex(fromID)
	if err != nil {
		return nil, err
	}
	if _, err := g.GetVertex(toID); err != nil {
		return nil, err
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	for _, e := range from.OutEdges {
		if e.To.ID == toID {
			return e, nil
		}
	}

	return nil, ErrEdgeNotFound
}

// VertexNum returns the number of vertices currently registered.
//
// Complexity: O(1).
func (g *Graph) VertexNum() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertexByIdx)
}

// EdgeNum returns the number of edges currently registered.
//
// Complexity: O(1).
func (g *Graph) EdgeNum() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edgeByIdx)
}

// Vertices returns all vertices ordered by Idx ascending.
//
// Complexity: O(n).
func (g *Graph) Vertices() []*Vertex {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	out := make([]*Vertex, len(g.vertexByIdx))
	copy(out, g.vertexByIdx)

	return out
}

// Edges returns all edges ordered by Idx ascending.
//
// Complexity: O(m).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, len(g.edgeByIdx))
	copy(out, g.edgeByIdx)

	return out
}
