package dijkstra

import (
	"fmt"
	"math"

	"github.com/dhstar/dhstar/core"
	"github.com/dhstar/dhstar/heap"
)

// Engine runs Dijkstra's algorithm against one core.Graph, reusing a single
// set of working arrays across Run/Recover cycles.
//
// An Engine is not safe for concurrent use. Its per-vertex working arrays
// are sized once at construction to the graph's vertex count; they are not
// resized if the graph grows afterward. The weight slice is a copy taken by
// SetWeights.
type Engine struct {
	g   *core.Graph
	opt Options

	w []float64 // per-edge weights, set by SetWeights

	u      []float64 // per-vertex potentials
	preIdx []int     // per-vertex predecessor index, -1 if none
	open   []bool    // per-vertex: currently in the heap
	closed []bool    // per-vertex: already settled
}

// NewEngine constructs an Engine bound to g. g must be non-nil.
func NewEngine(g *core.Graph, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	var opt Options
	for _, apply := range opts {
		apply(&opt)
	}

	e := &Engine{
		g:      g,
		opt:    opt,
		u:      make([]float64, g.VertexNum()),
		preIdx: make([]int, g.VertexNum()),
		open:   make([]bool, g.VertexNum()),
		closed: make([]bool, g.VertexNum()),
	}
	e.Recover()

	return e, nil
}

// SetWeights assigns the per-edge weight array w, indexed by edge Idx.
// len(w) must equal the graph's edge count and every weight must be
// non-negative.
func (e *Engine) SetWeights(w []float64) error {
	if len(w) != e.g.EdgeNum() {
		return fmt.Errorf("dijkstra: %w: got %d, want %d", ErrWeightLength, len(w), e.g.EdgeNum())
	}
	for _, wt := range w {
		if wt < 0 {
			return fmt.Errorf("dijkstra: %w", ErrNegativeWeight)
		}
	}

	e.w = append([]float64(nil), w...)

	return nil
}

// Run computes shortest-path potentials from originID to every vertex
// reachable from it. SetWeights must have been called first.
func (e *Engine) Run(originID string) error {
	if e.w == nil {
		return ErrNotInitialized
	}

	origin, err := e.g.GetVertex(originID)
	if err != nil {
		return fmt.Errorf("dijkstra: %w", err)
	}

	bound := e.opt.MaxWeight
	if bound <= 0 {
		bound = weightSum(e.w) + 1
	}

	q, err := heap.NewRadixHeap(len(e.u), bound)
	if err != nil {
		return fmt.Errorf("dijkstra: %w", err)
	}

	e.u[origin.Idx] = 0
	if err := q.Insert(origin.Idx, 0); err != nil {
		return fmt.Errorf("dijkstra: %w", err)
	}
	e.open[origin.Idx] = true

	for q.Len() > 0 {
		v, err := q.DeleteMin()
		if err != nil {
			return fmt.Errorf("dijkstra: %w", err)
		}
		e.closed[v] = true
		e.open[v] = false

		vertex, err := e.g.GetVertexByIdx(v)
		if err != nil {
			return fmt.Errorf("dijkstra: %w", err)
		}

		for _, edge := range vertex.OutEdges {
			y := edge.To.Idx
			if e.closed[y] {
				continue
			}

			d := e.u[v] + e.w[edge.Idx]
			if d >= e.u[y] {
				continue
			}

			e.u[y] = d
			e.preIdx[y] = v
			if e.open[y] {
				if err := q.DecreaseKey(y, d); err != nil {
					return fmt.Errorf("dijkstra: %w", err)
				}
			} else {
				if err := q.Insert(y, d); err != nil {
					return fmt.Errorf("dijkstra: %w", err)
				}
				e.open[y] = true
			}
		}
	}

	return nil
}

// Potentials returns a copy of the per-vertex potential array computed by
// the most recent Run, indexed by vertex Idx. Unreachable vertices carry
// +Inf.
func (e *Engine) Potentials() []float64 {
	return append([]float64(nil), e.u...)
}

// GetPotential returns the potential of the vertex identified by vertexID.
func (e *Engine) GetPotential(vertexID string) (float64, error) {
	v, err := e.g.GetVertex(vertexID)
	if err != nil {
		return 0, fmt.Errorf("dijkstra: %w", err)
	}

	return e.u[v.Idx], nil
}

// Reachable reports whether vertexID carries a finite potential after the
// most recent Run. Returns false if vertexID does not exist.
func (e *Engine) Reachable(vertexID string) bool {
	v, err := e.g.GetVertex(vertexID)
	if err != nil {
		return false
	}

	return !math.IsInf(e.u[v.Idx], 1)
}

// GetPath walks the predecessor chain from destinationID back to
// originID and returns it origin-first. Returns ErrNotReachable if the
// chain does not terminate at originID.
func (e *Engine) GetPath(originID, destinationID string) ([]string, error) {
	origin, err := e.g.GetVertex(originID)
	if err != nil {
		return nil, fmt.Errorf("dijkstra: %w", err)
	}
	dest, err := e.g.GetVertex(destinationID)
	if err != nil {
		return nil, fmt.Errorf("dijkstra: %w", err)
	}

	var revIdx []int
	for cur := dest.Idx; cur != -1; cur = e.preIdx[cur] {
		revIdx = append(revIdx, cur)
	}

	if revIdx[len(revIdx)-1] != origin.Idx {
		return nil, fmt.Errorf("dijkstra: %w", ErrNotReachable)
	}

	path := make([]string, len(revIdx))
	for i, idx := range revIdx {
		v, err := e.g.GetVertexByIdx(idx)
		if err != nil {
			return nil, fmt.Errorf("dijkstra: %w", err)
		}
		path[len(revIdx)-1-i] = v.ID
	}

	return path, nil
}

// Recover resets all working arrays to their initial state (+Inf
// potentials, -1 predecessors, open/closed cleared) so the Engine can be
// reused for another Run. It does not touch the weight array set by
// SetWeights.
func (e *Engine) Recover() {
	for i := range e.u {
		e.u[i] = math.Inf(1)
		e.preIdx[i] = -1
		e.open[i] = false
		e.closed[i] = false
	}
}

func weightSum(w []float64) float64 {
	var s float64
	for _, wt := range w {
		s += wt
	}

	return s
}
