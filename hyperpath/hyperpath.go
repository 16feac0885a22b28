package hyperpath

import (
	"fmt"
	"math"
	"sort"

	"github.com/dhstar/dhstar/core"
	"github.com/dhstar/dhstar/heap"
)

// Engine runs the Ma-2013 Dijkstra-Hyperstar algorithm against one
// core.Graph, reusing a single set of working arrays across Run/Recover
// cycles.
//
// An Engine is not safe for concurrent use.
type Engine struct {
	g *core.Graph

	wmin, wmax []float64 // per-edge cost interval, set by SetWeights
	h          []float64 // per-vertex admissible potential, set by SetPotentials

	uNode []float64 // per-vertex expected-cost label u_i
	fNode []float64 // per-vertex accumulated fan-in weight f_i
	pNode []float64 // per-vertex flow probability p_i

	uEdge      []float64 // per-edge label u_a
	pEdge      []float64 // per-edge choice probability p_a
	openEdge   []bool
	closedEdge []bool

	hyperpath []EdgeFlow
}

// NewEngine constructs an Engine bound to g. g must be non-nil.
func NewEngine(g *core.Graph) (*Engine, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	e := &Engine{
		g:          g,
		uNode:      make([]float64, g.VertexNum()),
		fNode:      make([]float64, g.VertexNum()),
		pNode:      make([]float64, g.VertexNum()),
		uEdge:      make([]float64, g.EdgeNum()),
		pEdge:      make([]float64, g.EdgeNum()),
		openEdge:   make([]bool, g.EdgeNum()),
		closedEdge: make([]bool, g.EdgeNum()),
	}
	e.Recover()

	return e, nil
}

// SetWeights assigns the per-edge cost interval [wmin, wmax], both
// indexed by edge Idx. Both slices must have length equal to the graph's
// edge count, and wmax[i] must be >= wmin[i] for every i.
func (e *Engine) SetWeights(wmin, wmax []float64) error {
	m := e.g.EdgeNum()
	if len(wmin) != m || len(wmax) != m {
		return fmt.Errorf("hyperpath: %w: got %d/%d, want %d", ErrWeightLength, len(wmin), len(wmax), m)
	}
	for i := range wmin {
		if wmax[i] < wmin[i] {
			return fmt.Errorf("hyperpath: %w", ErrInvalidInterval)
		}
	}

	e.wmin = append([]float64(nil), wmin...)
	e.wmax = append([]float64(nil), wmax...)

	return nil
}

// SetPotentials assigns the per-vertex admissible potential h, indexed by
// vertex Idx. h must have length equal to the graph's vertex count.
func (e *Engine) SetPotentials(h []float64) error {
	if len(h) != e.g.VertexNum() {
		return fmt.Errorf("hyperpath: %w: got %d, want %d", ErrPotentialLength, len(h), e.g.VertexNum())
	}

	e.h = append([]float64(nil), h...)

	return nil
}

// Run computes the optimal hyperpath from originID to destinationID.
// SetWeights and SetPotentials must have been called first.
func (e *Engine) Run(originID, destinationID string) error {
	if e.wmin == nil || e.h == nil {
		return ErrNotInitialized
	}

	origin, err := e.g.GetVertex(originID)
	if err != nil {
		return fmt.Errorf("hyperpath: %w", err)
	}
	dest, err := e.g.GetVertex(destinationID)
	if err != nil {
		return fmt.Errorf("hyperpath: %w", err)
	}

	q, err := heap.NewFibHeap(e.g.EdgeNum())
	if err != nil {
		return fmt.Errorf("hyperpath: %w", err)
	}

	e.uNode[dest.Idx] = 0
	e.pNode[origin.Idx] = 1

	var poEdges []*core.Edge

	jIdx := dest.Idx
	for {
		j, err := e.g.GetVertexByIdx(jIdx)
		if err != nil {
			return fmt.Errorf("hyperpath: %w", err)
		}

		for _, a := range j.InEdges {
			i := a.From.Idx
			tau := e.uNode[jIdx] + e.wmin[a.Idx] + e.h[i]
			if tau >= e.uEdge[a.Idx] {
				continue
			}

			e.uEdge[a.Idx] = tau
			if e.closedEdge[a.Idx] {
				continue
			}
			if e.openEdge[a.Idx] {
				if err := q.DecreaseKey(a.Idx, tau); err != nil {
					return fmt.Errorf("hyperpath: %w", err)
				}
			} else {
				if err := q.Insert(a.Idx, tau); err != nil {
					return fmt.Errorf("hyperpath: %w", err)
				}
				e.openEdge[a.Idx] = true
			}
		}

		if q.Len() == 0 {
			break
		}

		aIdx, err := q.DeleteMin()
		if err != nil {
			return fmt.Errorf("hyperpath: %w", err)
		}
		e.openEdge[aIdx] = false
		e.closedEdge[aIdx] = true

		a, err := e.g.GetEdgeByIdx(aIdx)
		if err != nil {
			return fmt.Errorf("hyperpath: %w", err)
		}
		iIdx := a.From.Idx
		jIdx = a.To.Idx

		wMin := e.wmin[aIdx]
		wMax := e.wmax[aIdx]

		// Combining rule: aggregate a's uniform cost interval into i's
		// expected-cost label, under optimal just-in-time choice.
		if e.uNode[iIdx] >= e.uNode[jIdx]+wMin {
			fA := fanInWeight(wMin, wMax)
			pA := fA / (e.fNode[iIdx] + fA)

			switch {
			case e.fNode[iIdx] == 0:
				e.uNode[iIdx] = e.uNode[jIdx] + wMax
			case e.uNode[iIdx] > (1-pA)*e.uNode[iIdx]+pA*(e.uNode[jIdx]+wMin):
				e.uNode[iIdx] = (1-pA)*e.uNode[iIdx] + pA*(e.uNode[jIdx]+wMin)
			}

			e.fNode[iIdx] += fA
			poEdges = append(poEdges, a)
		}

		if e.uNode[jIdx]+wMin+e.h[iIdx] > e.uNode[origin.Idx] {
			break
		}
		jIdx = iIdx
	}

	// Forward pass: replay accepted edges from the origin outward, in
	// decreasing order of head label plus wmin, splitting flow probability at
	// every branching node in proportion to fan-in weight.
	sort.SliceStable(poEdges, func(x, y int) bool {
		ax, ay := poEdges[x], poEdges[y]
		return e.uNode[ax.To.Idx]+e.wmin[ax.Idx] > e.uNode[ay.To.Idx]+e.wmin[ay.Idx]
	})

	for _, a := range poEdges {
		iIdx := a.From.Idx
		jIdx := a.To.Idx
		fA := fanInWeight(e.wmin[a.Idx], e.wmax[a.Idx])
		pA := fA / e.fNode[iIdx]
		e.pEdge[a.Idx] = pA * e.pNode[iIdx]
		e.pNode[jIdx] += e.pEdge[a.Idx]
	}

	e.hyperpath = e.hyperpath[:0]
	for _, a := range poEdges {
		if e.pEdge[a.Idx] != 0 {
			e.hyperpath = append(e.hyperpath, EdgeFlow{EdgeID: a.ID, Probability: e.pEdge[a.Idx]})
		}
	}

	return nil
}

// Hyperpath returns the accepted (edge id, choice probability) pairs from
// the most recent Run, in forward-pass order.
func (e *Engine) Hyperpath() []EdgeFlow {
	return append([]EdgeFlow(nil), e.hyperpath...)
}

// ExpectedCost returns the expected-cost label u_i for vertexID after the
// most recent Run.
func (e *Engine) ExpectedCost(vertexID string) (float64, error) {
	v, err := e.g.GetVertex(vertexID)
	if err != nil {
		return 0, fmt.Errorf("hyperpath: %w", err)
	}

	return e.uNode[v.Idx], nil
}

// FanInWeight returns the accumulated fan-in weight f_i for vertexID
// after the most recent Run.
func (e *Engine) FanInWeight(vertexID string) (float64, error) {
	v, err := e.g.GetVertex(vertexID)
	if err != nil {
		return 0, fmt.Errorf("hyperpath: %w", err)
	}

	return e.fNode[v.Idx], nil
}

// Recover resets all working arrays to their initial state so the Engine
// can be reused for another Run. It does not touch wmin/wmax/h set by
// SetWeights/SetPotentials.
func (e *Engine) Recover() {
	for i := range e.uNode {
		e.uNode[i] = math.Inf(1)
		e.fNode[i] = 0
		e.pNode[i] = 0
	}
	for i := range e.uEdge {
		e.uEdge[i] = math.Inf(1)
		e.pEdge[i] = 0
		e.openEdge[i] = false
		e.closedEdge[i] = false
	}
	e.hyperpath = nil
}
