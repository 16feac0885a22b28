package hyperpath

import "errors"

// Sentinel errors returned by the hyperpath package.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to NewEngine.
	ErrNilGraph = errors.New("hyperpath: graph is nil")

	// ErrWeightLength indicates SetWeights was called with wmin/wmax
	// slices whose length does not match the graph's edge count.
	ErrWeightLength = errors.New("hyperpath: wmin/wmax length must equal edge count")

	// ErrInvalidInterval indicates some edge has wmax < wmin.
	ErrInvalidInterval = errors.New("hyperpath: wmax must be >= wmin for every edge")

	// ErrPotentialLength indicates SetPotentials was called with a slice
	// whose length does not match the graph's vertex count.
	ErrPotentialLength = errors.New("hyperpath: potential length must equal vertex count")

	// ErrNotInitialized indicates Run was called before SetWeights and
	// SetPotentials.
	ErrNotInitialized = errors.New("hyperpath: weights or potentials not set")
)

// EdgeFlow pairs an edge id with the choice probability assigned to it by
// the forward pass. Only edges with a non-zero probability are reported.
type EdgeFlow struct {
	EdgeID      string
	Probability float64
}

// largeFanInWeight substitutes for 1/(wmax-wmin) on a degenerate
// (deterministic) edge where wmax == wmin, matching the sentinel used by
// the original Dijkstra-Hyperstar implementation this package follows.
const largeFanInWeight = 9999999999.0

// fanInWeight is the f_a term of the Ma-2013 combining rule: the inverse
// width of edge a's cost interval, or largeFanInWeight when the interval
// is a single point.
func fanInWeight(wmin, wmax float64) float64 {
	if wmax == wmin {
		return largeFanInWeight
	}

	return 1.0 / (wmax - wmin)
}
