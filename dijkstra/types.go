package dijkstra

import "errors"

// Sentinel errors returned by the dijkstra package.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to NewEngine.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrWeightLength indicates SetWeights was called with a slice whose
	// length does not match the graph's edge count.
	ErrWeightLength = errors.New("dijkstra: weight slice length must equal edge count")

	// ErrNegativeWeight indicates a negative edge weight was supplied;
	// the radix heap requires non-negative, non-decreasing keys.
	ErrNegativeWeight = errors.New("dijkstra: edge weights must be non-negative")

	// ErrNotInitialized indicates Run was called before SetWeights.
	ErrNotInitialized = errors.New("dijkstra: weights not set")

	// ErrNotReachable indicates GetPath found no predecessor chain from
	// the requested origin to the requested destination.
	ErrNotReachable = errors.New("dijkstra: destination not reachable from origin")

	// ErrBadMaxWeight indicates WithMaxWeight was given a non-positive bound.
	ErrBadMaxWeight = errors.New("dijkstra: MaxWeight must be positive")
)

// Options configures an Engine at construction time.
//
// MaxWeight bounds every key the engine will ever hand to its radix heap
// (the heap's C parameter). If unset (zero), Run derives the bound from
// the weights set by SetWeights (their sum plus one), which is sufficient
// since no potential can exceed the sum of every edge weight in the graph.
type Options struct {
	MaxWeight float64
}

// Option is a functional option for NewEngine.
type Option func(*Options)

// WithMaxWeight fixes the radix heap's key bound up front instead of
// deriving it from SetWeights. Useful when the caller knows a tighter
// bound than the sum of all edge weights. Panics if w is not positive.
func WithMaxWeight(w float64) Option {
	return func(o *Options) {
		if w <= 0 {
			panic(ErrBadMaxWeight.Error())
		}
		o.MaxWeight = w
	}
}
