package poagraph

import "errors"

// Sentinel errors for poagraph operations.
var (
	// ErrEmptyName is returned when a sequence is added with an empty name.
	ErrEmptyName = errors.New("poagraph: sequence name is empty")

	// ErrEmptySequence is returned when a zero-length sequence is added.
	ErrEmptySequence = errors.New("poagraph: sequence is empty")

	// ErrWeightsLengthMismatch is returned when per-base weights do not
	// match the sequence length.
	ErrWeightsLengthMismatch = errors.New("poagraph: weights length mismatch")

	// ErrNodeNotInGraph is returned when an alignment references a node
	// handle that does not belong to this graph.
	ErrNodeNotInGraph = errors.New("poagraph: node not in graph")

	// ErrSymbolMismatch is returned when a Match pair's query symbol
	// disagrees with its aligned node's symbol and the graph was built
	// with ForbidSilentSubstitution.
	ErrSymbolMismatch = errors.New("poagraph: match pair symbol mismatch")

	// ErrCycleDetected names the cyclic-graph condition. No poagraph
	// operation returns it: merge only appends forward edges, and
	// topological-order maintenance panics if a sort ever fails.
	ErrCycleDetected = errors.New("poagraph: cycle detected")
)
