package refgraph

// NodeID is a dense rank in [0, N) identifying a reference-graph node,
// including the two sentinels. A plain integer handle lets the visited
// store key directly off it without a hash map.
type NodeID int32

// Graph is the capability set every reference-graph kind (poagraph.Graph,
// Mock) must implement for the alignment core to operate over it.
//
// Successors/Predecessors return materialized slices rather than lazy
// iterators: the DFA materializes successors into a per-frame slice on
// every stack push anyway, so there is no iterator-state-ownership
// problem to solve by indirection.
type Graph interface {
	// AllNodes returns every node handle, including both sentinels.
	AllNodes() []NodeID

	// NodeCount returns the number of non-sentinel nodes.
	NodeCount() int

	// NodeCountWithStartAndEnd returns NodeCount()+2.
	NodeCountWithStartAndEnd() int

	// EdgeCount returns the number of graph edges.
	EdgeCount() int

	// StartNode returns the START sentinel.
	StartNode() NodeID

	// EndNode returns the END sentinel.
	EndNode() NodeID

	// IsEnd reports whether n is the END sentinel.
	IsEnd(n NodeID) bool

	// Predecessors returns n's incoming neighbors in a deterministic
	// (but otherwise unspecified) order, stable across calls within one
	// graph snapshot.
	Predecessors(n NodeID) []NodeID

	// Successors returns n's outgoing neighbors, with the same ordering
	// guarantee as Predecessors.
	Successors(n NodeID) []NodeID

	// InDegree returns len(Predecessors(n)) without allocating.
	InDegree(n NodeID) int

	// OutDegree returns len(Successors(n)) without allocating.
	OutDegree(n NodeID) int

	// IsSymbolEqual reports whether n is non-sentinel and carries symbol b.
	IsSymbolEqual(n NodeID, b byte) bool

	// GetSymbolChar returns n's symbol for display; sentinels render '-'.
	GetSymbolChar(n NodeID) byte

	// GetNodeOrdering returns rank[n] = topological rank, indexed by
	// NodeID, for every node including sentinels.
	GetNodeOrdering() []int
}
