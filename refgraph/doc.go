// Package refgraph defines the reference-graph contract every graph kind
// consumed by the alignment core must satisfy: the concrete
// poagraph.Graph and a lightweight Mock used by tests.
//
// The contract is a capability interface, not a class hierarchy, so astar
// and dfa can be exercised against both the real POA graph and small
// hand-built fixtures without paying for virtual dispatch inside the hot
// loop: callers monomorphize by instantiating the generic search entry
// points with the concrete graph type.
package refgraph
