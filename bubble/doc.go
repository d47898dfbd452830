// Package bubble precomputes, once per reference-graph snapshot, the
// superbubble structure used by astar as an admissible A* heuristic and as
// the pruning oracle.
//
// A superbubble is identified here by a plain graph traversal rather
// than a highly optimized linear-time algorithm, because the POA graphs
// this engine searches
// (consensus DAGs folded from tens to low thousands of aligned queries)
// are small enough that an O(V·(V+E)) dominator/post-dominator scan is not
// the bottleneck — the A* search itself is. A production engine tracking
// genome-scale pangenomes would replace this with a linear-time
// Lengauer-Tarjan dominator tree; that swap does not change this
// package's public API.
package bubble
