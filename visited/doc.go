// Package visited implements the A* closed/open bookkeeping for one
// alignment run: a map from (alignment-graph node, query offset, state) to
// the best known score and a parent pointer, plus the prune and
// update-score-if-lower protocols that keep the search
// optimality-preserving.
//
// The store is keyed on a tight (node_rank, offset, state) triple and
// backed by a dense slice rather than a hash map:
// POA graphs and query lengths in this engine's expected range make the
// V*(L+1)*NumStates slot count small compared to a map's per-entry
// overhead.
package visited
