// Package astar drives the A* search over the implicit alignment graph:
// reference-graph nodes x query offsets x the gap-state machine. It
// expands states by ascending f = g + h, delegating zero-cost match runs
// to dfa and using the bubble index both as an
// admissible heuristic and as a pruning oracle via visited.Store.
package astar
