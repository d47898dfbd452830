// Package score defines the value type used throughout the alignment core
// to represent a partial-alignment cost: a saturating, totally ordered
// nonnegative integer with a distinguished "unvisited" sentinel.
//
// Score is deliberately a tiny value type, free of algorithm-specific
// state, so that every package downstream (visited, dfa, astar) can pass
// it by value without allocation.
package score
