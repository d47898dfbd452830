// Package dfa implements the depth-first greedy match extender: given a
// starting alignment-graph position and the current g-score, it descends
// the reference DAG along successors whose symbol equals the corresponding
// query byte, at zero additional cost, reporting the first non-match
// boundary it hits.
//
// This lets astar skip pushing every individual match transition through
// the priority queue — a long run of matches collapses to one extend call.
package dfa
